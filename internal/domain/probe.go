package domain

import (
	"context"
	"errors"
	"net"
	"strconv"
)

// WhoisRecord is the outcome of a successful registry lookup.
type WhoisRecord struct {
	// UpdatedDate is the raw registrar modification date, exactly as the
	// lookup backend reported it.
	UpdatedDate string

	// Source names the backend that produced the record ("exec", "rdap").
	Source string
}

// ProbeErrorKind is a high-level classification of probe transport errors.
type ProbeErrorKind string

const (
	ProbeErrorUnknown ProbeErrorKind = "unknown"
	ProbeErrorTimeout ProbeErrorKind = "timeout"
	ProbeErrorDNS     ProbeErrorKind = "dns"
	ProbeErrorConn    ProbeErrorKind = "connection"
	ProbeErrorHTTP    ProbeErrorKind = "http"
)

// ProbeError represents a structured error produced by a prober.
type ProbeError struct {
	Kind    ProbeErrorKind
	Message string
}

// NewProbeError classifies err and captures its message.
func NewProbeError(err error) *ProbeError {
	if err == nil {
		return nil
	}
	return &ProbeError{
		Kind:    ClassifyProbeError(err),
		Message: err.Error(),
	}
}

// ClassifyProbeError maps transport-level errors to a ProbeErrorKind.
func ClassifyProbeError(err error) ProbeErrorKind {
	if err == nil {
		return ProbeErrorUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ProbeErrorTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ProbeErrorDNS
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ProbeErrorTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ProbeErrorConn
	}

	return ProbeErrorUnknown
}

// HTTPResult is the outcome of probing the domain over HTTP. Exactly one of
// StatusCode or Err is meaningful.
type HTTPResult struct {
	StatusCode int
	Err        *ProbeError
}

// Signal renders the result as the comparable status signal: the numeric
// status code, or "Error: <message>" normalized for transient addresses.
func (r HTTPResult) Signal() string {
	if r.Err != nil {
		return NormalizeHTTPSignal("Error: " + r.Err.Message)
	}
	return strconv.Itoa(r.StatusCode)
}
