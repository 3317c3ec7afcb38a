package httpclient

import (
	"net"
	"net/http"
	"time"
)

type Config struct {
	// Total timeout for the entire request (includes redirects, reading body, etc).
	// A context deadline can still override this.
	Timeout time.Duration

	// Transport / dial timeouts.
	DialTimeout    time.Duration
	TLSHandshake   time.Duration
	ResponseHeader time.Duration
}

func DefaultConfig() Config {
	return Config{
		Timeout:        10 * time.Second,
		DialTimeout:    5 * time.Second,
		TLSHandshake:   5 * time.Second,
		ResponseHeader: 10 * time.Second,
	}
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout: cfg.DialTimeout,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		// One request per process run: pooling idle connections would only
		// delay exit.
		DisableKeepAlives: true,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
