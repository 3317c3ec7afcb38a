// Package httpprobe checks a domain's front page over plain HTTP.
package httpprobe

import (
	"context"
	"io"
	"net/http"

	"github.com/avenlon/domainwatch/internal/domain"
	"github.com/avenlon/domainwatch/internal/infra/httpclient"
	"github.com/avenlon/domainwatch/internal/ports"
)

// drain at most this much of the body; the signal only needs the status code.
const maxDrainBytes = 64 * 1024

type Prober struct {
	client *http.Client
}

type Option func(*Prober)

// WithClient replaces the built client (tests).
func WithClient(c *http.Client) Option {
	return func(p *Prober) { p.client = c }
}

func New(cfg httpclient.Config, opts ...Option) *Prober {
	p := &Prober{
		client: httpclient.New(cfg),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ ports.HTTPProber = (*Prober)(nil)

// Probe issues GET http://<domain> following redirects and reports the final
// status code. Transport failures become part of the result, classified and
// stringified, so the caller can compare them run over run.
func (p *Prober) Probe(ctx context.Context, domainName string) domain.HTTPResult {
	url := "http://" + domainName

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.HTTPResult{Err: domain.NewProbeError(err)}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.HTTPResult{Err: domain.NewProbeError(err)}
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	return domain.HTTPResult{StatusCode: resp.StatusCode}
}
