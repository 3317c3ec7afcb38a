// Package rdapwhois retrieves registration data over RDAP, the structured
// successor to port-43 whois. Some registries only publish there.
package rdapwhois

import (
	"context"
	"time"

	"github.com/openrdap/rdap"

	"github.com/avenlon/domainwatch/internal/domain"
	"github.com/avenlon/domainwatch/internal/ports"
)

// lastChangedAction is the RDAP event action that carries the registrar
// modification date (RFC 9083 event action registry).
const lastChangedAction = "last changed"

type Prober struct {
	client  *rdap.Client
	timeout time.Duration
}

type Option func(*Prober)

// WithClient replaces the RDAP client (tests).
func WithClient(c *rdap.Client) Option {
	return func(p *Prober) { p.client = c }
}

func New(timeout time.Duration, opts ...Option) *Prober {
	p := &Prober{
		client:  &rdap.Client{},
		timeout: timeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ ports.WhoisProber = (*Prober)(nil)

// Lookup queries the domain's RDAP service and returns the "last changed"
// event date verbatim. A response without that event reports the same error
// as a whois record without an Updated Date: both mean this tool cannot
// watch the domain.
func (p *Prober) Lookup(ctx context.Context, domainName string) (domain.WhoisRecord, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req := &rdap.Request{
		Type:  rdap.DomainRequest,
		Query: domainName,
	}
	req = req.WithContext(ctx)

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.WhoisRecord{}, &domain.OpError{
			Op:   "whois.rdap",
			Kind: domain.KindProbe,
			Err:  err,
		}
	}

	d, ok := resp.Object.(*rdap.Domain)
	if !ok {
		return domain.WhoisRecord{}, &domain.OpError{
			Op:   "whois.rdap",
			Kind: domain.KindProbe,
			Err:  domain.ErrUpdatedDateMissing,
		}
	}

	date, ok := lastChanged(d.Events)
	if !ok {
		return domain.WhoisRecord{}, &domain.OpError{
			Op:   "whois.rdap",
			Kind: domain.KindProbe,
			Err:  domain.ErrUpdatedDateMissing,
		}
	}

	return domain.WhoisRecord{
		UpdatedDate: date,
		Source:      "rdap",
	}, nil
}

// lastChanged picks the modification date out of the event list. The first
// matching event wins, mirroring how the whois text path takes the first
// matching line.
func lastChanged(events []rdap.Event) (string, bool) {
	for _, ev := range events {
		if ev.Action == lastChangedAction {
			return ev.Date, true
		}
	}
	return "", false
}
