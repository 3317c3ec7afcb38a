package ports

import (
	"context"

	"github.com/avenlon/domainwatch/internal/domain"
)

// HTTPProber fetches the domain's front page and reports the outcome.
// Transport failures are part of the result, never an error: an unreachable
// site is still a valid signal.
type HTTPProber interface {
	Probe(ctx context.Context, domainName string) domain.HTTPResult
}
