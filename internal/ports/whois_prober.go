package ports

import (
	"context"

	"github.com/avenlon/domainwatch/internal/domain"
)

// WhoisProber retrieves the registrar "Updated Date" for a domain.
// A record with no usable date is an error, not an empty record.
type WhoisProber interface {
	Lookup(ctx context.Context, domainName string) (domain.WhoisRecord, error)
}
