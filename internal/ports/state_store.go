package ports

import (
	"context"

	"github.com/avenlon/domainwatch/internal/domain"
)

// StateStore persists the last observed value of each signal.
type StateStore interface {
	// Get returns the stored value for key. ok is false when no value has
	// been recorded yet; that is not an error.
	Get(ctx context.Context, key domain.SignalKey) (value string, ok bool, err error)

	// Set overwrites the stored value for key.
	Set(ctx context.Context, key domain.SignalKey, value string) error
}
