package ports

import (
	"context"

	"github.com/avenlon/domainwatch/internal/domain"
)

// Notifier delivers a rendered notification to the configured recipient.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}
