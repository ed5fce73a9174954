package ports

import (
	"context"

	"github.com/keebsxd/timeline-app/internal/domain"
)

type Announcer interface {
	AnnounceEventCreated(ctx context.Context, e *domain.Event)
}
