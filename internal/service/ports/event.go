package ports

import (
	"context"
	"time"

	"github.com/keebsxd/timeline-app/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, f domain.EventFilter) ([]domain.Event, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, p domain.EventPatch, now time.Time) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
