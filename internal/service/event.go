package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/keebsxd/timeline-app/internal/domain"
	"github.com/keebsxd/timeline-app/internal/service/ports"
)

type EventService struct {
	repo      ports.EventRepo
	announcer ports.Announcer
}

func NewEventService(repo ports.EventRepo, announcer ports.Announcer) *EventService {
	return &EventService{
		repo:      repo,
		announcer: announcer,
	}
}

// List returns one page of events plus pagination totals. Total counts the
// whole table, not the filtered result set.
func (s *EventService) List(ctx context.Context, f domain.EventFilter) (*domain.EventPage, error) {
	f.Normalize()

	events, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	return &domain.EventPage{
		Data:  events,
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
		Pages: int(math.Ceil(float64(total) / float64(f.Limit))),
	}, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, input domain.EventCreate) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if s.announcer != nil {
		s.announcer.AnnounceEventCreated(ctx, event)
	}

	return event, nil
}

// Update applies the patch to the stored event. An empty patch is not
// rejected; it refreshes updated_at and leaves everything else as is.
func (s *EventService) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	return s.repo.Update(ctx, id, patch, time.Now().UTC())
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
