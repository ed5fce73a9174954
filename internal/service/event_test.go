package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/keebsxd/timeline-app/internal/domain"
	"github.com/keebsxd/timeline-app/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEventService_Create_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	var created *domain.Event
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *domain.Event) { created = e }).
		Return(nil)

	input := domain.EventCreate{
		Title:       "Moon landing",
		Description: strPtr("Apollo 11"),
		StartDate:   time.Date(1969, 7, 20, 20, 17, 0, 0, time.UTC),
		Category:    strPtr("history"),
	}

	event, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Moon landing", event.Title)
	assert.Equal(t, "Apollo 11", *event.Description)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, event.CreatedAt, event.UpdatedAt)
	assert.Same(t, event, created)
}

func TestEventService_Create_EmptyTitle(t *testing.T) {
	svc := NewEventService(nil, nil)

	_, err := svc.Create(context.Background(), domain.EventCreate{
		StartDate: time.Now(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_MissingStartDate(t *testing.T) {
	svc := NewEventService(nil, nil)

	_, err := svc.Create(context.Background(), domain.EventCreate{
		Title: "No date",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), domain.EventCreate{
		Title:     "Test",
		StartDate: time.Now(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_Create_Announces(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	announcer := mocks.NewMockAnnouncer(t)
	svc := NewEventService(repo, announcer)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	announcer.EXPECT().AnnounceEventCreated(mock.Anything, mock.Anything).Return()

	_, err := svc.Create(context.Background(), domain.EventCreate{
		Title:     "Announced",
		StartDate: time.Now(),
	})

	require.NoError(t, err)
}

func TestEventService_Create_NoAnnouncementOnFailure(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	announcer := mocks.NewMockAnnouncer(t)
	svc := NewEventService(repo, announcer)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.Create(context.Background(), domain.EventCreate{
		Title:     "Never announced",
		StartDate: time.Now(),
	})

	require.Error(t, err)
}

func TestEventService_List_Pagination(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	events := make([]domain.Event, 20)
	for i := range events {
		events[i] = domain.Event{ID: "e", Title: "Event"}
	}
	repo.EXPECT().List(mock.Anything, domain.EventFilter{Page: 1, Limit: 20}).Return(events, nil)
	repo.EXPECT().Count(mock.Anything).Return(int64(45), nil)

	page, err := svc.List(context.Background(), domain.EventFilter{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Len(t, page.Data, 20)
	assert.Equal(t, int64(45), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 3, page.Pages)
}

func TestEventService_List_NormalizesFilter(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	repo.EXPECT().List(mock.Anything, domain.EventFilter{Page: 1, Limit: 100}).Return([]domain.Event{}, nil)
	repo.EXPECT().Count(mock.Anything).Return(int64(0), nil)

	page, err := svc.List(context.Background(), domain.EventFilter{Page: -3, Limit: 900})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.Limit)
	assert.Equal(t, 0, page.Pages)
}

func TestEventService_List_EmptyResult(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	repo.EXPECT().List(mock.Anything, mock.Anything).Return([]domain.Event{}, nil)
	repo.EXPECT().Count(mock.Anything).Return(int64(0), nil)

	page, err := svc.List(context.Background(), domain.EventFilter{})

	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(0), page.Total)
}

func TestEventService_List_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	repo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, domain.ErrStorage)

	_, err := svc.List(context.Background(), domain.EventFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestEventService_Get_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Update_PassesPatch(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	patch := domain.EventPatch{Title: strPtr("Renamed")}
	updated := &domain.Event{ID: "e1", Title: "Renamed"}

	repo.EXPECT().Update(mock.Anything, "e1", patch, mock.Anything).Return(updated, nil)

	event, err := svc.Update(context.Background(), "e1", patch)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", event.Title)
}

func TestEventService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	repo.EXPECT().Update(mock.Anything, "missing", mock.Anything, mock.Anything).
		Return(nil, domain.ErrEventNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.EventPatch{})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Delete(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	repo.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "e1"))
}

func TestEventService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrEventNotFound)

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
