package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/keebsxd/timeline-app/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, start_date, end_date, location, image_url, category, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.StartDate, e.EndDate,
		e.Location, e.ImageURL, e.Category, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return storageError("insert event", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := "SELECT " + eventColumns + " FROM events WHERE id=$1"
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, storageError("get event", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, storageError("scan event", err)
	}

	return e, nil
}

// List returns the page of events matching the filter, ordered by start_date
// descending with id as the tie-break.
func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]domain.Event, error) {
	query, args := buildListQuery(f)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, storageError("list events", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, storageError("scan event", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list events", err)
	}

	return events, nil
}

// Count returns the total number of rows in the events table, regardless of
// any filter applied to List.
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery)
	if err != nil {
		return 0, storageError("count events", err)
	}

	var total int64
	if err := row.Scan(&total); err != nil {
		return 0, storageError("count events", err)
	}

	return total, nil
}

// Update writes only the fields present in the patch plus updated_at and
// returns the updated row.
func (r *EventRepository) Update(ctx context.Context, id string, p domain.EventPatch, now time.Time) (*domain.Event, error) {
	query, args := buildUpdateQuery(id, p, now)

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, storageError("update event", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, storageError("scan event", err)
	}

	return e, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, "DELETE FROM events WHERE id=$1", id)
	if err != nil {
		return storageError("delete event", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storageError("delete event", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate,
		&e.Location, &e.ImageURL, &e.Category, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStorage, err)
}
