package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/keebsxd/timeline-app/internal/domain"
)

const eventColumns = "id, title, description, start_date, end_date, location, image_url, category, created_at, updated_at"

// buildListQuery composes the filtered SELECT. Each present filter appends one
// clause and binds its values as positional parameters; values are never
// interpolated into the query text. Limit and offset are always the last two
// parameters.
func buildListQuery(f domain.EventFilter) (string, []any) {
	var (
		where []string
		args  []any
	)

	if f.Search != nil {
		args = append(args, "%"+*f.Search+"%")
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if f.StartDate != nil && f.EndDate != nil {
		// Inclusive range. A single bound applies no date filter at all.
		args = append(args, *f.StartDate, *f.EndDate)
		where = append(where, fmt.Sprintf("start_date BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}

	var q strings.Builder
	q.WriteString("SELECT " + eventColumns + " FROM events")
	if len(where) > 0 {
		q.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	q.WriteString(" ORDER BY start_date DESC, id ASC")

	args = append(args, f.Limit, f.Offset())
	fmt.Fprintf(&q, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return q.String(), args
}

// countQuery deliberately ignores the filter: the list response reports the
// size of the whole table, not of the filtered result set.
const countQuery = "SELECT COUNT(*) FROM events"

// buildUpdateQuery composes the partial UPDATE. updated_at is always set;
// every present patch field appends one assignment in fixed column order; the
// id parameter comes last. An empty patch still refreshes updated_at.
func buildUpdateQuery(id string, p domain.EventPatch, now time.Time) (string, []any) {
	sets := []string{"updated_at = $1"}
	args := []any{now}

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Title != nil {
		set("title", *p.Title)
	}
	if p.Description != nil {
		set("description", *p.Description)
	}
	if p.StartDate != nil {
		set("start_date", *p.StartDate)
	}
	if p.EndDate != nil {
		set("end_date", *p.EndDate)
	}
	if p.Location != nil {
		set("location", *p.Location)
	}
	if p.ImageURL != nil {
		set("image_url", *p.ImageURL)
	}
	if p.Category != nil {
		set("category", *p.Category)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE events SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), eventColumns)

	return query, args
}
