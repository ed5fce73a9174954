package domain

import "time"

type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Location    *string    `json:"location"`
	ImageURL    *string    `json:"image_url"`
	Category    *string    `json:"category"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EventCreate struct {
	Title       string
	Description *string
	StartDate   time.Time
	EndDate     *time.Time
	Location    *string
	ImageURL    *string
	Category    *string
}

// EventPatch is a partial update: nil means "leave unchanged", a non-nil
// value (including an empty string) means "replace".
type EventPatch struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Location    *string
	ImageURL    *string
	Category    *string
}

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage keeps (Page-1)*Limit far from int overflow, which would send a
	// negative OFFSET to the database.
	MaxPage = 1_000_000
)

// EventFilter restricts a list query. The date range only applies when both
// bounds are present.
type EventFilter struct {
	Search    *string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// Normalize clamps pagination: page in [1, MaxPage], limit in [1, MaxLimit],
// zero values replaced with defaults.
func (f *EventFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit < 1 {
		f.Limit = 1
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
}

func (f EventFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type EventPage struct {
	Data  []Event
	Total int64
	Page  int
	Limit int
	Pages int
}
