package dto

import (
	"fmt"
	"time"

	"github.com/keebsxd/timeline-app/internal/domain"
)

// TimeLayout is the wire format for all event timestamps: naive local
// wall-clock, no timezone offset.
const TimeLayout = "2006-01-02T15:04:05"

type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date"`
	Location    *string `json:"location"`
	ImageURL    *string `json:"image_url"`
	Category    *string `json:"category"`
}

func (r CreateEventRequest) ToEventCreate() (domain.EventCreate, error) {
	start, err := parseTime(r.StartDate)
	if err != nil {
		return domain.EventCreate{}, err
	}
	end, err := parseTimePtr(r.EndDate)
	if err != nil {
		return domain.EventCreate{}, err
	}

	return domain.EventCreate{
		Title:       r.Title,
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
	}, nil
}

// UpdateEventRequest carries a partial update: absent fields stay unchanged,
// present fields (including empty strings) replace the stored value.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Location    *string `json:"location"`
	ImageURL    *string `json:"image_url"`
	Category    *string `json:"category"`
}

func (r UpdateEventRequest) ToEventPatch() (domain.EventPatch, error) {
	start, err := parseTimePtr(r.StartDate)
	if err != nil {
		return domain.EventPatch{}, err
	}
	end, err := parseTimePtr(r.EndDate)
	if err != nil {
		return domain.EventPatch{}, err
	}

	return domain.EventPatch{
		Title:       r.Title,
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
	}, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q, expected %s", s, TimeLayout)
	}
	return t, nil
}

func parseTimePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
