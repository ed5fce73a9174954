package dto

import (
	"time"

	"github.com/keebsxd/timeline-app/internal/domain"
)

type EventResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Location    *string `json:"location"`
	ImageURL    *string `json:"image_url"`
	Category    *string `json:"category"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type PageResponse struct {
	Data  []EventResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Pages int             `json:"pages"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate.Format(TimeLayout),
		EndDate:     formatTimePtr(e.EndDate),
		Location:    e.Location,
		ImageURL:    e.ImageURL,
		Category:    e.Category,
		CreatedAt:   e.CreatedAt.Format(TimeLayout),
		UpdatedAt:   e.UpdatedAt.Format(TimeLayout),
	}
}

func ToPageResponse(p *domain.EventPage) PageResponse {
	data := make([]EventResponse, 0, len(p.Data))
	for i := range p.Data {
		data = append(data, ToEventResponse(&p.Data[i]))
	}

	return PageResponse{
		Data:  data,
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
		Pages: p.Pages,
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(TimeLayout)
	return &s
}
