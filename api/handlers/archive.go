// ABOUTME: Archive handlers for the Huma API
// ABOUTME: Serves the recent-days strip, the month calendar and single day buckets

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"newsboard-api/api/dto/mappers"
	"newsboard-api/api/dto/responses"
	coreerrors "newsboard-api/core/errors"
	"newsboard-api/core/listengine"
	"newsboard-api/pkg/featureflags"
)

// ArchiveHandler serves the date archive of a session's feed
type ArchiveHandler struct {
	sessions SessionStore
	now      func() time.Time
}

// NewArchiveHandler creates a new archive handler
func NewArchiveHandler(sessions SessionStore) *ArchiveHandler {
	return &ArchiveHandler{sessions: sessions, now: time.Now}
}

// RegisterRoutes registers all archive routes
func (h *ArchiveHandler) RegisterRoutes(api huma.API) {
	tags := []string{"Archive"}

	huma.Register(api, huma.Operation{
		OperationID: "getArchive",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}/archive",
		Summary:     "Archive overview",
		Description: "Returns per-day counts for the most recent days, oldest first, and every date that has items",
		Tags:        tags,
	}, h.GetArchive)

	huma.Register(api, huma.Operation{
		OperationID: "getArchiveCalendar",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}/archive/calendar",
		Summary:     "Archive month calendar",
		Description: "Returns per-day counts for one month; year and month default to the current month",
		Tags:        tags,
	}, h.GetCalendar)

	huma.Register(api, huma.Operation{
		OperationID: "getArchiveDay",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}/archive/{date}",
		Summary:     "Archive day",
		Description: "Returns the items published on date, newest first",
		Tags:        tags,
	}, h.GetDay)
}

// GetArchiveInput defines the input for the GetArchive operation
type GetArchiveInput struct {
	SessionPath
	Days int `query:"days" default:"7" minimum:"1" maximum:"31" doc:"Number of days in the strip, ending today"`
}

// GetArchiveOutput defines the output for the GetArchive operation
type GetArchiveOutput struct {
	Body responses.ArchiveResponse
}

// GetCalendarInput defines the input for the GetCalendar operation
type GetCalendarInput struct {
	SessionPath
	Year  int `query:"year" minimum:"0" maximum:"9999" doc:"Calendar year; 0 means the current year"`
	Month int `query:"month" minimum:"0" maximum:"12" doc:"Calendar month 1-12; 0 means the current month"`
}

// GetCalendarOutput defines the output for the GetCalendar operation
type GetCalendarOutput struct {
	Body responses.CalendarResponse
}

// GetDayInput defines the input for the GetDay operation
type GetDayInput struct {
	SessionPath
	Date string `path:"date" pattern:"^[0-9]{4}-[0-9]{2}-[0-9]{2}$" doc:"Calendar date, YYYY-MM-DD"`
}

// GetDayOutput defines the output for the GetDay operation
type GetDayOutput struct {
	Body responses.ArchiveDayResponse
}

// GetArchive handles GET /sessions/{id}/archive
func (h *ArchiveHandler) GetArchive(ctx context.Context, input *GetArchiveInput) (*GetArchiveOutput, error) {
	days := input.Days
	if days == 0 {
		days = 7
	}
	out := &GetArchiveOutput{}
	err := h.with(ctx, input.ID, func(e *listengine.Engine) {
		out.Body.Days = e.RecentDays(h.now(), days)
		out.Body.Dates = e.ArchiveDates()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetCalendar handles GET /sessions/{id}/archive/calendar
func (h *ArchiveHandler) GetCalendar(ctx context.Context, input *GetCalendarInput) (*GetCalendarOutput, error) {
	out := &GetCalendarOutput{}
	err := h.with(ctx, input.ID, func(e *listengine.Engine) {
		now := h.now().In(e.Config().Location)
		year, month := input.Year, time.Month(input.Month)
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = now.Month()
		}
		out.Body.Year = year
		out.Body.Month = int(month)
		out.Body.Days = e.MonthCalendar(year, month)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetDay handles GET /sessions/{id}/archive/{date}
func (h *ArchiveHandler) GetDay(ctx context.Context, input *GetDayInput) (*GetDayOutput, error) {
	if _, err := time.Parse(listengine.DateLayout, input.Date); err != nil {
		return nil, toHumaError(&coreerrors.ValidationError{Field: "date", Message: "not a calendar date"})
	}

	out := &GetDayOutput{}
	err := h.with(ctx, input.ID, func(e *listengine.Engine) {
		out.Body.Date = input.Date
		out.Body.Items = mappers.ToNewsItemResponses(e, e.ArchiveForDate(input.Date))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// with runs fn on the session's engine unless the archive is switched off
func (h *ArchiveHandler) with(ctx context.Context, id string, fn func(e *listengine.Engine)) error {
	if featureflags.IsEnabled(ctx, featureflags.ArchiveDisabled) {
		return featureDisabled("archive")
	}
	s, err := lookup(h.sessions, id)
	if err != nil {
		return err
	}
	s.Do(fn)
	return nil
}
