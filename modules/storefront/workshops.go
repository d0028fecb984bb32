package storefront

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nudostudio/nudo/handler"
	"github.com/nudostudio/nudo/modules/forms"
	"github.com/nudostudio/nudo/pkg/backend"
	"github.com/nudostudio/nudo/pkg/calendar"
	"github.com/nudostudio/nudo/pkg/email/templates"
	"github.com/nudostudio/nudo/pkg/logger"
	"github.com/nudostudio/nudo/pkg/sanitizer"
	"github.com/nudostudio/nudo/pkg/validator"
)

// EnrollRequest is the body of POST /workshops/{id}/enroll.
type EnrollRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Phone    string `json:"telefono"`
	Seats    *int   `json:"cupos"`
	Level    string `json:"nivel"`
	Comments string `json:"comentarios"`
}

func (r EnrollRequest) Fields() map[string]any {
	return map[string]any{
		"nombre":      r.Name,
		"email":       r.Email,
		"telefono":    r.Phone,
		"cupos":       countField(r.Seats),
		"nivel":       r.Level,
		"comentarios": r.Comments,
	}
}

type enrollmentRow struct {
	Reference  string    `json:"reference"`
	WorkshopID string    `json:"workshop_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Seats      int       `json:"seats"`
	Level      string    `json:"level,omitempty"`
	Comments   string    `json:"comments,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *Service) enroll(ctx handler.Context, req EnrollRequest) handler.Response {
	errs, err := s.forms.Validate(forms.WorkshopEnrollment, req.Fields())
	if err != nil {
		return handler.JSONError(err)
	}
	if !errs.IsEmpty() {
		return handler.JSONError(errs)
	}
	if s.backend == nil {
		return handler.JSONError(ErrBackendUnavailable)
	}

	id := chi.URLParam(ctx.Request(), "id")
	workshop, err := s.backend.GetWorkshop(ctx, id)
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return handler.JSONError(ErrWorkshopNotFound)
	case err != nil:
		s.log.ErrorContext(ctx, "failed to load workshop", slog.String("workshop_id", id), logger.Error(err))
		return handler.JSONError(ErrBackendFailed)
	}

	if !workshop.StartsAt.After(s.now()) {
		return handler.JSONError(ErrWorkshopStarted)
	}
	seats := count(req.Seats)
	if workshop.Available < seats {
		return handler.JSONError(ErrWorkshopFull)
	}

	row := enrollmentRow{
		Reference:  reference("INS"),
		WorkshopID: workshop.ID,
		Name:       sanitizer.TitleName(req.Name),
		Email:      sanitizer.NormalizeEmail(req.Email),
		Phone:      sanitizer.NormalizePhone(req.Phone),
		Seats:      seats,
		Level:      req.Level,
		Comments:   sanitizer.Text(req.Comments),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.persist(ctx, enrollmentTable, row); err != nil {
		return handler.JSONError(err)
	}

	data := templates.EnrollmentData{
		Reference: row.Reference,
		Name:      row.Name,
		Email:     row.Email,
		Workshop:  workshop.Title,
		StartsAt:  workshop.StartsAt.In(s.loc),
		Seats:     row.Seats,
		Notes:     row.Comments,
	}
	s.dispatch(ctx, "workshop_enrollment", func(ctx context.Context) error {
		return s.mailer.EnrollmentConfirmation(ctx, data)
	})

	return handler.JSON(Submission{Reference: row.Reference}, handler.WithJSONStatus(http.StatusAccepted))
}

var calendarQueryRules = validator.NewRuleSet(
	validator.Field("year", validator.Rule{
		Pattern: regexp.MustCompile(`^\d{4}$`),
		Custom:  validator.NumberBetween(2000, 2100),
	}),
	validator.Field("month", validator.Rule{
		Pattern: regexp.MustCompile(`^\d{1,2}$`),
		Custom:  validator.NumberBetween(1, 12),
	}),
)

// workshopCalendar returns the month grid for ?year=&month=, defaulting to the
// current month in the store's timezone. Days from the neighbouring months that
// fill the first and last week carry their workshops too.
func (s *Service) workshopCalendar(ctx handler.Context, _ struct{}) handler.Response {
	q := ctx.Request().URL.Query()
	if err := validator.Validate(map[string]any{
		"year":  q.Get("year"),
		"month": q.Get("month"),
	}, calendarQueryRules); err != nil {
		return handler.JSONError(err)
	}

	now := s.now().In(s.loc)
	year, month := now.Year(), now.Month()
	if v := q.Get("year"); v != "" {
		year, _ = strconv.Atoi(v)
	}
	if v := q.Get("month"); v != "" {
		m, _ := strconv.Atoi(v)
		month = time.Month(m)
	}

	grid := calendar.Month(year, month, s.weekStart, s.loc, nil)
	if s.backend == nil {
		return handler.JSON(grid)
	}

	from := grid.Weeks[0][0].Date
	to := grid.Weeks[len(grid.Weeks)-1][6].Date.AddDate(0, 0, 1)

	workshops, err := s.backend.ListWorkshops(ctx, from, to)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to list workshops", logger.Error(err))
		return handler.JSONError(ErrBackendFailed)
	}

	events := make([]calendar.Event, 0, len(workshops))
	for _, w := range workshops {
		events = append(events, w.Event())
	}
	return handler.JSON(calendar.Month(year, month, s.weekStart, s.loc, events))
}
