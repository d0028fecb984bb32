package storefront

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/nudostudio/nudo/handler"
	"github.com/nudostudio/nudo/modules/forms"
	"github.com/nudostudio/nudo/pkg/email/templates"
	"github.com/nudostudio/nudo/pkg/logger"
	"github.com/nudostudio/nudo/pkg/sanitizer"
)

// QuoteRequest is the body of POST /quotes, a request for a custom piece.
type QuoteRequest struct {
	Name        string `json:"nombre"`
	Email       string `json:"email"`
	Phone       string `json:"telefono"`
	Company     string `json:"empresa"`
	Product     string `json:"tipo_pieza"`
	Quantity    *int   `json:"cantidad"`
	Deadline    string `json:"fecha_entrega"`
	Description string `json:"descripcion"`
}

func (r QuoteRequest) Fields() map[string]any {
	return map[string]any{
		"nombre":        r.Name,
		"email":         r.Email,
		"telefono":      r.Phone,
		"empresa":       r.Company,
		"tipo_pieza":    r.Product,
		"cantidad":      countField(r.Quantity),
		"fecha_entrega": r.Deadline,
		"descripcion":   r.Description,
	}
}

type quoteRow struct {
	Reference   string     `json:"reference"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Company     string     `json:"company,omitempty"`
	Product     string     `json:"product"`
	Quantity    int        `json:"quantity"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (s *Service) requestQuote(ctx handler.Context, req QuoteRequest) handler.Response {
	errs, err := s.forms.Validate(forms.QuoteRequest, req.Fields())
	if err != nil {
		return handler.JSONError(err)
	}
	if !errs.IsEmpty() {
		return handler.JSONError(errs)
	}

	row := quoteRow{
		Reference:   reference("COT"),
		Name:        sanitizer.TitleName(req.Name),
		Email:       sanitizer.NormalizeEmail(req.Email),
		Phone:       sanitizer.NormalizePhone(req.Phone),
		Company:     sanitizer.SingleLine(req.Company),
		Product:     sanitizer.SingleLine(req.Product),
		Quantity:    count(req.Quantity),
		Description: sanitizer.Text(req.Description),
		CreatedAt:   s.now().UTC(),
	}
	if req.Deadline != "" {
		// Already checked by the quote_request rule-set.
		if d, err := time.ParseInLocation(time.DateOnly, req.Deadline, s.loc); err == nil {
			row.Deadline = &d
		}
	}

	if err := s.persist(ctx, quotesTable, row); err != nil {
		return handler.JSONError(err)
	}

	data := templates.QuoteData{
		Reference: row.Reference,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Company:   row.Company,
		Product:   row.Product,
		Quantity:  row.Quantity,
		Details:   row.Description,
	}
	if row.Deadline != nil {
		data.Deadline = *row.Deadline
	}
	s.dispatch(ctx, "quote_received", func(ctx context.Context) error {
		return s.mailer.QuoteReceived(ctx, data)
	})

	s.log.InfoContext(ctx, "quote requested",
		logger.Event("quote_requested"),
		slog.String("reference", row.Reference),
	)

	return handler.JSON(Submission{Reference: row.Reference}, handler.WithJSONStatus(http.StatusAccepted))
}
