package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/nudostudio/nudo/handler"
	"github.com/nudostudio/nudo/modules/forms"
	"github.com/nudostudio/nudo/pkg/email/templates"
	"github.com/nudostudio/nudo/pkg/sanitizer"
)

// ContactRequest is the body of POST /contact.
type ContactRequest struct {
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Subject string `json:"asunto"`
	Message string `json:"mensaje"`
}

// Fields returns the submission keyed by form field.
func (r ContactRequest) Fields() map[string]any {
	return map[string]any{
		"nombre":   r.Name,
		"email":    r.Email,
		"telefono": r.Phone,
		"asunto":   r.Subject,
		"mensaje":  r.Message,
	}
}

type contactRow struct {
	Reference string    `json:"reference"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Submission is returned by the write endpoints once a request is accepted.
type Submission struct {
	Reference string `json:"reference"`
}

func (s *Service) contact(ctx handler.Context, req ContactRequest) handler.Response {
	errs, err := s.forms.Validate(forms.Contact, req.Fields())
	if err != nil {
		return handler.JSONError(err)
	}
	if !errs.IsEmpty() {
		return handler.JSONError(errs)
	}

	row := contactRow{
		Reference: reference("MSG"),
		Name:      sanitizer.TitleName(req.Name),
		Email:     sanitizer.NormalizeEmail(req.Email),
		Phone:     sanitizer.NormalizePhone(req.Phone),
		Subject:   sanitizer.SingleLine(req.Subject),
		Message:   sanitizer.Text(req.Message),
		CreatedAt: s.now().UTC(),
	}
	if err := s.persist(ctx, contactTable, row); err != nil {
		return handler.JSONError(err)
	}

	s.dispatch(ctx, "contact_notification", func(ctx context.Context) error {
		return s.mailer.ContactNotification(ctx, templates.ContactData{
			Name:    row.Name,
			Email:   row.Email,
			Phone:   row.Phone,
			Subject: row.Subject,
			Message: row.Message,
		})
	})

	return handler.JSON(Submission{Reference: row.Reference}, handler.WithJSONStatus(http.StatusAccepted))
}
