package email

import (
	"context"
	"errors"
	"log/slog"

	"github.com/a-h/templ"

	"github.com/nudostudio/nudo/pkg/email/templates"
	"github.com/nudostudio/nudo/pkg/logger"
)

// Mailer renders the studio's transactional messages and hands them to an
// EmailSender.
type Mailer struct {
	sender EmailSender
	studio string
	log    *slog.Logger
}

func NewMailer(sender EmailSender, studioEmail string, log *slog.Logger) *Mailer {
	if log == nil {
		log = logger.Nop()
	}
	return &Mailer{sender: sender, studio: studioEmail, log: log.With(logger.Component("email"))}
}

// ContactNotification forwards a contact form submission to the studio with
// Reply-To set to the customer.
func (m *Mailer) ContactNotification(ctx context.Context, d templates.ContactData) error {
	subject := "Contacto: " + d.Subject
	if d.Subject == "" {
		subject = "Nuevo mensaje de " + d.Name
	}
	return m.send(ctx, templates.ContactNotification(d), SendEmailParams{
		SendTo:  m.studio,
		Subject: subject,
		Tag:     "contact",
		ReplyTo: d.Email,
	})
}

// QuoteReceived confirms the request to the customer and notifies the studio.
func (m *Mailer) QuoteReceived(ctx context.Context, d templates.QuoteData) error {
	customer := m.send(ctx, templates.QuoteReceived(d), SendEmailParams{
		SendTo:  d.Email,
		Subject: "Recibimos tu solicitud " + d.Reference,
		Tag:     "quote_received",
	})
	studio := m.send(ctx, templates.QuoteNotification(d), SendEmailParams{
		SendTo:  m.studio,
		Subject: "Nueva cotización " + d.Reference,
		Tag:     "quote_notification",
		ReplyTo: d.Email,
	})
	return errors.Join(customer, studio)
}

func (m *Mailer) EnrollmentConfirmation(ctx context.Context, d templates.EnrollmentData) error {
	return m.send(ctx, templates.EnrollmentConfirmation(d), SendEmailParams{
		SendTo:  d.Email,
		Subject: "Inscripción confirmada: " + d.Workshop,
		Tag:     "workshop_enrollment",
	})
}

func (m *Mailer) OrderConfirmation(ctx context.Context, d templates.OrderData) error {
	return m.send(ctx, templates.OrderConfirmation(d), SendEmailParams{
		SendTo:  d.Email,
		Subject: "Pedido " + d.Number + " confirmado",
		Tag:     "order_confirmation",
	})
}

func (m *Mailer) send(ctx context.Context, tpl templ.Component, params SendEmailParams) error {
	body, err := templates.Render(ctx, tpl)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	params.BodyHTML = body

	if err := m.sender.SendEmail(ctx, params); err != nil {
		m.log.ErrorContext(ctx, "email delivery failed",
			logger.Event(params.Tag),
			logger.Error(err),
		)
		return err
	}
	m.log.DebugContext(ctx, "email sent", logger.Event(params.Tag))
	return nil
}
