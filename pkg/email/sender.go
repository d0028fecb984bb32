package email

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nudostudio/nudo/pkg/validator"
)

// EmailSender delivers a rendered message.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams is a rendered message ready for delivery.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	Tag      string `json:"tag,omitempty"`
	ReplyTo  string `json:"reply_to,omitempty"`
}

var paramRules = validator.NewRuleSet(
	validator.Field("send_to", validator.EmailRule()),
	validator.Field("subject", validator.Rule{Required: true, MaxLength: validator.Len(200)}),
	validator.Field("body_html", validator.Rule{Required: true}),
	validator.Field("reply_to", validator.Rule{Email: true}),
)

// Validate runs the message through the same rule engine as the storefront
// forms.
func (p SendEmailParams) Validate() error {
	err := validator.Validate(map[string]any{
		"send_to":   p.SendTo,
		"subject":   p.Subject,
		"body_html": p.BodyHTML,
		"reply_to":  p.ReplyTo,
	}, paramRules)
	if err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}

// NewSender returns a Postmark sender when tokens are configured and a
// DevSender otherwise.
func NewSender(cfg Config, log *slog.Logger) (EmailSender, error) {
	if cfg.UsePostmark() {
		return NewPostmarkClient(cfg)
	}
	if log != nil {
		log.Warn("postmark not configured, writing emails to disk", slog.String("dir", cfg.DevDir))
	}
	return NewDevSender(cfg.DevDir), nil
}

var configRules = validator.NewRuleSet(
	validator.Field("sender_email", validator.EmailRule()),
	validator.Field("support_email", validator.EmailRule()),
)
