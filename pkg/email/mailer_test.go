package email_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nudostudio/nudo/pkg/email"
	"github.com/nudostudio/nudo/pkg/email/templates"
)

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	return m.Called(ctx, params).Error(0)
}

func tagged(tag string) any {
	return mock.MatchedBy(func(p email.SendEmailParams) bool { return p.Tag == tag })
}

func TestMailer_ContactNotification(t *testing.T) {
	t.Parallel()

	sender := &MockEmailSender{}
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
		return p.SendTo == "taller@nudo.studio" &&
			p.ReplyTo == "ana@nudo.co" &&
			p.Subject == "Contacto: Pedido especial" &&
			p.Tag == "contact" &&
			p.BodyHTML != ""
	})).Return(nil).Once()

	m := email.NewMailer(sender, "taller@nudo.studio", nil)
	require.NoError(t, m.ContactNotification(context.Background(), templates.ContactData{
		Name:    "Ana",
		Email:   "ana@nudo.co",
		Subject: "Pedido especial",
		Message: "Hola",
	}))
	sender.AssertExpectations(t)
}

func TestMailer_QuoteReceived(t *testing.T) {
	t.Parallel()

	sender := &MockEmailSender{}
	sender.On("SendEmail", mock.Anything, tagged("quote_received")).Return(nil).Once()
	sender.On("SendEmail", mock.Anything, tagged("quote_notification")).Return(errors.New("boom")).Once()

	m := email.NewMailer(sender, "taller@nudo.studio", nil)
	err := m.QuoteReceived(context.Background(), templates.QuoteData{
		Reference: "COT-1",
		Name:      "Luis",
		Email:     "luis@empresa.co",
		Details:   "Tapices",
	})
	assert.EqualError(t, err, "boom")
	sender.AssertExpectations(t)
}

func TestMailer_CustomerMessages(t *testing.T) {
	t.Parallel()

	sender := &MockEmailSender{}
	sender.On("SendEmail", mock.Anything, tagged("workshop_enrollment")).Return(nil).Once()
	sender.On("SendEmail", mock.Anything, tagged("order_confirmation")).Return(nil).Once()

	m := email.NewMailer(sender, "taller@nudo.studio", nil)
	require.NoError(t, m.EnrollmentConfirmation(context.Background(), templates.EnrollmentData{
		Name:     "Sofía",
		Email:    "sofia@nudo.co",
		Workshop: "Macramé básico",
		StartsAt: time.Now().Add(48 * time.Hour),
	}))
	require.NoError(t, m.OrderConfirmation(context.Background(), templates.OrderData{
		Number: "PED-1",
		Name:   "Sofía",
		Email:  "sofia@nudo.co",
		Items:  []templates.OrderItem{{Name: "Kit", Quantity: 1, Price: 50000}},
	}))
	sender.AssertExpectations(t)
}

func TestMailer_WithDevSender(t *testing.T) {
	t.Parallel()

	m := email.NewMailer(email.NewDevSender(t.TempDir()), "taller@nudo.studio", nil)
	err := m.EnrollmentConfirmation(context.Background(), templates.EnrollmentData{
		Name:     "Sofía",
		Email:    "correo-invalido",
		Workshop: "Macramé básico",
	})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}
