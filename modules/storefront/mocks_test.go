package storefront_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nudostudio/nudo/pkg/backend"
	"github.com/nudostudio/nudo/pkg/email/templates"
	"github.com/nudostudio/nudo/pkg/ratelimiter"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Insert(ctx context.Context, table string, rows any) error {
	return m.Called(ctx, table, rows).Error(0)
}

func (m *mockBackend) ListWorkshops(ctx context.Context, from, to time.Time) ([]backend.Workshop, error) {
	args := m.Called(ctx, from, to)
	workshops, _ := args.Get(0).([]backend.Workshop)
	return workshops, args.Error(1)
}

func (m *mockBackend) GetWorkshop(ctx context.Context, id string) (backend.Workshop, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(backend.Workshop), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) ContactNotification(ctx context.Context, d templates.ContactData) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockMailer) QuoteReceived(ctx context.Context, d templates.QuoteData) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockMailer) EnrollmentConfirmation(ctx context.Context, d templates.EnrollmentData) error {
	return m.Called(ctx, d).Error(0)
}

type mockLimiter struct {
	mock.Mock
}

func (m *mockLimiter) Allow(ctx context.Context, key string) (*ratelimiter.Result, error) {
	args := m.Called(ctx, key)
	res, _ := args.Get(0).(*ratelimiter.Result)
	return res, args.Error(1)
}
