package storefront

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nudostudio/nudo/handler"
	"github.com/nudostudio/nudo/modules/forms"
	"github.com/nudostudio/nudo/pkg/backend"
	"github.com/nudostudio/nudo/pkg/binder"
	"github.com/nudostudio/nudo/pkg/email/templates"
	"github.com/nudostudio/nudo/pkg/logger"
	"github.com/nudostudio/nudo/pkg/ratelimiter"
)

// Backend is the subset of the hosted backend used by the storefront.
type Backend interface {
	Insert(ctx context.Context, table string, rows any) error
	ListWorkshops(ctx context.Context, from, to time.Time) ([]backend.Workshop, error)
	GetWorkshop(ctx context.Context, id string) (backend.Workshop, error)
}

// Mailer sends the storefront's transactional emails.
type Mailer interface {
	ContactNotification(ctx context.Context, d templates.ContactData) error
	QuoteReceived(ctx context.Context, d templates.QuoteData) error
	EnrollmentConfirmation(ctx context.Context, d templates.EnrollmentData) error
}

// Backend tables written by the storefront.
const (
	contactTable    = "contact_messages"
	quotesTable     = "quote_requests"
	enrollmentTable = "workshop_enrollments"
)

type Service struct {
	weekStart    time.Weekday
	loc          *time.Location
	mailTimeout  time.Duration
	forms        *forms.Registry
	backend      Backend
	mailer       Mailer
	limiter      ratelimiter.RateLimiter
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
	now          func() time.Time
	inflight     sync.WaitGroup
}

type Option func(*Service)

// WithBackend enables persistence and the workshop endpoints. Without it
// submissions are only emailed and enrollments answer 503.
func WithBackend(b Backend) Option {
	return func(s *Service) { s.backend = b }
}

// WithRateLimiter limits the write endpoints per client IP.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(s *Service) { s.limiter = l }
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService builds the storefront module. registry and mailer are required.
func NewService(cfg Config, registry *forms.Registry, mailer Mailer, opts ...Option) (*Service, error) {
	if registry == nil || mailer == nil {
		return nil, ErrInvalidConfig
	}
	loc, err := cfg.location()
	if err != nil {
		return nil, err
	}
	weekStart, err := cfg.weekStart()
	if err != nil {
		return nil, err
	}

	s := &Service{
		weekStart:   weekStart,
		loc:         loc,
		mailTimeout: cfg.MailTimeout,
		forms:       registry,
		mailer:      mailer,
		log:         logger.Nop(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log)
	}
	if s.mailTimeout <= 0 {
		s.mailTimeout = 15 * time.Second
	}
	s.log = s.log.With(logger.Component("storefront"))
	return s, nil
}

// Handle returns the storefront router.
//
//	r.Mount("/api", storefrontSvc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/forms/{form}/validate", handler.Wrap(s.validateForm,
		handler.WithBinders[handler.Context, map[string]any](binder.JSON()),
		handler.WithErrorHandler[handler.Context, map[string]any](s.errorHandler),
	))
	r.Post("/forms/{form}/live", handler.Wrap(s.liveValidate,
		handler.WithBinders[handler.Context, map[string]any](binder.Signals()),
		handler.WithErrorHandler[handler.Context, map[string]any](s.errorHandler),
	))
	r.Get("/workshops/calendar", handler.Wrap(s.workshopCalendar,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Group(func(w chi.Router) {
		if s.limiter != nil {
			w.Use(ratelimiter.Middleware(s.limiter,
				ratelimiter.Prefix("storefront", ratelimiter.ClientIP),
				ratelimiter.WithLogger(s.log),
				ratelimiter.WithDeniedHandler(s.denied),
			))
		}

		w.Post("/contact", handler.Wrap(s.contact,
			handler.WithBinders[handler.Context, ContactRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, ContactRequest](s.errorHandler),
		))
		w.Post("/quotes", handler.Wrap(s.requestQuote,
			handler.WithBinders[handler.Context, QuoteRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, QuoteRequest](s.errorHandler),
		))
		w.Post("/workshops/{id}/enroll", handler.Wrap(s.enroll,
			handler.WithBinders[handler.Context, EnrollRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, EnrollRequest](s.errorHandler),
		))
	})

	return r
}

// Wait blocks until every queued email has been handed to the mailer.
// Call it after the HTTP server has shut down.
func (s *Service) Wait() {
	s.inflight.Wait()
}

func (s *Service) denied(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
	s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
}

// dispatch runs send in the background, detached from the request's
// cancellation but keeping its values for logging.
func (s *Service) dispatch(ctx context.Context, event string, send func(context.Context) error) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.mailTimeout)
		defer cancel()

		if err := send(ctx); err != nil {
			s.log.ErrorContext(ctx, "failed to send email", logger.Event(event), logger.Error(err))
			return
		}
		s.log.InfoContext(ctx, "email sent", logger.Event(event))
	}()
}

// persist writes row to the backend when one is configured.
func (s *Service) persist(ctx context.Context, table string, row any) error {
	if s.backend == nil {
		return nil
	}
	if err := s.backend.Insert(ctx, table, row); err != nil {
		s.log.ErrorContext(ctx, "failed to store submission", slog.String("table", table), logger.Error(err))
		return ErrBackendFailed
	}
	return nil
}

// count reads an optional quantity field. A missing value means one; a
// value that was sent is validated as given, zero included.
func count(n *int) int {
	if n == nil {
		return 1
	}
	return *n
}

// countField renders n for the rule-set. Zero is passed as text so the
// range check reports it instead of the required check.
func countField(n *int) any {
	return strconv.Itoa(count(n))
}

// reference builds a short human-friendly id such as "COT-1A2B3C4D".
func reference(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(id[:8])
}
