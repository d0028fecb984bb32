package handler

import (
	"errors"
	"net/http"

	"github.com/nudostudio/nudo/pkg/binder"
)

// HandlerFunc handles one decoded request of type R and returns the response
// to render. C is the request context, usually handler.Context.
//
//	enroll := handler.HandlerFunc[handler.Context, EnrollRequest](
//		func(ctx handler.Context, req EnrollRequest) handler.Response {
//			if errs := validator.ValidateForm(req.Fields(), rules); !errs.IsEmpty() {
//				return handler.JSONError(errs)
//			}
//			return handler.EmptyWithStatus(http.StatusAccepted)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response writes headers, status and body. A Render error is passed to the
// endpoint's ErrorHandler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes the request into v, a pointer to the request type.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes the response for a binding, handler or render failure.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// Decorators are applied in order, with the first decorator in the list
// being the outermost wrapper.
//
// Example decorator that logs slow handlers:
//
//	func Slow[C Context, R any](log *slog.Logger, limit time.Duration) Decorator[C, R] {
//		return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
//			return func(ctx C, req R) Response {
//				start := time.Now()
//				defer func() {
//					if d := time.Since(start); d > limit {
//						log.WarnContext(ctx, "slow handler", logger.Duration(d))
//					}
//				}()
//				return next(ctx, req)
//			}
//		}
//	}
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinders sets multiple request binders that will be applied in order.
// Binders that return binder.ErrBinderNotApplicable are skipped.
//
//	r.Post("/forms/{form}/live", handler.Wrap(live,
//		handler.WithBinders[handler.Context, map[string]any](binder.Signals()),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory builds C for each request. Required when C is not Context.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators appends decorators; the first one runs outermost.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler renders the error as a JSON error envelope without logging.
func defaultErrorHandler[C Context](ctx C, err error) {
	status, detail := classifyError(err)
	_ = JSONError(detail, WithJSONStatus(status)).Render(ctx.ResponseWriter(), ctx.Request())
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
//	r.Post("/contact", handler.Wrap(contact,
//		handler.WithBinders[handler.Context, ContactRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, ContactRequest](errorHandler),
//	))
//
// Custom context types need WithContextFactory; Wrap panics on the first
// request otherwise.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
	}

	if cfg.contextFactory == nil {
		cfg.contextFactory = func(w http.ResponseWriter, r *http.Request) C {
			ctx := NewContext(w, r)
			if c, ok := any(ctx).(C); ok {
				return c
			}
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		}
	}

	for _, opt := range opts {
		opt(cfg)
	}

	finalHandler := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		finalHandler = cfg.decorators[i](finalHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R

		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := finalHandler(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
