package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudostudio/nudo/handler"
	"github.com/nudostudio/nudo/pkg/binder"
)

type enrollRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func TestWrap_BindsAndRenders(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, enrollRequest](
		func(ctx handler.Context, req enrollRequest) handler.Response {
			return handler.JSON(map[string]string{"greeting": "hola " + req.Name}, handler.WithJSONStatus(http.StatusCreated))
		},
	)

	req := httptest.NewRequest(http.MethodPost, "/enroll", strings.NewReader(`{"name":" <Ana> ","email":"ana@nudo.co"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Wrap(h, handler.WithBinders[handler.Context, enrollRequest](binder.JSON()))(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"data":{"greeting":"hola Ana"}}`, w.Body.String())
}

func TestWrap_SkipsNotApplicableBinders(t *testing.T) {
	t.Parallel()

	var called []string
	skip := func(r *http.Request, v any) error {
		called = append(called, "skip")
		return binder.ErrBinderNotApplicable
	}
	fill := func(r *http.Request, v any) error {
		called = append(called, "fill")
		v.(*enrollRequest).Name = "Eva"
		return nil
	}

	var got enrollRequest
	h := handler.HandlerFunc[handler.Context, enrollRequest](
		func(ctx handler.Context, req enrollRequest) handler.Response {
			got = req
			return handler.Empty()
		},
	)

	w := httptest.NewRecorder()
	handler.Wrap(h, handler.WithBinders[handler.Context, enrollRequest](skip, fill))(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"skip", "fill"}, called)
	assert.Equal(t, "Eva", got.Name)
}

func TestWrap_BinderErrorUsesErrorHandler(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, enrollRequest](
		func(ctx handler.Context, req enrollRequest) handler.Response {
			t.Fatal("handler must not run when binding fails")
			return nil
		},
	)

	t.Run("default error handler renders JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`name=ana`))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		handler.Wrap(h, handler.WithBinders[handler.Context, enrollRequest](binder.JSON()))(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
		assert.JSONEq(t, `{"error":{"code":"unsupported_media_type","message":"Unsupported Media Type"}}`, w.Body.String())
	})

	t.Run("custom error handler", func(t *testing.T) {
		var captured error
		onError := func(ctx handler.Context, err error) {
			captured = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.Wrap(h,
			handler.WithBinders[handler.Context, enrollRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, enrollRequest](onError),
		)(w, req)

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.ErrorIs(t, captured, binder.ErrFailedToParseJSON)
	})
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	var captured error
	h := handler.HandlerFunc[handler.Context, struct{}](
		func(ctx handler.Context, req struct{}) handler.Response { return nil },
	)
	onError := func(ctx handler.Context, err error) { captured = err }

	handler.Wrap(h, handler.WithErrorHandler[handler.Context, struct{}](onError))(
		httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil),
	)
	assert.ErrorIs(t, captured, handler.ErrNilResponse)
}

type failingResponse struct{}

func (failingResponse) Render(http.ResponseWriter, *http.Request) error {
	return errors.New("render failed")
}

func TestWrap_RenderErrorIsInternal(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, struct{}](
		func(ctx handler.Context, req struct{}) handler.Response { return failingResponse{} },
	)
	w := httptest.NewRecorder()
	handler.Wrap(h)(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "render failed")
}

func TestWrap_DecoratorOrder(t *testing.T) {
	t.Parallel()

	var trace []string
	decorator := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				trace = append(trace, name+":before")
				resp := next(ctx, req)
				trace = append(trace, name+":after")
				return resp
			}
		}
	}

	h := handler.HandlerFunc[handler.Context, struct{}](
		func(ctx handler.Context, req struct{}) handler.Response {
			trace = append(trace, "handler")
			return handler.Empty()
		},
	)

	handler.Wrap(h, handler.WithDecorators(decorator("outer"), decorator("inner")))(
		httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil),
	)

	assert.Equal(t, []string{"outer:before", "inner:before", "handler", "inner:after", "outer:after"}, trace)
}

type shopContext struct {
	handler.Context
	shop string
}

func TestWrap_CustomContext(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[shopContext, struct{}](
		func(ctx shopContext, req struct{}) handler.Response {
			return handler.JSON(ctx.shop)
		},
	)

	t.Run("with factory", func(t *testing.T) {
		factory := func(w http.ResponseWriter, r *http.Request) shopContext {
			return shopContext{Context: handler.NewContext(w, r), shop: "nudo"}
		}
		w := httptest.NewRecorder()
		handler.Wrap(h, handler.WithContextFactory[shopContext, struct{}](factory))(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":"nudo"}`, w.Body.String())
	})

	t.Run("without factory panics", func(t *testing.T) {
		assert.Panics(t, func() {
			handler.Wrap(h)(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
