package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nudostudio/nudo/pkg/binder"
	"github.com/nudostudio/nudo/pkg/logger"
	"github.com/nudostudio/nudo/pkg/requestid"
	"github.com/nudostudio/nudo/pkg/validator"
)

// ValidationMessage is the top-level message of a validation error response.
const ValidationMessage = "Revisa los campos marcados"

// binderErrors maps request decoding failures to client errors.
var binderErrors = []struct {
	err     error
	httpErr HTTPError
}{
	{binder.ErrBodyTooLarge, ErrRequestEntityTooLarge},
	{binder.ErrMissingContentType, ErrUnsupportedMediaType},
	{binder.ErrUnsupportedMediaType, ErrUnsupportedMediaType},
	{binder.ErrFailedToParseJSON, ErrBadRequest},
	{binder.ErrFailedToParseSignals, ErrBadRequest},
	{ErrNotDataStar, ErrNotAcceptable},
}

func asHTTPError(err error) (HTTPError, bool) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	for _, be := range binderErrors {
		if errors.Is(err, be.err) {
			return be.httpErr, true
		}
	}
	return HTTPError{}, false
}

// classifyError maps err to a status code and the error body sent to clients.
func classifyError(err error) (int, *ErrorDetail) {
	if validator.IsValidationError(err) {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: ValidationMessage,
			Details: NewFieldErrors(validator.ExtractValidationErrors(err)),
		}
	}

	if httpErr, ok := asHTTPError(err); ok {
		return httpErr.Code, &ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}
	}

	return http.StatusInternalServerError, &ErrorDetail{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

// logLevel maps HTTP status codes to log levels: client errors are warnings.
func logLevel(status int) slog.Level {
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func logError(log *slog.Logger, ctx Context, err error, status int) {
	r := ctx.Request()
	attrs := []slog.Attr{
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	}
	if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
		attrs = append(attrs, logger.Fields(errs.Fields()))
	}
	log.LogAttrs(r.Context(), logLevel(status), "request error", attrs...)
}

// NewErrorHandler creates the error handler shared by every endpoint.
//
// Plain requests get the JSON error envelope. DataStar requests get a signal
// patch instead: "errors" holds the first message of each failing field and
// "formError" a message for the whole form, empty for validation failures.
// Configure it once in main.go and pass it to all modules.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		status, detail := classifyError(err)
		logError(log, ctx, err, status)

		var response Response
		if IsDataStar(ctx.Request()) && !errors.Is(err, ErrNotDataStar) {
			response = Signals(errorSignals(err, detail))
		} else {
			response = JSONError(detail, WithJSONStatus(status))
		}

		if renderErr := response.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}

func errorSignals(err error, detail *ErrorDetail) map[string]any {
	if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
		return map[string]any{"errors": errs.First(), "formError": ""}
	}
	return map[string]any{"errors": map[string]string{}, "formError": detail.Message}
}
