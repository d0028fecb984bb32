package storefront

import (
	"errors"

	"github.com/go-chi/chi/v5"

	"github.com/nudostudio/nudo/handler"
	"github.com/nudostudio/nudo/modules/forms"
	"github.com/nudostudio/nudo/pkg/logger"
	"github.com/nudostudio/nudo/pkg/validator"
)

// ValidationResult is the body of a successful form validation.
type ValidationResult struct {
	Valid bool `json:"valid"`
}

// validateForm checks a submission against a named rule-set without storing it.
func (s *Service) validateForm(ctx handler.Context, data map[string]any) handler.Response {
	name := chi.URLParam(ctx.Request(), "form")
	errs, err := s.forms.Validate(name, data)
	if err != nil {
		return handler.JSONError(formError(err))
	}
	if !errs.IsEmpty() {
		s.log.DebugContext(ctx, "form rejected", logger.Form(name), logger.Fields(errs.Fields()))
		return handler.JSONError(errs)
	}
	return handler.JSON(ValidationResult{Valid: true})
}

// liveValidate answers DataStar actions with the current error of every field
// of the form, so fields that became valid are cleared on the client.
func (s *Service) liveValidate(ctx handler.Context, data map[string]any) handler.Response {
	if !handler.IsDataStar(ctx.Request()) {
		return handler.JSONError(handler.ErrNotAcceptable)
	}

	name := chi.URLParam(ctx.Request(), "form")
	rules, err := s.forms.Get(name)
	if err != nil {
		s.errorHandler(ctx, formError(err))
		return handler.Handled()
	}

	errs := validator.ValidateForm(data, rules)
	first := errs.First()
	fieldErrors := make(map[string]string, rules.Len())
	for _, field := range rules.Fields() {
		fieldErrors[field] = first[field]
	}

	return handler.Signals(map[string]any{
		"errors":    fieldErrors,
		"formError": "",
		"valid":     errs.IsEmpty(),
	})
}

func formError(err error) error {
	if errors.Is(err, forms.ErrUnknownForm) {
		return ErrUnknownForm
	}
	return err
}
