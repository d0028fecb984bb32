// Package validator implements field-driven form validation for the storefront
// and back-office forms.
//
// A form is described by a RuleSet: an ordered mapping from field name to a
// Rule. Each Rule is a plain struct with optional members (Required, Email,
// Phone, MinLength, MaxLength, Pattern, Custom). ValidateForm walks the
// rule-set in declaration order and returns a ValidationErrors slice with one
// entry per failed constraint.
//
// # Evaluation order
//
// For a single field EvaluateField checks, in order:
//
//  1. required: a missing or blank value fails and stops evaluation
//  2. empty optional values (nil, "", 0, false) are valid and stop evaluation
//  3. email, phone, min length, max length, pattern, custom
//
// Checks in step 3 are independent, so a field may collect several errors.
// Lengths are measured in characters (runes) of the value's text form.
// Rule-sets are not checked for internal consistency: a rule with
// MinLength greater than MaxLength simply reports both errors.
//
// # Usage
//
//	rules := validator.NewRuleSet(
//	    validator.Field("nombre", validator.NameRule()),
//	    validator.Field("email", validator.EmailRule()),
//	    validator.Field("web", validator.URLRule()),
//	)
//
//	errs := validator.ValidateForm(map[string]any{"email": "ana@nudo.co"}, rules)
//	for _, e := range errs {
//	    fmt.Println(e.Field, e.Message) // nombre nombre es requerido
//	}
//
// Validate wraps ValidateForm in the error contract: nil on success,
// ValidationErrors otherwise. ExtractValidationErrors recovers the collection
// from a wrapped error, and errors.Is(err, ErrValidationFailed) detects it.
//
// # Messages
//
// Messages are in Spanish, the storefront language. Every ValidationError also
// carries a TranslationKey ("validation.required", "validation.email", ...)
// and TranslationValues for callers that localize.
//
// # Concurrency
//
// All functions are pure. A RuleSet may be shared between goroutines once it
// is fully built; CustomFunc implementations must be safe for that too.
package validator
