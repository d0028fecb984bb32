package validator

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// space is the white space class of the email and phone formats: ASCII
// white space, the Unicode separators and the byte order mark. RE2's \s alone
// is ASCII only.
const space = `\s\x0B\p{Z}\x{FEFF}`

var (
	emailRegex = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	phoneRegex = regexp.MustCompile(`^\+?[\d` + space + `\-\(\)]{10,}$`)
)

// EvaluateField applies rule to a single field value and returns every
// failure in evaluation order: required, email, phone, min length,
// max length, pattern, custom.
//
// A failed required check stops evaluation. An empty optional value is
// vacuously valid and skips the remaining checks. Other checks do not
// short-circuit each other, so one value may collect several errors.
func EvaluateField(field string, value any, rule Rule) ValidationErrors {
	var errs ValidationErrors

	if rule.Required && isBlank(value) {
		errs.Add(requiredError(field))
		return errs
	}

	if isFalsy(value) {
		return errs
	}

	str := toString(value)

	if rule.Email && !emailRegex.MatchString(str) {
		errs.Add(ValidationError{
			Field:          field,
			Message:        "Email inválido",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		})
	}

	if rule.Phone && !phoneRegex.MatchString(str) {
		errs.Add(ValidationError{
			Field:          field,
			Message:        "Teléfono inválido",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		})
	}

	length := utf8.RuneCountInString(str)

	if rule.MinLength != nil && length < *rule.MinLength {
		errs.Add(ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s debe tener al menos %d caracteres", field, *rule.MinLength),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   *rule.MinLength,
			},
		})
	}

	if rule.MaxLength != nil && length > *rule.MaxLength {
		errs.Add(ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s debe tener máximo %d caracteres", field, *rule.MaxLength),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   *rule.MaxLength,
			},
		})
	}

	if rule.Pattern != nil && !rule.Pattern.MatchString(str) {
		errs.Add(ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s tiene formato inválido", field),
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field": field,
			},
		})
	}

	if rule.Custom != nil {
		if msg := rule.Custom(value); msg != "" {
			errs.Add(ValidationError{
				Field:          field,
				Message:        msg,
				TranslationKey: "validation.custom",
				TranslationValues: map[string]any{
					"field": field,
				},
			})
		}
	}

	return errs
}

// ValidateForm validates data against every field declared in rules, in
// declaration order. Keys of data without a rule are ignored. An empty
// result means the submission is valid.
func ValidateForm(data map[string]any, rules *RuleSet) ValidationErrors {
	errs := ValidationErrors{}
	if rules == nil {
		return errs
	}

	for _, f := range rules.fields {
		errs = append(errs, EvaluateField(f.Name, data[f.Name], f.Rule)...)
	}

	return errs
}

func requiredError(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        field + " es requerido",
		TranslationKey: "validation.required",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

// isBlank reports a missing value or one whose text form is only whitespace.
func isBlank(value any) bool {
	if isNil(value) {
		return true
	}
	return strings.TrimFunc(toString(value), isSpace) == ""
}

// isSpace matches the same set as the space class.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

// isFalsy treats nil, empty strings, numeric zero, NaN and false as "no value".
func isFalsy(value any) bool {
	if isNil(value) {
		return true
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	}
	return false
}

// formatFloat writes f in plain decimal notation, switching to exponent form
// below 1e-6 and from 1e21 on, so 1e21 becomes "1e+21".
func formatFloat(f float64, bitSize int) string {
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// toString converts a field value to the text the length and pattern checks
// operate on. Numbers use their shortest decimal form.
func toString(value any) string {
	if isNil(value) {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	}

	return fmt.Sprint(rv.Interface())
}
