package validator

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OneOf accepts only the listed values, compared on their text form.
func OneOf(choices ...string) CustomFunc {
	return func(value any) string {
		s := toString(value)
		for _, c := range choices {
			if s == c {
				return ""
			}
		}
		return fmt.Sprintf("Debe ser uno de: %s", strings.Join(choices, ", "))
	}
}

// NumberBetween accepts numbers (or numeric strings) within [min, max].
func NumberBetween(min, max float64) CustomFunc {
	return func(value any) string {
		n, err := strconv.ParseFloat(strings.TrimSpace(toString(value)), 64)
		if err != nil {
			return "Debe ser un número"
		}
		if n < min || n > max {
			return fmt.Sprintf("Debe estar entre %s y %s", formatNumber(min), formatNumber(max))
		}
		return ""
	}
}

// DateAfter accepts dates formatted with layout that fall strictly after
// the instant returned by now. Dates are compared at day precision.
func DateAfter(layout string, now func() time.Time) CustomFunc {
	if now == nil {
		now = time.Now
	}
	return func(value any) string {
		d, err := time.Parse(layout, toString(value))
		if err != nil {
			return "Fecha inválida"
		}
		ref := now()
		today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if !day.After(today) {
			return "La fecha debe ser posterior a hoy"
		}
		return ""
	}
}

// Combine runs funcs in order and returns the first failure.
func Combine(funcs ...CustomFunc) CustomFunc {
	return func(value any) string {
		for _, fn := range funcs {
			if fn == nil {
				continue
			}
			if msg := fn(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
