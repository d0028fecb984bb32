package validator_test

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudostudio/nudo/pkg/validator"
)

func messages(errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}

func TestEvaluateField_Required(t *testing.T) {
	t.Parallel()

	rule := validator.Rule{Required: true, MinLength: validator.Len(5)}

	tests := []struct {
		name  string
		value any
	}{
		{name: "nil value", value: nil},
		{name: "empty string", value: ""},
		{name: "whitespace only", value: "   \t"},
		{name: "nil pointer", value: (*string)(nil)},
		{name: "pointer to nil pointer", value: new(*int)},
		{name: "byte order mark", value: "\uFEFF"},
		{name: "no-break spaces", value: "\u00A0 \u3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := validator.EvaluateField("nombre", tt.value, rule)
			require.Len(t, errs, 1)
			assert.Equal(t, "nombre", errs[0].Field)
			assert.Equal(t, "nombre es requerido", errs[0].Message)
			assert.Equal(t, "validation.required", errs[0].TranslationKey)
		})
	}

	t.Run("zero number satisfies required and skips other checks", func(t *testing.T) {
		t.Parallel()
		errs := validator.EvaluateField("cantidad", 0, rule)
		assert.Empty(t, errs)
	})
}

func TestEvaluateField_EmptyOptionalValue(t *testing.T) {
	t.Parallel()

	rule := validator.Rule{
		MinLength: validator.Len(5),
		Email:     true,
		Phone:     true,
		Pattern:   regexp.MustCompile(`^x+$`),
		Custom:    func(any) string { return "never called" },
	}

	for _, value := range []any{nil, "", 0, 0.0, false, math.NaN(), new(*int), new(*string)} {
		assert.Empty(t, validator.EvaluateField("campo", value, rule), "value %#v", value)
	}
}

func TestEvaluateField_Email(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{value: "ana@nudo.co", valid: true},
		{value: "a@b.c", valid: true},
		{value: "ana.maria+taller@correo.com.co", valid: true},
		{value: "notanemail", valid: false},
		{value: "ana@nudo", valid: false},
		{value: "ana @nudo.co", valid: false},
		{value: "@nudo.co", valid: false},
		{value: "ana\u00A0x@nudo.co", valid: false},
		{value: "ana@nudo.co\uFEFF", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			errs := validator.EvaluateField("email", tt.value, validator.Rule{Email: true})
			if tt.valid {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, []string{"Email inválido"}, messages(errs))
		})
	}
}

func TestEvaluateField_Phone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value any
		valid bool
	}{
		{value: "300-123-4567", valid: true},
		{value: "+57 (300) 123 4567", valid: true},
		{value: 3001234567, valid: true},
		{value: "12345", valid: false},
		{value: "300-123-456a", valid: false},
		{value: "++573001234567", valid: false},
		{value: "300\u00A0123\u00A04567", valid: true},
	}

	for _, tt := range tests {
		errs := validator.EvaluateField("telefono", tt.value, validator.Rule{Phone: true})
		if tt.valid {
			assert.Empty(t, errs, "value %v", tt.value)
			continue
		}
		assert.Equal(t, []string{"Teléfono inválido"}, messages(errs), "value %v", tt.value)
	}
}

func TestEvaluateField_Length(t *testing.T) {
	t.Parallel()

	rule := validator.Rule{MinLength: validator.Len(3), MaxLength: validator.Len(5)}

	t.Run("too short", func(t *testing.T) {
		errs := validator.EvaluateField("codigo", "ab", rule)
		assert.Equal(t, []string{"codigo debe tener al menos 3 caracteres"}, messages(errs))
		assert.Equal(t, 3, errs[0].TranslationValues["min"])
	})

	t.Run("too long", func(t *testing.T) {
		errs := validator.EvaluateField("codigo", "abcdef", rule)
		assert.Equal(t, []string{"codigo debe tener máximo 5 caracteres"}, messages(errs))
		assert.Equal(t, 5, errs[0].TranslationValues["max"])
	})

	t.Run("within bounds", func(t *testing.T) {
		assert.Empty(t, validator.EvaluateField("codigo", "abcd", rule))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		assert.Empty(t, validator.EvaluateField("codigo", "ñandú", rule))
	})

	t.Run("numbers are measured by their decimal text", func(t *testing.T) {
		assert.Equal(t,
			[]string{"codigo debe tener al menos 3 caracteres"},
			messages(validator.EvaluateField("codigo", 42, rule)),
		)
		assert.Empty(t, validator.EvaluateField("codigo", 1.25, rule))
	})

	t.Run("contradictory bounds report both errors", func(t *testing.T) {
		broken := validator.Rule{MinLength: validator.Len(10), MaxLength: validator.Len(2)}
		assert.Equal(t, []string{
			"codigo debe tener al menos 10 caracteres",
			"codigo debe tener máximo 2 caracteres",
		}, messages(validator.EvaluateField("codigo", "abcde", broken)))
	})
}

func TestEvaluateField_Pattern(t *testing.T) {
	t.Parallel()

	rule := validator.Rule{Pattern: regexp.MustCompile(`^[A-Z]{3}-\d{3}$`)}

	assert.Empty(t, validator.EvaluateField("sku", "MAC-001", rule))
	assert.Equal(t,
		[]string{"sku tiene formato inválido"},
		messages(validator.EvaluateField("sku", "mac-1", rule)),
	)
	assert.Equal(t,
		[]string{"sku tiene formato inválido"},
		messages(validator.EvaluateField("sku", 123, rule)),
	)
}

func TestEvaluateField_Custom(t *testing.T) {
	t.Parallel()

	var received any
	rule := validator.Rule{Custom: func(v any) string {
		received = v
		if v == "rojo" {
			return "Color agotado"
		}
		return ""
	}}

	assert.Empty(t, validator.EvaluateField("color", "azul", rule))
	assert.Equal(t, "azul", received)

	errs := validator.EvaluateField("color", "rojo", rule)
	require.Len(t, errs, 1)
	assert.Equal(t, validator.ValidationError{
		Field:             "color",
		Message:           "Color agotado",
		TranslationKey:    "validation.custom",
		TranslationValues: map[string]any{"field": "color"},
	}, errs[0])
}

func TestEvaluateField_CustomPanicPropagates(t *testing.T) {
	t.Parallel()

	rule := validator.Rule{Custom: func(any) string { panic("custom rule exploded") }}
	assert.PanicsWithValue(t, "custom rule exploded", func() {
		validator.EvaluateField("campo", "x", rule)
	})
}

func TestEvaluateField_AccumulatesInOrder(t *testing.T) {
	t.Parallel()

	t.Run("email failure precedes min length failure", func(t *testing.T) {
		errs := validator.EvaluateField("email", "notanemail", validator.Rule{Email: true, MinLength: validator.Len(20)})
		assert.Equal(t, []string{
			"Email inválido",
			"email debe tener al menos 20 caracteres",
		}, messages(errs))
	})

	t.Run("short address that passes the email shape", func(t *testing.T) {
		errs := validator.EvaluateField("email", "a@b.c", validator.Rule{Email: true, MinLength: validator.Len(10)})
		assert.Equal(t, []string{"email debe tener al menos 10 caracteres"}, messages(errs))
	})

	t.Run("every independent check fires", func(t *testing.T) {
		rule := validator.Rule{
			Required:  true,
			Email:     true,
			Phone:     true,
			MinLength: validator.Len(10),
			MaxLength: validator.Len(2),
			Pattern:   regexp.MustCompile(`^\d+$`),
			Custom:    func(any) string { return "no permitido" },
		}
		errs := validator.EvaluateField("x", "abc", rule)
		assert.Equal(t, []string{
			"Email inválido",
			"Teléfono inválido",
			"x debe tener al menos 10 caracteres",
			"x debe tener máximo 2 caracteres",
			"x tiene formato inválido",
			"no permitido",
		}, messages(errs))
		for _, e := range errs {
			assert.Equal(t, "x", e.Field)
		}
	})
}

func TestEvaluateField_FloatCoercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		text  string
	}{
		{value: 1.5, text: "1.5"},
		{value: 123456.75, text: "123456.75"},
		{value: 1e20, text: "100000000000000000000"},
		{value: 1e21, text: "1e+21"},
		{value: -2.5e22, text: "-2.5e+22"},
		{value: 0.000001, text: "0.000001"},
		{value: 1e-7, text: "1e-07"},
	}

	for _, tt := range tests {
		rule := validator.Rule{Pattern: regexp.MustCompile("^" + regexp.QuoteMeta(tt.text) + "$")}
		assert.Empty(t, validator.EvaluateField("monto", tt.value, rule), "value %v", tt.value)
	}

	assert.Empty(t, validator.EvaluateField("monto", 1e21, validator.Rule{MaxLength: validator.Len(10)}))
}
