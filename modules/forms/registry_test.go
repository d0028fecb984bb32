package forms_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudostudio/nudo/modules/forms"
	"github.com/nudostudio/nudo/pkg/validator"
)

func messages(errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field+": "+e.Message)
	}
	return out
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("unknown form", func(t *testing.T) {
		_, err := forms.NewRegistry().Get("nope")
		assert.ErrorIs(t, err, forms.ErrUnknownForm)

		errs, err := forms.NewRegistry().Validate("nope", map[string]any{})
		assert.ErrorIs(t, err, forms.ErrUnknownForm)
		assert.Nil(t, errs)
	})

	t.Run("register replaces and names are sorted", func(t *testing.T) {
		r := forms.NewRegistry().
			Register("b", validator.NewRuleSet()).
			Register("a", validator.NewRuleSet(validator.Field("x", validator.Rule{Required: true})))
		r.Register("a", validator.NewRuleSet())

		assert.Equal(t, []string{"a", "b"}, r.Names())
		errs, err := r.Validate("a", nil)
		require.NoError(t, err)
		assert.Empty(t, errs)
	})

	t.Run("concurrent use", func(t *testing.T) {
		r := forms.Default()
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := r.Validate(forms.Contact, map[string]any{"email": "x"})
				assert.NoError(t, err)
			}()
			go func() {
				defer wg.Done()
				r.Register("extra", validator.NewRuleSet())
			}()
		}
		wg.Wait()
	})
}

func TestDefault(t *testing.T) {
	t.Parallel()

	now := func() time.Time { return time.Date(2026, time.May, 4, 10, 0, 0, 0, time.UTC) }
	r := forms.Default(forms.WithClock(now))

	t.Run("every form is registered", func(t *testing.T) {
		assert.Equal(t, []string{
			"checkout", "contact", "employee", "login", "news", "product",
			"quote_request", "register", "return_request", "supplier", "workshop_enrollment",
		}, r.Names())
		for _, name := range forms.Admin {
			_, err := r.Get(name)
			assert.NoError(t, err, name)
		}
	})

	tests := []struct {
		form string
		data map[string]any
		want []string
	}{
		{
			form: forms.Login,
			data: map[string]any{"email": "ana@nudo.co", "password": "x"},
		},
		{
			form: forms.Login,
			data: map[string]any{},
			want: []string{"email: email es requerido", "password: password es requerido"},
		},
		{
			form: forms.Register,
			data: map[string]any{"nombre": "Ana", "email": "ana@nudo.co", "password": "Macrame-2024!"},
		},
		{
			form: forms.Register,
			data: map[string]any{"nombre": "Ana", "email": "ana@nudo.co", "password": "password"},
			want: []string{"password: La contraseña debe tener una mayúscula, un número, un carácter especial (!@#$%^&*)"},
		},
		{
			form: forms.Contact,
			data: map[string]any{
				"nombre":  "Ana María",
				"email":   "ana@nudo.co",
				"asunto":  "Pedido especial",
				"mensaje": "Quisiera una cortina de macramé",
			},
		},
		{
			form: forms.Contact,
			data: map[string]any{"nombre": "A", "email": "ana", "telefono": "123", "asunto": "", "mensaje": "hola"},
			want: []string{
				"nombre: nombre debe tener al menos 2 caracteres",
				"email: Email inválido",
				"telefono: Teléfono inválido",
				"asunto: asunto es requerido",
				"mensaje: mensaje debe tener al menos 10 caracteres",
			},
		},
		{
			form: forms.Checkout,
			data: map[string]any{
				"nombre":        "Ana",
				"email":         "ana@nudo.co",
				"telefono":      "3001234567",
				"direccion":     "Calle 10 # 43-12",
				"ciudad":        "Medellín",
				"departamento":  "Antioquia",
				"codigo_postal": "050021",
				"metodo_pago":   "bitcoin",
			},
			want: []string{"metodo_pago: Debe ser uno de: tarjeta, pse, contraentrega"},
		},
		{
			form: forms.WorkshopEnrollment,
			data: map[string]any{"nombre": "Ana", "email": "ana@nudo.co", "telefono": "3001234567", "cupos": 11},
			want: []string{"cupos: Debe estar entre 1 y 10"},
		},
		{
			form: forms.QuoteRequest,
			data: map[string]any{
				"nombre":        "Ana",
				"email":         "ana@nudo.co",
				"telefono":      "3001234567",
				"tipo_pieza":    "Tapiz",
				"cantidad":      "3",
				"fecha_entrega": "2026-05-04",
				"descripcion":   "Tapiz de 1x2 metros en tonos tierra",
			},
			want: []string{"fecha_entrega: La fecha debe ser posterior a hoy"},
		},
		{
			form: forms.ReturnRequest,
			data: map[string]any{"numero_pedido": "1234", "email": "ana@nudo.co", "motivo": "talla", "descripcion": "Me quedó pequeño"},
			want: []string{"numero_pedido: numero_pedido tiene formato inválido"},
		},
		{
			form: forms.Product,
			data: map[string]any{"nombre": "Cortina", "sku": "MAC-001", "precio": 180000, "stock": 0, "categoria": "macrame"},
		},
		{
			form: forms.Supplier,
			data: map[string]any{"nombre": "Hilos del Valle", "nit": "900123456-7", "email": "ventas@hilos.co", "telefono": "6041234567", "sitio_web": "hilos"},
			want: []string{"sitio_web: sitio_web tiene formato inválido"},
		},
		{
			form: forms.Employee,
			data: map[string]any{"nombre": "Luisa", "email": "luisa@nudo.co", "telefono": "3001234567", "cargo": "gerente"},
			want: []string{"cargo: Debe ser uno de: artesana, ventas, bodega, administracion"},
		},
		{
			form: forms.News,
			data: map[string]any{"titulo": "Hola", "resumen": "Nuevo taller", "contenido": "corto"},
			want: []string{
				"titulo: titulo debe tener al menos 5 caracteres",
				"contenido: contenido debe tener al menos 50 caracteres",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.form, func(t *testing.T) {
			errs, err := r.Validate(tt.form, tt.data)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.want, messages(errs))
		})
	}
}
