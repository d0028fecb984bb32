package forms

import (
	"regexp"
	"time"

	"github.com/nudostudio/nudo/pkg/validator"
)

// Storefront forms.
const (
	Login              = "login"
	Register           = "register"
	Contact            = "contact"
	Checkout           = "checkout"
	WorkshopEnrollment = "workshop_enrollment"
	QuoteRequest       = "quote_request"
	ReturnRequest      = "return_request"
)

// Back-office forms.
const (
	Product  = "product"
	Supplier = "supplier"
	Employee = "employee"
	News     = "news"
)

// Admin lists the back-office forms.
var Admin = []string{Product, Supplier, Employee, News}

// Option configures Default.
type Option func(*catalogOptions)

type catalogOptions struct {
	now func() time.Time
}

// WithClock sets the clock used by date rules such as the quote delivery date.
func WithClock(now func() time.Time) Option {
	return func(o *catalogOptions) {
		if now != nil {
			o.now = now
		}
	}
}

var (
	orderNumberPattern = regexp.MustCompile(`^NUDO-\d{6}$`)
	skuPattern         = regexp.MustCompile(`^[A-Z]{3}-\d{3}$`)
	nitPattern         = regexp.MustCompile(`^\d{9}-\d$`)
	postalCodePattern  = regexp.MustCompile(`^\d{6}$`)
)

const dateLayout = "2006-01-02"

// Default returns a registry holding every form of the storefront and the
// back office.
func Default(opts ...Option) *Registry {
	o := &catalogOptions{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	return NewRegistry().
		Register(Login, validator.NewRuleSet(
			validator.Field("email", validator.EmailRule()),
			validator.Field("password", validator.Rule{Required: true}),
		)).
		Register(Register, validator.NewRuleSet(
			validator.Field("nombre", validator.NameRule()),
			validator.Field("email", validator.EmailRule()),
			validator.Field("telefono", validator.Rule{Phone: true}),
			validator.Field("password", withCustom(validator.PasswordRule(),
				validator.Combine(validator.StrongPassword(), validator.NotCommonPassword()),
			)),
		)).
		Register(Contact, validator.NewRuleSet(
			validator.Field("nombre", validator.NameRule()),
			validator.Field("email", validator.EmailRule()),
			validator.Field("telefono", validator.Rule{Phone: true}),
			validator.Field("asunto", validator.Rule{Required: true, MaxLength: validator.Len(120)}),
			validator.Field("mensaje", validator.Rule{
				Required:  true,
				MinLength: validator.Len(10),
				MaxLength: validator.Len(2000),
			}),
		)).
		Register(Checkout, validator.NewRuleSet(
			validator.Field("nombre", validator.NameRule()),
			validator.Field("email", validator.EmailRule()),
			validator.Field("telefono", validator.PhoneRule()),
			validator.Field("direccion", validator.Rule{
				Required:  true,
				MinLength: validator.Len(5),
				MaxLength: validator.Len(200),
			}),
			validator.Field("ciudad", validator.Rule{
				Required:  true,
				MinLength: validator.Len(2),
				MaxLength: validator.Len(80),
			}),
			validator.Field("departamento", validator.Rule{Required: true}),
			validator.Field("codigo_postal", validator.Rule{Pattern: postalCodePattern}),
			validator.Field("metodo_pago", validator.Rule{
				Required: true,
				Custom:   validator.OneOf("tarjeta", "pse", "contraentrega"),
			}),
		)).
		Register(WorkshopEnrollment, validator.NewRuleSet(
			validator.Field("nombre", validator.NameRule()),
			validator.Field("email", validator.EmailRule()),
			validator.Field("telefono", validator.PhoneRule()),
			validator.Field("cupos", validator.Rule{Required: true, Custom: validator.NumberBetween(1, 10)}),
			validator.Field("nivel", validator.Rule{Custom: validator.OneOf("principiante", "intermedio", "avanzado")}),
			validator.Field("comentarios", validator.Rule{MaxLength: validator.Len(500)}),
		)).
		Register(QuoteRequest, validator.NewRuleSet(
			validator.Field("nombre", validator.NameRule()),
			validator.Field("email", validator.EmailRule()),
			validator.Field("telefono", validator.PhoneRule()),
			validator.Field("empresa", validator.Rule{MaxLength: validator.Len(100)}),
			validator.Field("tipo_pieza", validator.Rule{Required: true, MaxLength: validator.Len(100)}),
			validator.Field("cantidad", validator.Rule{Required: true, Custom: validator.NumberBetween(1, 500)}),
			validator.Field("fecha_entrega", validator.Rule{Custom: validator.DateAfter(dateLayout, o.now)}),
			validator.Field("descripcion", validator.Rule{
				Required:  true,
				MinLength: validator.Len(20),
				MaxLength: validator.Len(2000),
			}),
		)).
		Register(ReturnRequest, validator.NewRuleSet(
			validator.Field("numero_pedido", validator.Rule{Required: true, Pattern: orderNumberPattern}),
			validator.Field("email", validator.EmailRule()),
			validator.Field("motivo", validator.Rule{
				Required: true,
				Custom:   validator.OneOf("defecto", "talla", "color", "otro"),
			}),
			validator.Field("descripcion", validator.Rule{
				Required:  true,
				MinLength: validator.Len(10),
				MaxLength: validator.Len(1000),
			}),
		)).
		Register(Product, validator.NewRuleSet(
			validator.Field("nombre", validator.Rule{
				Required:  true,
				MinLength: validator.Len(2),
				MaxLength: validator.Len(120),
			}),
			validator.Field("sku", validator.Rule{Required: true, Pattern: skuPattern}),
			validator.Field("precio", validator.Rule{Required: true, Custom: validator.NumberBetween(1, 100_000_000)}),
			validator.Field("stock", validator.Rule{Required: true, Custom: validator.NumberBetween(0, 100_000)}),
			validator.Field("categoria", validator.Rule{
				Required: true,
				Custom:   validator.OneOf("macrame", "tejido", "ceramica", "accesorios", "kits"),
			}),
			validator.Field("descripcion", validator.Rule{MaxLength: validator.Len(2000)}),
			validator.Field("imagen", validator.URLRule()),
		)).
		Register(Supplier, validator.NewRuleSet(
			validator.Field("nombre", validator.NameRule()),
			validator.Field("nit", validator.Rule{Required: true, Pattern: nitPattern}),
			validator.Field("email", validator.EmailRule()),
			validator.Field("telefono", validator.PhoneRule()),
			validator.Field("sitio_web", validator.URLRule()),
		)).
		Register(Employee, validator.NewRuleSet(
			validator.Field("nombre", validator.NameRule()),
			validator.Field("email", validator.EmailRule()),
			validator.Field("telefono", validator.PhoneRule()),
			validator.Field("cargo", validator.Rule{
				Required: true,
				Custom:   validator.OneOf("artesana", "ventas", "bodega", "administracion"),
			}),
		)).
		Register(News, validator.NewRuleSet(
			validator.Field("titulo", validator.Rule{
				Required:  true,
				MinLength: validator.Len(5),
				MaxLength: validator.Len(150),
			}),
			validator.Field("resumen", validator.Rule{Required: true, MaxLength: validator.Len(300)}),
			validator.Field("contenido", validator.Rule{Required: true, MinLength: validator.Len(50)}),
			validator.Field("imagen", validator.URLRule()),
		))
}

func withCustom(rule validator.Rule, fn validator.CustomFunc) validator.Rule {
	rule.Custom = fn
	return rule
}
