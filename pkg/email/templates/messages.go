package templates

import (
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/nudostudio/nudo/pkg/calendar"
)

type ContactData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactNotification is sent to the studio when the contact form is used.
func ContactNotification(d ContactData) templ.Component {
	var b block
	b.para("Recibimos un nuevo mensaje desde el formulario de contacto.")
	b.openTable()
	b.row("Nombre", d.Name)
	b.row("Email", d.Email)
	b.row("Teléfono", d.Phone)
	b.row("Asunto", d.Subject)
	b.closeTable()
	b.multiline(d.Message)
	return layout("Nuevo mensaje de contacto", b.component())
}

type QuoteData struct {
	Reference string
	Name      string
	Email     string
	Phone     string
	Company   string
	Product   string
	Quantity  int
	Deadline  time.Time
	Details   string
}

func (d QuoteData) rows(b *block) {
	b.openTable()
	b.row("Referencia", d.Reference)
	b.row("Nombre", d.Name)
	b.row("Empresa", d.Company)
	b.row("Email", d.Email)
	b.row("Teléfono", d.Phone)
	b.row("Producto", d.Product)
	if d.Quantity > 0 {
		b.row("Cantidad", strconv.Itoa(d.Quantity))
	}
	if !d.Deadline.IsZero() {
		b.row("Fecha deseada", calendar.FormatLong(d.Deadline))
	}
	b.closeTable()
	b.multiline(d.Details)
}

// QuoteReceived confirms a quote request to the customer.
func QuoteReceived(d QuoteData) templ.Component {
	var b block
	b.para("Hola " + d.Name + ", gracias por escribirnos. Revisaremos tu solicitud y te enviaremos una cotización en los próximos dos días hábiles.")
	d.rows(&b)
	return layout("Recibimos tu solicitud de cotización", b.component())
}

// QuoteNotification tells the studio about a new quote request.
func QuoteNotification(d QuoteData) templ.Component {
	var b block
	b.para("Nueva solicitud de cotización.")
	d.rows(&b)
	return layout("Solicitud de cotización "+d.Reference, b.component())
}

type EnrollmentData struct {
	Reference string
	Name      string
	Email     string
	Workshop  string
	StartsAt  time.Time
	Seats     int
	Notes     string
}

// EnrollmentConfirmation is sent to a customer after enrolling in a workshop.
func EnrollmentConfirmation(d EnrollmentData) templ.Component {
	var b block
	b.para("Hola " + d.Name + ", tu cupo en el taller quedó reservado.")
	b.openTable()
	b.row("Taller", d.Workshop)
	if !d.StartsAt.IsZero() {
		b.row("Fecha", calendar.FormatLong(d.StartsAt))
		b.row("Hora", d.StartsAt.Format("15:04"))
	}
	if d.Seats > 0 {
		b.row("Cupos", strconv.Itoa(d.Seats))
	}
	b.row("Referencia", d.Reference)
	b.closeTable()
	if d.Notes != "" {
		b.multiline(d.Notes)
	}
	b.para("Todos los materiales están incluidos. Si no puedes asistir, responde este correo con al menos 48 horas de anticipación.")
	return layout("Inscripción confirmada", b.component())
}

type OrderItem struct {
	Name     string
	Quantity int
	Price    int64
}

type OrderData struct {
	Number          string
	Name            string
	Email           string
	Items           []OrderItem
	ShippingAddress string
	City            string
}

// Total sums quantity times price over all items.
func (d OrderData) Total() int64 {
	var total int64
	for _, it := range d.Items {
		total += int64(it.Quantity) * it.Price
	}
	return total
}

// OrderConfirmation is sent to a customer after checkout.
func OrderConfirmation(d OrderData) templ.Component {
	var b block
	b.para("Hola " + d.Name + ", recibimos tu pedido " + d.Number + ". Te avisaremos cuando salga del taller.")
	b.openTable()
	for _, it := range d.Items {
		b.row(strconv.Itoa(it.Quantity)+" × "+it.Name, FormatCOP(int64(it.Quantity)*it.Price))
	}
	b.row("Total", FormatCOP(d.Total()))
	b.closeTable()
	b.openTable()
	b.row("Dirección", d.ShippingAddress)
	b.row("Ciudad", d.City)
	b.closeTable()
	return layout("Confirmación de pedido "+d.Number, b.component())
}
