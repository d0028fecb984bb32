package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

const (
	bodyStyle  = "margin:0;padding:24px;background:#f6f1ea;font-family:Georgia,serif;color:#3b2f2a"
	cardStyle  = "max-width:560px;margin:0 auto;background:#fff;border-radius:8px;padding:32px"
	labelStyle = "padding:4px 12px 4px 0;color:#8a7b70;vertical-align:top"
)

// layout wraps body in the studio's email shell.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="es"><head><meta charset="utf-8"><title>` +
			templ.EscapeString(title) +
			`</title></head><body style="` + bodyStyle + `"><div style="` + cardStyle + `">` +
			`<h1 style="font-size:22px;margin:0 0 16px">` + templ.EscapeString(title) + `</h1>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<p style="margin-top:32px;font-size:12px;color:#8a7b70">Nudo Studio · Macramé y fibras hechas a mano</p></div></body></html>`)
		return err
	})
}

// block builds escaped HTML fragments.
type block struct {
	sb strings.Builder
}

func (b *block) para(text string) {
	b.sb.WriteString(`<p>`)
	b.sb.WriteString(templ.EscapeString(text))
	b.sb.WriteString(`</p>`)
}

// multiline keeps the customer's line breaks.
func (b *block) multiline(text string) {
	b.sb.WriteString(`<p style="white-space:pre-line;background:#faf7f3;padding:12px;border-radius:4px">`)
	b.sb.WriteString(templ.EscapeString(text))
	b.sb.WriteString(`</p>`)
}

func (b *block) openTable() { b.sb.WriteString(`<table style="border-collapse:collapse;margin:16px 0">`) }

func (b *block) closeTable() { b.sb.WriteString(`</table>`) }

// row skips empty values.
func (b *block) row(label, value string) {
	if value == "" {
		return
	}
	b.sb.WriteString(`<tr><td style="` + labelStyle + `">`)
	b.sb.WriteString(templ.EscapeString(label))
	b.sb.WriteString(`</td><td>`)
	b.sb.WriteString(templ.EscapeString(value))
	b.sb.WriteString(`</td></tr>`)
}

func (b *block) component() templ.Component {
	html := b.sb.String()
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

// FormatCOP formats whole pesos as "$ 1.250.000".
func FormatCOP(pesos int64) string {
	neg := pesos < 0
	if neg {
		pesos = -pesos
	}
	digits := strconv.FormatInt(pesos, 10)
	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}
	if neg {
		return "-$ " + sb.String()
	}
	return "$ " + sb.String()
}
