package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nudostudio/nudo/pkg/sanitizer"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "script tag", input: "<script>", expected: "script"},
		{name: "markup with text", input: "  <b>hola</b> ", expected: "bhola/b"},
		{name: "only brackets", input: "<<>>", expected: ""},
		{name: "trims whitespace", input: "\t Ana María \n", expected: "Ana María"},
		{name: "keeps other characters", input: "a & b \"c\" 'd'", expected: "a & b \"c\" 'd'"},
		{name: "entities are not decoded", input: "&lt;script&gt;", expected: "&lt;script&gt;"},
		{name: "brackets expose inner whitespace", input: "< hola >", expected: "hola"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Sanitize(tt.input))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<script>alert(1)</script>",
		"  < >  ",
		" <  a  > ",
		"texto normal",
		"\n<p>\n",
		"",
	}

	for _, in := range inputs {
		once := sanitizer.Sanitize(in)
		assert.Equal(t, once, sanitizer.Sanitize(once), "input %q", in)
	}
}

func TestStripAngleBrackets(t *testing.T) {
	t.Parallel()
	assert.Equal(t, " a b ", sanitizer.StripAngleBrackets(" <a> b "))
}

func TestText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Hola,\nquisiera un tapiz", sanitizer.Text("  Hola,\n\x00quisiera <un> tapiz\x07  "))
}
