package sanitizer

import "strings"

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// StripAngleBrackets removes every literal '<' and '>' from s.
func StripAngleBrackets(s string) string {
	return angleBrackets.Replace(s)
}

// Sanitize removes '<' and '>' characters and trims surrounding whitespace.
//
// It is a shallow filter for free-text form input. It does not understand
// HTML entities, attributes, or encodings, so output that ends up in markup
// must still be escaped by the renderer.
func Sanitize(input string) string {
	return sanitize(input)
}

var sanitize = Compose(StripAngleBrackets, Trim)
