// Package sanitizer cleans free-text input before it is validated, stored or
// mailed.
//
// The central helper is Sanitize, which strips '<' and '>' and trims
// whitespace:
//
//	sanitizer.Sanitize("  <b>hola</b> ") // "bhola/b"
//
// Sanitize is a shallow defense that reduces, but does not eliminate,
// markup injection. Anything rendered as HTML must still be escaped.
//
// Other helpers normalize specific kinds of input (NormalizeEmail,
// NormalizePhone, TitleName) or mask values for logs (MaskEmail).
// Apply and Compose chain transforms into pipelines:
//
//	clean := sanitizer.Compose(sanitizer.Sanitize, sanitizer.TitleName)
//	name := clean("  maría <josé> ")
//
// All functions are pure and safe for concurrent use.
package sanitizer
