package sanitizer

import "regexp"

var (
	dotRegex        = regexp.MustCompile(`\.+`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	phoneCharsRegex = regexp.MustCompile(`[^\d+]`)
)
