package validator

import "regexp"

var urlRegex = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)/?$`)

// Presets for frequently validated fields. Each call returns a fresh Rule so
// callers may adjust the copy without affecting other forms.

// EmailRule requires a value shaped like an email address.
func EmailRule() Rule {
	return Rule{Required: true, Email: true}
}

// PasswordRule requires at least 6 characters.
func PasswordRule() Rule {
	return Rule{Required: true, MinLength: Len(6)}
}

// NameRule requires between 2 and 100 characters.
func NameRule() Rule {
	return Rule{Required: true, MinLength: Len(2), MaxLength: Len(100)}
}

// PhoneRule requires a phone number of at least 10 digits, spaces, dashes or
// parentheses, optionally prefixed with +.
func PhoneRule() Rule {
	return Rule{Required: true, Phone: true}
}

// URLRule is optional and only checks the loose protocol://domain.tld/path shape.
func URLRule() Rule {
	return Rule{Pattern: urlRegex}
}
