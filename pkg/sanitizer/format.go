package sanitizer

import "strings"

// NormalizeEmail lowercases the address and collapses repeated dots in the
// local part. Values without exactly one '@' are only trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// MaskEmail keeps the first character and the domain, e.g. "a***@nudo.co".
// Used when addresses are written to logs.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}

	runes := []rune(local)
	if len(runes) == 1 {
		return "*@" + domain
	}

	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}

// NormalizePhone keeps digits and a leading '+', dropping spaces, dashes and
// parentheses so numbers can be compared and stored consistently.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	plus := strings.HasPrefix(phone, "+")
	digits := phoneCharsRegex.ReplaceAllString(phone, "")
	digits = strings.ReplaceAll(digits, "+", "")
	if plus {
		return "+" + digits
	}
	return digits
}
