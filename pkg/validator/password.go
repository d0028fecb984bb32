package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*]`)

	// Frequently compromised passwords, compared case-insensitively.
	commonPasswords = map[string]bool{
		"password":    true,
		"123456":      true,
		"12345678":    true,
		"123456789":   true,
		"1234567890":  true,
		"password1":   true,
		"password123": true,
		"qwerty":      true,
		"qwerty123":   true,
		"abc123":      true,
		"abcd1234":    true,
		"111111":      true,
		"000000":      true,
		"letmein":     true,
		"welcome":     true,
		"iloveyou":    true,
		"admin":       true,
		"admin123":    true,
		"contraseña":  true,
		"contrasena":  true,
		"nudostudio":  true,
		"nudo123":     true,
		"tequiero":    true,
		"colombia":    true,
	}
)

// PasswordMinLength is the length a password needs to count as strong.
const PasswordMinLength = 8

// PasswordStrengthReport is the outcome of PasswordStrength.
type PasswordStrengthReport struct {
	IsStrong       bool `json:"is_strong"`
	MinLength      bool `json:"min_length"`
	HasUppercase   bool `json:"has_uppercase"`
	HasLowercase   bool `json:"has_lowercase"`
	HasNumbers     bool `json:"has_numbers"`
	HasSpecialChar bool `json:"has_special_char"`
}

// PasswordStrength checks password against five independent requirements:
// at least 8 characters, an ASCII uppercase letter, an ASCII lowercase letter,
// a digit, and one of !@#$%^&*. IsStrong is set only when all five hold.
func PasswordStrength(password string) PasswordStrengthReport {
	r := PasswordStrengthReport{
		MinLength:      utf8.RuneCountInString(password) >= PasswordMinLength,
		HasUppercase:   uppercaseRegex.MatchString(password),
		HasLowercase:   lowercaseRegex.MatchString(password),
		HasNumbers:     digitRegex.MatchString(password),
		HasSpecialChar: specialCharRegex.MatchString(password),
	}
	r.IsStrong = r.MinLength && r.HasUppercase && r.HasLowercase && r.HasNumbers && r.HasSpecialChar
	return r
}

// Missing lists the unmet requirements as user-facing fragments.
func (r PasswordStrengthReport) Missing() []string {
	var missing []string
	if !r.MinLength {
		missing = append(missing, "al menos 8 caracteres")
	}
	if !r.HasUppercase {
		missing = append(missing, "una mayúscula")
	}
	if !r.HasLowercase {
		missing = append(missing, "una minúscula")
	}
	if !r.HasNumbers {
		missing = append(missing, "un número")
	}
	if !r.HasSpecialChar {
		missing = append(missing, "un carácter especial (!@#$%^&*)")
	}
	return missing
}

// StrongPassword is a CustomFunc that rejects passwords failing PasswordStrength.
func StrongPassword() CustomFunc {
	return func(value any) string {
		report := PasswordStrength(toString(value))
		if report.IsStrong {
			return ""
		}
		return "La contraseña debe tener " + strings.Join(report.Missing(), ", ")
	}
}

// NotCommonPassword is a CustomFunc that rejects well-known weak passwords.
func NotCommonPassword() CustomFunc {
	return func(value any) string {
		if commonPasswords[strings.ToLower(toString(value))] {
			return "La contraseña es demasiado común"
		}
		return ""
	}
}
