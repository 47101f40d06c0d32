// File: /utils/validators.go
package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// IsValidPrice accepts non-negative amounts with at most 2 fractional digits.
func IsValidPrice(price decimal.Decimal) bool {
	return price.Sign() >= 0 && price.Exponent() >= -2
}

// IsImageContentType reports whether a sniffed content type is image-typed.
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}
