package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeMerchant trims and upper-cases a merchant name.
//
// A Caser is stateful, so a new one is created per call.
func NormalizeMerchant(name string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(name))
}
