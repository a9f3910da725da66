// Package naming converts snake_case skill names into the identifiers used
// inside generated source: exported Go type names and package clauses.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Camel converts a snake_case identifier to CamelCase by capitalizing the
// first letter of every underscore-separated segment and joining them.
// The first letter is upper case too; there is no lower-camel variant.
func Camel(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, seg := range strings.Split(name, "_") {
		b.WriteString(capitalize(seg))
	}
	return b.String()
}

// Pascal is an alias of Camel kept for call sites that name the derived
// wrapper type rather than a field.
func Pascal(name string) string {
	return Camel(name)
}

// TypeName returns Pascal(name) with suffix appended, e.g.
// TypeName("price_momentum", "Output") == "PriceMomentumOutput".
func TypeName(name, suffix string) string {
	return Pascal(name) + suffix
}

// PackageName returns the Go package clause for a generated skill: the name
// lower-cased with underscores removed.
func PackageName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(seg string) string {
	if seg == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(seg)
	return string(unicode.ToUpper(r)) + strings.ToLower(seg[size:])
}
