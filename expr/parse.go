// Package expr assembles recognized characters into an arithmetic
// expression, normalizes it and evaluates it.
package expr

import (
	"regexp"
	"strings"

	"github.com/inkmath/inkmath/recognize"
)

// Parsed is the expression assembled from recognizer output.
type Parsed struct {
	Raw        string             `json:"raw"`
	Normalized string             `json:"normalized"`
	Characters []recognize.Result `json:"characters"`
	Valid      bool               `json:"valid"`
}

var (
	trailingEquals  = regexp.MustCompile(`[\s=]+$`)
	digitOpenParen  = regexp.MustCompile(`(\d)\(`)
	closeParenDigit = regexp.MustCompile(`\)(\d)`)
)

// glyphReplacer maps locale multiply and divide glyphs to their ASCII
// forms.
var glyphReplacer = strings.NewReplacer("×", "*", "÷", "/")

// Parse joins recognized characters in reading order into an expression
// and validates the normalized form.
func Parse(results []recognize.Result) Parsed {
	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(r.Char)
	}
	raw := sb.String()
	normalized := Normalize(raw)

	return Parsed{
		Raw:        raw,
		Normalized: normalized,
		Characters: results,
		Valid:      IsValid(normalized),
	}
}

// Normalize strips a trailing equals run, maps multiply and divide glyphs
// to ASCII and inserts implicit multiplication at digit-parenthesis
// boundaries.
func Normalize(raw string) string {
	s := trailingEquals.ReplaceAllString(raw, "")
	s = glyphReplacer.Replace(s)
	s = digitOpenParen.ReplaceAllString(s, "${1}*(")
	s = closeParenDigit.ReplaceAllString(s, ")*${1}")
	return s
}

// IsValid reports whether a normalized expression is well formed enough
// to evaluate: allowed characters only, balanced parentheses, no leading
// multiplicative operator and no trailing operator.
func IsValid(s string) bool {
	if s == "" {
		return false
	}

	depth := 0
	for _, r := range s {
		if !validRune(r) {
			return false
		}
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	if depth != 0 {
		return false
	}

	switch s[0] {
	case '*', '/':
		return false
	}
	switch s[len(s)-1] {
	case '+', '-', '*', '/':
		return false
	}

	return true
}

func validRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	return strings.ContainsRune("+-*/(). =", r)
}
