package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

func Ptr[T any](v T) *T {
	return &v
}

func Val[T any](p *T) T {
	if p != nil {
		return *p
	}
	var zero T
	return zero
}

// NormalizeText folds full-width and compatibility characters (NFKC) and trims
// surrounding whitespace. It builds search keys only; stored text is never
// rewritten with it.
func NormalizeText(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}
