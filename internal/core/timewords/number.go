package timewords

import (
	"fmt"
	"strings"
)

// NumberToWords spells n in [0,59]. feminine selects the feminine forms of
// one and two ("одна", "две") used with minutes and seconds.
func NumberToWords(n int, feminine bool) (string, error) {
	if n < 0 || n >= 60 {
		return "", fmt.Errorf("number %d not in 0..59: %w", n, ErrOutOfRange)
	}
	units := &unitsMasculine
	if feminine {
		units = &unitsFeminine
	}
	switch {
	case n < 10:
		return units[n], nil
	case n < 20:
		return teens[n-10], nil
	}
	var b strings.Builder
	b.WriteString(tens[n/10])
	if u := n % 10; u != 0 {
		b.WriteByte(' ')
		b.WriteString(units[u])
	}
	return b.String(), nil
}

// mustWords is used by the composer once the clock has been validated.
func mustWords(n int, feminine bool) string {
	w, err := NumberToWords(n, feminine)
	if err != nil {
		panic(err)
	}
	return w
}
