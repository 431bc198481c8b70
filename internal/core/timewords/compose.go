package timewords

import (
	"fmt"
	"strings"
)

type Style int

const (
	Formal Style = iota
	Spoken
)

func (s Style) String() string {
	switch s {
	case Formal:
		return "formal"
	case Spoken:
		return "spoken"
	}
	return "unknown"
}

// ParseStyle accepts "formal" and "spoken"; an empty name means Formal.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "formal":
		return Formal, nil
	case "spoken":
		return Spoken, nil
	}
	return Formal, fmt.Errorf("%q: %w", name, ErrUnknownStyle)
}

// TimeToText reads the time v aloud in the given style. See Parse for the
// accepted input types.
func TimeToText(v any, style Style) (string, error) {
	c, err := Parse(v)
	if err != nil {
		return "", err
	}
	return Compose(c, style)
}

// Compose renders a clock time as Russian words.
//
//	formal: "пять час+ов дв+адцать мин+ут", "один час р+овно"
//	spoken: "полов+ина два", "без ч+етверти два", "без дв+адцать мин+ут шесть"
func Compose(c Clock, style Style) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	if c == (Clock{}) {
		return wordMidnight, nil
	}
	if c == (Clock{Hour: 12}) {
		return wordNoon, nil
	}

	h := c.Hour % 12
	if h == 0 {
		h = 12
	}
	m := c.Minute

	switch style {
	case Spoken:
		return spoken(h, m), nil
	case Formal:
		return formal(h, m), nil
	}
	return "", fmt.Errorf("style %d: %w", int(style), ErrUnknownStyle)
}

func formal(h, m int) string {
	parts := []string{mustWords(h, false), mustPlural(NounHour, h)}
	if m == 0 {
		parts = append(parts, wordExactly)
	} else {
		parts = append(parts, mustWords(m, true), mustPlural(NounMinute, m))
	}
	return strings.Join(parts, " ")
}

func spoken(h, m int) string {
	if m == 0 {
		return join(mustWords(h, false), mustPlural(NounHour, h))
	}
	next := mustWords(nextHour(h), false)
	switch {
	case m == 30:
		return join(wordHalf, next)
	case m == 15:
		return join(wordQuarter, next)
	case m < 30:
		return join(mustWords(m, true), mustPlural(NounMinute, m), next)
	}
	left := 60 - m
	if left == 15 {
		return join(wordWithout, wordQuarterT, next)
	}
	return join(wordWithout, mustWords(left, true), mustPlural(NounMinute, left), next)
}

// nextHour wraps 12 to 1.
func nextHour(h int) int {
	if h >= 12 {
		return 1
	}
	return h + 1
}

func join(words ...string) string {
	return strings.Join(words, " ")
}

// StripStress removes the stress marks used by the synthesizer.
func StripStress(s string) string {
	return strings.ReplaceAll(s, "+", "")
}
