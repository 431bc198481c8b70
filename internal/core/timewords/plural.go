package timewords

import "fmt"

type Noun string

const (
	NounHour   Noun = "hour"
	NounMinute Noun = "minute"
	NounSecond Noun = "second"
)

// Plural returns the form of noun agreeing with the count n. stressed picks
// the spelling with stress marks.
func Plural(noun Noun, n int, stressed bool) (string, error) {
	table := plainForms
	if stressed {
		table = stressedForms
	}
	f, ok := table[noun]
	if !ok {
		return "", fmt.Errorf("%q: %w", noun, ErrUnknownNoun)
	}
	return f[formIndex(n)], nil
}

func formIndex(n int) int {
	lastTwo := mod(n, 100)
	last := mod(n, 10)
	switch {
	case lastTwo >= 11 && lastTwo <= 14:
		return 2
	case last == 1:
		return 0
	case last >= 2 && last <= 4:
		return 1
	}
	return 2
}

// mod is floored modulo, so negative counts pick the same form as their
// positive complement.
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

func mustPlural(noun Noun, n int) string {
	w, err := Plural(noun, n, true)
	if err != nil {
		panic(err)
	}
	return w
}
