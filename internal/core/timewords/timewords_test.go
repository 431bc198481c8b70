package timewords

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		n        int
		feminine bool
		want     string
	}{
		{0, false, "ноль"},
		{1, false, "один"},
		{1, true, "одн+а"},
		{2, true, "две"},
		{2, false, "два"},
		{10, true, "д+есять"},
		{11, false, "од+иннадцать"},
		{19, true, "девятн+адцать"},
		{20, false, "дв+адцать"},
		{21, true, "дв+адцать одн+а"},
		{32, false, "тр+идцать два"},
		{40, true, "с+орок"},
		{59, false, "пятьдес+ят д+евять"},
	}
	for _, tt := range tests {
		got, err := NumberToWords(tt.n, tt.feminine)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d feminine=%v", tt.n, tt.feminine)
	}
}

func TestNumberToWords_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, 60, 100} {
		_, err := NumberToWords(n, false)
		assert.ErrorIs(t, err, ErrOutOfRange, "n=%d", n)
	}
}

func TestNumberToWords_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 59).Draw(rt, "n")
		feminine := rapid.Bool().Draw(rt, "feminine")
		a, err := NumberToWords(n, feminine)
		require.NoError(rt, err)
		b, _ := NumberToWords(n, feminine)
		assert.NotEmpty(rt, a)
		assert.Equal(rt, a, b)
		assert.Equal(rt, a, strings.TrimSpace(a))
	})
}

func TestPlural(t *testing.T) {
	tests := []struct {
		noun     Noun
		n        int
		stressed bool
		want     string
	}{
		{NounMinute, 11, true, "мин+ут"},
		{NounMinute, 21, true, "мин+ута"},
		{NounMinute, 23, true, "мин+уты"},
		{NounMinute, 25, true, "мин+ут"},
		{NounMinute, 2, false, "минуты"},
		{NounMinute, 0, false, "минут"},
		{NounHour, 1, true, "час"},
		{NounHour, 3, true, "час+а"},
		{NounHour, 12, true, "час+ов"},
		{NounHour, 111, false, "часов"},
		{NounHour, 101, false, "час"},
		{NounSecond, 44, true, "сек+унды"},
		{NounSecond, 14, false, "секунд"},
	}
	for _, tt := range tests {
		got, err := Plural(tt.noun, tt.n, tt.stressed)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %d", tt.noun, tt.n)
	}
}

func TestPlural_UnknownNoun(t *testing.T) {
	_, err := Plural("day", 3, true)
	assert.ErrorIs(t, err, ErrUnknownNoun)
}

func TestPlural_Property(t *testing.T) {
	nouns := []Noun{NounHour, NounMinute, NounSecond}
	rapid.Check(t, func(rt *rapid.T) {
		noun := rapid.SampledFrom(nouns).Draw(rt, "noun")
		n := rapid.IntRange(0, 100000).Draw(rt, "n")
		stressed := rapid.Bool().Draw(rt, "stressed")

		got, err := Plural(noun, n, stressed)
		require.NoError(rt, err)

		f := plainForms[noun]
		if stressed {
			f = stressedForms[noun]
		}
		want := f[2]
		switch {
		case n%100 >= 11 && n%100 <= 14:
		case n%10 == 1:
			want = f[0]
		case n%10 >= 2 && n%10 <= 4:
			want = f[1]
		}
		assert.Equal(rt, want, got)
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Clock
	}{
		{"hh:mm", "07:05", Clock{7, 5, 0}},
		{"hh:mm:ss", "07:05:09", Clock{7, 5, 9}},
		{"padded string", "  23:59 ", Clock{23, 59, 0}},
		{"pair", [2]int{8, 30}, Clock{8, 30, 0}},
		{"triple", [3]int{8, 30, 1}, Clock{8, 30, 1}},
		{"slice of one", []int{9}, Clock{9, 0, 0}},
		{"time of day", TimeOfDay{Hour: 4, Minute: 3, Second: 2}, Clock{4, 3, 2}},
		{"datetime", time.Date(2024, 3, 1, 17, 40, 12, 0, time.UTC), Clock{17, 40, 12}},
		{"no clamping", "25:61", Clock{25, 61, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want error
	}{
		{"single component", "07", ErrInvalidFormat},
		{"four components", "01:02:03:04", ErrInvalidFormat},
		{"non numeric", "07:xx", ErrInvalidFormat},
		{"empty", "", ErrInvalidFormat},
		{"empty slice", []int{}, ErrInvalidFormat},
		{"long slice", []int{1, 2, 3, 4}, ErrInvalidFormat},
		{"float", 7.5, ErrUnsupportedType},
		{"int", 7, ErrUnsupportedType},
		{"nil", nil, ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTimeToText(t *testing.T) {
	tests := []struct {
		in    any
		style Style
		want  string
	}{
		{[3]int{0, 0, 0}, Formal, "п+олночь"},
		{[3]int{12, 0, 0}, Formal, "п+олдень"},
		{"00:00", Spoken, "п+олночь"},
		{"01:00", Formal, "один час р+овно"},
		{"01:05", Formal, "один час пять мин+ут"},
		{"13:02", Formal, "один час две мин+уты"},
		{"01:21", Formal, "один час дв+адцать одн+а мин+ута"},
		{"17:40", Formal, "пять час+ов с+орок мин+ут"},
		{"00:00:05", Formal, "двен+адцать час+ов р+овно"},
		{"14:00", Spoken, "два час+а"},
		{"01:05", Spoken, "пять мин+ут два"},
		{"01:30", Spoken, "полов+ина два"},
		{"12:30", Spoken, "полов+ина один"},
		{"00:15", Spoken, "ч+етверть один"},
		{"01:45", Spoken, "без ч+етверти два"},
		{"17:40", Spoken, "без дв+адцать мин+ут шесть"},
		{"23:50", Spoken, "без д+есять мин+ут двен+адцать"},
		{"01:59", Spoken, "без одн+а мин+ута два"},
		{"11:37", Spoken, "без дв+адцать три мин+уты двен+адцать"},
	}
	for _, tt := range tests {
		got, err := TimeToText(tt.in, tt.style)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v %s", tt.in, tt.style)
	}
}

func TestTimeToText_OutOfRange(t *testing.T) {
	for _, in := range []any{"24:00", "10:60", "10:00:60", "-1:00", [3]int{0, -5, 0}} {
		_, err := TimeToText(in, Formal)
		assert.ErrorIs(t, err, ErrOutOfRange, "%v", in)
	}
}

func TestTimeToText_PropagatesParseErrors(t *testing.T) {
	_, err := TimeToText("noon", Spoken)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Equal(t, "invalid_format", Kind(err))

	_, err = TimeToText(struct{}{}, Spoken)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCompose_WholeDomain(t *testing.T) {
	for _, style := range []Style{Formal, Spoken} {
		for h := 0; h < 24; h++ {
			for m := 0; m < 60; m++ {
				for s := 0; s < 60; s++ {
					got, err := Compose(Clock{h, m, s}, style)
					if err != nil {
						t.Fatalf("%02d:%02d:%02d %s: %v", h, m, s, style, err)
					}
					if got == "" || strings.Contains(got, "  ") || strings.TrimSpace(got) != got {
						t.Fatalf("%02d:%02d:%02d %s: malformed %q", h, m, s, style, got)
					}
				}
			}
		}
	}
}

func TestCompose_SecondsIgnoredOutsideSpecialTimes(t *testing.T) {
	a, err := Compose(Clock{9, 10, 0}, Spoken)
	require.NoError(t, err)
	b, err := Compose(Clock{9, 10, 42}, Spoken)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompose_UnknownStyle(t *testing.T) {
	_, err := Compose(Clock{9, 10, 0}, Style(7))
	assert.True(t, errors.Is(err, ErrUnknownStyle))
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("")
	require.NoError(t, err)
	assert.Equal(t, Formal, s)

	s, err = ParseStyle(" Spoken ")
	require.NoError(t, err)
	assert.Equal(t, Spoken, s)

	_, err = ParseStyle("poetic")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestStripStress(t *testing.T) {
	assert.Equal(t, "без четверти два", StripStress("без ч+етверти два"))
}
