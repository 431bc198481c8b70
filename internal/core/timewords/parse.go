package timewords

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is an hour/minute/second triple. Parse does not range check it;
// Validate does.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

func (c Clock) Validate() error {
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 || c.Second < 0 || c.Second > 59 {
		return fmt.Errorf("time %02d:%02d:%02d outside 00:00:00-23:59:59: %w", c.Hour, c.Minute, c.Second, ErrOutOfRange)
	}
	return nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// TimeOfDay is a bare time of day without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// Parse normalizes v into a Clock. Accepted inputs are time.Time,
// TimeOfDay, Clock, a tuple of one to three ints ([]int, [2]int, [3]int)
// and strings of the form "HH:MM" or "HH:MM:SS".
func Parse(v any) (Clock, error) {
	switch t := v.(type) {
	case time.Time:
		return Clock{t.Hour(), t.Minute(), t.Second()}, nil
	case *time.Time:
		if t == nil {
			return Clock{}, fmt.Errorf("nil *time.Time: %w", ErrUnsupportedType)
		}
		return Clock{t.Hour(), t.Minute(), t.Second()}, nil
	case TimeOfDay:
		return Clock(t), nil
	case Clock:
		return t, nil
	case [3]int:
		return fromTuple(t[:])
	case [2]int:
		return fromTuple(t[:])
	case []int:
		return fromTuple(t)
	case string:
		return parseString(t)
	}
	return Clock{}, fmt.Errorf("%T: %w", v, ErrUnsupportedType)
}

func fromTuple(parts []int) (Clock, error) {
	if len(parts) < 1 || len(parts) > 3 {
		return Clock{}, fmt.Errorf("tuple of %d values, want 1 to 3: %w", len(parts), ErrInvalidFormat)
	}
	var hms [3]int
	copy(hms[:], parts)
	return Clock{hms[0], hms[1], hms[2]}, nil
}

func parseString(s string) (Clock, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) != 2 && len(fields) != 3 {
		return Clock{}, fmt.Errorf("%q: want HH:MM or HH:MM:SS: %w", s, ErrInvalidFormat)
	}
	var hms [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Clock{}, fmt.Errorf("%q: component %q is not a number: %w", s, f, ErrInvalidFormat)
		}
		hms[i] = n
	}
	return Clock{hms[0], hms[1], hms[2]}, nil
}
