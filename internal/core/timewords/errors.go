package timewords

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported time input type")
	ErrInvalidFormat   = errors.New("invalid time format")
	ErrOutOfRange      = errors.New("value out of range")
	ErrUnknownNoun     = errors.New("unknown noun")
	ErrUnknownStyle    = errors.New("unknown style")
)

// Kind returns a short snake_case name for a converter error, or "" when err
// did not come from this package.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedType):
		return "unsupported_type"
	case errors.Is(err, ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrUnknownNoun):
		return "unknown_noun"
	case errors.Is(err, ErrUnknownStyle):
		return "unknown_style"
	}
	return ""
}
