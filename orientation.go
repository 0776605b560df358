package joystick

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Orientation selects which axis of the displacement, if any, is forced to zero.
type Orientation int

// The supported orientation constraints.
const (
	Both Orientation = iota
	Vertical
	Horizontal
)

// ErrUnknownOrientation is returned when an orientation value is not recognized.
var ErrUnknownOrientation = errors.New("unknown orientation")

// ParseOrientation converts the textual representation of an orientation
// into its Orientation value. The comparison is case-insensitive.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "both":
		return Both, nil
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return Both, errors.Wrapf(ErrUnknownOrientation, "no such orientation: %q", s)
}

// Valid reports whether o is one of the supported orientations.
func (o Orientation) Valid() bool {
	switch o {
	case Both, Vertical, Horizontal:
		return true
	}
	return false
}

func (o Orientation) String() string {
	switch o {
	case Both:
		return "both"
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return "Orientation(" + strconv.Itoa(int(o)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, errors.Wrapf(ErrUnknownOrientation, "cannot marshal %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so the orientation
// can be decoded straight from a configuration file.
func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
