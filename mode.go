package layerblend

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/layerblend/internal/blend"
)

// Mode selects the pairwise blend operator.
type Mode uint8

const (
	// ModeAdditive sums all four channels, alpha included.
	ModeAdditive Mode = iota
	// ModeMultiply multiplies colors and composites by foreground alpha.
	ModeMultiply
	// ModeScreen inverts, multiplies and inverts back, then composites.
	ModeScreen
	// ModeDifference takes the absolute channel difference, then composites.
	ModeDifference
	// ModeAlpha is "over" compositing on raw 0-255 alpha values.
	ModeAlpha

	modeCount
)

// operators is indexed by Mode.
var operators = [modeCount]blend.Operator{
	ModeAdditive:   blend.Additive,
	ModeMultiply:   blend.Multiply,
	ModeScreen:     blend.Screen,
	ModeDifference: blend.Difference,
	ModeAlpha:      blend.Alpha,
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeAdditive, ModeMultiply, ModeScreen, ModeDifference, ModeAlpha}
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m < modeCount
}

// String returns the lowercase mode name, e.g. "multiply".
func (m Mode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return operators[m].Name()
}

// ParseMode parses a mode name. Matching ignores case and surrounding space.
func ParseMode(s string) (Mode, error) {
	name := cases.Fold().String(strings.TrimSpace(s))
	for _, m := range Modes() {
		if operators[m].Name() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// operator resolves m to its blend operator.
func (m Mode) operator() (blend.Operator, error) {
	if !m.IsValid() {
		return blend.Operator{}, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return operators[m], nil
}
