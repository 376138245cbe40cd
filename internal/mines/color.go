package mines

import "strings"

// Color is a 3-bit RGB mask. Red=100, Green=010, Blue=001.
// Composite colors are unions of the primaries and only appear as
// adjacency colors, never as a cell's own mine color.
type Color uint8

const (
	ColorNone    Color = 0b000
	ColorBlue    Color = 0b001
	ColorGreen   Color = 0b010
	ColorCyan    Color = 0b011 // Green | Blue
	ColorRed     Color = 0b100
	ColorMagenta Color = 0b101 // Red | Blue
	ColorYellow  Color = 0b110 // Red | Green
	ColorWhite   Color = 0b111 // Red | Green | Blue
)

// mineColors is the fixed order in which generated mines are dealt.
var mineColors = [3]Color{ColorRed, ColorGreen, ColorBlue}

// MineColors returns the three pure mine colors in deal order.
func MineColors() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue}
}

// Or combines two colors. It is commutative, associative and idempotent.
func (c Color) Or(other Color) Color {
	return (c | other) & ColorWhite
}

// Has reports whether every primary of other is present in c.
func (c Color) Has(other Color) bool {
	return c&other == other
}

// IsFlagColor reports whether c is one of Red, Green or Blue.
func (c Color) IsFlagColor() bool {
	return c == ColorRed || c == ColorGreen || c == ColorBlue
}

// IsPure reports whether c can be a cell's own mine color.
func (c Color) IsPure() bool {
	return c == ColorNone || c.IsFlagColor()
}

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// ParseColor converts a name or single-letter abbreviation to a Color.
// Returns ColorNone and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "none", "":
		return ColorNone, true
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "magenta", "m":
		return ColorMagenta, true
	case "cyan", "c":
		return ColorCyan, true
	case "white", "w":
		return ColorWhite, true
	default:
		return ColorNone, false
	}
}

// colorSlot maps a flag color to its counter slot.
// Callers must pass a flag color.
func colorSlot(c Color) int {
	switch c {
	case ColorRed:
		return 0
	case ColorGreen:
		return 1
	default:
		return 2
	}
}
