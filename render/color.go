package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/archon/vmath"
)

// RGB is the working color type of the render buffer
type RGB = colorful.Color

// ColorMode selects how buffer colors reach the terminal
type ColorMode int

const (
	ColorAuto      ColorMode = iota // Let tcell downsample to the terminal's capability
	Color256                        // Quantize to the xterm 256 palette
	ColorTrueColor                  // Emit 24-bit colors even if terminfo does not advertise them
)

// ApplyEnv sets the environment tcell reads when a screen is created
// Must run before tcell.NewScreen; ColorAuto leaves the environment untouched
func (m ColorMode) ApplyEnv(setenv func(key, value string) error) error {
	switch m {
	case ColorTrueColor:
		return setenv("COLORTERM", "truecolor")
	case Color256:
		// Quantization happens in toTcell; keep tcell from upgrading to RGB escapes
		return setenv("TCELL_TRUECOLOR", "disable")
	}
	return nil
}

// ParseColorMode maps a config value to a mode, unknown values fall back to ColorAuto
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return Color256
	case "truecolor":
		return ColorTrueColor
	default:
		return ColorAuto
	}
}

// mustHex parses a palette literal, panicking on a malformed table entry
func mustHex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Palette
var (
	RGBBlack   = RGB{}
	RGBWhite   = RGB{R: 1, G: 1, B: 1}
	RGBRed     = mustHex("#ff0000")
	RGBYellow  = mustHex("#ffff00")
	RGBPurple  = mustHex("#800080")
	RGBNebula  = mustHex("#c864ff")
	RGBPlayer  = mustHex("#7fdfff")
	RGBWings   = mustHex("#ffd700")
	RGBPendant = mustHex("#40e0d0")
	RGBSpark   = mustHex("#ffb347")
	RGBHUD     = RGBWhite
)

// Gradient is a two-stop background theme
type Gradient struct {
	From, To RGB
	Shape    GradientShape
}

// GradientShape decides how the gradient parameter is derived from a cell
type GradientShape int

const (
	GradientVertical GradientShape = iota
	GradientRadial
	GradientDiagonal
)

// themes is indexed by arena.Theme
var themes = [...]Gradient{
	{From: mustHex("#1a1a40"), To: mustHex("#4b0082"), Shape: GradientVertical},
	{From: mustHex("#2f4f4f"), To: mustHex("#000080"), Shape: GradientRadial},
	{From: mustHex("#8b008b"), To: mustHex("#191970"), Shape: GradientDiagonal},
}

// Fade blends c over base with opacity in [0, 1]
func Fade(base, c RGB, opacity float64) RGB {
	return base.BlendRgb(c, vmath.Clamp(opacity, 0, 1)).Clamped()
}

// xterm256 holds the non-system part of the 256 palette for quantization
var xterm256 = func() []tcell.Color {
	colors := make([]tcell.Color, 0, 240)
	for i := 16; i < 256; i++ {
		colors = append(colors, tcell.PaletteColor(i))
	}
	return colors
}()

// toTcell converts a buffer color for the given output mode
func toTcell(c RGB, mode ColorMode) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	tc := tcell.NewRGBColor(int32(r), int32(g), int32(b))
	if mode == Color256 {
		return tcell.FindColor(tc, xterm256)
	}
	return tc
}
