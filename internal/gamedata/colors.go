package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
// Short CSS forms such as "#FFF" are rejected.
func ParseHexColor(hex string) (tcell.Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(trimmed) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb := color.HexToRgb(trimmed)
	if len(rgb) != 3 || strings.ContainsAny(trimmed, "+-") {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color: %s", hex)
	}

	return tcell.NewRGBColor(int32(rgb[0]), int32(rgb[1]), int32(rgb[2])), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	c, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
