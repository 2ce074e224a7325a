package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal color sequences
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// GetDisplayWidth returns the number of terminal cells text occupies
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight pads s with spaces up to width display cells
func PadRight(s string, width int) string {
	if w := GetDisplayWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// PadLeft right-aligns s within width display cells
func PadLeft(s string, width int) string {
	if w := GetDisplayWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// Truncate shortens s to width display cells, marking the cut with "…"
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// Colorize wraps text in a color sequence unless color is empty
func Colorize(color, text string) string {
	if color == "" {
		return text
	}
	return fmt.Sprintf("%s%s%s", color, text, ColorReset)
}
