package layout

import (
	"os"

	"github.com/penwyp/go-chronology/internal/util"
	"golang.org/x/term"
)

const (
	DefaultWidth = 80
	MinWidth     = 50
	MaxWidth     = 140
)

// Sizer reports how wide rendered output may be on a file descriptor
type Sizer struct {
	fd int
}

// NewSizer measures f, usually os.Stdout
func NewSizer(f *os.File) Sizer {
	return Sizer{fd: int(f.Fd())}
}

// IsTerminal reports whether the descriptor is an interactive terminal
func (s Sizer) IsTerminal() bool {
	return term.IsTerminal(s.fd)
}

// Width returns the terminal width clamped to [MinWidth, MaxWidth], or
// DefaultWidth when the descriptor is not a terminal.
func (s Sizer) Width() int {
	if !s.IsTerminal() {
		return DefaultWidth
	}
	width, _, err := term.GetSize(s.fd)
	if err != nil {
		util.LogDebug("Terminal size unavailable", util.F("error", err))
		return DefaultWidth
	}
	return ClampWidth(width)
}

// ClampWidth bounds a measured width to the supported range
func ClampWidth(width int) int {
	switch {
	case width <= 0:
		return DefaultWidth
	case width < MinWidth:
		return MinWidth
	case width > MaxWidth:
		return MaxWidth
	default:
		return width
	}
}
