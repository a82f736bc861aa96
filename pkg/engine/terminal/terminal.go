// Package terminal wraps terminal size and capability probes.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height.
func GetHeight() int {
	_, height := GetSize()
	return height
}

// Interactive reports whether stdout is attached to a terminal.
// File redirections get plain uncolored output.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
