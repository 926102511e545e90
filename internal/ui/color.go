package ui

import (
	"fmt"
	"os"
)

// ANSI color codes
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// Terminal control sequences used by the live display.
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
)

var colorEnabled = true

func init() {
	if os.Getenv("NO_COLOR") != "" {
		colorEnabled = false
	}
}

// SetColor enables or disables color output.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether color output is on.
func ColorEnabled() bool {
	return colorEnabled
}

func colorize(color, s string) string {
	if !colorEnabled {
		return s
	}
	return color + s + Reset
}

func Boldf(format string, a ...any) string {
	return colorize(Bold, fmt.Sprintf(format, a...))
}

func Redf(format string, a ...any) string {
	return colorize(Red, fmt.Sprintf(format, a...))
}

func Greenf(format string, a ...any) string {
	return colorize(Green, fmt.Sprintf(format, a...))
}

func Yellowf(format string, a ...any) string {
	return colorize(Yellow, fmt.Sprintf(format, a...))
}

func Cyanf(format string, a ...any) string {
	return colorize(Cyan, fmt.Sprintf(format, a...))
}

func Dimf(format string, a ...any) string {
	return colorize(Dim, fmt.Sprintf(format, a...))
}

// OffsetColor colors a UTC offset label: green ahead of UTC, blue behind, dim at UTC.
func OffsetColor(label string, seconds int) string {
	switch {
	case seconds > 0:
		return colorize(Green, label)
	case seconds < 0:
		return colorize(Blue, label)
	default:
		return colorize(Dim, label)
	}
}

// Notice formats a user-facing notice.
func Notice(msg string) string {
	return colorize(Yellow, "! ") + msg
}
