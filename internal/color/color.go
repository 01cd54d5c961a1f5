// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	sbPadding = 16 // padding for the strings.Builder
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	prefix     = "\033["
	suffix     = "m"
)

// Code represents an ANSI SGR parameter.
type Code int

// Reset restores the default terminal style.
const Reset Code = 0

// Foreground text colors.
const (
	FgRed       Code = 31
	FgYellow    Code = 33
	FgBlue      Code = 34
	FgCyan      Code = 36
	FgWhite     Code = 37
	FgHiMagenta Code = 95
)

const (
	// background introduces a 256 or 24-bit background color.
	background Code = 48

	// rgbSelector follows the background introducer and precedes r;g;b.
	rgbSelector Code = 2
)

func writeCodes(sb *strings.Builder, codes []Code) {
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteByte(';')
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
}

// ControlString generates an SGR escape sequence for the given codes.
// It does not consult EnabledFor.
func ControlString(c ...Code) string {
	sb := strings.Builder{}
	sb.Grow(len(prefix) + len(suffix) + sbPadding)
	writeCodes(&sb, c)

	return sb.String()
}

// BgTrueColor returns the escape sequence selecting a 24-bit background color,
// e.g. "\x1b[48;2;255;0;0m".
func BgTrueColor(r, g, b uint8) string {
	return ControlString(background, rgbSelector, Code(r), Code(g), Code(b))
}

type fdWriter interface {
	Fd() uintptr
}

// EnabledFor reports whether color output should be written to w.
//
// NO_COLOR always wins. Otherwise FORCE_COLOR enables color, and failing that
// color is enabled only when w is a file descriptor attached to a terminal
// (golang.org/x/term).
func EnabledFor(w io.Writer) bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	f, ok := w.(fdWriter)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
