// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package swatch

import (
	"errors"
	"io"
	"strings"

	"github.com/matt-FFFFFF/farbe/internal/color"
	"github.com/matt-FFFFFF/farbe/internal/rgb"
)

const (
	// DefaultWidth is the swatch width used when none, or an invalid one, is given.
	DefaultWidth uint8 = 10
	// DefaultHeight is the swatch height used when none, or an invalid one, is given.
	DefaultHeight uint8 = 5
)

var (
	// ErrInvalidDimension is returned when a width or height is not an unsigned 8-bit integer.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrWrite is returned when the swatch cannot be written to the output.
	ErrWrite = errors.New("error when writing swatch")
)

var resetSeq = color.ControlString(color.Reset)

// Dimensions is the size of a swatch in terminal cells.
type Dimensions struct {
	Width  uint8
	Height uint8
}

// DefaultDimensions returns the default swatch size.
func DefaultDimensions() Dimensions {
	return Dimensions{Width: DefaultWidth, Height: DefaultHeight}
}

// ParseDimension parses a decimal width or height in the range [0,255], with an optional leading '+'.
func ParseDimension(s string) (uint8, error) {
	v, err := rgb.ParseUint8(s)
	if err != nil {
		return 0, errors.Join(ErrInvalidDimension, err)
	}

	return v, nil
}

// Line returns a single swatch line of width painted spaces, without a line terminator.
func Line(c rgb.Color, width uint8) string {
	bg := color.BgTrueColor(c.Red, c.Green, c.Blue)

	sb := strings.Builder{}
	sb.Grow(len(bg) + int(width) + len(resetSeq))
	sb.WriteString(bg)
	sb.WriteString(strings.Repeat(" ", int(width)))
	sb.WriteString(resetSeq)

	return sb.String()
}

// Render writes d.Height lines of Line(c, d.Width) to w, each terminated by a newline.
// A zero width yields lines with no spaces; a zero height writes nothing.
func Render(w io.Writer, c rgb.Color, d Dimensions) error {
	line := Line(c, d.Width) + "\n"

	for range d.Height {
		if _, err := io.WriteString(w, line); err != nil {
			return errors.Join(ErrWrite, err)
		}
	}

	return nil
}
