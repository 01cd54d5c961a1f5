// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package rgb

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidHex is returned when a string cannot be parsed as a hex color.
	ErrInvalidHex = errors.New("invalid hex color")
	// ErrInvalidChannel is returned when a channel value is not an unsigned 8-bit integer.
	ErrInvalidChannel = errors.New("invalid channel value")
)

const (
	hexPrefix           = '#'
	hexDigitsPerChannel = 2
	plusSign            = '+'
)

// Color is a 24-bit color with one unsigned byte per channel.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// String returns the color as lowercase #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// ParseHex parses a color from six hex digits with an optional leading '#'.
// Characters after the sixth digit are ignored.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == hexPrefix {
		s = s[1:]
	}

	var channels [3]uint8

	for i := range channels {
		v, rest, ok := hex2(s)
		if !ok {
			return Color{}, ErrInvalidHex
		}

		channels[i] = v
		s = rest
	}

	return Color{Red: channels[0], Green: channels[1], Blue: channels[2]}, nil
}

// hex2 consumes exactly two hex digits from the front of s.
func hex2(s string) (uint8, string, bool) {
	if len(s) < hexDigitsPerChannel {
		return 0, s, false
	}

	hi, ok := hexVal(s[0])
	if !ok {
		return 0, s, false
	}

	lo, ok := hexVal(s[1])
	if !ok {
		return 0, s, false
	}

	return hi<<4 | lo, s[hexDigitsPerChannel:], true
}

func hexVal(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ParseUint8 parses a decimal integer in the range [0,255].
// A single leading '+' is accepted; "+" alone, "++5" and any '-' are not.
func ParseUint8(s string) (uint8, error) {
	if len(s) > 0 && s[0] == plusSign {
		s = s[1:]
	}

	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return uint8(v), nil
}

// ParseChannel parses a single decimal channel value in the range [0,255].
func ParseChannel(s string) (uint8, error) {
	v, err := ParseUint8(s)
	if err != nil {
		return 0, errors.Join(ErrInvalidChannel, err)
	}

	return v, nil
}
