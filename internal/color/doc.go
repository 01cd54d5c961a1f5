// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color builds ANSI SGR escape sequences, including the 24-bit
// truecolor form used to paint swatches.
//
// EnabledFor makes the NO_COLOR / FORCE_COLOR / terminal decision for a given
// destination and is used for log decoration. ControlString and BgTrueColor
// always emit escapes.
package color
