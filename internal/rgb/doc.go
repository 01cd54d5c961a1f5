// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package rgb holds the Color value and the parsers that produce it from
// hexadecimal strings (#RRGGBB or RRGGBB) and from decimal channel values.
package rgb
