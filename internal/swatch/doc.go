// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package swatch renders a color preview as lines of spaces painted with a
// 24-bit terminal background color.
package swatch
