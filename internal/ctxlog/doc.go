// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-carried slog logger.
//
// The default logger writes human-readable lines to stderr so that stdout is
// left to the swatch output. Its level is read from <EXE>_LOG_LEVEL, e.g.
// FARBE_LOG_LEVEL=DEBUG, and defaults to WARN.
package ctxlog
