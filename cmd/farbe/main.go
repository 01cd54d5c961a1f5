// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the farbe command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/farbe"
	"github.com/matt-FFFFFF/farbe/cmd/farbe/preview"
	"github.com/matt-FFFFFF/farbe/internal/ctxlog"
)

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	rootCmd := preview.NewCmd()
	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", farbe.Version, farbe.Commit)
	rootCmd.Writer = os.Stdout
	rootCmd.ErrWriter = os.Stderr
	rootCmd.Copyright = "Copyright (c) matt-FFFFFF 2025. All rights reserved."

	// ExitCoder errors are printed and exit the process inside Run.
	if err := rootCmd.Run(ctx, os.Args); err != nil {
		ctxlog.Error(ctx, "command execution failed", "error", err)
		os.Exit(1)
	}
}
