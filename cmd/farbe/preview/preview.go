// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package preview contains the command that paints a color swatch in the terminal.
package preview

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/farbe/internal/ctxlog"
	"github.com/matt-FFFFFF/farbe/internal/rgb"
	"github.com/matt-FFFFFF/farbe/internal/swatch"
	"github.com/urfave/cli/v3"
)

const (
	widthFlag  = "width"
	heightFlag = "height"
	hexFlag    = "hex"
	redFlag    = "red"
	greenFlag  = "green"
	blueFlag   = "blue"
	exitCode   = 1
	usageHint  = "`farbe --help` to show usage"
)

// NewCmd returns the command that previews a color.
func NewCmd() *cli.Command {
	return &cli.Command{
		Name:  "farbe",
		Usage: "preview a color in the terminal",
		UsageText: "farbe --hex '#RRGGBB' [--width N] [--height N]\n" +
			"farbe --red N --green N --blue N [--width N] [--height N]",
		Description: `Prints a block of spaces painted with a 24-bit background color.
The color is given either as a hex string, with or without a leading '#',
or as three decimal channels in the range 0-255. If both are given, --hex wins.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        widthFlag,
				Usage:       "Width of the swatch in columns (0-255)",
				DefaultText: fmt.Sprint(swatch.DefaultWidth),
				OnlyOnce:    true,
			},
			&cli.StringFlag{
				Name:        heightFlag,
				Usage:       "Height of the swatch in lines (0-255)",
				DefaultText: fmt.Sprint(swatch.DefaultHeight),
				OnlyOnce:    true,
			},
			&cli.StringFlag{
				Name:     hexFlag,
				Usage:    "Color as hex, e.g. '#ff8800' or ff8800",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     redFlag,
				Usage:    "Red channel (0-255), requires --green and --blue",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     greenFlag,
				Usage:    "Green channel (0-255), requires --red and --blue",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     blueFlag,
				Usage:    "Blue channel (0-255), requires --red and --green",
				OnlyOnce: true,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	dims := swatch.DefaultDimensions()
	dims.Width = dimension(ctx, cmd, widthFlag, dims.Width)
	dims.Height = dimension(ctx, cmd, heightFlag, dims.Height)

	c, err := colorFromFlags(cmd)
	if err != nil {
		return err
	}

	logger.Debug("rendering swatch", "color", c.String(), "width", dims.Width, "height", dims.Height)

	if err := swatch.Render(cmd.Writer, c, dims); err != nil {
		return cli.Exit(err.Error(), exitCode)
	}

	return nil
}

// colorFromFlags selects the input mode. The returned error is always a cli.ExitCoder.
func colorFromFlags(cmd *cli.Command) (rgb.Color, error) {
	if cmd.IsSet(hexFlag) {
		hex := cmd.String(hexFlag)

		c, err := rgb.ParseHex(hex)
		if err != nil {
			return rgb.Color{}, cli.Exit(fmt.Sprintf("Invalid value for %s: %s", hexFlag, hex), exitCode)
		}

		return c, nil
	}

	if !cmd.IsSet(redFlag) || !cmd.IsSet(greenFlag) || !cmd.IsSet(blueFlag) {
		return rgb.Color{}, cli.Exit(usageHint, exitCode)
	}

	var channels [3]uint8

	for i, name := range []string{redFlag, greenFlag, blueFlag} {
		v := cmd.String(name)

		ch, err := rgb.ParseChannel(v)
		if err != nil {
			return rgb.Color{}, cli.Exit(fmt.Sprintf("Invalid value for %s: %s", name, v), exitCode)
		}

		channels[i] = ch
	}

	return rgb.Color{Red: channels[0], Green: channels[1], Blue: channels[2]}, nil
}

// dimension reads a width or height flag, warning and falling back to def when it does not parse.
func dimension(ctx context.Context, cmd *cli.Command, name string, def uint8) uint8 {
	if !cmd.IsSet(name) {
		return def
	}

	v := cmd.String(name)

	d, err := swatch.ParseDimension(v)
	if err != nil {
		ctxlog.Warn(ctx, fmt.Sprintf("Invalid value for %s, defaulting to %d", name, def), "value", v, "error", err)
		return def
	}

	return d
}
