// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package preview

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/farbe/internal/ctxlog"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type result struct {
	stdout string
	log    string
	err    error
}

// run executes the command with args, capturing output and keeping the test process alive on exit.
func run(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr, logBuf bytes.Buffer

	stubs := gostub.Stub(&cli.OsExiter, func(int) {})
	stubs.Stub(&cli.ErrWriter, &stderr)
	t.Cleanup(stubs.Reset)

	ctx := ctxlog.New(context.Background(), slog.New(slog.NewTextHandler(&logBuf, nil)))

	cmd := NewCmd()
	cmd.Writer = &stdout
	cmd.ErrWriter = &stderr

	err := cmd.Run(ctx, append([]string{"farbe"}, args...))

	return result{stdout: stdout.String(), log: logBuf.String(), err: err}
}

func requireExit(t *testing.T, err error, code int) {
	t.Helper()

	var exitErr cli.ExitCoder

	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, code, exitErr.ExitCode())
}

func line(prefix string, width int) string {
	return prefix + strings.Repeat(" ", width) + "\x1b[0m\n"
}

func TestPreview_Hex(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "hex with hash",
			args: []string{"--hex", "#FF0000", "--width", "3", "--height", "1"},
			want: "\x1b[48;2;255;0;0m   \x1b[0m\n",
		},
		{
			name: "hex without hash",
			args: []string{"--hex", "00ff00", "--width", "2", "--height", "2"},
			want: line("\x1b[48;2;0;255;0m", 2) + line("\x1b[48;2;0;255;0m", 2),
		},
		{
			name: "defaults",
			args: []string{"--hex", "010203"},
			want: strings.Repeat(line("\x1b[48;2;1;2;3m", 10), 5),
		},
		{
			name: "zero height",
			args: []string{"--hex", "010203", "--height", "0"},
			want: "",
		},
		{
			name: "zero width",
			args: []string{"--hex", "010203", "--width", "0", "--height", "1"},
			want: "\x1b[48;2;1;2;3m\x1b[0m\n",
		},
		{
			name: "hex wins over channels",
			args: []string{"--hex", "0000ff", "--red", "255", "--green", "0", "--blue", "0", "--width", "1", "--height", "1"},
			want: line("\x1b[48;2;0;0;255m", 1),
		},
		{
			name: "trailing hex input ignored",
			args: []string{"--hex", "#abcdef99", "--width", "1", "--height", "1"},
			want: line("\x1b[48;2;171;205;239m", 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
			assert.Empty(t, res.log)
		})
	}
}

func TestPreview_Channels(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "plain decimals",
			args: []string{"--red", "255", "--green", "0", "--blue", "0", "--width", "3", "--height", "1"},
			want: "\x1b[48;2;255;0;0m   \x1b[0m\n",
		},
		{
			name: "leading plus on channels and dimensions",
			args: []string{"--red", "+5", "--green", "0", "--blue", "+255", "--width", "+2", "--height", "+1"},
			want: line("\x1b[48;2;5;0;255m", 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
			assert.Empty(t, res.log)
		})
	}
}

func TestPreview_InvalidHex(t *testing.T) {
	for _, hex := range []string{"#12345", "zzzzzz", "#ff00gg"} {
		t.Run(hex, func(t *testing.T) {
			res := run(t, "--hex", hex)
			requireExit(t, res.err, 1)
			assert.Contains(t, res.err.Error(), "hex")
			assert.Contains(t, res.err.Error(), hex)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestPreview_InvalidChannel(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantChannel string
		wantValue   string
	}{
		{
			name:        "red out of range",
			args:        []string{"--red", "999", "--green", "0", "--blue", "0"},
			wantChannel: "red",
			wantValue:   "999",
		},
		{
			name:        "green not numeric",
			args:        []string{"--red", "1", "--green", "abc", "--blue", "0"},
			wantChannel: "green",
			wantValue:   "abc",
		},
		{
			name:        "blue negative",
			args:        []string{"--red", "1", "--green", "2", "--blue=-1"},
			wantChannel: "blue",
			wantValue:   "-1",
		},
		{
			name:        "red reported before green and blue",
			args:        []string{"--red", "300", "--green", "400", "--blue", "500"},
			wantChannel: "red",
			wantValue:   "300",
		},
		{
			name:        "bare plus sign",
			args:        []string{"--red", "+", "--green", "0", "--blue", "0"},
			wantChannel: "red",
			wantValue:   "+",
		},
		{
			name:        "double plus sign",
			args:        []string{"--red", "0", "--green", "++5", "--blue", "0"},
			wantChannel: "green",
			wantValue:   "++5",
		},
		{
			name:        "green reported before blue",
			args:        []string{"--red", "0", "--green", "400", "--blue", "500"},
			wantChannel: "green",
			wantValue:   "400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			requireExit(t, res.err, 1)
			assert.Equal(t, "Invalid value for "+tt.wantChannel+": "+tt.wantValue, res.err.Error())
			assert.Empty(t, res.stdout)
		})
	}
}

func TestPreview_MissingInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no flags", args: nil},
		{name: "only dimensions", args: []string{"--width", "4"}},
		{name: "red only", args: []string{"--red", "1"}},
		{name: "red and green", args: []string{"--red", "1", "--green", "2"}},
		{name: "green and blue", args: []string{"--green", "1", "--blue", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			requireExit(t, res.err, 1)
			assert.Equal(t, usageHint, res.err.Error())
			assert.Empty(t, res.stdout)
		})
	}
}

func TestPreview_InvalidDimensionFallsBack(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantLines int
		wantWidth int
		wantLog   string
	}{
		{
			name:      "width not numeric",
			args:      []string{"--hex", "ff0000", "--width", "abc", "--height", "1"},
			wantLines: 1,
			wantWidth: 10,
			wantLog:   "width",
		},
		{
			name:      "width bare plus sign",
			args:      []string{"--hex", "ff0000", "--width", "+", "--height", "1"},
			wantLines: 1,
			wantWidth: 10,
			wantLog:   "width",
		},
		{
			name:      "height out of range",
			args:      []string{"--hex", "ff0000", "--width", "1", "--height", "256"},
			wantLines: 5,
			wantWidth: 1,
			wantLog:   "height",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			require.NoError(t, res.err)

			assert.Contains(t, res.log, "level=WARN")
			assert.Contains(t, res.log, "Invalid value for "+tt.wantLog)
			assert.Equal(t, strings.Repeat(line("\x1b[48;2;255;0;0m", tt.wantWidth), tt.wantLines), res.stdout)
		})
	}
}
