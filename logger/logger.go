// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a structured logger based on log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to w on the given level.
// An unparsable level is reported back to the caller.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, err
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(logHandler), nil
}

// NewMock returns a logger that discards all records. Used in tests.
func NewMock() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ExitWithError terminates the process with the given code after all
// deferred cleanups have run. Deferred right after logger setup in mains.
func ExitWithError(exitCode *int) {
	if *exitCode != 0 {
		os.Exit(*exitCode)
	}
}
