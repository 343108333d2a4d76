// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used by every
// component of the wallet coordinator and its CLI.
//
// The level is chosen once at startup from configuration and carried by the
// logger instance itself; nothing in the application replaces global output
// functions. Request-scoped loggers are obtained via FromContext or
// FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// Level returns the level a logger should run at for the given developer-mode
// flag: debug output is only emitted in developer mode.
func Level(devMode bool) zerolog.Level {
	if devMode {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given role
// label (e.g. "walletd", "walletctl") at the given level.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func NewLogger(role string, level zerolog.Level) *Logger {
	return New(os.Stdout, role, level)
}

// New is NewLogger with an explicit writer.
func New(w io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewConsoleLogger is used by the CLI: human-readable output on stderr so
// that stdout stays reserved for command results.
func NewConsoleLogger(role string, level zerolog.Level) *Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}, role, level)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext attaches the logger to ctx so FromContext can retrieve it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromRequest extracts the logger stored in the request's context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the logger stored in ctx. If none was attached,
// zerolog's default context logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
