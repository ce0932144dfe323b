// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable consulted for the log level.
	EnvVarLogLevel = "LOG_LEVEL"

	// DefaultLevel is used when neither a flag nor LOG_LEVEL is set. Status
	// output goes to stdout, so stderr stays quiet unless something is wrong.
	DefaultLevel = slog.LevelWarn
)

// ParseLogLevel converts a level name into a slog.Level.
// Unknown or empty values fall back to DefaultLevel.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return DefaultLevel
	}
}

// levelFromEnv returns the level named by LOG_LEVEL.
func levelFromEnv() slog.Level {
	return ParseLogLevel(os.Getenv(EnvVarLogLevel))
}

// NewStructuredLogger returns a JSON logger writing to stderr with the module
// and version attached to every record.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return newLogger(os.Stderr, module, version, ParseLogLevel(level))
}

func newLogger(w io.Writer, module, version string, lvl slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: lvl <= slog.LevelDebug,
		Level:     lvl,
	})
	return slog.New(handler).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs a structured logger as the slog default
// using the level from LOG_LEVEL.
func SetDefaultStructuredLogger(module, version string) {
	slog.SetDefault(newLogger(os.Stderr, module, version, levelFromEnv()))
}

// SetDefaultStructuredLoggerWithLevel installs a structured logger as the slog
// default. An empty level defers to LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	lvl := levelFromEnv()
	if strings.TrimSpace(level) != "" {
		lvl = ParseLogLevel(level)
	}
	slog.SetDefault(newLogger(os.Stderr, module, version, lvl))
}

// NewLogLogger returns a standard library logger backed by the default slog
// handler, for libraries that only accept *log.Logger.
func NewLogLogger(level slog.Level, withPrefix bool) *log.Logger {
	l := slog.NewLogLogger(slog.Default().Handler(), level)
	if withPrefix {
		l.SetPrefix("gpustat: ")
	}
	return l
}
