// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging builds the command line logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = "warn"

// New returns a console logger writing to stderr. The level is read from
// LOG_LEVEL and defaults to warn. verbose forces the debug level.
func New(verbose bool) (*zap.Logger, error) {
	return zap.Config{
		Level:             Level(verbose),
		Encoding:          "console",
		EncoderConfig:     encoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}.Build()
}

// Level returns the configured log level.
func Level(verbose bool) zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
		return level
	}
	text := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if text == "" {
		text = defaultLevel
	}
	if err := level.UnmarshalText([]byte(text)); err != nil {
		_ = level.UnmarshalText([]byte(defaultLevel))
	}
	return level
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "message",
		TimeKey:        "time",
		LevelKey:       "level",
		EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
