// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logging provides an explicitly constructed logger service with a
// console sink and an optional file sink.
package logging

import (
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"code.hybscloud.com/tagged"
)

// Config selects the sinks of a Service.
type Config struct {
	// Level is a zap level name. Empty means info.
	Level string `yaml:"level" mapstructure:"level"`
	// File enables a JSON file sink at this path.
	File string `yaml:"file" mapstructure:"file"`
	// ConsolePath is the console output path. Empty means stderr.
	ConsolePath string `yaml:"console" mapstructure:"console"`
}

// Service owns the loggers built from a Config.
// Create one with New and release it with Close.
type Service struct {
	console *zap.Logger
	file    tagged.Maybe[*zap.Logger]
}

// New builds the console logger and, when cfg.File is set, the file logger.
func New(cfg Config) (*Service, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Level != "" {
		lvl, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing log level %q", cfg.Level)
		}
		level = lvl
	}
	consolePath := cfg.ConsolePath
	if consolePath == "" {
		consolePath = "stderr"
	}

	console, err := consoleConfig(level, consolePath).Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		return nil, errors.Wrap(err, "building console logger")
	}
	s := &Service{console: console}

	if cfg.File != "" {
		file, err := fileConfig(level, cfg.File).Build()
		if err != nil {
			console.Sync()
			return nil, errors.Wrapf(err, "building file logger for %s", cfg.File)
		}
		s.file = tagged.Some(file)
	}
	return s, nil
}

// NewWithCore wraps an existing core as the console logger. Used by tests
// and by callers that manage their own sinks.
func NewWithCore(core zapcore.Core) *Service {
	return &Service{console: zap.New(core, zap.AddCaller())}
}

// consoleConfig follows the layout "time level caller message".
func consoleConfig(level zap.AtomicLevel, path string) zap.Config {
	return zap.Config{
		Level:    level,
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}
}

func fileConfig(level zap.AtomicLevel, path string) zap.Config {
	return zap.Config{
		Level:    level,
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}
}

// Console returns the console logger.
func (s *Service) Console() *zap.Logger {
	return s.console
}

// File returns the file logger when one is configured.
func (s *Service) File() tagged.Maybe[*zap.Logger] {
	return s.file.Clone()
}

// Panic logs msg with its caller on every sink, then panics.
// The file sink records it at dpanic level, which never aborts outside
// development mode; the console logger then logs at panic level and panics.
func (s *Service) Panic(msg string, fields ...zap.Field) {
	s.file.AndThen(func(l **zap.Logger) {
		(*l).WithOptions(zap.AddCallerSkip(1)).DPanic(msg, fields...)
	})
	s.console.WithOptions(zap.AddCallerSkip(1)).Panic(msg, fields...)
}

// Close flushes both sinks. The Service must not be used afterwards.
func (s *Service) Close() error {
	var fileErr error
	s.file.AndThen(func(l **zap.Logger) {
		fileErr = (*l).Sync()
	})
	s.file.Reset()
	if fileErr != nil {
		return errors.Wrap(fileErr, "flushing file log")
	}
	if err := s.console.Sync(); err != nil && !isUnsyncable(err) {
		return errors.Wrap(err, "flushing console log")
	}
	return nil
}

// isUnsyncable reports errors from syncing terminals and pipes, which
// do not support fsync.
func isUnsyncable(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}
