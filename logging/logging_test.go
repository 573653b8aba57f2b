// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsoleOnly(t *testing.T) {
	dir := t.TempDir()
	s, err := New(Config{Level: "debug", ConsolePath: filepath.Join(dir, "console.log")})
	require.NoError(t, err)

	file := s.File()
	require.False(t, file.HasValue())

	s.Console().Info("hello", zap.Int("n", 1))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, "console.log"))
	require.NoError(t, err)
	line := string(data)
	require.Contains(t, line, "INFO")
	require.Contains(t, line, "hello")
	require.Contains(t, line, "logging_test.go")
}

func TestFileSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	s, err := New(Config{File: path, ConsolePath: filepath.Join(dir, "console.log")})
	require.NoError(t, err)

	file := s.File()
	require.True(t, file.HasValue())
	file.MustGet().Warn("to file", zap.String("k", "v"))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	require.Equal(t, "warn", entry["severity"])
	require.Equal(t, "to file", entry["message"])
	require.Equal(t, "v", entry["k"])
}

func TestIndependentInstances(t *testing.T) {
	dir := t.TempDir()
	a, err := New(Config{File: filepath.Join(dir, "a.log"), ConsolePath: filepath.Join(dir, "a.out")})
	require.NoError(t, err)
	b, err := New(Config{ConsolePath: filepath.Join(dir, "b.out")})
	require.NoError(t, err)

	fa, fb := a.File(), b.File()
	require.True(t, fa.HasValue())
	require.False(t, fb.HasValue())
	require.NoError(t, a.Close())
	require.NoError(t, b.Close())
}

func TestBadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
}

func TestPanicLogsAndPanics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewWithCore(core)

	require.Panics(t, func() {
		s.Panic("unrecoverable", zap.String("reason", "test"))
	})
	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.PanicLevel, entries[0].Level)
	require.Equal(t, "unrecoverable", entries[0].Message)
	require.True(t, entries[0].Caller.Defined)
	require.True(t, strings.HasSuffix(entries[0].Caller.File, "logging_test.go"))
}

func TestPanicReachesFileSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	s, err := New(Config{File: path, ConsolePath: filepath.Join(dir, "console.log")})
	require.NoError(t, err)

	require.Panics(t, func() {
		s.Panic("fatal state")
	})
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	require.Equal(t, "dpanic", entry["severity"])
	require.Equal(t, "fatal state", entry["message"])
	require.Contains(t, entry["caller"], "logging_test.go")
}
