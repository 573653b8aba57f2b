// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 8, cfg.Ring.Capacity)
	require.Equal(t, uint16(7000), cfg.Echo.Port)
	pin := cfg.Worker.Pin()
	require.False(t, pin.HasValue())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagged.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
ring:
  capacity: 3
echo:
  port: 9000
worker:
  core: 1
`), 0o600))
	t.Setenv("TAGGED_RING_CAPACITY", "5")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 5, cfg.Ring.Capacity)
	require.Equal(t, uint16(9000), cfg.Echo.Port)
	pin := cfg.Worker.Pin()
	require.Equal(t, 1, pin.MustGet())
}

func TestLoadConfigRejectsEmptyRing(t *testing.T) {
	t.Setenv("TAGGED_RING_CAPACITY", "0")
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("TAGGED_ECHO_ADDR", "127.0.0.1")
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config"})
	require.NoError(t, cmd.Execute())

	var cfg Config
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &cfg))
	require.Equal(t, "127.0.0.1", cfg.Echo.Addr)
	require.Equal(t, -1, cfg.Worker.Core)
}
