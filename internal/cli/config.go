// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"code.hybscloud.com/tagged"
	"code.hybscloud.com/tagged/logging"
)

const envPrefix = "TAGGED"

// Config is the effective configuration of every subcommand.
type Config struct {
	Log     logging.Config `yaml:"log" mapstructure:"log"`
	History HistoryConfig  `yaml:"history" mapstructure:"history"`
	Ring    RingConfig     `yaml:"ring" mapstructure:"ring"`
	Echo    EchoConfig     `yaml:"echo" mapstructure:"echo"`
	Worker  WorkerConfig   `yaml:"worker" mapstructure:"worker"`
}

type HistoryConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

type RingConfig struct {
	Capacity int `yaml:"capacity" mapstructure:"capacity"`
}

type EchoConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
	Port uint16 `yaml:"port" mapstructure:"port"`
}

type WorkerConfig struct {
	// Core pins connection workers to one CPU. Negative disables pinning.
	Core int `yaml:"core" mapstructure:"core"`
}

// Pin returns the configured core, if any.
func (w WorkerConfig) Pin() tagged.Maybe[int] {
	if w.Core < 0 {
		return tagged.None[int]()
	}
	return tagged.Some(w.Core)
}

var defaults = map[string]any{
	"log.level":     "info",
	"log.file":      "",
	"log.console":   "",
	"history.file":  "",
	"ring.capacity": 8,
	"echo.addr":     "0.0.0.0",
	"echo.port":     7000,
	"worker.core":   -1,
}

// LoadConfig reads defaults, then the optional YAML file at path, then
// TAGGED_* environment variables (TAGGED_RING_CAPACITY for ring.capacity).
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if cfg.Ring.Capacity < 1 {
		return Config{}, errors.Errorf("ring.capacity must be positive, got %d", cfg.Ring.Capacity)
	}
	return cfg, nil
}
