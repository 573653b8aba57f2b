// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the tagged command-line tool.
package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	var configPath string
	load := func() (Config, error) {
		return LoadConfig(configPath)
	}
	c := &cobra.Command{
		Use:           "tagged",
		Short:         "tagged: demo tools built on sum-type containers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")

	c.AddCommand(newReplCmd(load))
	c.AddCommand(newEchoCmd(load))
	c.AddCommand(newSendCmd())
	c.AddCommand(newConfigCmd(load))
	return c
}

func newConfigCmd(load func() (Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "config prints the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return errors.Wrap(err, "encoding config")
			}
			return enc.Close()
		},
	}
}
