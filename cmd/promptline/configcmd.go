package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/promptline/pkg/config"
	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/arthur-debert/promptline/pkg/paths"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage promptline configuration",
}

var (
	configInitForce bool

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write the built-in default configuration to the user config location
so it can be edited. Refuses to overwrite an existing file unless
--force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := paths.ConfigFile()

			if _, err := os.Stat(path); err == nil && !configInitForce {
				pterm.Warning.Printfln("Config file already exists at %s (use --force to overwrite)", path)
				return errors.Newf(errors.ErrConfigLoad, "config file already exists: %s", path)
			}

			data, err := toml.Marshal(config.Default())
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to serialize default config")
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrap(err, errors.ErrConfigLoad, "failed to create config directory")
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return errors.Wrap(err, errors.ErrConfigLoad, "failed to write config file")
			}

			pterm.Success.Printfln("Wrote default configuration to %s", path)
			return nil
		},
	}
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the fully merged configuration (defaults, user file and
environment overrides) as TOML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to serialize config")
		}

		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
