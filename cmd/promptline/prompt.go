package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/promptline/pkg/config"
	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/arthur-debert/promptline/pkg/logging"
	"github.com/arthur-debert/promptline/pkg/paths"
	"github.com/arthur-debert/promptline/pkg/prompt"
	"github.com/arthur-debert/promptline/pkg/style"
)

var (
	promptConfigFile string
	promptSetValues  []string

	promptCmd = &cobra.Command{
		Use:   "prompt",
		Short: "Render the prompt to stdout",
		Long: `Render the configured prompt. This is the command your shell's
prompt hook calls, e.g.:

  PS1='$(promptline prompt)'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.prompt")

			overrides, err := parseOverrides(promptSetValues)
			if err != nil {
				return err
			}

			configFile := promptConfigFile
			if configFile == "" {
				configFile = paths.ConfigFile()
			}
			cfg, err := config.LoadFrom(configFile, overrides)
			if err != nil {
				logger.Error().Err(err).Msg("Configuration rejected")
				return err
			}

			renderer := prompt.NewRenderer(cfg, nil, style.NewRenderer(os.Stdout))
			fmt.Fprint(cmd.OutOrStdout(), renderer.Render(cmd.Context()))
			return nil
		},
	}
)

func init() {
	promptCmd.Flags().StringVar(&promptConfigFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/promptline/promptline.toml)")
	promptCmd.Flags().StringArrayVar(&promptSetValues, "set", nil, "Override a config value, e.g. --set os.disabled=false (repeatable)")
}

// parseOverrides turns --set key=value pairs into a koanf confmap.
func parseOverrides(pairs []string) (map[string]interface{}, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	overrides := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "invalid --set %q, expected key=value", pair)
		}
		overrides[key] = value
	}
	return overrides, nil
}
