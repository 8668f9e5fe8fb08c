package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/ui/prompt"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage tuikit configuration.

Global config: ~/.config/tuikit/config.toml (or $TUIKIT_CONFIG)
Local config:  .tuikit.toml (in the working directory)`,
		Example: `  tuikit config init   # Create default global config
  tuikit config show   # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  tuikit config init      # Create global config
  tuikit config init -f   # Overwrite existing config
  tuikit config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdout {
				fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfig())
				return nil
			}
			if !force && isInteractive() {
				ok, err := confirmOverwrite(cmd)
				if err != nil {
					return err
				}
				force = ok
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

// confirmOverwrite asks before replacing an existing config file. It
// reports false without asking when there is nothing to replace.
func confirmOverwrite(cmd *cobra.Command) (bool, error) {
	path, err := config.Path()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		return false, nil
	}
	res, err := prompt.Confirm(cmd.Context(), os.Stderr, fmt.Sprintf("Overwrite %s?", path))
	if err != nil {
		return false, err
	}
	return res.Confirmed, nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long: `Show effective configuration: defaults, overlaid with the global config
file, overlaid with .tuikit.toml from the working directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			if cfg == nil {
				d := config.Default()
				cfg = &d
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	}
}
