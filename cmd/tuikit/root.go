package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	logFile string
)

// Command group IDs for organizing help output
const (
	GroupDemo   = "demo"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tuikit",
	Short: "Keyboard-first terminal widgets",
	Long: `tuikit is a set of terminal widgets with browser-grade keyboard handling:
select boxes with filtering, dropdown menus and roving-focus tab strips.

Run 'tuikit demo' to try them.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return setup(cmd)
	},
}

// setup loads the config, applies the theme and attaches the logger. The
// TUI owns the terminal, so debug records only go to --log-file.
func setup(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx = config.WithConfig(ctx, cfg)
	styles.Init(cfg.Theme)

	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		cobra.OnFinalize(func() { f.Close() })
		out = f
	}
	ctx = log.WithLogger(ctx, log.New(out, verbose, quiet))

	cmd.SetContext(ctx)
	return nil
}

// loadConfig reads the global config and overlays .tuikit.toml from the
// working directory.
func loadConfig() (*config.Config, error) {
	global, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return &global, nil
	}
	local, err := config.LoadLocal(wd)
	if err != nil {
		return nil, err
	}
	return config.MergeLocal(&global, local), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'tuikit -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write focus and state debug records to the log file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupDemo, Title: "Demo Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newConfigCmd())
}
