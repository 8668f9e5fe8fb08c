package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/log"
)

func newDemoCmd() *cobra.Command {
	var copyValue bool

	cmd := &cobra.Command{
		Use:       "demo [select|dropdown|tabs|all]",
		Short:     "Try the widgets interactively",
		GroupID:   GroupDemo,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demoKinds,
		Long: `Run an interactive demo of the widgets.

Tab and Shift+Tab move between widgets, Esc closes lists and finishes the
demo, Ctrl+C aborts. The final value of every widget is printed to stdout.`,
		Example: `  tuikit demo              # All widgets
  tuikit demo select       # Select boxes only
  tuikit demo tabs --copy  # Copy the last committed value to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			kind := "all"
			if len(args) == 1 {
				kind = args[0]
			}

			if !isInteractive() {
				return fmt.Errorf("demo requires an interactive terminal")
			}

			f, err := buildDemo(kind, config.FromContext(ctx), l)
			if err != nil {
				return err
			}

			result, err := f.Run(ctx, os.Stderr)
			if err != nil {
				return err
			}
			if result.IsCancelled() {
				return nil
			}

			if copyValue {
				if c := result.Committed(); c != nil {
					if err := clipboard.WriteAll(c.Value()); err != nil {
						l.Warn("failed to copy to clipboard", "err", err)
					}
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), result.Summary())
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyValue, "copy", false, "Copy the last committed value to the clipboard")

	return cmd
}

// isInteractive reports whether stdin is a terminal.
func isInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
