package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/glyph-rain/config"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "glyph-rain",
		Short: "Falling code rain in the terminal",
		Long: `glyph-rain fills the terminal with trails of mutating glyphs that fall,
fade and disappear, with nearer trails drifting faster and glowing brighter.

Keys: space pauses, d toggles the debug overlay, q or Esc exits.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return runRain(cfg)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newSimulateCmd(&configPath))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "glyph-rain %s\n", version)
		},
	})

	return root
}
