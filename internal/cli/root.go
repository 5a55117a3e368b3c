package cli

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultServerURL = "http://localhost:8080"

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "tabla",
		Short: "CLI tool for the tabla backgammon rules API",
		Long: `tabla drives the backgammon rules server from the command line.

It covers the variant catalogue, game lifecycle, dice rolls, playing moves
with per-rule explanations, and the built-in bot opponent.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Fill unset fields from the XDG config file
			if err := cfg.LoadFile(); err != nil {
				return err
			}
			if cfg.ServerURL == "" {
				cfg.ServerURL = defaultServerURL
			}

			client = NewClient(cfg.ServerURL, cfg.Verbose)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: TABLA_SERVER, default: "+defaultServerURL+")")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log requests to stderr")

	// Add subcommands
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newVariantCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
