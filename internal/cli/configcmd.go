package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the CLI config file",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var variant, difficulty string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if variant != "" {
				cfg.DefaultVariant = variant
			}
			if difficulty != "" {
				cfg.DefaultDifficulty = difficulty
			}

			path, err := cfg.SaveFile()
			if err != nil {
				return fmt.Errorf("saving config: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Config written to %s", path))
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "", "Default variant for game create")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Default difficulty for ai-move")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)
			out.Print(FileConfig{
				ServerURL:         cfg.ServerURL,
				DefaultVariant:    cfg.DefaultVariant,
				DefaultDifficulty: cfg.DefaultDifficulty,
			})
			return nil
		},
	}
}
