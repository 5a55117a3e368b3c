package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVariantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "Variant catalogue commands",
	}

	cmd.AddCommand(newVariantListCmd())
	cmd.AddCommand(newVariantShowCmd())

	return cmd
}

func newVariantListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result VariantList

			if err := client.Get("/api/v1/variants", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newVariantShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the rules of one variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result VariantInfo

			if err := client.Get(fmt.Sprintf("/api/v1/variants/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
