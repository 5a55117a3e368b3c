package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/variantfetch"
)

func main() {
	var (
		indexURL string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "fetchvariants",
		Short: "Scrape backgammon variant rules from bkgm.com into JSON",
		Long: `fetchvariants downloads the Backgammon Galore variant index, follows
every variant page, and emits one normalized JSON record per variant.
The records feed the hand-curated rule configs shipped with the server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			fetcher := variantfetch.New(indexURL, logger)
			entries, err := fetcher.FetchAll(cmd.Context())
			if err != nil {
				return err
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			if err := variantfetch.WriteJSON(out, entries); err != nil {
				return err
			}

			if output != "" {
				logger.Info("wrote variants",
					slog.Int("count", len(entries)),
					slog.String("path", output))
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&indexURL, "index", variantfetch.BaseIndexURL, "Variant index URL")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
