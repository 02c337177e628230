package main

import (
	"context"
	"fmt"
	"os"
	"tracker/internal/config"
	"tracker/pkg/locality"
	"tracker/pkg/logger"
	"tracker/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// localitiesCommand constructs the 'localities' subcommand that manages the
// postgres gazetteer used to resolve event timezones.
func localitiesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "localities",
		Short: "Manages the locality gazetteer",
	}

	cmd.AddCommand(localitiesImportCommand(cfg), localitiesPurgeCommand(cfg))

	return cmd
}

func localitiesImportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "import <file.csv>",
		Short:        "Imports gazetteer entries from a CSV file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			batchSize, _ := cmd.Flags().GetInt("batch-size")

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not open gazetteer file: %w", err)
			}
			defer f.Close() //nolint: errcheck

			records, err := locality.ReadCSV(f)
			if err != nil {
				return err
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			n, err := locality.Import(ctx, strg, records, batchSize)
			if err != nil {
				return err
			}
			logger.Info(ctx, "imported localities", zap.String("file", args[0]), zap.Int64("count", n))

			return nil
		},
	}

	cmd.Flags().Int("batch-size", locality.DefaultBatchSize, "Rows written per insert statement")

	return cmd
}

func localitiesPurgeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "purge",
		Short:        "Removes gazetteer entries of a source",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			source, _ := cmd.Flags().GetString("source")

			switch storage.Source(source) {
			case storage.SourceImport, storage.SourceGeocoder:
			default:
				return fmt.Errorf("unknown source %q", source)
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			n, err := strg.DeleteLocalitiesBySource(ctx, storage.Source(source))
			if err != nil {
				return fmt.Errorf("could not purge localities: %w", err)
			}
			logger.Info(ctx, "purged localities", zap.String("source", source), zap.Int64("count", n))

			return nil
		},
	}

	cmd.Flags().String("source", string(storage.SourceGeocoder), "Entry source to remove (import or geocoder)")

	return cmd
}
