package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"
	"tracker/internal/config"
	"tracker/internal/tracker"
	"tracker/pkg/logger"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// trackCommand constructs the 'track' subcommand that looks up a single
// tracking number and prints the normalized result as JSON.
func trackCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "track <tracking-number>",
		Short:        "Tracks a shipment and prints the normalized result",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			carrierName, _ := cmd.Flags().GetString("carrier")
			minDate, _ := cmd.Flags().GetString("min-date")

			req := tracker.Request{TrackingNumber: args[0], Carrier: carrierName}
			if minDate != "" {
				t, err := time.Parse(time.RFC3339, minDate)
				if err != nil {
					logger.Error(ctx, "invalid min-date, expected RFC3339", zap.String("minDate", minDate))

					return err
				}
				req.MinDate = t
			}

			tr, closeTracker := getTracker(ctx, cfg, otel.GetMeterProvider())
			defer closeTracker()

			result, err := tr.Track(ctx, req)
			if err != nil {
				logger.Error(ctx, "could not track shipment", zap.String("trackingNumber", args[0]), zap.Error(err))

				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			return enc.Encode(result)
		},
	}

	cmd.Flags().String("carrier", "", "Carrier to query first (e.g., ups, fedex, usps)")
	cmd.Flags().String("min-date", "", "Ignore events before this RFC3339 timestamp")

	return cmd
}
