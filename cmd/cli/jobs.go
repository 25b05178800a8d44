package cli

import (
	"context"
	"fmt"
	"time"

	"turfbook/cmd/bootstrap"
	"turfbook/internal/domain/slot"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// runOnce builds the core graph, fills targets and runs fn between start and stop.
func runOnce(ctx context.Context, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		bootstrap.CoreModule,
		fx.Populate(targets...),
		fx.NopLogger,
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()
	return fn(ctx)
}

func newReapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reap",
		Short: "Fail PENDING bookings older than REAPER_PENDING_TTL once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var reaper commands.ReaperCommands
			return runOnce(cmd.Context(), func(ctx context.Context) error {
				res, err := reaper.ReapStale(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "expired=%d purged_idempotency_keys=%d\n", res.Expired, res.PurgedKeys)
				return nil
			}, &reaper)
		},
	}
}

func newReconcileSlotsCmd() *cobra.Command {
	var (
		days int
		from string
	)

	cmd := &cobra.Command{
		Use:   "reconcile-slots",
		Short: "Roll the slot window forward for every approved venue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days < 1 || days > slot.MaxReconcileDays {
				return errs.Newf("--days must be between 1 and %d", slot.MaxReconcileDays)
			}
			var start time.Time
			if from != "" {
				t, err := time.Parse(time.DateOnly, from)
				if err != nil {
					return errs.Wrap(err, "--from")
				}
				start = t
			}

			var slots commands.SlotCommands
			return runOnce(cmd.Context(), func(ctx context.Context) error {
				if start.IsZero() {
					start = time.Now().UTC()
				}
				results, err := slots.ReconcileAll(ctx, start, days)
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "venue=%s inserted=%d deleted=%d retained=%d\n",
						r.VenueID, r.Inserted, r.Deleted, r.Retained)
				}
				return err
			}, &slots)
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "number of days to cover")
	cmd.Flags().StringVar(&from, "from", "", "first day (YYYY-MM-DD), default today")
	return cmd
}
