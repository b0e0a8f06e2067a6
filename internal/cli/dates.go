package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	appschedule "github.com/preston-bernstein/owl-schedule-service/internal/app/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
)

func (a *app) datesCommand() *cobra.Command {
	var r schedule.DateRange
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "List dates that have matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, argv []string) error {
			return a.withService(cmd, func(ctx context.Context, svc *appschedule.Service) error {
				resp, err := svc.ScheduledDates(ctx, r)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if a.output == formatJSON {
					return writeJSON(out, resp)
				}
				for _, date := range resp.Dates {
					fmt.Fprintln(out, date)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&r.Start, "start", "", "first date to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&r.End, "end", "", "last date to include (YYYY-MM-DD)")
	return cmd
}
