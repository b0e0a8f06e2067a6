package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	appschedule "github.com/preston-bernstein/owl-schedule-service/internal/app/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
)

func (a *app) dayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "day [YYYY-MM-DD|today]",
		Short: "Show every match on a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			date := ""
			if len(argv) == 1 && !strings.EqualFold(argv[0], "today") {
				date = argv[0]
			}
			return a.withService(cmd, func(ctx context.Context, svc *appschedule.Service) error {
				var (
					day schedule.Day
					err error
				)
				if date == "" {
					day, err = svc.DayAt(ctx, a.deps.Now().In(a.deps.Location))
				} else {
					day, err = svc.Day(ctx, date)
				}
				if err != nil {
					return err
				}
				return a.printDay(cmd, day)
			})
		},
	}
}

func (a *app) printDay(cmd *cobra.Command, day schedule.Day) error {
	out := cmd.OutOrStdout()
	if a.output == formatJSON {
		return writeJSON(out, day)
	}
	fmt.Fprintln(out, day.Date)
	for _, event := range day.Events {
		fmt.Fprintln(out, formatEvent(event))
	}
	return nil
}
