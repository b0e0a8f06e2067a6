package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	appschedule "github.com/preston-bernstein/owl-schedule-service/internal/app/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/args"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/teams"
)

// ErrRemindersUnsupported is returned for the reminder instruction.
var ErrRemindersUnsupported = errors.New("reminders are not supported")

func (a *app) runTeam(cmd *cobra.Command, argv []string) error {
	inst := args.InstructionSchedule
	if len(argv) == 2 {
		if err := args.ValidateInstructionArg(argv[1]); err != nil {
			return err
		}
		inst, _ = args.ParseInstructionArg(argv[1])
	}

	resolved, err := a.deps.Roster.Resolve(argv[0])
	if err != nil {
		return err
	}

	switch {
	case resolved.List || inst == args.InstructionList:
		return a.printRoster(cmd)
	case inst == args.InstructionReminder:
		return ErrRemindersUnsupported
	default:
		return a.printTeamSchedule(cmd, resolved.Team)
	}
}

func (a *app) printRoster(cmd *cobra.Command) error {
	if a.output == formatJSON {
		return writeJSON(cmd.OutOrStdout(), a.deps.Roster.Roster())
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), a.deps.Roster.RosterText())
	return err
}

func (a *app) printTeamSchedule(cmd *cobra.Command, team teams.Team) error {
	return a.withService(cmd, func(ctx context.Context, svc *appschedule.Service) error {
		resp, err := svc.TeamSchedule(ctx, team.Name)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if a.output == formatJSON {
			return writeJSON(out, resp)
		}
		if len(resp.Entries) == 0 {
			_, err := fmt.Fprintf(out, "%s has no scheduled events.\n", team.Name)
			return err
		}
		fmt.Fprintln(out, team.Name)
		for _, entry := range resp.Entries {
			fmt.Fprintf(out, "%s  %s\n", entry.Date, formatEvent(entry.Event))
		}
		return nil
	})
}
