// Package cli implements owlctl, the command-line form of the chat command
// "+owl <team> [instruction]".
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	appschedule "github.com/preston-bernstein/owl-schedule-service/internal/app/schedule"
	appteams "github.com/preston-bernstein/owl-schedule-service/internal/app/teams"
	"github.com/preston-bernstein/owl-schedule-service/internal/args"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// Deps carries everything the commands need from outside.
type Deps struct {
	// OpenStore is called once per command that reads schedule data. The
	// command closes the store before returning.
	OpenStore    func(ctx context.Context) (schedule.Store, error)
	Roster       *appteams.Service
	QueryTimeout time.Duration
	Location     *time.Location
	Now          func() time.Time
}

type app struct {
	deps   Deps
	output string
}

// NewRootCommand builds the owlctl command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.Roster == nil {
		deps.Roster = appteams.NewService("")
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	a := &app{deps: deps}

	root := &cobra.Command{
		Use:   "owlctl <team> [instruction]",
		Short: "Look up Overwatch League schedules",
		Long: `owlctl answers the same questions as the +owl chat command.

The team may be a full name ("Houston Outlaws"), a short name ("outlaws"),
a roster index ("7"), or "list". The instruction is one of list (ls),
schedule (sched) or reminder (remind) and defaults to schedule.

Examples:
  owlctl list
  owlctl "Houston Outlaws" schedule
  owlctl 7 sched
  owlctl day 2019-01-05
  owlctl dates --start 2019-01-10 --end 2019-01-20`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, argv []string) error {
			if a.output != formatText && a.output != formatJSON {
				return fmt.Errorf("unknown output format %q (want text or json)", a.output)
			}
			return nil
		},
		ValidArgsFunction: a.completeTeamArgs,
		RunE:              a.runTeam,
	}
	root.PersistentFlags().StringVarP(&a.output, "output", "o", formatText, "output format: text or json")

	root.AddCommand(a.dayCommand())
	root.AddCommand(a.datesCommand())
	return root
}

// completeTeamArgs offers team names for the first argument and instruction
// spellings for the second.
func (a *app) completeTeamArgs(cmd *cobra.Command, argv []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(argv) {
	case 0:
		roster := a.deps.Roster.Roster()
		out := make([]string, 0, len(roster)+1)
		out = append(out, string(args.InstructionList))
		for _, entry := range roster {
			out = append(out, entry.Name)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	case 1:
		return args.ValidInstructionArgs(), cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

// withService opens the store, runs fn against it under the query deadline,
// and closes the store. Failures that are not lookup outcomes are marked as
// store failures so Report hides their detail.
func (a *app) withService(cmd *cobra.Command, fn func(ctx context.Context, svc *appschedule.Service) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.deps.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.deps.QueryTimeout)
		defer cancel()
	}
	if a.deps.OpenStore == nil {
		return fmt.Errorf("no schedule store configured")
	}

	st, err := a.deps.OpenStore(ctx)
	if err != nil {
		return markStoreFailure(err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil && err == nil {
			err = markStoreFailure(cerr)
		}
	}()
	return markStoreFailure(fn(ctx, appschedule.NewService(st)))
}
