package teams

import (
	"github.com/preston-bernstein/owl-schedule-service/internal/args"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/teams"
)

// RosterEntry is one team as presented to callers, with its argument index
// and logo path resolved.
type RosterEntry struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Logo  string `json:"logo"`
}

// Service exposes the team directory and team argument resolution.
type Service struct {
	logosDir string
}

// NewService constructs a Service that resolves logo paths under logosDir.
func NewService(logosDir string) *Service {
	return &Service{logosDir: logosDir}
}

// Roster returns every team in argument-index order.
func (s *Service) Roster() []RosterEntry {
	all := teams.All()
	out := make([]RosterEntry, len(all))
	for i, t := range all {
		out[i] = RosterEntry{Index: i, Key: t.Key, Name: t.Name, Logo: s.Logo(t)}
	}
	return out
}

// RosterText renders the roster the way the list instruction prints it.
func (s *Service) RosterText() string {
	return args.FormatTeamList(teams.Names())
}

// Resolve turns a raw team argument into the list request or a canonical team.
func (s *Service) Resolve(arg string) (args.TeamArg, error) {
	return args.ResolveTeamArg(arg)
}

// Logo returns the logo path for team.
func (s *Service) Logo(team teams.Team) string {
	return teams.LogoPath(s.logosDir, team)
}
