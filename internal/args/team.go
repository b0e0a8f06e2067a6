package args

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/owl-schedule-service/internal/domain/teams"
)

// ListSentinel is the team argument that asks for the roster instead of a team.
const ListSentinel = "list"

// IsList reports whether value is the case-insensitive "list" sentinel.
func IsList(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), ListSentinel)
}

// teamIndex reports the integer value of a numeric argument.
func teamIndex(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseTeamArg turns a numeric argument into the canonical team name at that
// roster index and returns any other value unchanged for ValidateTeamArg to
// judge. Out-of-range indexes are an InvalidTeamArgument.
func ParseTeamArg(value string) (string, error) {
	idx, ok := teamIndex(value)
	if !ok {
		return value, nil
	}
	team, ok := teams.At(idx)
	if !ok {
		return "", invalidTeam(value)
	}
	return team.Name, nil
}

// ValidateTeamArg accepts a canonical full name, any name whose short
// identifier is a roster key (case-insensitive), the "list" sentinel, or an
// integer index inside the roster. Anything else is an InvalidTeamArgument.
func ValidateTeamArg(value string) error {
	if idx, ok := teamIndex(value); ok {
		if idx >= 0 && idx < teams.Count() {
			return nil
		}
		return invalidTeam(value)
	}
	if _, ok := teams.ByName(value); ok {
		return nil
	}
	if _, ok := teams.ByKey(teams.KeyFor(value)); ok {
		return nil
	}
	if IsList(value) {
		return nil
	}
	return invalidTeam(value)
}

// TeamArg is a resolved team argument: either the roster listing or one team.
type TeamArg struct {
	List bool
	Team teams.Team
}

// ResolveTeamArg parses and validates value, then maps it onto the directory.
// Short identifiers and full names both resolve to the canonical team.
func ResolveTeamArg(value string) (TeamArg, error) {
	if err := ValidateTeamArg(value); err != nil {
		return TeamArg{}, err
	}
	if IsList(value) {
		return TeamArg{List: true}, nil
	}
	name, err := ParseTeamArg(value)
	if err != nil {
		return TeamArg{}, err
	}
	if team, ok := teams.ByName(name); ok {
		return TeamArg{Team: team}, nil
	}
	team, ok := teams.ByKey(teams.KeyFor(name))
	if !ok {
		return TeamArg{}, invalidTeam(value)
	}
	return TeamArg{Team: team}, nil
}
