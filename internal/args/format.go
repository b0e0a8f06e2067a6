package args

import (
	"fmt"
	"strings"
)

// FormatTeamList renders names as a numbered Markdown list, one per line,
// using the same indexes ParseTeamArg accepts.
func FormatTeamList(names []string) string {
	var b strings.Builder
	for i, name := range names {
		fmt.Fprintf(&b, "**%d)** `%s`\n", i, name)
	}
	return b.String()
}
