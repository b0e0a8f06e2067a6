package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatEvent renders "<time>  <away> @ <home>".
func formatEvent(e schedule.Event) string {
	return fmt.Sprintf("%s  %s @ %s", e.Time, e.Away, e.Home)
}
