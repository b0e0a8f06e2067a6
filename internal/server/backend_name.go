package server

import (
	"strings"

	"github.com/preston-bernstein/owl-schedule-service/internal/store"
)

// normalizeBackendName lower-cases the configured backend, treating empty as
// the file store. Used for selection and for metric and log labels.
func normalizeBackendName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return store.BackendFile
	}
	return name
}
