package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ParseUUIDList splits a comma-separated ID list from a query parameter.
// Malformed tokens are dropped silently rather than rejected.
func ParseUUIDList(s string) []uuid.UUID {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var ids []uuid.UUID
	for _, token := range strings.Split(s, ",") {
		id, err := uuid.Parse(strings.TrimSpace(token))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
