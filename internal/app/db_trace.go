package app

import "strings"

// maxTracedQueryLength bounds the db.statement attribute so span payloads
// stay small even for wide multi-row inserts.
const maxTracedQueryLength = 512

func formatDBQueryForTrace(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}

	normalized := strings.Join(fields, " ")
	if len(normalized) > maxTracedQueryLength {
		return normalized[:maxTracedQueryLength] + "..."
	}
	return normalized
}
