package store

import (
	"strings"
)

// NormalizeDSN trims quotes and whitespace around a DSN. Anything that is
// not a postgres URL is treated as a sqlite file path (or the sqlite
// in-memory form used by tests).
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	return s
}

// IsPostgres reports whether the DSN selects the postgres driver.
func IsPostgres(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}
