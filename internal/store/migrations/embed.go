// Package migrations embeds the Postgres schema for the athlete store.
package migrations

import "embed"

// FS holds the ordered .sql files applied at startup.
//
//go:embed *.sql
var FS embed.FS
