// Package migrations embeds the SQL migration files used by the
// db:migrate command when running against MySQL.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
