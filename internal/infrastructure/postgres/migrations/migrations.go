// Package migrations embebe los archivos SQL de migración (goose).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
