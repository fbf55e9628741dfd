// Package purger holds assets shared by the purge service binaries.
package purger

import "embed"

// Migrations contains the goose SQL migrations for the site and content
// tables read by the purge service.
//
//go:embed migrations/*.sql
var Migrations embed.FS
