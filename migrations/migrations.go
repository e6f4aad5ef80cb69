// Package migrations embeds the goose SQL migrations so the binary can
// apply the workspace schema without a checkout of this repository.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
