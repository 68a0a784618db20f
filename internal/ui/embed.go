// Package ui embeds the built frontend assets.
package ui

import "embed"

//go:embed dist
var DistFS embed.FS
