// Package assets embeds the curio's data files.
package assets

import "embed"

// Data holds content.toml, config.toml and the house floor plans.
//
//go:embed content.toml config.toml houses
var Data embed.FS
