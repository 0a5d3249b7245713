// Package data embeds the golden conversion fixtures so tools can replay
// them without a source checkout.
package data

import "embed"

//go:embed golden/*.json
var Golden embed.FS
