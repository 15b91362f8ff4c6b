// Package website embeds the static assets served by the site.
package website

import "embed"

//go:embed public
var PublicFS embed.FS
