// Package web holds embedded assets served or rendered by the API.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
