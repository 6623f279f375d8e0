// Package web holds the assets of the browser page.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
