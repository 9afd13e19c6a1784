// Package views embeds the HTML templates of the listing pages.
package views

import "embed"

//go:embed *.html
var FS embed.FS
