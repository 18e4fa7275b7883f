// Package static embeds the assets served under /static/.
package static

import "embed"

// Assets holds the site stylesheet and any other files served verbatim.
//
//go:embed *.css
var Assets embed.FS
