// Package site embeds the default site tree: the core icon set, the bundled
// themes, and the bundled extensions. Deployments usually point the web
// service at a site directory on disk; when none is configured this tree is
// the site root, so a bare binary still serves a working install.
package site

import "embed"

// FS is the embedded default site root.
//
//go:embed core themes modules
var FS embed.FS
