// Package theme models installed themes and their base-theme relationships.
package theme

import (
	"regexp"
	"strings"
)

// DefaultIconDirectory is the icon subdirectory used when a theme does not
// configure one.
const DefaultIconDirectory = "icons"

// Theme describes one installed theme.
type Theme struct {
	Name          string // machine name, matches the theme directory
	Title         string
	Base          string // machine name of the base theme, empty when none
	Path          string // theme directory relative to the site root
	IconDirectory string // icon subdirectory override, empty means default
}

// Icons returns the theme's icon subdirectory, applying the default.
func (t Theme) Icons() string {
	dir := strings.TrimSpace(t.IconDirectory)
	if dir == "" {
		return DefaultIconDirectory
	}
	return dir
}

var machineName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidName reports whether name is a valid theme machine name.
func ValidName(name string) bool {
	return machineName.MatchString(name)
}
