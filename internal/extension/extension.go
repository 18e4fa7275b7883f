// Package extension models installed extensions and the icon registrations
// they contribute.
package extension

import "regexp"

// IconSpec customizes where one contributed icon name resolves. Zero value
// means convention: `<extension dir>/icons/<icon name>.svg`.
type IconSpec struct {
	Directory string `yaml:"directory"` // directory override, site-root relative
	Filename  string `yaml:"filename"`  // basename override, without extension
}

// Extension describes one installed extension.
type Extension struct {
	Name  string // machine name, matches the extension directory
	Title string
	Path  string // extension directory relative to the site root
	Icons map[string]IconSpec
}

var machineName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidName reports whether name is a valid extension machine name.
func ValidName(name string) bool {
	return machineName.MatchString(name)
}
