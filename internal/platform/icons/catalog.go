package icons

import "strings"

// Definition describes a core icon entry.
type Definition struct {
	Name        string // stable machine name, also the shipped file name
	Title       string
	Description string
}

var catalog = []Definition{
	{
		Name:        "house",
		Title:       "House",
		Description: "Home and front-page navigation.",
	},
	{
		Name:        "magnifying-glass",
		Title:       "Magnifying Glass",
		Description: "Search affordances.",
	},
	{
		Name:        "pencil",
		Title:       "Pencil",
		Description: "Edit operations.",
	},
	{
		Name:        "trash",
		Title:       "Trash",
		Description: "Delete operations.",
	},
	{
		Name:        "gear",
		Title:       "Gear",
		Description: "Settings and configuration.",
	},
	{
		Name:        "user",
		Title:       "User",
		Description: "Accounts and profiles.",
	},
	{
		Name:        "users",
		Title:       "Users",
		Description: "People listings and roles.",
	},
	{
		Name:        "plus",
		Title:       "Plus",
		Description: "Create and add actions.",
	},
	{
		Name:        "x",
		Title:       "X",
		Description: "Close and dismiss affordances.",
	},
	{
		Name:        "check",
		Title:       "Check",
		Description: "Confirmation and success states.",
	},
	{
		Name:        "warning",
		Title:       "Warning",
		Description: "Warnings that need attention.",
	},
	{
		Name:        "info",
		Title:       "Info",
		Description: "Status and help notices.",
	},
	{
		Name:        "eye",
		Title:       "Eye",
		Description: "Preview and visibility toggles.",
	},
	{
		Name:        "lock",
		Title:       "Lock",
		Description: "Access control and permissions.",
	},
	{
		Name:        "globe",
		Title:       "Globe",
		Description: "Languages and localization.",
	},
	{
		Name:        "bell",
		Title:       "Bell",
		Description: "Notifications and announcements.",
	},
	{
		Name:        "calendar",
		Title:       "Calendar",
		Description: "Dates and scheduling.",
	},
	{
		Name:        "tag",
		Title:       "Tag",
		Description: "Taxonomy and labels.",
	},
	{
		Name:        "image",
		Title:       "Image",
		Description: "Media and image fields.",
	},
	{
		Name:        "file-text",
		Title:       "File Text",
		Description: "Content and documents.",
	},
	{
		Name:        "folder",
		Title:       "Folder",
		Description: "File management.",
	},
	{
		Name:        "puzzle-piece",
		Title:       "Puzzle Piece",
		Description: "Extensions and integrations.",
	},
	{
		Name:        "paint-brush",
		Title:       "Paint Brush",
		Description: "Themes and appearance.",
	},
	{
		Name:        "database",
		Title:       "Database",
		Description: "Storage and migrations.",
	},
	{
		Name:        "wrench",
		Title:       "Wrench",
		Description: "Maintenance and utilities.",
	},
	{
		Name:        "arrow-left",
		Title:       "Arrow Left",
		Description: "Back navigation.",
	},
	{
		Name:        "arrow-right",
		Title:       "Arrow Right",
		Description: "Forward navigation.",
	},
	{
		Name:        "caret-down",
		Title:       "Caret Down",
		Description: "Disclosure and dropdown affordances.",
	},
	{
		Name:        "star",
		Title:       "Star",
		Description: "Favorites and highlighted entries.",
	},
	{
		Name:        "heart",
		Title:       "Heart",
		Description: "Likes and appreciation.",
	},
}

// Semantic aliases map UI intents to catalog icon names so chrome code does
// not hardcode file names.
const (
	NameHome      = "house"
	NameSearch    = "magnifying-glass"
	NameSettings  = "gear"
	NameLanguage  = "globe"
	NameThemes    = "paint-brush"
	NameExtension = "puzzle-piece"
	NameMissing   = "warning"
)

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup returns the definition for a catalog icon name.
func Lookup(name string) (Definition, bool) {
	for _, def := range catalog {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// FileName returns the shipped file name for a catalog icon name.
func FileName(name string) string {
	return name + ".svg"
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `go run ./internal/tools/icondocgen`.\n\n")
	builder.WriteString("| Name | Title | Description |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(def.Title)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
