// Package icons defines the core icon catalog shared across the platform.
//
// The catalog maps stable icon names to human-readable labels so that other
// packages can reference core icons without hardcoding file paths. Themes and
// extensions may override how each name resolves at render time; the catalog
// only documents what core ships.
package icons
