// ABOUTME: Persisted settings schema and theme model
// ABOUTME: Defines the string keys of the key-value store shared across activations

package domain

// Keys of the persisted key-value schema. Values are strings; absence means
// the setting was never written.
const (
	// KeyServerURL holds the normalized server origin
	KeyServerURL = "docmostUrl"

	// KeyLastSpaceID holds the id of the space last clipped into
	KeyLastSpaceID = "lastSpaceId"

	// KeyTheme holds the UI theme preference
	KeyTheme = "theme"
)

// Theme is the UI theme preference.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeAuto, ThemeLight, ThemeDark:
		return true
	}
	return false
}

// ParseTheme returns the theme named by s, defaulting to ThemeAuto for
// unknown or empty values rather than failing.
func ParseTheme(s string) Theme {
	t := Theme(s)
	if !t.Valid() {
		return ThemeAuto
	}
	return t
}
