package preference

import (
	"fmt"
	"strings"
)

// KeyDarkMode stores the display theme as "true" or "false"
const KeyDarkMode = "dark_mode"

// Theme is the display colour scheme
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ThemeFor maps the dark mode flag to a theme
func ThemeFor(darkMode bool) Theme {
	if darkMode {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme accepts "dark" or "light" in any case
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
}

// IsDark reports whether the theme is the dark one
func (t Theme) IsDark() bool {
	return t == ThemeDark
}
