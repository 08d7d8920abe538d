package preference

// UpdateThemeRequest represents the request body for changing the theme.
// Either field may be set; DarkMode wins when both are present.
type UpdateThemeRequest struct {
	DarkMode *bool `json:"dark_mode,omitempty"`
	Theme    string `json:"theme,omitempty" example:"dark"`
}

// ThemeResponse represents the persisted display theme
type ThemeResponse struct {
	DarkMode bool   `json:"dark_mode"`
	Theme    Theme  `json:"theme"`
	Label    string `json:"label"`
}
