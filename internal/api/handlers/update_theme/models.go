package update_theme

// UpdateThemeRequest HTTP request model: либо конкретная тема, либо переключение
type UpdateThemeRequest struct {
	Theme  string `json:"theme" validate:"omitempty,oneof=light dark"`
	Toggle bool   `json:"toggle"`
}

// ThemeResponse HTTP response model
type ThemeResponse struct {
	Theme string `json:"theme"`
}
