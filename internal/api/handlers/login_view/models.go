package login_view

// LoginViewResponse состояние экрана входа
type LoginViewResponse struct {
	Authenticated bool   `json:"authenticated"`
	State         string `json:"state"`
	Error         string `json:"error,omitempty"`
	RedirectTo    string `json:"redirectTo,omitempty"`
}
