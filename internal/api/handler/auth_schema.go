package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,password"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// registerResponse exposes only the public identity fields. Password
// material never appears in any response.
type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Token string `json:"token"`
}
