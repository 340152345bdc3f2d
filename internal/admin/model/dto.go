package model

// LoginRequest represents the admin login request body.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login response.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
