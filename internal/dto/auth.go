package dto

// LoginRequest holds the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenDTO is the login response carrying a bearer token.
type TokenDTO struct {
	Token string `json:"token"`
}
