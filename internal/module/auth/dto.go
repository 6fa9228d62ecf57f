package auth

// LoginRequest represents the input for operator login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginResponse is the console token and account data returned after login.
// The upstream bearer token is never part of it.
type LoginResponse struct {
	Token string `json:"token"`
	UUID  string `json:"uuid"`
	Email string `json:"email"`
}
