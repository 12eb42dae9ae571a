package dto

// RegisterRequest represents the request payload for athlete registration
type RegisterRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	Age          int    `json:"age" validate:"required"`
	Sport        string `json:"sport" validate:"required"`
	Position     string `json:"position" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Achievements string `json:"achievements,omitempty"`
	Contact      string `json:"contact,omitempty"`
}

// LoginRequest represents the request payload for athlete login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest resets a password using the athlete's public identifier
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	AthleteID   string `json:"athleteID" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// AuthResponse is the sanitized athlete plus a bearer token
type AuthResponse struct {
	AthleteResponse
	Token string `json:"token"`
}

// MessageResponse carries a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
