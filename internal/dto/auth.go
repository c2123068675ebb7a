package dto

import "quizforge/internal/domain"

// RegisterRequest is the request body for creating an account
// @Description Request body for registration
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest is the request body for credential login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents an account in the API response
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// AuthResponse bundles the issued token with the account
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse is the authenticated user's account view
type ProfileResponse struct {
	UserResponse
	QuizCount int `json:"quiz_count"`
}

// SendCodeRequest asks for a verification code to be emailed
type SendCodeRequest struct {
	Email string `json:"email"`
	Type  string `json:"type"`
}

// VerifyCodeRequest submits a received verification code
type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
	Type  string `json:"type"`
}

// VerifyCodeResponse reports whether the code matched
type VerifyCodeResponse struct {
	Verified bool `json:"verified"`
}

// MessageResponse is a generic acknowledgement body
type MessageResponse struct {
	Message string `json:"message"`
}

// NewUserResponse maps a domain user to its API representation
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	}
}
