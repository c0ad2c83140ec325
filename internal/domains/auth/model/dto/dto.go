package dto

import (
	"strings"
	"time"

	"hotel/infras/jwt"
	userDto "hotel/internal/domains/user/model/dto"
	"hotel/shared"
)

// LoginRequest authenticates front desk and management staff by email.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// NormalizedEmail is the lookup key stored for the account.
func (r LoginRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

// Tokens is the credential block shared by login and refresh answers.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func NewTokens(pair *jwt.TokenPair) Tokens {
	if pair == nil {
		return Tokens{}
	}

	return Tokens{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
	}
}

type LoginResponse struct {
	Tokens
	User userDto.UserResponse `json:"user"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	Tokens
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

type lastLogin struct {
	LastLoginAt time.Time `db:"last_login_at"`
}

type passwordChange struct {
	Password string `db:"password"`
}

// LastLoginFields is the users update applied after a successful login.
func LastLoginFields(at time.Time, userID string) map[string]any {
	return shared.TransformFields(lastLogin{LastLoginAt: at}, userID)
}

// PasswordFields stores a new bcrypt hash.
func PasswordFields(hash, userID string) map[string]any {
	return shared.TransformFields(passwordChange{Password: hash}, userID)
}
