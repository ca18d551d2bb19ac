package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const minPasswordLength = 6

// LoginRequest is the admin login form
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	email := strings.TrimSpace(r.Email)
	return validation.Errors{
		"email": validation.Validate(email,
			validation.Required.Error("L'email est requis"),
			is.EmailFormat.Error("Format d'email invalide"),
		),
		"password": validation.Validate(r.Password,
			validation.Required.Error("Le mot de passe est requis"),
			validation.RuneLength(minPasswordLength, 0).Error("Le mot de passe doit contenir au moins 6 caractères"),
		),
	}.Filter()
}

// LoginResponse carries the signed access token
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserDTO   `json:"user"`
}

type UserDTO struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
