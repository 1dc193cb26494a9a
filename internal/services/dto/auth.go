package dto

import (
	"html"
	"strings"
)

// RegisterRequest carries the create-account form. Confirm must equal
// Password exactly; the rule lives in the validate tag so the mismatch shows
// up in the full error list alongside any other violations.
type RegisterRequest struct {
	Name     string `form:"nombre" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Confirm  string `form:"confirmar" validate:"required,eqfield=Password"`
}

// Normalize sanitizes the fields before validation: free text is
// HTML-escaped, the email lowercased and trimmed.
func (r *RegisterRequest) Normalize() {
	r.Name = html.EscapeString(strings.TrimSpace(r.Name))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// PasswordResetRequest asks for a reset link.
type PasswordResetRequest struct {
	Email string `form:"email" validate:"required,email"`
}

func (r *PasswordResetRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// NewPasswordRequest sets the new password after following a reset link.
type NewPasswordRequest struct {
	Password string `form:"password" validate:"required"`
}
