package dto

import (
	"html"
	"strings"
)

// UpdateProfileRequest carries the edit-profile form. Password is optional;
// when left empty the stored hash is untouched.
type UpdateProfileRequest struct {
	Name     string `form:"nombre" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password"`
}

func (r *UpdateProfileRequest) Normalize() {
	r.Name = html.EscapeString(strings.TrimSpace(r.Name))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// UserResponse is the public shape of an account.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Image string `json:"imagen,omitempty"`
}
