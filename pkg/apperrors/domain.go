package apperrors

import "net/http"

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "No Encontrado", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "El recurso ya existe", http.StatusConflict)
}

// Predefined errors for the account and vacancy flows. Messages are
// user-facing and surface verbatim in flash messages.

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Ese correo ya está registrado!",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Email o password incorrectos",
	http.StatusUnauthorized,
)

var ErrNotVacancyAuthor = New(
	CodeForbidden,
	"vacancies",
	"No eres el autor de esta vacante",
	http.StatusForbidden,
)

var ErrAccountNotFound = New(
	CodeNotFound,
	"auth",
	"No existe esa cuenta",
	http.StatusNotFound,
)

var ErrResetTokenInvalid = New(
	CodeInvalidToken,
	"auth",
	"El token no es válido, intenta de nuevo",
	http.StatusBadRequest,
)

var ErrResetTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"El token ha expirado, solicita uno nuevo",
	http.StatusBadRequest,
)
