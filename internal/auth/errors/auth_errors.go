package autherrors

import (
	"net/http"

	"github.com/Garvit-office/smart-agriguard/internal/pkg/apperror"
)

var (
	ErrUnauthorized = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized access",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid authentication token",
		http.StatusBadRequest,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication token expired",
		http.StatusUnauthorized,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Access forbidden",
		http.StatusForbidden,
	)

	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Passwords do not match",
		http.StatusBadRequest,
	)

	ErrEmailAlreadyInUse = apperror.New(
		apperror.CodeConflict,
		"This email is already registered. Please use another.",
		http.StatusConflict,
	)

	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"This username is already taken. Please choose another.",
		http.StatusConflict,
	)

	ErrRegistrationFailed = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid input data, please try again.",
		http.StatusBadRequest,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate authentication token",
		http.StatusInternalServerError,
	)
)
