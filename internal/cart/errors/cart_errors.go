package carterrors

import (
	"net/http"

	"github.com/Garvit-office/smart-agriguard/internal/pkg/apperror"
)

var (
	ErrSessionRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A session is required to use the cart",
		http.StatusBadRequest,
	)

	ErrCartUnavailable = apperror.New(
		apperror.CodeInternalError,
		"Failed to process cart operation",
		http.StatusInternalServerError,
	)
)
