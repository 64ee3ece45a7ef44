package catalogerrors

import (
	"fmt"
	"net/http"

	"github.com/Garvit-office/smart-agriguard/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidProduct = apperror.New(
	apperror.CodeInvalidInput,
	"Name, price and image are required",
	http.StatusBadRequest,
)

// MapValidationError turns a validator error into a field-specific
// AppError; anything else collapses to the generic invalid-product error.
func MapValidationError(err error) error {
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("Field '%s' failed validation on '%s'", fe.Field(), fe.Tag()),
			http.StatusBadRequest,
		)
	}
	return ErrInvalidProduct
}
