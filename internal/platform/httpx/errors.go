package httpx

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// RespondError maps errors with no domain-specific mapping to HTTP responses.
// Handlers translate their own sentinels first and fall through to this.
func RespondError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	Problem(w, http.StatusInternalServerError, "Internal Error", "")
}
