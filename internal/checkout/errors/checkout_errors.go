package checkouterrors

import (
	"net/http"

	"steez-storefront/internal/pkg/apperror"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeInvalidInput,
		"Please fill in all required fields",
		http.StatusBadRequest,
	)

	ErrEmptyCart = apperror.New(
		apperror.CodeInvalidInput,
		"Cart is empty",
		http.StatusUnprocessableEntity,
	)

	ErrSizeMissing = apperror.New(
		apperror.CodeInvalidInput,
		"Please choose a size for every sized product",
		http.StatusUnprocessableEntity,
	)

	ErrOrderSubmitFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Something went wrong while placing your order",
		http.StatusBadGateway,
	)
)
