package carterrors

import (
	"net/http"

	"steez-storefront/internal/pkg/apperror"
)

var (
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cart item not found",
		http.StatusNotFound,
	)

	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be at least 1",
		http.StatusBadRequest,
	)

	ErrSizeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Please choose a size for this product",
		http.StatusUnprocessableEntity,
	)

	ErrUnknownSize = apperror.New(
		apperror.CodeInvalidInput,
		"The chosen size is not offered for this product",
		http.StatusUnprocessableEntity,
	)

	ErrExceedsStock = apperror.New(
		apperror.CodeConflict,
		"Quantity exceeds available stock",
		http.StatusConflict,
	)

	ErrCartUnavailable = apperror.New(
		apperror.CodeInternalError,
		"Cart storage is unavailable",
		http.StatusInternalServerError,
	)
)
