package adminerrors

import (
	"net/http"

	"steez-storefront/internal/pkg/apperror"
)

var (
	ErrBackendRejected = apperror.New(
		apperror.CodeUpstreamError,
		"The shop backend rejected the request",
		http.StatusBadGateway,
	)

	ErrInvalidSizes = apperror.New(
		apperror.CodeInvalidInput,
		"Sizes must be a JSON array of {size, stock} entries",
		http.StatusBadRequest,
	)

	ErrImageUploadFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Product image upload failed",
		http.StatusBadGateway,
	)
)
