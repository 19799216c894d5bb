package catalogerrors

import (
	"net/http"

	"steez-storefront/internal/pkg/apperror"
)

var (
	ErrCatalogUnavailable = apperror.New(
		apperror.CodeUpstreamError,
		"Could not load catalog data",
		http.StatusBadGateway,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrMalformedRecord = apperror.New(
		apperror.CodeUpstreamError,
		"Catalog returned a malformed record",
		http.StatusBadGateway,
	)
)
