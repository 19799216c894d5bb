package profileerrors

import (
	"net/http"

	"steez-storefront/internal/pkg/apperror"
)

var (
	ErrAccountRequired = apperror.New(
		apperror.CodeForbidden,
		"Sign in with an account to access your profile",
		http.StatusForbidden,
	)

	ErrBackendRejected = apperror.New(
		apperror.CodeUpstreamError,
		"The profile request was rejected",
		http.StatusBadGateway,
	)
)
