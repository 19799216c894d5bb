package sessionerrors

import (
	"net/http"

	"steez-storefront/internal/pkg/apperror"
)

var (
	ErrUnauthorized = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized access",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid session token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Session token expired",
		http.StatusUnauthorized,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Access forbidden",
		http.StatusForbidden,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrRegistrationRejected = apperror.New(
		apperror.CodeInvalidInput,
		"Registration was rejected",
		http.StatusBadRequest,
	)

	ErrIdentityUnavailable = apperror.New(
		apperror.CodeUpstreamError,
		"Identity service is unavailable",
		http.StatusBadGateway,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not issue session token",
		http.StatusInternalServerError,
	)
)
