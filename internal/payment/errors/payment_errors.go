package paymenterrors

import (
	"net/http"

	"steez-storefront/internal/pkg/apperror"
)

var (
	ErrCardRejected = apperror.New(
		apperror.CodePaymentRejected,
		"Card was rejected by the payment gateway",
		http.StatusPaymentRequired,
	)

	ErrCardDetailsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Card details are required for card payment",
		http.StatusBadRequest,
	)
)
