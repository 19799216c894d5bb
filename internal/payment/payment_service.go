package payment

import (
	"os"

	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"

	paymenterrors "steez-storefront/internal/payment/errors"
)

// Service tokenizes card details with the payment gateway. Checkout sends the
// resulting payment-method token to the backend; raw card data never reaches
// the order endpoint.
type Service interface {
	Tokenize(card Card) (string, error)
}

type service struct {
	client coreapi.Client
}

func NewService() Service {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	clientKey := os.Getenv("MIDTRANS_CLIENT_KEY")
	isProduction := os.Getenv("MIDTRANS_IS_PRODUCTION") == "true"

	var env midtransgo.EnvironmentType
	if isProduction {
		env = midtransgo.Production
	} else {
		env = midtransgo.Sandbox
	}

	c := coreapi.Client{}
	c.New(serverKey, env)
	c.ClientKey = clientKey

	return &service{client: c}
}

func (s *service) Tokenize(card Card) (string, error) {
	resp, err := s.client.CardToken(card.Number, card.ExpMonth, card.ExpYear, card.CVV, s.client.ClientKey)
	if err != nil {
		// Gateway validation message goes to the user verbatim; declines are
		// a user-recoverable condition, not a server fault.
		if err.Message != "" {
			return "", paymenterrors.ErrCardRejected.WithMessage(err.Message)
		}
		return "", paymenterrors.ErrCardRejected
	}

	if resp.TokenID == "" {
		if resp.StatusMessage != "" {
			return "", paymenterrors.ErrCardRejected.WithMessage(resp.StatusMessage)
		}
		return "", paymenterrors.ErrCardRejected
	}

	return resp.TokenID, nil
}
