package payment

// Card carries the details entered in the checkout form. Never persisted and
// never logged; they leave the process only toward the payment gateway.
type Card struct {
	Number   string `json:"number" binding:"required"`
	ExpMonth int    `json:"exp_month" binding:"required,min=1,max=12"`
	ExpYear  int    `json:"exp_year" binding:"required"`
	CVV      string `json:"cvv" binding:"required"`
}
