package configs

import "github.com/shopspring/decimal"

// Checkout configures the external payment provider. ExchangeRate converts
// domain currency units (BD) into the processor currency; minor units are
// always rounded down.
type Checkout struct {
	// APIKey is the secret key of the checkout provider account.
	APIKey string `env:"API_KEY"`
	// Currency is the processor-side currency of payment sessions.
	Currency string `env:"CURRENCY" envDefault:"usd"`
	// ExchangeRate is the fixed BD -> processor-currency rate.
	ExchangeRate string `env:"EXCHANGE_RATE" envDefault:"2.65265"`
	// SuccessURL is where the provider redirects after a paid session. The
	// pledge token is appended as a query parameter.
	SuccessURL string `env:"SUCCESS_URL" envDefault:"http://localhost:8080/api/v1/pledges/confirm"`
	// CancelURL is where abandoned checkouts land.
	CancelURL string `env:"CANCEL_URL" envDefault:"http://localhost:8080/"`
}

// Rate parses the configured exchange rate.
func (c Checkout) Rate() (decimal.Decimal, error) {
	return decimal.NewFromString(c.ExchangeRate)
}
