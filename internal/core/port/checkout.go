package port

import "context"

// PaymentStatus is the checkout provider's view of a payment session.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

// CheckoutSession identifies a payment session created at the provider.
type CheckoutSession struct {
	// Ref is the provider's session reference, used to query payment status.
	Ref string
	// RedirectURL is where the investor completes the payment.
	RedirectURL string
}

// CheckoutProvider is the boundary to the external payment processor.
// Amounts are in the processor's minor units (e.g. US cents).
type CheckoutProvider interface {
	// CreatePaymentIntent opens a hosted checkout session. clientRef is an
	// opaque caller token the provider carries into the success redirect so
	// the confirm callback can locate the pending pledge intent.
	CreatePaymentIntent(ctx context.Context, description string, amountMinorUnits int64, currency, clientRef string) (*CheckoutSession, error)
	// GetPaymentStatus reports whether the session has been paid.
	GetPaymentStatus(ctx context.Context, sessionRef string) (PaymentStatus, error)
}
