package checkout

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"hayyakom/internal/core/port"
)

// Stripe implements port.CheckoutProvider on top of Stripe hosted Checkout
// Sessions. The pledge token is carried into the success redirect so the
// confirm endpoint can locate the pending intent.
type Stripe struct {
	api        *client.API
	successURL string
	cancelURL  string
}

// NewStripe creates a Stripe checkout adapter. successURL receives a
// token query parameter on redirect.
func NewStripe(apiKey, successURL, cancelURL string) *Stripe {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &Stripe{api: api, successURL: successURL, cancelURL: cancelURL}
}

func (s *Stripe) CreatePaymentIntent(ctx context.Context, description string, amountMinorUnits int64, currency, clientRef string) (*port.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(amountMinorUnits),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(description),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		ClientReferenceID: stripe.String(clientRef),
		SuccessURL:        stripe.String(s.successRedirect(clientRef)),
		CancelURL:         stripe.String(s.cancelURL),
	}
	params.Context = ctx
	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &port.CheckoutSession{Ref: sess.ID, RedirectURL: sess.URL}, nil
}

func (s *Stripe) GetPaymentStatus(ctx context.Context, sessionRef string) (port.PaymentStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	sess, err := s.api.CheckoutSessions.Get(sessionRef, params)
	if err != nil {
		return "", fmt.Errorf("retrieve checkout session: %w", err)
	}
	if sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		return port.PaymentPaid, nil
	}
	return port.PaymentUnpaid, nil
}

func (s *Stripe) successRedirect(token string) string {
	sep := "?"
	if strings.Contains(s.successURL, "?") {
		sep = "&"
	}
	return s.successURL + sep + "token=" + url.QueryEscape(token)
}
