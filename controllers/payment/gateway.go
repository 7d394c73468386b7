package paymentcontroller

import (
	"context"

	"github.com/shopspring/decimal"
)

// Gateway is the external payment collaborator: it opens payment sessions and
// verifies signed confirmations. Everything past this interface is an opaque
// signed-JSON exchange with the provider.
type Gateway interface {
	// CreateSession opens a payment session for the given amount and receipt
	// reference and returns the provider's session id.
	CreateSession(ctx context.Context, amount decimal.Decimal, receipt string) (string, error)

	// VerifySignature reports whether the signature matches the
	// session/payment pair under the shared secret.
	VerifySignature(sessionID, paymentID, signature string) bool

	// Currency and KeyID are the metadata the client needs to complete the
	// payment on its side.
	Currency() string
	KeyID() string
}
