package interfaces

import "context"

// IMessageGateway abstracts the external delivery channel (e.g. Twilio
// WhatsApp). SendMessage is an opaque synchronous call returning the
// provider-assigned message id; delivery progress arrives later through the
// status webhook.
//
// ValidateCallback verifies a webhook's authenticity (provider signature over
// the callback URL and form params). Verification failures are a boundary
// concern: the receiver still acknowledges the callback, it just skips the
// update.

type IMessageGateway interface {
	SendMessage(ctx context.Context, toPhone, body string) (providerMessageID string, err error)
	ValidateCallback(url string, params map[string]string, signature string) bool
}
