package messaging

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"taller360/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	ErrMissingTwilioCredentials = errors.New("missing TWILIO_ACCOUNT_SID or TWILIO_AUTH_TOKEN")
	ErrMissingWhatsAppFrom      = errors.New("missing TWILIO_WHATSAPP_FROM")
	ErrGatewayNotConfigured     = errors.New("whatsapp gateway not configured")
)

// TwilioWhatsAppGateway submits WhatsApp messages through the Twilio REST API
// and validates Twilio status-callback signatures.
//
// Env vars:
//   - TWILIO_ACCOUNT_SID / TWILIO_AUTH_TOKEN
//   - TWILIO_WHATSAPP_FROM (sender number, without the whatsapp: prefix)
//   - WHATSAPP_STATUS_CALLBACK_URL (optional; where Twilio posts status events)
//   - WHATSAPP_GATEWAY_MOCK (local/dev: skip the provider entirely)

type TwilioWhatsAppGateway struct {
	client      *twilio.RestClient
	validator   twilioclient.RequestValidator
	from        string
	callbackURL string
	mockMode    bool
}

var _ interfaces.IMessageGateway = (*TwilioWhatsAppGateway)(nil)

func NewTwilioWhatsAppGateway(accountSID, authToken, from string) (*TwilioWhatsAppGateway, error) {
	if isWhatsAppGatewayMockEnabled() {
		log.Printf("[whatsapp][gateway] mock mode enabled")
		return &TwilioWhatsAppGateway{mockMode: true}, nil
	}

	if accountSID == "" || authToken == "" {
		log.Printf("[whatsapp][gateway] missing Twilio credentials")
		return nil, ErrMissingTwilioCredentials
	}
	if strings.TrimSpace(from) == "" {
		log.Printf("[whatsapp][gateway] missing TWILIO_WHATSAPP_FROM")
		return nil, ErrMissingWhatsAppFrom
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	log.Printf("[whatsapp][gateway] Twilio client initialized")

	return &TwilioWhatsAppGateway{
		client:      client,
		validator:   twilioclient.NewRequestValidator(authToken),
		from:        strings.TrimSpace(from),
		callbackURL: strings.TrimSpace(os.Getenv("WHATSAPP_STATUS_CALLBACK_URL")),
	}, nil
}

func (g *TwilioWhatsAppGateway) SendMessage(ctx context.Context, toPhone, body string) (string, error) {
	if g != nil && g.mockMode {
		sid := "SM" + strings.ReplaceAll(uuid.NewString(), "-", "")
		log.Printf("[whatsapp][gateway] mock send success to=%s provider_message_id=%s", toPhone, sid)
		return sid, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[whatsapp][gateway] gateway not configured")
		return "", ErrGatewayNotConfigured
	}
	log.Printf("[whatsapp][gateway] send start to=%s body_len=%d", toPhone, len(body))

	params := &openapi.CreateMessageParams{}
	params.SetFrom(whatsappAddress(g.from))
	params.SetTo(whatsappAddress(toPhone))
	params.SetBody(body)
	if g.callbackURL != "" {
		params.SetStatusCallback(g.callbackURL)
	}

	resp, err := g.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("[whatsapp][gateway] send failed to=%s err=%v", toPhone, err)
		return "", err
	}
	if resp.Sid == nil || *resp.Sid == "" {
		log.Printf("[whatsapp][gateway] send returned no message sid to=%s", toPhone)
		return "", fmt.Errorf("twilio response missing message sid")
	}

	log.Printf("[whatsapp][gateway] send success to=%s provider_message_id=%s", toPhone, *resp.Sid)
	return *resp.Sid, nil
}

// ValidateCallback checks the X-Twilio-Signature header against the callback
// URL and form params. Always true in mock mode so local webhooks can be
// exercised with curl.
func (g *TwilioWhatsAppGateway) ValidateCallback(url string, params map[string]string, signature string) bool {
	if g != nil && g.mockMode {
		return true
	}
	if g == nil {
		return false
	}
	return g.validator.Validate(url, params, signature)
}

func whatsappAddress(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "whatsapp:") {
		return phone
	}
	return "whatsapp:" + phone
}

func isWhatsAppGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("WHATSAPP_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
