package whatsapp

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/suto6/whatsevent/internal/config"
)

// MessageSender sends outbound WhatsApp messages.
type MessageSender interface {
	Send(to, body string) error
}

// TwilioSender sends WhatsApp messages through the Twilio messaging API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
	log    *zap.Logger
}

// NewTwilioSender creates a new Twilio-backed sender
func NewTwilioSender(cfg *config.Twilio, log *zap.Logger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &TwilioSender{
		client: client,
		from:   cfg.PhoneNumber,
		log:    log,
	}
}

// Send delivers one message. Numbers are given bare; the transport prefix
// is added here.
func (s *TwilioSender) Send(to, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + s.from)
	params.SetTo("whatsapp:" + to)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}

	s.log.Info("WhatsApp message sent", zap.String("to", to))
	return nil
}
