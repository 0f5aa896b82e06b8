package notifications

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
)

// messageCreator is the slice of the Twilio REST API the SMS sender needs
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSSender delivers member notifications through Twilio. Without a sender
// number it only logs what would have been sent.
type SMSSender struct {
	api  messageCreator
	from string
	log  logging.Logger
}

// NewTwilioService builds an SMSSender from account credentials
func NewTwilioService(accountSID, authToken, fromNumber string, log logging.Logger) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newSMSSender(client.Api, fromNumber, log)
}

func newSMSSender(api messageCreator, from string, log logging.Logger) *SMSSender {
	return &SMSSender{api: api, from: from, log: log}
}

// SendSMS implements domain.NotificationService
func (s *SMSSender) SendSMS(to, message string) error {
	ctx := context.Background()
	if s.from == "" {
		s.log.Info(ctx, "sms delivery disabled", "to", to, "message", message)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(message)

	sent, err := s.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio: send to %s: %w", to, err)
	}
	if sent != nil && sent.Sid != nil {
		s.log.Debug(ctx, "sms queued", "to", to, "sid", *sent.Sid)
	}
	return nil
}
