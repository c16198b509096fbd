package notifications

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/you/profilecms/domain"
)

// TwilioNotifier implements domain.NotificationService over the Twilio
// REST API. It carries the contact-form notifications to the site owner.
// Without full credentials it degrades to logging, so local setups run
// without a Twilio account.
type TwilioNotifier struct {
	client  *twilio.RestClient
	from    string
	enabled bool
}

// NewTwilioService creates a new Twilio notification service
func NewTwilioService(accountSID, authToken, fromNumber string) domain.NotificationService {
	n := &TwilioNotifier{
		from:    fromNumber,
		enabled: accountSID != "" && authToken != "" && fromNumber != "",
	}
	if n.enabled {
		n.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}
	return n
}

// SendSMS implements domain.NotificationService
func (n *TwilioNotifier) SendSMS(to, message string) error {
	if !n.enabled {
		log.Printf("SMS_SKIPPED: twilio not configured, to=%s", to)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(message)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}

// SendEmail is a stub. Owner notifications go out as SMS; email would
// need a provider this service does not carry.
func (n *TwilioNotifier) SendEmail(to, subject, body string) error {
	log.Printf("EMAIL_SKIPPED: to=%s subject=%q", to, subject)
	return nil
}
