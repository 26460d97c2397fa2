package notify

import (
	"context"
	"errors"
	"time"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioProvider sends SMS through the Twilio REST API. The attempt deadline
// is enforced by the underlying client timeout; the context is accepted for
// interface symmetry.
type TwilioProvider struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioProvider(accountSID, authToken, from string, timeout time.Duration) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	client.SetTimeout(timeout)

	return &TwilioProvider{
		client: client,
		from:   from,
	}
}

func (p *TwilioProvider) Send(_ context.Context, to, body string) (string, error) {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(p.from)
	params.SetBody(body)

	msg, err := p.client.Api.CreateMessage(params)
	if err != nil {
		var restErr *twilioclient.TwilioRestError
		if errors.As(err, &restErr) {
			return "", &ProviderError{Code: restErr.Code, Message: restErr.Message}
		}
		return "", err
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}
	return sid, nil
}
