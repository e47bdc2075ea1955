package sms

import (
	"errors"
	"strings"

	twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"sms_dispatch/config"
)

// VendorMessage is the provider's acknowledgement of an accepted message.
type VendorMessage struct {
	SID    string
	Status string
}

// MessageCreator is the provider boundary. Implementations return a
// *VendorError (or an error wrapping one) when the provider rejects a message.
type MessageCreator interface {
	CreateMessage(body, from, to string) (*VendorMessage, error)
}

// messagesAPI is the part of the Twilio REST client used by TwilioSender.
type messagesAPI interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioSender sends messages through Twilio's Programmable Messaging API.
type TwilioSender struct {
	api messagesAPI
}

var _ MessageCreator = (*TwilioSender)(nil)

// NewTwilioSender builds a REST client authenticated with the account SID
// and auth token from cfg. No request is made until CreateMessage is called.
func NewTwilioSender(cfg config.TwilioConfig) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioSender{api: client.Api}
}

func (s *TwilioSender) CreateMessage(body, from, to string) (*VendorMessage, error) {
	if s == nil || s.api == nil {
		return nil, &VendorError{Cause: errors.New("twilio client is not initialized")}
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return nil, newVendorError(err)
	}
	if resp == nil {
		return nil, &VendorError{Message: "empty response from twilio"}
	}

	sid := strings.TrimSpace(deref(resp.Sid))
	if sid == "" {
		return nil, &VendorError{Message: "twilio response missing message sid"}
	}

	return &VendorMessage{SID: sid, Status: deref(resp.Status)}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
