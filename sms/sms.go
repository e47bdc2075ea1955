// Package sms sends text messages through Twilio and checks phone numbers.
//
// SendSMS reads TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_PHONE_NUMBER
// on every call. Use NewDispatcher to supply the configuration explicitly.
package sms

import (
	"go.uber.org/zap"

	"sms_dispatch/config"
)

// newCreator builds the provider for the package-level send functions.
var newCreator = func(cfg config.TwilioConfig) MessageCreator {
	return NewTwilioSender(cfg)
}

// SendSMS sends body to toNumber using credentials from the environment.
// senderName is optional; pass "" to send from TWILIO_PHONE_NUMBER.
func SendSMS(toNumber, body, senderName string) DispatchResult {
	cfg, err := config.LoadTwilio()
	if err != nil {
		return dispatchFailure(err)
	}
	if !cfg.HasCredentials() {
		return dispatchFailure(ErrCredentialsNotConfigured)
	}
	return NewDispatcher(cfg, newCreator(cfg), zap.L()).Send(toNumber, body, senderName)
}

// SendTwilioMessage is an alias for SendSMS.
func SendTwilioMessage(toNumber, body, senderName string) DispatchResult {
	return SendSMS(toNumber, body, senderName)
}
