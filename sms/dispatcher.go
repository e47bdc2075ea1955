package sms

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"sms_dispatch/config"
)

// MaxAlphanumericSenderLength is the longest label accepted as a sender ID.
const MaxAlphanumericSenderLength = 11

// unknownStatus is reported when the provider accepts a message without a status.
const unknownStatus = "unknown"

// Sender is the resolved "from" identity and the body that will be sent.
type Sender struct {
	From         string
	Body         string
	Alphanumeric bool
}

// IsAlphanumericSenderID reports whether name can be used as the visible
// sender of a message instead of a phone number.
func IsAlphanumericSenderID(name string) bool {
	if name == "" || utf8.RuneCountInString(name) > MaxAlphanumericSenderLength {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// ResolveSender picks the outgoing identity. A valid alphanumeric senderName
// wins over the configured number. Otherwise the configured number is used
// and a non-empty senderName is moved into the body as a "From" prefix.
func ResolveSender(senderName, defaultNumber, body string) (Sender, error) {
	if IsAlphanumericSenderID(senderName) {
		return Sender{From: senderName, Body: body, Alphanumeric: true}, nil
	}

	if defaultNumber == "" {
		return Sender{}, ErrNoSenderConfigured
	}

	if senderName != "" {
		body = fmt.Sprintf("From %s: %s", senderName, body)
	}
	return Sender{From: defaultNumber, Body: body}, nil
}

// Dispatcher sends messages with an injected configuration and provider.
// It holds no mutable state and may be shared between goroutines.
type Dispatcher struct {
	cfg     config.TwilioConfig
	creator MessageCreator
	logger  *zap.Logger
}

func NewDispatcher(cfg config.TwilioConfig, creator MessageCreator, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{cfg: cfg, creator: creator, logger: logger}
}

// Send delivers body to the given number. It never panics and never returns
// an error; failures are reported through the result.
func (d *Dispatcher) Send(to, body, senderName string) (result DispatchResult) {
	log := d.logger.With(zap.String("to", maskPhone(to)))

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("unexpected dispatch failure: %v", r)
			log.Error("SMS dispatch panicked", zap.Any("panic", r))
			result = dispatchFailure(err)
		}
	}()

	if !d.cfg.HasCredentials() {
		log.Warn("SMS not sent", zap.Error(ErrCredentialsNotConfigured))
		return dispatchFailure(ErrCredentialsNotConfigured)
	}

	sender, err := ResolveSender(senderName, strings.TrimSpace(d.cfg.PhoneNumber), body)
	if err != nil {
		log.Warn("SMS not sent", zap.Error(err))
		return dispatchFailure(err)
	}
	log.Debug("Resolved sender",
		zap.Bool("alphanumeric", sender.Alphanumeric),
		zap.String("from", sender.From),
	)

	if d.creator == nil {
		return dispatchFailure(&VendorError{Cause: errors.New("no message provider configured")})
	}

	msg, err := d.creator.CreateMessage(sender.Body, sender.From, to)
	if err != nil {
		vendorErr := newVendorError(err)
		log.Warn("Provider rejected SMS", zap.Error(vendorErr), zap.Int("code", vendorErr.Code))
		return dispatchFailure(vendorErr)
	}
	if msg == nil || strings.TrimSpace(msg.SID) == "" {
		vendorErr := &VendorError{Message: "provider response missing message sid"}
		log.Warn("Provider rejected SMS", zap.Error(vendorErr))
		return dispatchFailure(vendorErr)
	}

	status := msg.Status
	if status == "" {
		status = unknownStatus
	}

	log.Info("SMS sent", zap.String("sid", msg.SID), zap.String("status", status))
	return dispatchSuccess(msg.SID, status)
}
