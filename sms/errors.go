package sms

import (
	"errors"
	"fmt"
	"strings"

	twilioclient "github.com/twilio/twilio-go/client"
)

// Configuration failures, detected before any vendor call.
var (
	ErrCredentialsNotConfigured = errors.New("Twilio credentials not configured")
	ErrNoSenderConfigured       = errors.New("No sender configuration available (need TWILIO_PHONE_NUMBER or valid sender_name)")
)

// VendorError is a failure reported by the messaging provider, or a transport
// failure while talking to it.
type VendorError struct {
	Code     int // provider error code, e.g. 21211 for an invalid To number
	Status   int // HTTP status returned by the provider
	Message  string
	MoreInfo string
	Cause    error
}

func (e *VendorError) Error() string {
	if e == nil {
		return "<nil>"
	}

	parts := make([]string, 0, 3)
	if e.Status > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.Status))
	}
	if e.Code > 0 {
		parts = append(parts, fmt.Sprintf("code=%d", e.Code))
	}
	if msg := strings.TrimSpace(e.Message); msg != "" {
		parts = append(parts, msg)
	} else if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	if len(parts) == 0 {
		return "vendor error"
	}
	return "vendor error: " + strings.Join(parts, ": ")
}

func (e *VendorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// newVendorError converts an SDK error into a VendorError, keeping the REST
// error detail when the provider returned one.
func newVendorError(err error) *VendorError {
	if err == nil {
		return nil
	}

	var vendorErr *VendorError
	if errors.As(err, &vendorErr) {
		return vendorErr
	}

	var restErr *twilioclient.TwilioRestError
	if errors.As(err, &restErr) {
		return &VendorError{
			Code:     restErr.Code,
			Status:   restErr.Status,
			Message:  restErr.Message,
			MoreInfo: restErr.MoreInfo,
			Cause:    err,
		}
	}

	return &VendorError{Cause: err}
}
