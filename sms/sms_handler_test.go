package sms

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"sms_dispatch/config"
)

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleSendSMS(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.TwilioConfig
		form       url.Values
		vendorErr  error
		wantStatus int
		wantOK     bool
		wantCalls  int
	}{
		{
			name:       "Success",
			cfg:        fullConfig,
			form:       url.Values{"to": {"+14155550100"}, "body": {"Hello"}, "sender_name": {"Luminous"}},
			wantStatus: http.StatusOK,
			wantOK:     true,
			wantCalls:  1,
		},
		{
			name:       "MissingBody",
			cfg:        fullConfig,
			form:       url.Values{"to": {"+14155550100"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingCredentials",
			cfg:        config.TwilioConfig{PhoneNumber: "+15005550006"},
			form:       url.Values{"to": {"+14155550100"}, "body": {"Hello"}},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "VendorFailure",
			cfg:        fullConfig,
			form:       url.Values{"to": {"+14155550100"}, "body": {"Hello"}},
			vendorErr:  errors.New("quota exceeded"),
			wantStatus: http.StatusBadGateway,
			wantCalls:  1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			creator := &MockCreator{Reply: acceptedReply(), Err: tc.vendorErr}
			d := NewDispatcher(tc.cfg, creator, nil)

			rr := httptest.NewRecorder()
			HandleSendSMS(rr, postForm("/send-sms", tc.form), d)

			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %q)", rr.Code, tc.wantStatus, rr.Body.String())
			}
			if len(creator.Calls) != tc.wantCalls {
				t.Errorf("provider calls = %d, want %d", len(creator.Calls), tc.wantCalls)
			}
			if tc.wantStatus == http.StatusBadRequest {
				return
			}

			var result DispatchResult
			if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if result.Success != tc.wantOK {
				t.Errorf("success = %v, want %v", result.Success, tc.wantOK)
			}
			checkInvariant(t, result)
		})
	}
}

func TestHandleSendSMS_MethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleSendSMS(rr, httptest.NewRequest(http.MethodGet, "/send-sms", nil), NewDispatcher(fullConfig, &MockCreator{}, nil))

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleValidatePhone(t *testing.T) {
	tests := []struct {
		name       string
		phone      string
		wantStatus int
		wantBody   string
	}{
		{"Valid", "1234567890", http.StatusOK, `{"valid":true,"cleaned":"+1234567890"}`},
		{"PlusPassthrough", "+1 (234) 567-8901", http.StatusOK, `{"valid":true,"cleaned":"+1 (234) 567-8901"}`},
		{"TooShort", "12345", http.StatusUnprocessableEntity, `{"valid":false,"error":"Phone number too short"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			HandleValidatePhone(rr, postForm("/validate-phone", url.Values{"phone": {tc.phone}}))

			if rr.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if got := strings.TrimSpace(rr.Body.String()); got != tc.wantBody {
				t.Errorf("body = %s, want %s", got, tc.wantBody)
			}
		})
	}
}
