package sms

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"sms_dispatch/logging"
)

// HandleSendSMS sends the form values to, body and the optional sender_name
// through d and writes the DispatchResult as JSON.
func HandleSendSMS(w http.ResponseWriter, r *http.Request, d *Dispatcher) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	to := strings.TrimSpace(r.FormValue("to"))
	body := r.FormValue("body")
	senderName := strings.TrimSpace(r.FormValue("sender_name"))

	if to == "" || strings.TrimSpace(body) == "" {
		http.Error(w, "Missing required SMS fields", http.StatusBadRequest)
		return
	}

	result := d.Send(to, body, senderName)

	log := logging.FromContext(r.Context(), d.logger)
	if !result.Success {
		log.Warn("Send SMS request failed", zap.String("to", maskPhone(to)), zap.String("error", result.Error))
	}

	writeJSON(w, dispatchStatusCode(result), result, log)
}

// HandleValidatePhone validates the phone form or query value.
func HandleValidatePhone(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result := ValidatePhoneNumber(r.FormValue("phone"))

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, result, nil)
}

func dispatchStatusCode(result DispatchResult) int {
	if result.Success {
		return http.StatusOK
	}

	var vendorErr *VendorError
	if errors.As(result.Err, &vendorErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any, log *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && log != nil {
		log.Error("Failed to write response", zap.Error(err))
	}
}
