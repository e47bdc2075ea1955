package sms

// DispatchResult is the outcome of a single send attempt.
//
// A successful result always carries SID and Status and no Error. A failed
// result always carries Error and no SID or Status. Err holds the typed cause
// of a failure so callers can use errors.Is / errors.As on it.
type DispatchResult struct {
	Success bool   `json:"success"`
	SID     string `json:"sid,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Err     error  `json:"-"`
}

// ValidationResult is the outcome of ValidatePhoneNumber.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Cleaned string `json:"cleaned,omitempty"`
	Error   string `json:"error,omitempty"`
}

const sentMessage = "SMS sent successfully"

func dispatchSuccess(sid, status string) DispatchResult {
	return DispatchResult{
		Success: true,
		SID:     sid,
		Status:  status,
		Message: sentMessage,
	}
}

func dispatchFailure(err error) DispatchResult {
	return DispatchResult{
		Success: false,
		Error:   err.Error(),
		Err:     err,
	}
}
