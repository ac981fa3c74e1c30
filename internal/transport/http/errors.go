package transport_http

import (
	"encoding/json"
	"net/http"
)

const (
	msgSenderNotFound    = "Sender account not found"
	msgRecipientNotFound = "Recipient account not found"
	msgInsufficientFunds = "Insufficient funds"
	msgInvalidBody       = "Invalid request body"
	msgUnexpected        = "An unexpected error occurred"
)

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Status: status, Message: msg})
}

// writeFieldErrors reports validation failures as a field-to-message map.
func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, fields)
}
