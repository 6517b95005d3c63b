package transport

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string, details map[string]string) {
	WriteJSON(w, status, ErrorResponse{
		Success: false,
		Message: message,
		Errors:  details,
	})
}

// WriteSuccess writes {"success":true, ...fields}.
func WriteSuccess(w http.ResponseWriter, status int, fields map[string]interface{}) {
	body := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["success"] = true
	WriteJSON(w, status, body)
}
