package responses

import (
	"encoding/json/v2"
	"log"
	"net/http"
)

// Message is the minimal JSON envelope for out-of-band responses.
type Message struct {
	Type    string `json:"type"` // "error", etc
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"` // application-level logic code
}

// EncodeWriteJSON encodes and writes payload as a JSON stream into the response.
func EncodeWriteJSON(w http.ResponseWriter, HTTPStatusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatusCode) // Response Header Sent & Frozen
	if err := json.MarshalWrite(w, payload); err != nil {
		log.Printf("[ERROR] failed to write JSON Stream to Response: %v", err)
	}
}

// WriteErrorJSON wraps msg into an error Message without an app logic code.
func WriteErrorJSON(w http.ResponseWriter, HTTPStatusCode int, msg string) {
	EncodeWriteJSON(w, HTTPStatusCode, Message{Type: "error", Message: msg})
}
