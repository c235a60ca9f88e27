// Package httpjson writes the JSON response envelope used by every
// endpoint: {"success": bool, "message": ..., ...named fields}.
package httpjson

import (
	"encoding/json"
	"net/http"

	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/apperr"
	"go.uber.org/zap"
)

// Envelope is an open map so each endpoint can attach its named fields
// (campaign, donations, total, ...) next to success/message.
type Envelope map[string]any

// OK writes a success envelope with the given HTTP status. Extra fields
// are merged into the envelope; a "success" key in extra is ignored.
func OK(w http.ResponseWriter, status int, message string, extra Envelope) {
	body := Envelope{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range extra {
		if k == "success" {
			continue
		}
		body[k] = v
	}
	write(w, status, body)
}

// Fail writes a failure envelope with the given HTTP status.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{"success": false, "message": message})
}

// Error converts an application error into the envelope, logging
// internal failures (the only kind whose detail is withheld from the
// client).
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError && log != nil {
		log.Error("request failed", zap.Error(err))
	}
	Fail(w, status, apperr.ClientMessage(err))
}

// StatusFor maps the error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindInvalidState:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Decode reads a JSON request body into dst, rejecting unknown-size or
// malformed payloads with a validation error.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		return apperr.Validation("invalid request body")
	}
	return nil
}

// maxBodySize bounds JSON request bodies. Campaign payloads are small;
// anything near this limit is abuse.
const maxBodySize = 1 << 20 // 1 MB
