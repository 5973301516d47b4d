package api

import (
	"encoding/json"
)

// envelope is the normalized response shape. The API wraps most payloads in
// {success, data, message} but some endpoints return the entity bare; both
// shapes are accepted here so callers never guess.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// payload returns the raw bytes callers should decode the entity from: the
// data field when the envelope carries one, the whole body otherwise.
func payload(body []byte) json.RawMessage {
	var env envelope

	if err := json.Unmarshal(body, &env); err != nil {
		return body
	}

	if len(env.Data) > 0 {
		return env.Data
	}

	return body
}

// serverMessage extracts the message field for error reporting, tolerating
// both the envelope and a bare {message} body.
func serverMessage(body []byte) string {
	var env envelope

	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}

	return env.Message
}
