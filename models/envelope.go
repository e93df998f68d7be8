package models

import "encoding/json"

// StatusSuccess is the literal the platform API uses to mark a successful
// envelope. Anything else is a failure.
const StatusSuccess = "success"

// Envelope is the uniform body the platform API wraps every response in.
type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Detail  string          `json:"detail,omitempty"`
	// Msg is only set by the platform's auth layer, e.g. "Token has expired"
	// on a 401.
	Msg string `json:"msg,omitempty"`
}

// Success reports whether the envelope carries a successful response.
func (e Envelope) Success() bool {
	return e.Status == StatusSuccess
}

// FailureMessage returns the most specific error text the platform provided.
func (e Envelope) FailureMessage() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Message != "":
		return e.Message
	case e.Msg != "":
		return e.Msg
	}
	return "unknown platform error"
}
