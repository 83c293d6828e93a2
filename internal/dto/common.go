package dto

import (
	"strconv"
	"time"

	"github.com/tdlam/formdesk/internal/apperr"
)

// Envelope is the uniform response shape every operation returns. Failures
// carry a message and errorCode; successes embed the operation payload.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
}

func OK() Envelope {
	return Envelope{Success: true}
}

func OKMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

func Failure(err *apperr.Error) Envelope {
	return Envelope{Success: false, Message: err.Message, ErrorCode: string(err.Code)}
}

// Identifiers cross the boundary as text and timestamps in one canonical
// format, never in storage-native form.

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
