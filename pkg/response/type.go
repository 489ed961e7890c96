package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON envelope used by system routes.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorResp is the body returned for rejected requests.
type ErrorResp struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

// Date is a calendar date that marshals as DateFormat.
// The wall-clock date is kept as-is; no timezone conversion happens.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}
