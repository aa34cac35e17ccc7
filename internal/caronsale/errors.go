package caronsale

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrCallBudgetExhausted is returned when the per-run request budget is spent.
var ErrCallBudgetExhausted = errors.New("API call budget exhausted")

// APIError is a remote rejection: the API answered with a non-2xx status.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: API error (status %d): %s", e.Operation, e.StatusCode, e.Message)
}

// newAPIError builds an APIError, taking the message from the JSON body's
// "message" field when present.
func newAPIError(op string, status int, body []byte) *APIError {
	msg := http.StatusText(status)
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		msg = errResp.Message
	}
	return &APIError{
		Operation:  op,
		StatusCode: status,
		Message:    msg,
		Body:       body,
	}
}

// classify renders the log line for a failed operation. Remote rejections
// carry the status and server message; anything else carries the raw error.
func classify(op string, err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s returned status %d with message '%s'.", op, apiErr.StatusCode, apiErr.Message)
	}
	return fmt.Sprintf("%s failed with message '%s'.", op, err)
}

func (c *Client) logError(op string, err error) {
	c.log.Error(classify(op, err))
}
