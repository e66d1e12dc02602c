package client

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// GenericErrorMessage is shown when neither the body nor the transport explain a failure
const GenericErrorMessage = "An unexpected error occurred. Please try again."

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError is a call that failed before a response could be read
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrorMessage turns a failed call into a display string. It prefers the body's
// message, then its errors, then error.details, then the transport error.
func ErrorMessage(resp *http.Response, body []byte, err error) string {
	if len(body) > 0 && gjson.ValidBytes(body) {
		if msg := strings.TrimSpace(gjson.GetBytes(body, "message").String()); msg != "" {
			return msg
		}
		if msg := errorsText(gjson.GetBytes(body, "errors")); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(gjson.GetBytes(body, "error.details").String()); msg != "" {
			return msg
		}
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	if resp != nil && resp.StatusCode >= http.StatusBadRequest {
		return fmt.Sprintf("%s (%d)", GenericErrorMessage, resp.StatusCode)
	}
	return GenericErrorMessage
}

// errorsText flattens an errors value that may be an object, an array or a string
func errorsText(v gjson.Result) string {
	switch {
	case v.IsObject():
		fields := fieldErrors(v)
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+fields[k])
		}
		return strings.Join(parts, "; ")
	case v.IsArray():
		var parts []string
		for _, item := range v.Array() {
			if s := strings.TrimSpace(item.String()); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		return strings.TrimSpace(v.String())
	}
}

func fieldErrors(v gjson.Result) map[string]string {
	fields := map[string]string{}
	v.ForEach(func(key, value gjson.Result) bool {
		if s := strings.TrimSpace(value.String()); s != "" {
			fields[key.String()] = s
		}
		return true
	})
	return fields
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    ErrorMessage(resp, body, nil),
	}
	if errs := gjson.GetBytes(body, "errors"); errs.IsObject() {
		apiErr.Fields = fieldErrors(errs)
	}
	return apiErr
}
