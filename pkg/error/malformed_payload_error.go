package error

import "net/http"

// MalformedPayloadError marks a provider response that is missing an expected
// field. Normalization fails fast with this instead of letting zero values
// propagate downstream.
type MalformedPayloadError string

func (err MalformedPayloadError) Error() string {
	return string(err)
}

func (err MalformedPayloadError) ErrCode() string {
	return "MALFORMED_PAYLOAD_ERROR"
}

func (err MalformedPayloadError) StatusCode() int {
	return http.StatusBadGateway
}
