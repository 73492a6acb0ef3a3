package error

import "net/http"

// UpstreamError covers network failures and non-2xx responses from the photo
// provider. The message is logged but never leaks upstream detail to callers;
// handlers surface it as a generic unavailability.
type UpstreamError string

func (err UpstreamError) Error() string {
	return string(err)
}

func (err UpstreamError) ErrCode() string {
	return "UPSTREAM_ERROR"
}

func (err UpstreamError) StatusCode() int {
	return http.StatusBadGateway
}
