package roster

import (
	"fmt"
	"net/url"
)

type RequestError struct {
	requestURL *url.URL
	statusCode int
}

func newRequestError(requestURL *url.URL, statusCode int) *RequestError {
	return &RequestError{
		requestURL: requestURL,
		statusCode: statusCode,
	}
}

func (e RequestError) Error() string {
	return fmt.Sprintf("request to %s failed with status code %d", e.requestURL.String(), e.statusCode)
}

func (e RequestError) StatusCode() int {
	return e.statusCode
}

// APIError An error reported in the response envelope (success=false), regardless of HTTP status
type APIError struct {
	Name    string
	Message string
}

func (e APIError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("api error: %s", e.Message)
	}
	return fmt.Sprintf("api error: %s: %s", e.Name, e.Message)
}
