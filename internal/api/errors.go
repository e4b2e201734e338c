package api

import (
	"errors"
	"fmt"
)

// ErrNoAuthToken means the credential store holds no access token. It is
// returned before any network call is made; callers treat it as "redirect
// to login" rather than as a failure to display.
var ErrNoAuthToken = errors.New("no authentication token found")

// ErrLoginFailed means the backend answered the login call but did not
// grant a session.
var ErrLoginFailed = errors.New("login failed")

// RequestError reports a non-2xx response. The response body is never
// parsed: failure bodies are not guaranteed to exist, let alone be JSON.
type RequestError struct {
	Resource string
	Op       string
	Status   int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s failed (status %d)", e.Resource, e.Op, e.Status)
}

// ValidationError reports a client-side field check that failed before the
// request left the process. Field names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
