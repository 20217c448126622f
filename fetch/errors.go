// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package fetch

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"
)

// maxUsernameLen is the longest username GitHub permits.
const maxUsernameLen = 39

// InvalidUsernameError is reported for a username that GitHub could not
// accept, before any request is made.
type InvalidUsernameError struct {
	Name   string // the rejected name
	Reason string // why it was rejected
}

func (e *InvalidUsernameError) Error() string {
	return fmt.Sprintf("invalid username %q: %s", e.Name, e.Reason)
}

// ValidateUsername reports an error of concrete type *InvalidUsernameError
// if name is empty, contains spaces, or is longer than GitHub allows.
// Otherwise it returns nil; the server remains the authority on whether the
// user exists.
func ValidateUsername(name string) error {
	switch {
	case name == "":
		return &InvalidUsernameError{Name: name, Reason: "username cannot be empty"}
	case strings.Contains(name, " "):
		return &InvalidUsernameError{Name: name, Reason: "username cannot contain spaces"}
	case len(name) > maxUsernameLen:
		return &InvalidUsernameError{
			Name:   name,
			Reason: fmt.Sprintf("username is too long (max %d characters)", maxUsernameLen),
		}
	}
	return nil
}

// IsNotFound reports whether err is a GitHub API 404 Not Found response.
// GitHub reports an unknown user this way.
func IsNotFound(err error) bool {
	var rsp *github.ErrorResponse
	return errors.As(err, &rsp) && rsp.Response != nil && rsp.Response.StatusCode == http.StatusNotFound
}

// IsRateLimited reports whether err is a GitHub API primary or secondary
// rate limit response.
func IsRateLimited(err error) bool {
	var rle *github.RateLimitError
	var abuse *github.AbuseRateLimitError
	return errors.As(err, &rle) || errors.As(err, &abuse)
}
