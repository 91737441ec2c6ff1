// Copyright 2026 The ghoaa Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines the failure kinds an export run can end with.
// Every kind is fatal: callers propagate it unchanged to the CLI, which maps
// it to an exit code and a single message on stderr.
package errors

import (
	"fmt"
	"net/http"
	"strings"

	"emperror.dev/errors"
)

// ErrMissingToken indicates no GitHub access token was configured.
const ErrMissingToken = errors.Sentinel("github access token not found")

// local is embedded in failures that happen on this side of the API. It
// answers every inspector question with false, so an error message that
// happens to contain "401" or "404" is never taken for a GitHub response.
type local struct{}

func (local) IsAuthError() bool      { return false }
func (local) IsNotFoundError() bool  { return false }
func (local) IsRateLimitError() bool { return false }
func (local) IsNetworkError() bool   { return false }

// TransportError indicates the request never produced an HTTP response,
// or the response body could not be read.
type TransportError struct {
	Err error
}

// NewTransportError wraps err as a TransportError with a stack trace.
func NewTransportError(err error) error {
	return errors.WithStack(&TransportError{Err: err})
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to reach GitHub API: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsNetworkError marks transport failures for the error inspector.
func (e *TransportError) IsNetworkError() bool { return true }

func (e *TransportError) IsAuthError() bool      { return false }
func (e *TransportError) IsNotFoundError() bool  { return false }
func (e *TransportError) IsRateLimitError() bool { return false }

// HTTPStatusError is returned for any 4xx or 5xx response.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

// NewHTTPStatusError creates an HTTPStatusError with a stack trace.
func NewHTTPStatusError(statusCode int, body string) error {
	return errors.WithStack(&HTTPStatusError{StatusCode: statusCode, Body: body})
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("failed to get a successful response:\n    status code: %d %s\n    body: %s",
		e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// IsAuthError reports 401 and non rate-limit 403 responses.
func (e *HTTPStatusError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized ||
		(e.StatusCode == http.StatusForbidden && !e.IsRateLimitError())
}

// IsRateLimitError reports 429 responses and 403 responses that mention the rate limit.
func (e *HTTPStatusError) IsRateLimitError() bool {
	if e.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return e.StatusCode == http.StatusForbidden && strings.Contains(strings.ToLower(e.Body), "rate limit")
}

// IsNotFoundError reports 404 responses.
func (e *HTTPStatusError) IsNotFoundError() bool {
	return e.StatusCode == http.StatusNotFound
}

func (e *HTTPStatusError) IsNetworkError() bool { return false }

// DecodeError indicates the response body is not the expected JSON shape.
type DecodeError struct {
	local
	Err error
}

// NewDecodeError wraps err as a DecodeError with a stack trace.
func NewDecodeError(err error) error {
	return errors.WithStack(&DecodeError{Err: err})
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode GraphQL response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// GraphQLError carries every message of a response's "errors" list.
type GraphQLError struct {
	Messages []string
}

// NewGraphQLError creates a GraphQLError with a stack trace.
func NewGraphQLError(messages []string) error {
	return errors.WithStack(&GraphQLError{Messages: messages})
}

func (e *GraphQLError) Error() string {
	return "resulted in output with errors:\n    " + strings.Join(e.Messages, "\n    ")
}

// IsNotFoundError reports an organization login that GitHub could not resolve.
func (e *GraphQLError) IsNotFoundError() bool {
	return e.mentions("could not resolve to an organization")
}

// IsAuthError reports SAML enforcement and missing admin rights.
func (e *GraphQLError) IsAuthError() bool {
	return e.mentions("saml enforcement", "must have admin rights", "bad credentials")
}

// IsRateLimitError reports a RATE_LIMITED response.
func (e *GraphQLError) IsRateLimitError() bool {
	return e.mentions("rate limit")
}

func (e *GraphQLError) IsNetworkError() bool { return false }

func (e *GraphQLError) mentions(phrases ...string) bool {
	for _, m := range e.Messages {
		m = strings.ToLower(m)
		for _, p := range phrases {
			if strings.Contains(m, p) {
				return true
			}
		}
	}
	return false
}

// MissingDataError names a node that an error-free response must contain.
type MissingDataError struct {
	local
	Node string
}

// NewMissingDataError creates a MissingDataError with a stack trace.
func NewMissingDataError(node string) error {
	return errors.WithStack(&MissingDataError{Node: node})
}

func (e *MissingDataError) Error() string {
	return e.Node + " not found"
}

// UnsupportedPaginationError is returned when a repository's languages
// connection has more than one page.
type UnsupportedPaginationError struct {
	local
	Repository   string
	RepositoryID string
	Cursor       string
}

// NewUnsupportedPaginationError creates an UnsupportedPaginationError with a stack trace.
func NewUnsupportedPaginationError(repository, repositoryID, cursor string) error {
	return errors.WithStack(&UnsupportedPaginationError{
		Repository:   repository,
		RepositoryID: repositoryID,
		Cursor:       cursor,
	})
}

func (e *UnsupportedPaginationError) Error() string {
	return fmt.Sprintf("'languages' needs pagination support!\n    repository: %s\n    repository id: %s\n    languages end cursor: %s",
		e.Repository, e.RepositoryID, e.Cursor)
}

// IOError wraps a failure writing a cache file or the output file.
type IOError struct {
	local
	Op   string
	Path string
	Err  error
}

// NewIOError creates an IOError with a stack trace.
func NewIOError(op, path string, err error) error {
	return errors.WithStack(&IOError{Op: op, Path: path, Err: err})
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ConfigError reports an invalid or missing configuration value.
type ConfigError struct {
	local
	Field   string
	Message string
}

// NewConfigError creates a ConfigError with a stack trace.
func NewConfigError(field, message string) error {
	return errors.WithStack(&ConfigError{Field: field, Message: message})
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
