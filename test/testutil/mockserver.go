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

// Package testutil provides common test helpers for ghoaa
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// GraphQLRequest represents a parsed GraphQL request
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	Authorization string                 `json:"-"`
	UserAgent     string                 `json:"-"`
}

// Operation returns the name of the query operation, e.g. "MembersView".
func (r GraphQLRequest) Operation() string {
	q := strings.TrimSpace(r.Query)
	q = strings.TrimPrefix(q, "query")
	q = strings.TrimSpace(q)
	if i := strings.IndexAny(q, "( {"); i >= 0 {
		return q[:i]
	}
	return q
}

// GraphQLServer is a mock GitHub GraphQL endpoint serving scripted pages.
// Members and repositories queries each have their own page list, served in
// request order; the last page is repeated once a list is exhausted.
// A page is either a value encoded as JSON or a string written verbatim.
type GraphQLServer struct {
	*httptest.Server

	mu           sync.Mutex
	members      []interface{}
	repositories []interface{}
	served       map[string]int
	requests     []GraphQLRequest
}

// NewGraphQLServer starts a mock server that is closed when the test ends
func NewGraphQLServer(t *testing.T) *GraphQLServer {
	t.Helper()

	s := &GraphQLServer{served: make(map[string]int)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Endpoint returns the GraphQL endpoint URL
func (s *GraphQLServer) Endpoint() string {
	return s.URL + "/graphql"
}

// AddMembersPages appends responses for the members query
func (s *GraphQLServer) AddMembersPages(pages ...interface{}) *GraphQLServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, pages...)
	return s
}

// AddRepositoriesPages appends responses for the repositories query
func (s *GraphQLServer) AddRepositoriesPages(pages ...interface{}) *GraphQLServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repositories = append(s.repositories, pages...)
	return s
}

// Requests returns every request received so far
func (s *GraphQLServer) Requests() []GraphQLRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]GraphQLRequest(nil), s.requests...)
}

func (s *GraphQLServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/graphql" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	var req GraphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"Problems parsing JSON"}`, http.StatusBadRequest)
		return
	}
	req.Authorization = r.Header.Get("Authorization")
	req.UserAgent = r.Header.Get("User-Agent")

	s.mu.Lock()
	s.requests = append(s.requests, req)
	var pages []interface{}
	switch req.Operation() {
	case "MembersView":
		pages = s.members
	case "RepositoriesView":
		pages = s.repositories
	}
	n := s.served[req.Operation()]
	s.served[req.Operation()]++
	s.mu.Unlock()

	if len(pages) == 0 {
		http.Error(w, `{"message":"no pages scripted"}`, http.StatusInternalServerError)
		return
	}
	page := pages[min(n, len(pages)-1)]

	w.Header().Set("Content-Type", "application/json")
	if raw, ok := page.(string); ok {
		_, _ = w.Write([]byte(raw))
		return
	}
	_ = json.NewEncoder(w).Encode(page)
}

// NewErrorServer creates a mock server that always returns the specified status and body
func NewErrorServer(t *testing.T, statusCode int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// CursorVariable returns the named cursor variable of a request, or nil when it was null.
func CursorVariable(req GraphQLRequest, name string) *string {
	v, ok := req.Variables[name].(string)
	if !ok {
		return nil
	}
	return &v
}
