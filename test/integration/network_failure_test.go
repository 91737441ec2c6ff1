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

package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/noritada/ghoaa/test/testutil"
)

// TestFailureExitCodes runs the CLI against servers that fail in different
// ways and checks the exit code, the error message and that no CSV is left.
func TestFailureExitCodes(t *testing.T) {
	skipUnlessIntegration(t)

	tests := []struct {
		name         string
		endpoint     func(t *testing.T) string
		env          map[string]string
		wantExitCode int
		wantErr      []string
	}{
		{
			name: "bad credentials",
			endpoint: func(t *testing.T) string {
				return testutil.NewErrorServer(t, http.StatusUnauthorized, `{"message":"Bad credentials"}`).URL
			},
			wantExitCode: 2,
			wantErr:      []string{"status code: 401 Unauthorized", "Bad credentials", "Hint: check that the token is valid"},
		},
		{
			name: "secondary rate limit",
			endpoint: func(t *testing.T) string {
				return testutil.NewErrorServer(t, http.StatusForbidden, `{"message":"You have exceeded a secondary rate limit"}`).URL
			},
			wantExitCode: 2,
			wantErr:      []string{"status code: 403 Forbidden", "Hint: the GitHub API rate limit was exceeded"},
		},
		{
			name: "unknown organization",
			endpoint: func(t *testing.T) string {
				s := testutil.NewGraphQLServer(t)
				s.AddMembersPages(testutil.ErrorResponse("Could not resolve to an Organization with the login of 'acme'."))
				return s.Endpoint()
			},
			wantExitCode: 2,
			wantErr:      []string{"resulted in output with errors:", "Could not resolve to an Organization", "Hint: check the organization name"},
		},
		{
			name: "server error",
			endpoint: func(t *testing.T) string {
				return testutil.NewErrorServer(t, http.StatusBadGateway, "upstream unavailable").URL
			},
			wantExitCode: 1,
			wantErr:      []string{"status code: 502 Bad Gateway", "upstream unavailable"},
		},
		{
			name: "connection refused",
			endpoint: func(t *testing.T) string {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
				server.Close()
				return server.URL
			},
			wantExitCode: 3,
			wantErr:      []string{"failed to reach GitHub API", "connection refused"},
		},
		{
			name: "timeout",
			endpoint: func(t *testing.T) string {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					select {
					case <-r.Context().Done():
					case <-time.After(5 * time.Second):
					}
				}))
				t.Cleanup(server.Close)
				return server.URL
			},
			env:          map[string]string{"GHOAA_HTTP_TIMEOUT": "200ms"},
			wantExitCode: 3,
			wantErr:      []string{"failed to reach GitHub API", "Hint: check your network connection"},
		},
		{
			name: "not JSON",
			endpoint: func(t *testing.T) string {
				s := testutil.NewGraphQLServer(t)
				s.AddMembersPages("<html>maintenance</html>")
				return s.Endpoint()
			},
			wantExitCode: 1,
			wantErr:      []string{"failed to decode GraphQL response"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			env := isolatedEnv(dir, tt.env)
			env["GHOAA_GRAPHQL_ENDPOINT"] = tt.endpoint(t)

			result := testutil.RunCLIInDir(t, dir, []string{"members", "acme", "members.csv"}, env)

			testutil.AssertExitCode(t, result, tt.wantExitCode)
			for _, want := range tt.wantErr {
				testutil.AssertCLIError(t, result, want)
			}
			testutil.AssertFileNotExists(t, filepath.Join(dir, "members.csv"))
		})
	}
}

// TestFailureOnLaterPage checks that responses received before a failure
// stay in the cache while the output file is never created.
func TestFailureOnLaterPage(t *testing.T) {
	skipUnlessIntegration(t)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) > 1 {
			http.Error(w, "upstream unavailable", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(testutil.RepositoriesResponse(testutil.Connection{
			Edges:       testutil.Edges(testutil.NewRepositoryBuilder(1)),
			HasNextPage: true,
			EndCursor:   "r1",
		}))
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	env := isolatedEnv(dir, map[string]string{"GHOAA_GRAPHQL_ENDPOINT": server.URL})
	result := testutil.RunCLIInDir(t, dir, []string{"-c", "raw", "repositories", "acme", "repos.csv"}, env)

	testutil.AssertExitCode(t, result, 1)
	testutil.AssertFileNotExists(t, filepath.Join(dir, "repos.csv"))
	testutil.AssertFileExists(t, filepath.Join(dir, "raw.00"))
	testutil.AssertFileNotExists(t, filepath.Join(dir, "raw.01"))
	if n := calls.Load(); n != 2 {
		t.Errorf("Expected 2 requests, got %d", n)
	}
}
