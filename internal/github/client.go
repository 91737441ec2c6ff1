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

package github

import (
	"context"

	"github.com/shurcooL/graphql"
)

// Client defines the interface for querying GitHub's GraphQL API.
// This interface allows for easy mocking in tests.
type Client interface {
	// QueryMembers retrieves one page of organization members together with
	// one page of SAML external identities. seq is the zero-based request
	// number within the current export and names the cache file.
	QueryMembers(ctx context.Context, vars MembersVariables, seq int) (*MembersEnvelope, error)

	// QueryRepositories retrieves one page of organization repositories.
	QueryRepositories(ctx context.Context, vars RepositoriesVariables, seq int) (*RepositoriesEnvelope, error)
}

// MembersVariables are the variables of the members query.
// A nil cursor requests the first page of its connection.
type MembersVariables struct {
	Organization  string
	MembersCursor *string
	ExtIDsCursor  *string
}

func (v MembersVariables) graphQL() map[string]interface{} {
	return map[string]interface{}{
		"organization":  graphql.String(v.Organization),
		"membersCursor": optionalString(v.MembersCursor),
		"extIdsCursor":  optionalString(v.ExtIDsCursor),
	}
}

// RepositoriesVariables are the variables of the repositories query.
type RepositoriesVariables struct {
	Organization       string
	RepositoriesCursor *string
}

func (v RepositoriesVariables) graphQL() map[string]interface{} {
	return map[string]interface{}{
		"organization":       graphql.String(v.Organization),
		"repositoriesCursor": optionalString(v.RepositoriesCursor),
	}
}

// optionalString converts a cursor into a nullable GraphQL string.
func optionalString(s *string) *graphql.String {
	if s == nil {
		return nil
	}
	return graphql.NewString(graphql.String(*s))
}
