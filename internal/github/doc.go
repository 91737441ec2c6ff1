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

// Package github queries GitHub's GraphQL API for organization members,
// their SAML external identities and repositories.
//
// The package includes:
//   - A Client interface with one method per query
//   - An HTTPS implementation that caches raw bodies and reports progress
//   - Extractors that validate a response before its data is used
//   - Mock client for testing
//   - Type definitions for the response envelopes
//
// Basic usage:
//
//	client := github.NewGraphQLClient(token, github.DefaultEndpoint)
//	env, err := client.QueryMembers(ctx, github.MembersVariables{Organization: "acme"}, 0)
//	if err != nil {
//	    // Handle error
//	}
//	page, err := github.ExtractMembers(env)
package github
