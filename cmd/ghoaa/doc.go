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

// Package main implements the ghoaa command-line interface.
// ghoaa exports GitHub organization data as CSV for auditing and archiving.
//
// Subcommands:
//   - members: members with role, two-factor status and SAML NameID
//   - repositories: repositories with timestamps and language breakdown
//   - all: both, written to OUT_FILE with -members and -repositories suffixes
//
// Usage:
//
//	ghoaa [flags] members|repositories|all ORGANIZATION OUT_FILE
//
// Example:
//
//	export GITHUB_ACCESS_TOKEN=your_token
//	ghoaa -c cache/acme members acme 'acme-members-%Y%m%d.csv'
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Authentication, organization not found or rate limit error
//   - 3: Network error
package main
