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

package main

import (
	"emperror.dev/errors"

	ghoaaerrors "github.com/noritada/ghoaa/internal/errors"
	"github.com/noritada/ghoaa/internal/giterror"
)

// Exit codes.
const (
	exitOK      = 0
	exitGeneral = 1
	exitAuth    = 2 // authentication, not found or rate limit
	exitNetwork = 3
)

var inspector = giterror.NewInspector()

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return exitOK
	}

	if errors.Is(err, ghoaaerrors.ErrMissingToken) ||
		inspector.IsAuthError(err) ||
		inspector.IsNotFoundError(err) ||
		inspector.IsRateLimitError(err) {
		return exitAuth
	}

	if inspector.IsNetworkError(err) {
		return exitNetwork
	}

	return exitGeneral
}

// errorHint suggests a fix for failures the inspector recognizes.
func errorHint(err error) string {
	var paginationErr *ghoaaerrors.UnsupportedPaginationError

	switch {
	case errors.Is(err, ghoaaerrors.ErrMissingToken):
		return "set GITHUB_ACCESS_TOKEN in the environment or in a .env file in the working directory"
	case errors.As(err, &paginationErr):
		return "this repository has more languages than fit on one page, which is not supported"
	case inspector.IsRateLimitError(err):
		return "the GitHub API rate limit was exceeded; wait for it to reset and run again"
	case inspector.IsAuthError(err):
		return "check that the token is valid and has the read:org and admin:org scopes, and that it is authorized for SAML SSO"
	case inspector.IsNotFoundError(err):
		return "check the organization name"
	case inspector.IsNetworkError(err):
		return "check your network connection and the GraphQL endpoint"
	}
	return ""
}
