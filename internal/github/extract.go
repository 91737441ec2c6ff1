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
	ghoaaerrors "github.com/noritada/ghoaa/internal/errors"
)

// ExtractMembers validates a members response and unwraps both connections.
// Any entry in the response's errors list fails the page, whatever data
// came with it.
func ExtractMembers(env *MembersEnvelope) (*MembersPage, error) {
	if err := checkErrors(env.Errors); err != nil {
		return nil, err
	}
	if env.Data == nil || env.Data.Organization == nil {
		return nil, ghoaaerrors.NewMissingDataError("organization info")
	}
	org := env.Data.Organization

	members := org.MembersWithRole
	if members.Edges == nil {
		return nil, ghoaaerrors.NewMissingDataError("members list")
	}
	if members.PageInfo == nil {
		return nil, ghoaaerrors.NewMissingDataError("members page info")
	}

	if org.SAMLIdentityProvider == nil {
		return nil, ghoaaerrors.NewMissingDataError("external identity info")
	}
	identities := org.SAMLIdentityProvider.ExternalIdentities
	if identities.Edges == nil {
		return nil, ghoaaerrors.NewMissingDataError("SAML identity list")
	}
	if identities.PageInfo == nil {
		return nil, ghoaaerrors.NewMissingDataError("SAML identity page info")
	}

	return &MembersPage{
		Members:            members.Edges,
		MembersPageInfo:    *members.PageInfo,
		Identities:         identities.Edges,
		IdentitiesPageInfo: *identities.PageInfo,
	}, nil
}

// ExtractRepositories validates a repositories response and unwraps the
// repositories connection.
func ExtractRepositories(env *RepositoriesEnvelope) (*RepositoriesPage, error) {
	if err := checkErrors(env.Errors); err != nil {
		return nil, err
	}
	if env.Data == nil || env.Data.Organization == nil {
		return nil, ghoaaerrors.NewMissingDataError("organization info")
	}

	repos := env.Data.Organization.Repositories
	if repos.Edges == nil {
		return nil, ghoaaerrors.NewMissingDataError("repositories list")
	}
	if repos.PageInfo == nil {
		return nil, ghoaaerrors.NewMissingDataError("repositories page info")
	}

	return &RepositoriesPage{
		Repositories: repos.Edges,
		PageInfo:     *repos.PageInfo,
	}, nil
}

func checkErrors(entries []ErrorEntry) error {
	if len(entries) == 0 {
		return nil
	}
	messages := make([]string, 0, len(entries))
	for _, e := range entries {
		messages = append(messages, e.Message)
	}
	return ghoaaerrors.NewGraphQLError(messages)
}
