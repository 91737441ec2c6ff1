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
	"github.com/shurcooL/githubv4"
)

// Envelope is the top-level shape of every GraphQL response.
// A response carrying any entry in Errors is a failure even when Data is set.
type Envelope[T any] struct {
	Data   *T           `json:"data"`
	Errors []ErrorEntry `json:"errors"`
}

// ErrorEntry is one item of a GraphQL response's "errors" list.
type ErrorEntry struct {
	Message string `json:"message"`
}

// PageInfo is the pagination state GitHub reports for a connection.
type PageInfo struct {
	HasNextPage githubv4.Boolean `json:"hasNextPage"`
	EndCursor   *githubv4.String `json:"endCursor"`
}

// Cursor returns the end cursor as a plain string pointer.
func (p PageInfo) Cursor() *string {
	if p.EndCursor == nil {
		return nil
	}
	s := string(*p.EndCursor)
	return &s
}

// MembersEnvelope is the response to the members query.
type MembersEnvelope = Envelope[MembersData]

// RepositoriesEnvelope is the response to the repositories query.
type RepositoriesEnvelope = Envelope[RepositoriesData]

// MembersData is the "data" node of the members query.
type MembersData struct {
	Organization *MembersOrganization `json:"organization"`
}

// MembersOrganization holds both paginated connections of the members query.
type MembersOrganization struct {
	MembersWithRole      MemberConnection      `json:"membersWithRole"`
	SAMLIdentityProvider *SAMLIdentityProvider `json:"samlIdentityProvider"`
}

// MemberConnection is one page of organization members.
type MemberConnection struct {
	Edges    []*MemberEdge `json:"edges"`
	PageInfo *PageInfo     `json:"pageInfo"`
}

// MemberEdge carries the organization-scoped attributes of a member.
// HasTwoFactorEnabled is null unless the token belongs to an organization owner.
type MemberEdge struct {
	Role                githubv4.OrganizationMemberRole `json:"role"`
	HasTwoFactorEnabled *githubv4.Boolean               `json:"hasTwoFactorEnabled"`
	Node                *Member                         `json:"node"`
}

// Member is a GitHub user account.
type Member struct {
	ID         githubv4.String  `json:"id"`
	DatabaseID *githubv4.Int    `json:"databaseId"`
	Login      githubv4.String  `json:"login"`
	Name       *githubv4.String `json:"name"`
}

// SAMLIdentityProvider is the organization's SAML SSO configuration.
// It is null for organizations without SAML SSO.
type SAMLIdentityProvider struct {
	ExternalIdentities ExternalIdentityConnection `json:"externalIdentities"`
}

// ExternalIdentityConnection is one page of SAML external identities.
type ExternalIdentityConnection struct {
	Edges    []*ExternalIdentityEdge `json:"edges"`
	PageInfo *PageInfo               `json:"pageInfo"`
}

// ExternalIdentityEdge wraps one external identity.
type ExternalIdentityEdge struct {
	Node *ExternalIdentity `json:"node"`
}

// ExternalIdentity links a SAML identity to a GitHub user.
// User is null when the identity was provisioned but never linked.
type ExternalIdentity struct {
	SAMLIdentity *SAMLIdentity `json:"samlIdentity"`
	User         *IdentityUser `json:"user"`
}

// SAMLIdentity holds the attributes asserted by the identity provider.
type SAMLIdentity struct {
	NameID *githubv4.String `json:"nameId"`
}

// IdentityUser is the GitHub user an external identity is linked to.
type IdentityUser struct {
	ID githubv4.String `json:"id"`
}

// RepositoriesData is the "data" node of the repositories query.
type RepositoriesData struct {
	Organization *RepositoriesOrganization `json:"organization"`
}

// RepositoriesOrganization holds the repositories connection.
type RepositoriesOrganization struct {
	Repositories RepositoryConnection `json:"repositories"`
}

// RepositoryConnection is one page of organization repositories.
type RepositoryConnection struct {
	Edges    []*RepositoryEdge `json:"edges"`
	PageInfo *PageInfo         `json:"pageInfo"`
}

// RepositoryEdge wraps one repository.
type RepositoryEdge struct {
	Node *Repository `json:"node"`
}

// Repository is the repository metadata exported to CSV.
type Repository struct {
	ID              githubv4.String     `json:"id"`
	DatabaseID      *githubv4.Int       `json:"databaseId"`
	Name            githubv4.String     `json:"name"`
	CreatedAt       githubv4.DateTime   `json:"createdAt"`
	UpdatedAt       githubv4.DateTime   `json:"updatedAt"`
	IsFork          githubv4.Boolean    `json:"isFork"`
	IsPrivate       githubv4.Boolean    `json:"isPrivate"`
	PrimaryLanguage *Language           `json:"primaryLanguage"`
	Languages       *LanguageConnection `json:"languages"`
	Description     *githubv4.String    `json:"description"`
}

// LanguageConnection is the first page of a repository's languages,
// ordered by size descending.
type LanguageConnection struct {
	Edges    []*LanguageEdge `json:"edges"`
	PageInfo PageInfo        `json:"pageInfo"`
}

// LanguageEdge is the number of bytes written in one language.
type LanguageEdge struct {
	Size githubv4.Int `json:"size"`
	Node Language     `json:"node"`
}

// Language is a programming language detected by GitHub.
type Language struct {
	Name githubv4.String `json:"name"`
}

// PresentMembers returns the member edges that carry a node, in order.
// Null edges and edges with a null node are skipped.
func PresentMembers(edges []*MemberEdge) []*MemberEdge {
	present := make([]*MemberEdge, 0, len(edges))
	for _, e := range edges {
		if e != nil && e.Node != nil {
			present = append(present, e)
		}
	}
	return present
}

// PresentIdentities returns the external identities that are linked to a
// GitHub user, in order. Null edges, null nodes and unlinked identities are
// skipped.
func PresentIdentities(edges []*ExternalIdentityEdge) []*ExternalIdentity {
	present := make([]*ExternalIdentity, 0, len(edges))
	for _, e := range edges {
		if e != nil && e.Node != nil && e.Node.User != nil {
			present = append(present, e.Node)
		}
	}
	return present
}

// PresentRepositories returns the repositories of non-null edges, in order.
func PresentRepositories(edges []*RepositoryEdge) []*Repository {
	present := make([]*Repository, 0, len(edges))
	for _, e := range edges {
		if e != nil && e.Node != nil {
			present = append(present, e.Node)
		}
	}
	return present
}

// PresentLanguages returns the non-null language edges, in order.
func PresentLanguages(conn *LanguageConnection) []*LanguageEdge {
	if conn == nil {
		return nil
	}
	present := make([]*LanguageEdge, 0, len(conn.Edges))
	for _, e := range conn.Edges {
		if e != nil {
			present = append(present, e)
		}
	}
	return present
}

// MembersPage is the validated content of one members response.
type MembersPage struct {
	Members            []*MemberEdge
	MembersPageInfo    PageInfo
	Identities         []*ExternalIdentityEdge
	IdentitiesPageInfo PageInfo
}

// RepositoriesPage is the validated content of one repositories response.
type RepositoriesPage struct {
	Repositories []*RepositoryEdge
	PageInfo     PageInfo
}
