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

package testutil

import (
	"fmt"
	"time"
)

// MemberBuilder provides a fluent API for creating test members
type MemberBuilder struct {
	id         string
	databaseID *int
	login      string
	name       *string
	role       string
	twoFactor  *bool
}

// NewMemberBuilder creates a member builder with defaults derived from n
func NewMemberBuilder(n int) *MemberBuilder {
	dbID := 1000 + n
	name := fmt.Sprintf("User %d", n)
	twoFactor := true
	return &MemberBuilder{
		id:         fmt.Sprintf("U_%03d", n),
		databaseID: &dbID,
		login:      fmt.Sprintf("user%d", n),
		name:       &name,
		role:       "MEMBER",
		twoFactor:  &twoFactor,
	}
}

// WithID sets the global node ID
func (b *MemberBuilder) WithID(id string) *MemberBuilder {
	b.id = id
	return b
}

// WithLogin sets the login
func (b *MemberBuilder) WithLogin(login string) *MemberBuilder {
	b.login = login
	return b
}

// WithoutName makes the display name null
func (b *MemberBuilder) WithoutName() *MemberBuilder {
	b.name = nil
	return b
}

// WithoutDatabaseID makes the database ID null
func (b *MemberBuilder) WithoutDatabaseID() *MemberBuilder {
	b.databaseID = nil
	return b
}

// AsAdmin sets the role to ADMIN
func (b *MemberBuilder) AsAdmin() *MemberBuilder {
	b.role = "ADMIN"
	return b
}

// WithTwoFactor sets hasTwoFactorEnabled; nil makes it null
func (b *MemberBuilder) WithTwoFactor(enabled *bool) *MemberBuilder {
	b.twoFactor = enabled
	return b
}

// ID returns the member's node ID, for linking identities
func (b *MemberBuilder) ID() string {
	return b.id
}

// Build creates the member edge
func (b *MemberBuilder) Build() map[string]interface{} {
	return map[string]interface{}{
		"role":                b.role,
		"hasTwoFactorEnabled": b.twoFactor,
		"node": map[string]interface{}{
			"id":         b.id,
			"databaseId": b.databaseID,
			"login":      b.login,
			"name":       b.name,
		},
	}
}

// Identity creates an external identity edge linked to userID.
// An empty nameID yields a null nameId.
func Identity(userID, nameID string) map[string]interface{} {
	var saml interface{}
	if nameID != "" {
		saml = map[string]interface{}{"nameId": nameID}
	} else {
		saml = map[string]interface{}{"nameId": nil}
	}
	return map[string]interface{}{
		"node": map[string]interface{}{
			"samlIdentity": saml,
			"user":         map[string]interface{}{"id": userID},
		},
	}
}

// UnlinkedIdentity creates an external identity edge without a GitHub user
func UnlinkedIdentity(nameID string) map[string]interface{} {
	return map[string]interface{}{
		"node": map[string]interface{}{
			"samlIdentity": map[string]interface{}{"nameId": nameID},
			"user":         nil,
		},
	}
}

// Connection describes one page of a connection
type Connection struct {
	Edges       []interface{}
	HasNextPage bool
	EndCursor   string
}

func (c Connection) build() map[string]interface{} {
	edges := c.Edges
	if edges == nil {
		edges = []interface{}{}
	}
	var cursor interface{}
	if c.EndCursor != "" {
		cursor = c.EndCursor
	}
	return map[string]interface{}{
		"edges": edges,
		"pageInfo": map[string]interface{}{
			"hasNextPage": c.HasNextPage,
			"endCursor":   cursor,
		},
	}
}

// MembersResponse generates a members query response
func MembersResponse(members, identities Connection) map[string]interface{} {
	return map[string]interface{}{
		"data": map[string]interface{}{
			"organization": map[string]interface{}{
				"membersWithRole": members.build(),
				"samlIdentityProvider": map[string]interface{}{
					"externalIdentities": identities.build(),
				},
			},
		},
	}
}

// RepositoryBuilder provides a fluent API for creating test repositories
type RepositoryBuilder struct {
	id               string
	databaseID       int
	name             string
	createdAt        time.Time
	updatedAt        time.Time
	isFork           bool
	isPrivate        bool
	primaryLanguage  *string
	languages        []languageSize
	languagesHasNext bool
	languagesCursor  string
	description      *string
}

type languageSize struct {
	name string
	size int
}

// NewRepositoryBuilder creates a repository builder with defaults derived from n
func NewRepositoryBuilder(n int) *RepositoryBuilder {
	created := time.Date(2020, 1, n%28+1, 12, 0, 0, 0, time.UTC)
	return &RepositoryBuilder{
		id:         fmt.Sprintf("R_%03d", n),
		databaseID: 5000 + n,
		name:       fmt.Sprintf("repo-%d", n),
		createdAt:  created,
		updatedAt:  created.Add(24 * time.Hour),
	}
}

// WithName sets the repository name
func (b *RepositoryBuilder) WithName(name string) *RepositoryBuilder {
	b.name = name
	return b
}

// WithTimes sets createdAt and updatedAt
func (b *RepositoryBuilder) WithTimes(created, updated time.Time) *RepositoryBuilder {
	b.createdAt = created
	b.updatedAt = updated
	return b
}

// AsFork marks the repository as a fork
func (b *RepositoryBuilder) AsFork() *RepositoryBuilder {
	b.isFork = true
	return b
}

// AsPrivate marks the repository as private
func (b *RepositoryBuilder) AsPrivate() *RepositoryBuilder {
	b.isPrivate = true
	return b
}

// WithPrimaryLanguage sets the primary language
func (b *RepositoryBuilder) WithPrimaryLanguage(name string) *RepositoryBuilder {
	b.primaryLanguage = &name
	return b
}

// WithLanguage appends a language edge
func (b *RepositoryBuilder) WithLanguage(name string, size int) *RepositoryBuilder {
	b.languages = append(b.languages, languageSize{name: name, size: size})
	return b
}

// WithMoreLanguages makes the languages connection report a next page
func (b *RepositoryBuilder) WithMoreLanguages(cursor string) *RepositoryBuilder {
	b.languagesHasNext = true
	b.languagesCursor = cursor
	return b
}

// WithDescription sets the description
func (b *RepositoryBuilder) WithDescription(d string) *RepositoryBuilder {
	b.description = &d
	return b
}

// Build creates the repository edge
func (b *RepositoryBuilder) Build() map[string]interface{} {
	langs := make([]interface{}, len(b.languages))
	for i, l := range b.languages {
		langs[i] = map[string]interface{}{
			"size": l.size,
			"node": map[string]interface{}{"name": l.name},
		}
	}

	var primary interface{}
	if b.primaryLanguage != nil {
		primary = map[string]interface{}{"name": *b.primaryLanguage}
	}

	return map[string]interface{}{
		"node": map[string]interface{}{
			"id":              b.id,
			"databaseId":      b.databaseID,
			"name":            b.name,
			"createdAt":       b.createdAt.Format(time.RFC3339),
			"updatedAt":       b.updatedAt.Format(time.RFC3339),
			"isFork":          b.isFork,
			"isPrivate":       b.isPrivate,
			"primaryLanguage": primary,
			"languages": Connection{
				Edges:       langs,
				HasNextPage: b.languagesHasNext,
				EndCursor:   b.languagesCursor,
			}.build(),
			"description": b.description,
		},
	}
}

// RepositoriesResponse generates a repositories query response
func RepositoriesResponse(repos Connection) map[string]interface{} {
	return map[string]interface{}{
		"data": map[string]interface{}{
			"organization": map[string]interface{}{
				"repositories": repos.build(),
			},
		},
	}
}

// ErrorResponse generates a response carrying GraphQL errors
func ErrorResponse(messages ...string) map[string]interface{} {
	errs := make([]map[string]interface{}, len(messages))
	for i, m := range messages {
		errs[i] = map[string]interface{}{"message": m}
	}
	return map[string]interface{}{
		"data":   nil,
		"errors": errs,
	}
}

// Edges converts builders and raw edges into a Connection edge list
func Edges(items ...interface{}) []interface{} {
	edges := make([]interface{}, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case *MemberBuilder:
			edges = append(edges, v.Build())
		case *RepositoryBuilder:
			edges = append(edges, v.Build())
		default:
			edges = append(edges, v)
		}
	}
	return edges
}
