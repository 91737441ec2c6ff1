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

package output

import (
	"strconv"
	"strings"
	"time"
)

// MembersHeader is the header of the members CSV.
var MembersHeader = []string{
	"id",
	"database_id",
	"login",
	"name",
	"role",
	"has_two_factor_enabled",
	"saml_name_id",
}

// RepositoriesHeader is the header of the repositories CSV.
var RepositoriesHeader = []string{
	"id",
	"database_id",
	"name",
	"created_at",
	"updated_at",
	"is_fork",
	"is_private",
	"primary_language",
	"languages",
	"description",
}

// MemberRecord is one row of the members CSV.
type MemberRecord struct {
	ID                  string
	DatabaseID          *int64
	Login               string
	Name                *string
	Role                string
	HasTwoFactorEnabled *bool
	SAMLNameID          *string
}

// Fields implements Row.
func (r MemberRecord) Fields() []string {
	return []string{
		r.ID,
		optionalInt(r.DatabaseID),
		r.Login,
		optionalString(r.Name),
		r.Role,
		optionalBool(r.HasTwoFactorEnabled),
		optionalString(r.SAMLNameID),
	}
}

// LanguageSize is the number of bytes of one language in a repository.
type LanguageSize struct {
	Name string
	Size int64
}

func (l LanguageSize) String() string {
	return l.Name + ":" + strconv.FormatInt(l.Size, 10)
}

// RepositoryRecord is one row of the repositories CSV.
type RepositoryRecord struct {
	ID              string
	DatabaseID      *int64
	Name            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	IsFork          bool
	IsPrivate       bool
	PrimaryLanguage *string
	Languages       []LanguageSize
	Description     *string
}

// Fields implements Row. Timestamps are RFC 3339 in UTC and languages are
// "name:size" pairs joined with ";".
func (r RepositoryRecord) Fields() []string {
	langs := make([]string, len(r.Languages))
	for i, l := range r.Languages {
		langs[i] = l.String()
	}
	return []string{
		r.ID,
		optionalInt(r.DatabaseID),
		r.Name,
		r.CreatedAt.UTC().Format(time.RFC3339),
		r.UpdatedAt.UTC().Format(time.RFC3339),
		strconv.FormatBool(r.IsFork),
		strconv.FormatBool(r.IsPrivate),
		optionalString(r.PrimaryLanguage),
		strings.Join(langs, ";"),
		optionalString(r.Description),
	}
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalInt(i *int64) string {
	if i == nil {
		return ""
	}
	return strconv.FormatInt(*i, 10)
}

func optionalBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
