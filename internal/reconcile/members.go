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

// Package reconcile joins the independently paginated result sets of an
// export into CSV records.
//
// Members and SAML external identities arrive as two streams of pages with
// no ordering relationship between them. BuildIdentityMap indexes the
// identity stream by GitHub user ID and JoinMembers looks every member up
// in that index, so the join is correct whatever page a member or its
// identity landed on.
package reconcile

import (
	"github.com/noritada/ghoaa/internal/github"
	"github.com/noritada/ghoaa/internal/output"
)

// IdentityMap maps a GitHub user ID to the SAML NameID of its linked
// identity. A nil value means the identity has no NameID.
type IdentityMap map[string]*string

// Conflict records a user ID seen on more than one external identity.
// The Current value replaced the Previous one.
type Conflict struct {
	UserID   string
	Previous *string
	Current  *string
}

// BuildIdentityMap flattens the identity batches in page order and indexes
// them by user ID. Unlinked identities are skipped. When a user ID repeats,
// the later identity wins; an overwrite that changes the NameID is returned
// as a Conflict.
func BuildIdentityMap(batches [][]*github.ExternalIdentityEdge) (IdentityMap, []Conflict) {
	identities := make(IdentityMap)
	var conflicts []Conflict

	for _, batch := range batches {
		for _, identity := range github.PresentIdentities(batch) {
			userID := string(identity.User.ID)
			nameID := samlNameID(identity)

			if previous, ok := identities[userID]; ok && !sameNameID(previous, nameID) {
				conflicts = append(conflicts, Conflict{
					UserID:   userID,
					Previous: previous,
					Current:  nameID,
				})
			}
			identities[userID] = nameID
		}
	}

	return identities, conflicts
}

func sameNameID(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func samlNameID(identity *github.ExternalIdentity) *string {
	if identity.SAMLIdentity == nil || identity.SAMLIdentity.NameID == nil {
		return nil
	}
	s := string(*identity.SAMLIdentity.NameID)
	return &s
}

// JoinMembers flattens the member batches in page and edge order and
// attaches each member's SAML NameID. Members without a linked identity
// get an empty saml_name_id.
func JoinMembers(batches [][]*github.MemberEdge, identities IdentityMap) []output.MemberRecord {
	var records []output.MemberRecord

	for _, batch := range batches {
		for _, edge := range github.PresentMembers(batch) {
			member := edge.Node
			record := output.MemberRecord{
				ID:         string(member.ID),
				DatabaseID: int64Ptr(member.DatabaseID),
				Login:      string(member.Login),
				Name:       stringPtr(member.Name),
				Role:       string(edge.Role),
				SAMLNameID: identities[string(member.ID)],
			}
			if edge.HasTwoFactorEnabled != nil {
				enabled := bool(*edge.HasTwoFactorEnabled)
				record.HasTwoFactorEnabled = &enabled
			}
			records = append(records, record)
		}
	}

	return records
}
