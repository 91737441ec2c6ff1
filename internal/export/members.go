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

package export

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/noritada/ghoaa/internal/github"
	"github.com/noritada/ghoaa/internal/metadata"
	"github.com/noritada/ghoaa/internal/output"
	"github.com/noritada/ghoaa/internal/paginate"
	"github.com/noritada/ghoaa/internal/reconcile"
)

// Entity names, used in summaries, file names and cache prefixes.
const (
	EntityMembers      = "members"
	EntityRepositories = "repositories"
)

const (
	edgeMembers    paginate.Edge = "members"
	edgeIdentities paginate.Edge = "external identities"
)

type membersBatch struct {
	members    []*github.MemberEdge
	identities []*github.ExternalIdentityEdge
}

// Members exports the organization's members joined with their SAML NameID.
func Members(ctx context.Context, deps Deps, target Target) (metadata.Summary, error) {
	deps = deps.withDefaults()
	f, err := fetchMembers(ctx, deps, target)
	if err != nil {
		return metadata.Summary{}, err
	}
	return f.write()
}

func fetchMembers(ctx context.Context, deps Deps, target Target) (*fetched, error) {
	log := deps.Log.WithField("entity", EntityMembers)
	client := deps.NewClient(target.Cache)
	tracked := deps.Tracker.Start(EntityMembers)

	fetch := func(ctx context.Context, req paginate.Request) (paginate.Page[membersBatch], error) {
		tracked.IncrementAPICall()
		env, err := client.QueryMembers(ctx, github.MembersVariables{
			Organization:  target.Organization,
			MembersCursor: req.Cursor(edgeMembers),
			ExtIDsCursor:  req.Cursor(edgeIdentities),
		}, req.Sequence)
		if err != nil {
			return paginate.Page[membersBatch]{}, err
		}

		page, err := github.ExtractMembers(env)
		if err != nil {
			return paginate.Page[membersBatch]{}, err
		}

		// A finished connection keeps returning its last page.
		var batch membersBatch
		if req.Live(edgeMembers) {
			batch.members = page.Members
		}
		if req.Live(edgeIdentities) {
			batch.identities = page.Identities
		}

		return paginate.Page[membersBatch]{
			Batch: batch,
			PageInfos: map[paginate.Edge]paginate.PageInfo{
				edgeMembers:    pageInfo(page.MembersPageInfo),
				edgeIdentities: pageInfo(page.IdentitiesPageInfo),
			},
		}, nil
	}

	batches, err := paginate.Collect(ctx, []paginate.Edge{edgeMembers, edgeIdentities}, fetch)
	if err != nil {
		return nil, err
	}

	memberBatches := make([][]*github.MemberEdge, 0, len(batches))
	identityBatches := make([][]*github.ExternalIdentityEdge, 0, len(batches))
	for _, b := range batches {
		memberBatches = append(memberBatches, b.members)
		identityBatches = append(identityBatches, b.identities)
	}

	identities, conflicts := reconcile.BuildIdentityMap(identityBatches)
	for _, c := range conflicts {
		log.WithFields(logrus.Fields{
			"user_id":  c.UserID,
			"previous": deref(c.Previous),
			"current":  deref(c.Current),
		}).Warn("user linked to more than one SAML identity, keeping the later one")
	}

	records := reconcile.JoinMembers(memberBatches, identities)
	return &fetched{
		entity:  EntityMembers,
		path:    target.Path,
		header:  output.MembersHeader,
		rows:    rowsOf(records),
		tracked: tracked,
		log:     log,
		fields:  logrus.Fields{"identities": len(identities)},
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
