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

	"github.com/noritada/ghoaa/internal/github"
	"github.com/noritada/ghoaa/internal/metadata"
	"github.com/noritada/ghoaa/internal/output"
	"github.com/noritada/ghoaa/internal/paginate"
	"github.com/noritada/ghoaa/internal/reconcile"
)

const edgeRepositories paginate.Edge = "repositories"

// Repositories exports the organization's repositories with their
// languages breakdown. Every repository's languages must fit on one page;
// otherwise the export fails before the output file is created.
func Repositories(ctx context.Context, deps Deps, target Target) (metadata.Summary, error) {
	deps = deps.withDefaults()
	f, err := fetchRepositories(ctx, deps, target)
	if err != nil {
		return metadata.Summary{}, err
	}
	return f.write()
}

func fetchRepositories(ctx context.Context, deps Deps, target Target) (*fetched, error) {
	log := deps.Log.WithField("entity", EntityRepositories)
	client := deps.NewClient(target.Cache)
	tracked := deps.Tracker.Start(EntityRepositories)

	fetch := func(ctx context.Context, req paginate.Request) (paginate.Page[[]*github.RepositoryEdge], error) {
		tracked.IncrementAPICall()
		env, err := client.QueryRepositories(ctx, github.RepositoriesVariables{
			Organization:       target.Organization,
			RepositoriesCursor: req.Cursor(edgeRepositories),
		}, req.Sequence)
		if err != nil {
			return paginate.Page[[]*github.RepositoryEdge]{}, err
		}

		page, err := github.ExtractRepositories(env)
		if err != nil {
			return paginate.Page[[]*github.RepositoryEdge]{}, err
		}

		return paginate.Page[[]*github.RepositoryEdge]{
			Batch: page.Repositories,
			PageInfos: map[paginate.Edge]paginate.PageInfo{
				edgeRepositories: pageInfo(page.PageInfo),
			},
		}, nil
	}

	batches, err := paginate.Collect(ctx, []paginate.Edge{edgeRepositories}, fetch)
	if err != nil {
		return nil, err
	}

	if err := reconcile.CheckLanguages(batches); err != nil {
		return nil, err
	}

	records := reconcile.RepositoryRecords(batches)
	return &fetched{
		entity:  EntityRepositories,
		path:    target.Path,
		header:  output.RepositoriesHeader,
		rows:    rowsOf(records),
		tracked: tracked,
		log:     log,
	}, nil
}
