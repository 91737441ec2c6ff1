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

// Package export runs the members and repositories exports end to end:
// paginate the organization's connections, join the result sets and write
// the CSV file.
//
// Nothing is written to the output path until pagination has completed
// without error, so a failed run never leaves a partial CSV behind.
package export

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/noritada/ghoaa/internal/cache"
	"github.com/noritada/ghoaa/internal/config"
	"github.com/noritada/ghoaa/internal/github"
	"github.com/noritada/ghoaa/internal/metadata"
	"github.com/noritada/ghoaa/internal/output"
	"github.com/noritada/ghoaa/internal/paginate"
)

// Deps are the collaborators of an export run.
type Deps struct {
	// NewClient returns a client that caches raw responses in store.
	// store is nil when caching is disabled.
	NewClient func(store *cache.Store) github.Client
	Log       logrus.FieldLogger
	Tracker   *metadata.Tracker
	// Now is read once, to expand the output path template.
	Now func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Log == nil {
		d.Log = logrus.StandardLogger()
	}
	if d.Tracker == nil {
		d.Tracker = metadata.New()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Target is what a single export reads and where it writes.
type Target struct {
	Organization string
	Path         string
	Cache        *cache.Store
}

// Run executes the export selected by run.Mode and returns the summary of
// every file written.
func Run(ctx context.Context, deps Deps, run *config.Run) ([]metadata.Summary, error) {
	deps = deps.withDefaults()

	target := Target{
		Organization: run.Org,
		Path:         output.ExpandPath(run.OutCSVFile, deps.Now()),
		Cache:        cache.New(run.CacheFilePrefix),
	}

	switch run.Mode {
	case config.ModeMembers:
		s, err := Members(ctx, deps, target)
		if err != nil {
			return nil, err
		}
		return []metadata.Summary{s}, nil
	case config.ModeRepositories:
		s, err := Repositories(ctx, deps, target)
		if err != nil {
			return nil, err
		}
		return []metadata.Summary{s}, nil
	default:
		return All(ctx, deps, target)
	}
}

// All runs the members export and then the repositories export. Each
// writes its own file, named by inserting "-members" or "-repositories"
// before the extension of target.Path. Cache files get the entity name
// appended to their prefix.
//
// Both entities are fetched before either file is written, and a failure
// to write the second file removes the first.
func All(ctx context.Context, deps Deps, target Target) ([]metadata.Summary, error) {
	deps = deps.withDefaults()

	members, err := fetchMembers(ctx, deps, Target{
		Organization: target.Organization,
		Path:         output.InsertSuffix(target.Path, "-"+EntityMembers),
		Cache:        target.Cache.WithSuffix(EntityMembers),
	})
	if err != nil {
		return nil, err
	}

	repositories, err := fetchRepositories(ctx, deps, Target{
		Organization: target.Organization,
		Path:         output.InsertSuffix(target.Path, "-"+EntityRepositories),
		Cache:        target.Cache.WithSuffix(EntityRepositories),
	})
	if err != nil {
		return nil, err
	}

	ms, err := members.write()
	if err != nil {
		return nil, err
	}
	rs, err := repositories.write()
	if err != nil {
		members.remove()
		return nil, err
	}

	return []metadata.Summary{ms, rs}, nil
}

// fetched is an export whose pages have all been collected and joined,
// waiting to be written.
type fetched struct {
	entity  string
	path    string
	header  []string
	rows    []output.Row
	tracked *metadata.Export
	log     logrus.FieldLogger
	fields  logrus.Fields
}

func (f *fetched) write() (metadata.Summary, error) {
	n, err := writeCSV(f.path, f.header, f.rows)
	if err != nil {
		return metadata.Summary{}, err
	}

	summary := f.tracked.Finish(f.path, n)
	f.log.WithFields(f.fields).WithFields(logrus.Fields{
		"path":     summary.Path,
		"rows":     summary.Rows,
		"requests": summary.Requests,
	}).Info(f.entity + " export complete")

	return summary, nil
}

func (f *fetched) remove() {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		f.log.WithError(err).WithField("path", f.path).Warn("could not remove output file")
	}
}

func rowsOf[R output.Row](records []R) []output.Row {
	rows := make([]output.Row, len(records))
	for i, r := range records {
		rows[i] = r
	}
	return rows
}

// writeCSV creates path and writes header and rows to it. The file is
// removed again if any row fails to write.
func writeCSV(path string, header []string, rows []output.Row) (int, error) {
	w, err := output.NewFileWriter(path, header)
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			_ = w.Close()
			_ = os.Remove(path)
			return 0, err
		}
	}
	if err := w.Close(); err != nil {
		_ = os.Remove(path)
		return 0, err
	}
	return w.Count(), nil
}

func pageInfo(p github.PageInfo) paginate.PageInfo {
	return paginate.PageInfo{
		HasNextPage: bool(p.HasNextPage),
		EndCursor:   p.Cursor(),
	}
}
