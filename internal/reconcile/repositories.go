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

package reconcile

import (
	"github.com/shurcooL/githubv4"

	ghoaaerrors "github.com/noritada/ghoaa/internal/errors"
	"github.com/noritada/ghoaa/internal/github"
	"github.com/noritada/ghoaa/internal/output"
)

// CheckLanguages fails with an UnsupportedPaginationError for the first
// repository whose languages connection has more than one page.
// Only the first page of languages is ever fetched.
func CheckLanguages(batches [][]*github.RepositoryEdge) error {
	for _, batch := range batches {
		for _, repo := range github.PresentRepositories(batch) {
			if repo.Languages == nil || !bool(repo.Languages.PageInfo.HasNextPage) {
				continue
			}
			cursor := ""
			if c := repo.Languages.PageInfo.Cursor(); c != nil {
				cursor = *c
			}
			return ghoaaerrors.NewUnsupportedPaginationError(string(repo.Name), string(repo.ID), cursor)
		}
	}
	return nil
}

// RepositoryRecords flattens the repository batches in page and edge order.
// Callers run CheckLanguages first.
func RepositoryRecords(batches [][]*github.RepositoryEdge) []output.RepositoryRecord {
	var records []output.RepositoryRecord

	for _, batch := range batches {
		for _, repo := range github.PresentRepositories(batch) {
			record := output.RepositoryRecord{
				ID:          string(repo.ID),
				DatabaseID:  int64Ptr(repo.DatabaseID),
				Name:        string(repo.Name),
				CreatedAt:   repo.CreatedAt.Time,
				UpdatedAt:   repo.UpdatedAt.Time,
				IsFork:      bool(repo.IsFork),
				IsPrivate:   bool(repo.IsPrivate),
				Description: stringPtr(repo.Description),
			}
			if repo.PrimaryLanguage != nil {
				name := string(repo.PrimaryLanguage.Name)
				record.PrimaryLanguage = &name
			}
			for _, lang := range github.PresentLanguages(repo.Languages) {
				record.Languages = append(record.Languages, output.LanguageSize{
					Name: string(lang.Node.Name),
					Size: int64(lang.Size),
				})
			}
			records = append(records, record)
		}
	}

	return records
}

func stringPtr(s *githubv4.String) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func int64Ptr(i *githubv4.Int) *int64 {
	if i == nil {
		return nil
	}
	v := int64(*i)
	return &v
}
