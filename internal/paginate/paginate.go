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

// Package paginate drives cursor-based pagination over one or more GraphQL
// connections that are fetched by the same request but advance
// independently.
//
// Every connection (an Edge) starts without a cursor. After each response an
// edge that reports a next page moves its cursor to the page's end cursor.
// An edge that reports no next page is finished: its cursor moves once to the
// final end cursor, so that later requests return nothing new for it, and is
// never touched again. Requests continue while any edge is unfinished. Data a
// response returns for an edge that was already finished must be discarded by
// the fetch function; Request.Live tells it which edges those are.
package paginate

import (
	"context"
	"maps"
	"strings"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"

	ghoaaerrors "github.com/noritada/ghoaa/internal/errors"
)

// Edge names one paginated connection.
type Edge string

// PageInfo is the pagination state an edge reported in one response.
type PageInfo struct {
	HasNextPage bool
	EndCursor   *string
}

// Request describes one page request.
type Request struct {
	// Sequence is zero for the first request and increments by one.
	Sequence int

	cursors map[Edge]*string
	live    map[Edge]bool
}

// Cursor returns the cursor to send for e, or nil for its first page.
func (r Request) Cursor(e Edge) *string {
	return r.cursors[e]
}

// Live reports whether e was unfinished when the request was made.
func (r Request) Live(e Edge) bool {
	return r.live[e]
}

// Page is the result of one fetch.
type Page[T any] struct {
	Batch     T
	PageInfos map[Edge]PageInfo
}

// FetchFunc performs one request.
type FetchFunc[T any] func(ctx context.Context, req Request) (Page[T], error)

// Collect calls fetch until every edge is finished and returns the batches
// in request order. The first error aborts the loop and is returned as is.
func Collect[T any](ctx context.Context, edges []Edge, fetch FetchFunc[T]) ([]T, error) {
	if len(edges) == 0 {
		return nil, errors.New("paginate: no edges")
	}

	cursors := make(map[Edge]*string, len(edges))
	live := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		live[e] = true
	}

	var batches []T
	for seq := 0; ; seq++ {
		req := Request{
			Sequence: seq,
			cursors:  maps.Clone(cursors),
			live:     maps.Clone(live),
		}

		logrus.WithFields(logrus.Fields{
			"sequence": seq,
			"cursors":  describe(edges, req),
		}).Debug("requesting page")

		page, err := fetch(ctx, req)
		if err != nil {
			return nil, err
		}
		batches = append(batches, page.Batch)

		remaining := 0
		for _, e := range edges {
			if !live[e] {
				continue
			}

			info, ok := page.PageInfos[e]
			if !ok {
				return nil, ghoaaerrors.NewMissingDataError(string(e) + " page info")
			}

			if info.HasNextPage {
				if info.EndCursor == nil {
					return nil, ghoaaerrors.NewMissingDataError(string(e) + " end cursor")
				}
				cursors[e] = info.EndCursor
				remaining++
				continue
			}

			live[e] = false
			if info.EndCursor != nil {
				cursors[e] = info.EndCursor
			}
			logrus.WithFields(logrus.Fields{
				"edge":     e,
				"sequence": seq,
			}).Debug("edge finished")
		}

		if remaining == 0 {
			return batches, nil
		}
	}
}

func describe(edges []Edge, req Request) string {
	parts := make([]string, 0, len(edges))
	for _, e := range edges {
		c := "<first>"
		if p := req.Cursor(e); p != nil {
			c = *p
		}
		if !req.Live(e) {
			c += " (finished)"
		}
		parts = append(parts, string(e)+"="+c)
	}
	return strings.Join(parts, " ")
}
