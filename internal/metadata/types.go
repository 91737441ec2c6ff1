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

// Package metadata types describe what a run produced. A Summary is recorded
// for every CSV file written and rendered as a table when the run ends.
package metadata

import (
	"time"
)

// Summary describes one completed export.
type Summary struct {
	// Entity is "members" or "repositories".
	Entity string
	// Path is the CSV file that was written.
	Path string
	// Rows is the number of data rows, header excluded.
	Rows int
	// Requests is the number of GraphQL requests made.
	Requests int
	Elapsed  time.Duration
}
