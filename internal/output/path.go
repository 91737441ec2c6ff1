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
	"path/filepath"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// ExpandPath expands strftime directives in an output path template, e.g.
// "acme-%Y%m%d.csv". It is evaluated once, at the start of a run.
// "%%" yields a literal percent sign.
func ExpandPath(template string, now time.Time) string {
	return strftime.Format(template, now)
}

// InsertSuffix inserts suffix before the file extension of path:
// "out/acme.csv" with "-members" becomes "out/acme-members.csv".
// A path without an extension gets the suffix appended.
func InsertSuffix(path, suffix string) string {
	dir, file := filepath.Split(path)
	ext := filepath.Ext(file)
	if ext == file {
		// Dotfiles like ".csv" have no base name to suffix.
		ext = ""
	}
	return dir + strings.TrimSuffix(file, ext) + suffix + ext
}
