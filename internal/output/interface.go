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

// Row is one CSV record. Fields must return one value per header column.
type Row interface {
	Fields() []string
}

// OutputWriter defines the interface for writing export rows.
type OutputWriter interface {
	// Write writes a single row to the output.
	Write(row Row) error

	// Close flushes buffered rows, closes the underlying writer and reports
	// any error that occurred while writing.
	Close() error
}
