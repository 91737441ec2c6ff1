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

package testutil

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"
)

// ReadCSV reads every record of a CSV file, header included
func ReadCSV(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV file %s: %v", path, err)
	}
	return records
}

// AssertCSVHeader checks the first record of a CSV file
func AssertCSVHeader(t *testing.T, path string, expected []string) {
	t.Helper()

	records := ReadCSV(t, path)
	if len(records) == 0 {
		t.Fatalf("CSV file %s is empty", path)
	}
	if got := strings.Join(records[0], ","); got != strings.Join(expected, ",") {
		t.Errorf("CSV header = %s, want %s", got, strings.Join(expected, ","))
	}
}

// AssertCSVRowCount checks the number of data rows, header excluded
func AssertCSVRowCount(t *testing.T, path string, expected int) {
	t.Helper()

	records := ReadCSV(t, path)
	if got := len(records) - 1; got != expected {
		t.Errorf("CSV %s has %d data rows, want %d", path, got, expected)
	}
}

// CSVColumn returns the values of the named column, header excluded
func CSVColumn(t *testing.T, path, column string) []string {
	t.Helper()

	records := ReadCSV(t, path)
	if len(records) == 0 {
		t.Fatalf("CSV file %s is empty", path)
	}
	idx := -1
	for i, name := range records[0] {
		if name == column {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatalf("CSV file %s has no column %q", path, column)
	}

	values := make([]string, 0, len(records)-1)
	for _, r := range records[1:] {
		values = append(values, r[idx])
	}
	return values
}
