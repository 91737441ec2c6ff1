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

// Package output writes export rows as CSV.
//
// The column set and order of each export is fixed by MembersHeader and
// RepositoriesHeader. Optional values are written as empty fields and
// booleans as "true" or "false". Rows are written in the order they are
// given; nothing is sorted.
//
// Example usage:
//
//	w, err := output.NewFileWriter(output.ExpandPath("acme-%Y%m%d.csv", time.Now()), output.MembersHeader)
//	if err != nil {
//	    return err
//	}
//	for _, record := range records {
//	    if err := w.Write(record); err != nil {
//	        _ = w.Close()
//	        return err
//	    }
//	}
//	if err := w.Close(); err != nil {
//	    return err
//	}
//	fmt.Printf("Wrote %d rows\n", w.Count())
package output
