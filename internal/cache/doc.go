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

// Package cache writes the raw body of every GraphQL response to disk.
//
// Files are named "<prefix>.<seq>" where seq is the zero-based request
// sequence number rendered with at least two digits, so a members export
// with prefix "resp" produces resp.00, resp.01 and so on. Bodies are stored
// byte-for-byte as received. Every write is atomic, using a
// write-to-temp-and-rename pattern so a crash never leaves a truncated file
// under the final name.
//
// A nil *Store is valid and disables caching.
//
// Example usage:
//
//	store := cache.New("resp")
//	if err := store.Save(0, body); err != nil {
//	    return err
//	}
package cache
