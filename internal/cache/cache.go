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

package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	ghoaaerrors "github.com/noritada/ghoaa/internal/errors"
)

// Store saves raw response bodies under a common file name prefix.
type Store struct {
	prefix string
}

// New returns a Store for prefix, or nil when prefix is empty.
func New(prefix string) *Store {
	if prefix == "" {
		return nil
	}
	return &Store{prefix: prefix}
}

// Enabled reports whether responses are being cached.
func (s *Store) Enabled() bool {
	return s != nil
}

// Prefix returns the file name prefix, or "" for a nil Store.
func (s *Store) Prefix() string {
	if s == nil {
		return ""
	}
	return s.prefix
}

// WithSuffix returns a Store whose prefix is "<prefix>.<suffix>".
// It is used to keep the members and repositories caches of a single run apart.
func (s *Store) WithSuffix(suffix string) *Store {
	if s == nil {
		return nil
	}
	return &Store{prefix: s.prefix + "." + suffix}
}

// Path returns the cache file path for request sequence number seq.
func (s *Store) Path(seq int) string {
	return fmt.Sprintf("%s.%02d", s.prefix, seq)
}

// Save atomically writes body to the file for seq, replacing any existing file.
// It is a no-op on a nil Store.
func (s *Store) Save(seq int, body []byte) error {
	if s == nil {
		return nil
	}

	path := s.Path(seq)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ghoaaerrors.NewIOError("create cache directory", dir, err)
		}
	}

	tempFile := path + ".tmp"

	file, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return ghoaaerrors.NewIOError("create", tempFile, err)
	}
	if _, err := file.Write(body); err != nil {
		_ = file.Close()
		_ = os.Remove(tempFile)
		return ghoaaerrors.NewIOError("write", tempFile, err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		_ = os.Remove(tempFile)
		return ghoaaerrors.NewIOError("sync", tempFile, err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tempFile)
		return ghoaaerrors.NewIOError("close", tempFile, err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return ghoaaerrors.NewIOError("rename", tempFile, err)
	}

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(body),
	}).Debug("cached response body")

	return nil
}
