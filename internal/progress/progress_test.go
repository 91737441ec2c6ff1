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

package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalPlain(t *testing.T) {
	var buf bytes.Buffer
	term := newTerminal(&buf, false)

	term.Report(Signal{Kind: Downloading, Sequence: 0})
	term.Report(Signal{Kind: Downloaded, Sequence: 0, Bytes: 2048})
	term.Finish()

	assert.Equal(t, "Downloading page 1\nDownloaded page 1 (2.0 kB)\n", buf.String())
}

func TestTerminalTTYClearsLine(t *testing.T) {
	var buf bytes.Buffer
	term := newTerminal(&buf, true)

	term.Report(Signal{Kind: Downloading, Sequence: 2})
	term.Report(Signal{Kind: Downloaded, Sequence: 2, Bytes: 10})

	out := buf.String()
	assert.Contains(t, out, "page 3")
	assert.Contains(t, out, "\r\033[K")
	assert.Contains(t, out, "10 B")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Downloading", Downloading.String())
	assert.Equal(t, "Downloaded", Downloaded.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestNopDiscards(t *testing.T) {
	var r Reporter = Nop{}
	assert.NotPanics(t, func() {
		r.Report(Signal{Kind: Downloaded, Bytes: 1})
	})
}
