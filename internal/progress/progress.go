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

// Package progress reports request progress to the user.
// Reports are observational only; nothing in an export run depends on them.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Kind identifies a progress event.
type Kind int

const (
	// Downloading is emitted before a request is sent.
	Downloading Kind = iota
	// Downloaded is emitted after a successful response body was received.
	Downloaded
)

func (k Kind) String() string {
	switch k {
	case Downloading:
		return "Downloading"
	case Downloaded:
		return "Downloaded"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Signal is a single progress event.
type Signal struct {
	Kind Kind
	// Sequence is the zero-based request number within the current export.
	Sequence int
	// Bytes is the size of the received body; zero for Downloading.
	Bytes int
}

// Reporter receives progress events.
type Reporter interface {
	Report(s Signal)
}

// Nop discards every event.
type Nop struct{}

// Report implements Reporter.
func (Nop) Report(Signal) {}

// Terminal prints one line per request. On a TTY the "Downloading" line is
// replaced in place by the matching "Downloaded" line.
type Terminal struct {
	mu          sync.Mutex
	out         io.Writer
	tty         bool
	downloading *color.Color
	downloaded  *color.Color
}

// NewTerminal returns a Terminal writing to f.
func NewTerminal(f *os.File) *Terminal {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return newTerminal(f, tty)
}

// NewWriterTerminal returns a Terminal for w, which is never treated as a TTY.
func NewWriterTerminal(w io.Writer) *Terminal {
	return newTerminal(w, false)
}

func newTerminal(w io.Writer, tty bool) *Terminal {
	t := &Terminal{
		out:         w,
		tty:         tty,
		downloading: color.New(color.FgYellow, color.Bold),
		downloaded:  color.New(color.FgGreen, color.Bold),
	}
	if !tty {
		t.downloading.DisableColor()
		t.downloaded.DisableColor()
	}
	return t
}

// Report implements Reporter. Write errors are ignored.
func (t *Terminal) Report(s Signal) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch s.Kind {
	case Downloading:
		if t.tty {
			fmt.Fprintf(t.out, "%s page %d", t.downloading.Sprint("Downloading"), s.Sequence+1)
			return
		}
		fmt.Fprintf(t.out, "%s page %d\n", t.downloading.Sprint("Downloading"), s.Sequence+1)
	case Downloaded:
		if t.tty {
			fmt.Fprint(t.out, "\r\033[K")
		}
		fmt.Fprintf(t.out, "%s page %d (%s)\n",
			t.downloaded.Sprint("Downloaded"), s.Sequence+1, humanize.Bytes(uint64(s.Bytes)))
	}
}

// Finish clears a dangling "Downloading" line left by a failed request.
func (t *Terminal) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tty {
		fmt.Fprint(t.out, "\r\033[K")
	}
}
