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

package metadata

import (
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
)

// Tracker collects the summaries of one run.
type Tracker struct {
	mu        sync.Mutex
	runID     string
	startTime time.Time
	now       func() time.Time
	summaries []Summary
}

// New creates a Tracker with a fresh run ID.
func New() *Tracker {
	return newTracker(uuid.NewString(), time.Now)
}

func newTracker(runID string, now func() time.Time) *Tracker {
	return &Tracker{
		runID:     runID,
		startTime: now(),
		now:       now,
	}
}

// RunID identifies the run in log entries.
func (t *Tracker) RunID() string {
	return t.runID
}

// Export tracks a single export in progress.
type Export struct {
	tracker      *Tracker
	entity       string
	startTime    time.Time
	apiCallCount int
}

// Start begins tracking an export of entity.
func (t *Tracker) Start(entity string) *Export {
	return &Export{
		tracker:   t,
		entity:    entity,
		startTime: t.now(),
	}
}

// IncrementAPICall counts one GraphQL request.
func (e *Export) IncrementAPICall() {
	e.apiCallCount++
}

// Requests returns the number of requests counted so far.
func (e *Export) Requests() int {
	return e.apiCallCount
}

// Finish records the export as complete and returns its summary.
func (e *Export) Finish(path string, rows int) Summary {
	s := Summary{
		Entity:   e.entity,
		Path:     path,
		Rows:     rows,
		Requests: e.apiCallCount,
		Elapsed:  e.tracker.now().Sub(e.startTime),
	}

	e.tracker.mu.Lock()
	e.tracker.summaries = append(e.tracker.summaries, s)
	e.tracker.mu.Unlock()

	return s
}

// Summaries returns the completed exports in the order they finished.
func (t *Tracker) Summaries() []Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Summary, len(t.summaries))
	copy(out, t.summaries)
	return out
}

// Elapsed returns the time since the tracker was created.
func (t *Tracker) Elapsed() time.Duration {
	return t.now().Sub(t.startTime)
}

// Render writes the summaries as a table.
func (t *Tracker) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Entity", "File", "Rows", "Requests", "Elapsed"})
	for _, s := range t.Summaries() {
		table.Append([]string{
			s.Entity,
			s.Path,
			strconv.Itoa(s.Rows),
			strconv.Itoa(s.Requests),
			s.Elapsed.Round(time.Millisecond).String(),
		})
	}
	table.Render()
}
