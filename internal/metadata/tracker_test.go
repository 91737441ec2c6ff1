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
	"bytes"
	"strings"
	"testing"
	"time"
)

// fakeClock advances by step every time it is read.
func fakeClock(start time.Time, step time.Duration) func() time.Time {
	current := start.Add(-step)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

func TestTracker_Finish(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tracker := newTracker("run-1", fakeClock(start, time.Second))

	export := tracker.Start("members")
	export.IncrementAPICall()
	export.IncrementAPICall()
	export.IncrementAPICall()

	if export.Requests() != 3 {
		t.Errorf("Requests() = %d, want 3", export.Requests())
	}

	summary := export.Finish("acme-members.csv", 42)

	want := Summary{
		Entity:   "members",
		Path:     "acme-members.csv",
		Rows:     42,
		Requests: 3,
		Elapsed:  time.Second,
	}
	if summary != want {
		t.Errorf("Finish() = %+v, want %+v", summary, want)
	}
	if tracker.RunID() != "run-1" {
		t.Errorf("RunID() = %q, want run-1", tracker.RunID())
	}
}

func TestTracker_SummariesInFinishOrder(t *testing.T) {
	tracker := newTracker("run-2", fakeClock(time.Unix(0, 0), time.Millisecond))

	members := tracker.Start("members")
	repos := tracker.Start("repositories")
	repos.Finish("repos.csv", 1)
	members.Finish("members.csv", 2)

	got := tracker.Summaries()
	if len(got) != 2 {
		t.Fatalf("Summaries() returned %d entries, want 2", len(got))
	}
	if got[0].Entity != "repositories" || got[1].Entity != "members" {
		t.Errorf("unexpected order: %s, %s", got[0].Entity, got[1].Entity)
	}

	// The returned slice is a copy.
	got[0].Rows = 99
	if tracker.Summaries()[0].Rows != 1 {
		t.Error("Summaries() exposed internal state")
	}
}

func TestNewGeneratesRunID(t *testing.T) {
	a, b := New(), New()
	if a.RunID() == "" {
		t.Fatal("RunID() is empty")
	}
	if a.RunID() == b.RunID() {
		t.Errorf("two trackers share run ID %s", a.RunID())
	}
}

func TestTracker_Render(t *testing.T) {
	tracker := newTracker("run-3", fakeClock(time.Unix(0, 0), 1500*time.Millisecond))
	export := tracker.Start("repositories")
	export.IncrementAPICall()
	export.Finish("out/acme-repositories.csv", 120)

	var buf bytes.Buffer
	tracker.Render(&buf)
	out := buf.String()

	for _, want := range []string{"ENTITY", "FILE", "ROWS", "REQUESTS", "ELAPSED", "repositories", "out/acme-repositories.csv", "120", "1.5s"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}
}
