// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package diag

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiagnostics_tags(t *testing.T) {
	t.Parallel()

	d := New()
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.AcceptTag("plural", "Haus")
			d.RejectTag("oddity", "Haus")
		}()
	}
	wg.Wait()
	d.RejectTag("rare", "Maus")

	want := []TagCount{
		{Tag: "oddity", Count: 10, Word: "Haus"},
		{Tag: "rare", Count: 1, Word: "Maus"},
	}
	if diff := cmp.Diff(want, d.Rejected()); diff != "" {
		t.Errorf("Rejected (-want, +got):\n%s", diff)
	}
	if got := d.Dropped(); got != 11 {
		t.Errorf("Dropped: want 11, got %d", got)
	}
	if diff := cmp.Diff([]TagCount{{Tag: "plural", Count: 10, Word: "Haus"}}, d.Accepted()); diff != "" {
		t.Errorf("Accepted (-want, +got):\n%s", diff)
	}
}

func TestDiagnostics_skip(t *testing.T) {
	t.Parallel()

	d := New()
	for i := range maxSkipped + 5 {
		d.Skip(Skipped{Edition: "en", Line: i + 1, Reason: "empty headword"})
	}

	if got := d.SkippedCount(); got != maxSkipped+5 {
		t.Errorf("SkippedCount: want %d, got %d", maxSkipped+5, got)
	}
	if got := len(d.SkippedRecords()); got != maxSkipped {
		t.Errorf("len(SkippedRecords): want %d, got %d", maxSkipped, got)
	}
}

func TestDiagnostics_Apply(t *testing.T) {
	t.Parallel()

	logs := make([]*Log, 3)
	var wg sync.WaitGroup
	for i, word := range []string{"Haus", "Maus", "Laus"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := &Log{}
			l.AcceptTag("plural", word)
			l.RejectTag("oddity", word)
			if word == "Maus" {
				l.Skip(Skipped{Edition: "en", Line: i + 1, Word: word, Reason: "no senses"})
			}
			logs[i] = l
		}()
	}
	wg.Wait()

	d := New()
	for _, l := range logs {
		d.Apply(l)
	}
	d.Apply(nil)

	if diff := cmp.Diff([]TagCount{{Tag: "plural", Count: 3, Word: "Haus"}}, d.Accepted()); diff != "" {
		t.Errorf("Accepted (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]TagCount{{Tag: "oddity", Count: 3, Word: "Haus"}}, d.Rejected()); diff != "" {
		t.Errorf("Rejected (-want, +got):\n%s", diff)
	}
	wantSkipped := []Skipped{{Edition: "en", Line: 2, Word: "Maus", Reason: "no senses"}}
	if diff := cmp.Diff(wantSkipped, d.SkippedRecords()); diff != "" {
		t.Errorf("SkippedRecords (-want, +got):\n%s", diff)
	}
}

func TestDiagnostics_Write(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Nothing to report.
	if err := New().Write(dir); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "tags.json")); !os.IsNotExist(err) {
		t.Fatalf("tags.json should not exist: %v", err)
	}

	d := New()
	d.RejectTag("oddity", "Haus")
	if err := d.Write(dir); err != nil {
		t.Fatalf("Write: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "tags.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var got struct {
		Rejected []TagCount `json:"rejected"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff([]TagCount{{Tag: "oddity", Count: 1, Word: "Haus"}}, got.Rejected); diff != "" {
		t.Errorf("tags.json rejected (-want, +got):\n%s", diff)
	}
}
