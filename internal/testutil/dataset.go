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

// Package testutil holds helpers for writing test extracts.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-kty/kaikki"
)

// MakeLines encodes records as JSONL lines.
func MakeLines(t *testing.T, records ...*kaikki.Entry) []string {
	t.Helper()

	lines := make([]string, 0, len(records))
	for _, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			t.Fatal(err)
		}
		lines = append(lines, string(b))
	}
	return lines
}

// WriteLines writes lines to a new file named name under dir and returns
// its path.
func WriteLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// WriteExtract writes records as an extract for edition under dir and
// returns its path.
func WriteExtract(t *testing.T, dir, edition string, records ...*kaikki.Entry) string {
	t.Helper()

	return WriteLines(t, dir, edition+"-extract.jsonl", MakeLines(t, records...)...)
}
