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

package kty

import (
	"github.com/ianlewis/go-kty/internal/diag"
)

// Report summarizes a build.
type Report struct {
	// Lines is the number of lines read.
	Lines int

	// Malformed is the number of lines that could not be decoded, including
	// lines that were too long.
	Malformed int

	// Rejected is the number of records excluded by the filter and reject
	// matches.
	Rejected int

	// Processed is the number of records normalized.
	Processed int

	// Skipped is the number of records that failed to normalize.
	Skipped int

	// TagsDropped is the number of unknown tags dropped.
	TagsDropped int

	// Terms and Meta are the number of rows written across all
	// dictionaries.
	Terms int
	Meta  int

	// SkippedRecords holds the first skipped lines and records.
	SkippedRecords []diag.Skipped
}

func (r *Report) finish(d *diag.Diagnostics, results []*Result) {
	r.TagsDropped = d.Dropped()
	r.SkippedRecords = d.SkippedRecords()
	for _, res := range results {
		if res.Package == nil {
			continue
		}
		r.Terms += len(res.Package.Terms)
		r.Meta += len(res.Package.Meta)
	}
}
