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

package main

import (
	"fmt"
	"io"

	"github.com/rodaine/table"

	"github.com/ianlewis/go-kty"
)

// printReport prints a build summary and the files written.
func printReport(w io.Writer, res *kty.Result, report *kty.Report, paths []string) {
	tbl := table.New("Dictionary", "Lines", "Processed", "Skipped", "Malformed", "Rejected", "Tags dropped", "Terms", "Meta").
		WithWriter(w)
	tbl.AddRow(res.Name, report.Lines, report.Processed, report.Skipped, report.Malformed,
		report.Rejected, report.TagsDropped, report.Terms, report.Meta)
	tbl.Print()

	if len(report.SkippedRecords) > 0 {
		fmt.Fprintln(w)
		skipped := table.New("Edition", "Line", "Word", "Reason").WithWriter(w)
		for _, s := range report.SkippedRecords {
			skipped.AddRow(s.Edition, s.Line, s.Word, s.Reason)
		}
		skipped.Print()
	}

	if res.Package == nil {
		fmt.Fprintf(w, "\nNo entries found for %s.\n", res.Name)
		return
	}
	fmt.Fprintln(w)
	for _, p := range paths {
		fmt.Fprintf(w, "Wrote %s\n", p)
	}
}
