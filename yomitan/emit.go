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

package yomitan

import (
	"fmt"
	"slices"
	"strings"
)

// Output is the output of a dictionary builder.
type Output struct {
	Terms []TermRow
	Meta  []MetaRow
	Tags  []TagRow
}

// Len returns the number of term and meta rows.
func (o *Output) Len() int {
	return len(o.Terms) + len(o.Meta)
}

// Package is a complete dictionary.
type Package struct {
	Index Index
	Terms []TermRow
	Meta  []MetaRow

	// Tags is sorted by name.
	Tags []TagRow
}

// Emit validates a builder's output and assembles it with index into a
// Package. Tag rows are deduplicated by name and sorted. Term and meta rows
// keep their order.
func Emit(out *Output, index Index) (*Package, error) {
	if err := index.Validate(); err != nil {
		return nil, err
	}
	for i := range out.Terms {
		if err := validateTerm(&out.Terms[i]); err != nil {
			return nil, err
		}
	}
	for i := range out.Meta {
		if err := validateMeta(&out.Meta[i]); err != nil {
			return nil, err
		}
	}

	tags := slices.Clone(out.Tags)
	slices.SortStableFunc(tags, func(a, b TagRow) int {
		return strings.Compare(a.Name, b.Name)
	})
	tags = slices.CompactFunc(tags, func(a, b TagRow) bool {
		return a.Name == b.Name
	})

	return &Package{
		Index: index,
		Terms: slices.Clone(out.Terms),
		Meta:  slices.Clone(out.Meta),
		Tags:  tags,
	}, nil
}

func validateTerm(r *TermRow) error {
	if r.Term == "" {
		return fmt.Errorf("%w: term row with empty term", ErrSchema)
	}
	if len(r.Glossary) == 0 {
		return fmt.Errorf("%w: term %q has no definitions", ErrSchema, r.Term)
	}
	for _, d := range r.Glossary {
		switch d := d.(type) {
		case Text:
			if d == "" {
				return fmt.Errorf("%w: term %q has an empty definition", ErrSchema, r.Term)
			}
		case Deinflection:
			if d.Uninflected == "" {
				return fmt.Errorf("%w: term %q has an empty uninflected form", ErrSchema, r.Term)
			}
		case StructuredContent:
			if d.Content == nil {
				return fmt.Errorf("%w: term %q has empty structured content", ErrSchema, r.Term)
			}
		case nil:
			return fmt.Errorf("%w: term %q has a nil definition", ErrSchema, r.Term)
		}
	}
	return nil
}

func validateMeta(r *MetaRow) error {
	if r.Term == "" {
		return fmt.Errorf("%w: meta row with empty term", ErrSchema)
	}
	if len(r.Transcriptions) == 0 {
		return fmt.Errorf("%w: term %q has no transcriptions", ErrSchema, r.Term)
	}
	for _, tr := range r.Transcriptions {
		if tr.IPA == "" {
			return fmt.Errorf("%w: term %q has an empty transcription", ErrSchema, r.Term)
		}
	}
	return nil
}
