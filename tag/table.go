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

package tag

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ianlewis/go-kty/internal/textnorm"
)

// ErrConfig indicates that the tag configuration tables are inconsistent.
var ErrConfig = errors.New("tag configuration")

// Tag is a canonical tag.
type Tag struct {
	// Name is the canonical tag name. Names are unique within a Table.
	Name string

	// Category is the tag's category (e.g. "gender", "dialect").
	Category string

	// Order is the tag's position in the flattened order table. No two tags
	// in a Table share an Order.
	Order int

	// SortingOrder is the display sorting order written to the dictionary's
	// tag bank.
	SortingOrder int

	// Notes are display notes. Each note is also an alias of the tag.
	Notes []string

	// Popularity is the tag's popularity score.
	Popularity float64
}

// String implements [fmt.Stringer].
func (t *Tag) String() string {
	return t.Name
}

// InCategory reports whether the tag belongs to one of the given categories.
func (t *Tag) InCategory(categories ...string) bool {
	return slices.Contains(categories, t.Category)
}

// Compare orders tags by their order key.
func Compare(a, b *Tag) int {
	return a.Order - b.Order
}

// Table is an immutable tag lookup table.
type Table struct {
	// tags is sorted by Order.
	tags []*Tag

	byName  map[string]*Tag
	byAlias map[string]*Tag
}

// Len returns the number of tags in the table.
func (t *Table) Len() int {
	return len(t.tags)
}

// Tags returns all tags sorted by order key.
func (t *Table) Tags() []*Tag {
	return slices.Clone(t.tags)
}

// Lookup returns the tag with the given canonical name.
func (t *Table) Lookup(name string) (*Tag, bool) {
	tag, ok := t.byName[name]
	return tag, ok
}

// Resolve resolves a raw tag string to its canonical tag. Canonical names
// take precedence over aliases. It returns false if the tag is unknown.
// Resolving the same string always returns the same *Tag.
func (t *Table) Resolve(raw string) (*Tag, bool) {
	key := textnorm.Clean(raw)
	if key == "" {
		return nil, false
	}
	if tag, ok := t.byName[key]; ok {
		return tag, true
	}
	tag, ok := t.byAlias[key]
	return tag, ok
}

// newTable builds a table from the flattened order list and info rows.
func newTable(order []orderItem, info []infoRow) (*Table, error) {
	t := &Table{
		byName:  make(map[string]*Tag, len(order)),
		byAlias: map[string]*Tag{},
	}

	for i, item := range order {
		name := textnorm.Clean(item.name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty tag name in category %q", ErrConfig, item.category)
		}
		if prev, ok := t.byName[name]; ok {
			return nil, fmt.Errorf("%w: tag %q listed in order table twice (categories %q and %q)",
				ErrConfig, name, prev.Category, item.category)
		}
		tag := &Tag{
			Name:     name,
			Category: item.category,
			Order:    i,
		}
		t.byName[name] = tag
		t.tags = append(t.tags, tag)
	}

	seen := make(map[string]bool, len(info))
	for _, row := range info {
		name := textnorm.Clean(row.name)
		tag, ok := t.byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: tag %q has no entry in the order table", ErrConfig, row.name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: tag %q listed in information table twice", ErrConfig, name)
		}
		seen[name] = true

		if row.category != "" {
			tag.Category = row.category
		}
		tag.SortingOrder = row.sortingOrder
		tag.Notes = row.notes
		tag.Popularity = row.popularity
	}

	// Aliases are added after all names are known so that conflicts with
	// canonical names are detected regardless of row order.
	for _, tag := range t.tags {
		for _, note := range tag.Notes {
			alias := textnorm.Clean(note)
			if alias == "" || alias == tag.Name {
				continue
			}
			if other, ok := t.byName[alias]; ok {
				return nil, fmt.Errorf("%w: alias %q of tag %q is the name of tag %q",
					ErrConfig, alias, tag.Name, other.Name)
			}
			if other, ok := t.byAlias[alias]; ok && other != tag {
				return nil, fmt.Errorf("%w: alias %q is ambiguous between tags %q and %q",
					ErrConfig, alias, other.Name, tag.Name)
			}
			t.byAlias[alias] = tag
		}
	}

	return t, nil
}

// NotesString returns the tag's notes as a single display string.
func (t *Tag) NotesString() string {
	return strings.Join(t.Notes, ", ")
}
