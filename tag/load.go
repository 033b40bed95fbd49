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
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

//go:embed data/tag_order.json
var defaultOrder []byte

//go:embed data/tag_bank_terms.json
var defaultInfo []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

type orderItem struct {
	category string
	name     string
}

type infoRow struct {
	name         string
	category     string
	sortingOrder int
	notes        []string
	popularity   float64
}

// Default returns the table built from the embedded default configuration.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Load(bytes.NewReader(defaultOrder), bytes.NewReader(defaultInfo))
	})
	return defaultTable, defaultErr
}

// LoadFiles builds a table from the order and information table files.
func LoadFiles(orderPath, infoPath string) (*Table, error) {
	orderFile, err := os.Open(orderPath)
	if err != nil {
		return nil, fmt.Errorf("opening order table: %w", err)
	}
	defer orderFile.Close()

	infoFile, err := os.Open(infoPath)
	if err != nil {
		return nil, fmt.Errorf("opening information table: %w", err)
	}
	defer infoFile.Close()

	return Load(orderFile, infoFile)
}

// Load builds a table from the order and information tables. Errors caused by
// inconsistent tables wrap ErrConfig and name the offending tag.
func Load(order, info io.Reader) (*Table, error) {
	items, err := decodeOrder(order)
	if err != nil {
		return nil, err
	}
	rows, err := decodeInfo(info)
	if err != nil {
		return nil, err
	}
	return newTable(items, rows)
}

// decodeOrder decodes the order table. The object is read token by token
// because the order of its keys is significant.
func decodeOrder(r io.Reader) ([]orderItem, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var items []orderItem
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: order table: %w", ErrConfig, err)
		}
		category, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: order table: unexpected token %v", ErrConfig, tok)
		}

		var names []string
		if err := dec.Decode(&names); err != nil {
			return nil, fmt.Errorf("%w: order table: category %q: %w", ErrConfig, category, err)
		}
		for _, name := range names {
			items = append(items, orderItem{category: category, name: name})
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return items, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: order table: %w", ErrConfig, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: order table: expected %q, got %v", ErrConfig, want, tok)
	}
	return nil
}

// decodeInfo decodes the information table.
func decodeInfo(r io.Reader) ([]infoRow, error) {
	var raw [][]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: information table: %w", ErrConfig, err)
	}

	rows := make([]infoRow, 0, len(raw))
	for i, fields := range raw {
		row, err := decodeInfoRow(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: information table row %d: %w", ErrConfig, i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeInfoRow(fields []json.RawMessage) (infoRow, error) {
	var row infoRow
	if len(fields) != 5 {
		return row, fmt.Errorf("want 5 fields, got %d", len(fields))
	}
	if err := json.Unmarshal(fields[0], &row.name); err != nil {
		return row, fmt.Errorf("name: %w", err)
	}
	if err := json.Unmarshal(fields[1], &row.category); err != nil {
		return row, fmt.Errorf("tag %q: category: %w", row.name, err)
	}
	if err := json.Unmarshal(fields[2], &row.sortingOrder); err != nil {
		return row, fmt.Errorf("tag %q: sorting order: %w", row.name, err)
	}
	notes, err := decodeNotes(fields[3])
	if err != nil {
		return row, fmt.Errorf("tag %q: notes: %w", row.name, err)
	}
	row.notes = notes
	if err := json.Unmarshal(fields[4], &row.popularity); err != nil {
		return row, fmt.Errorf("tag %q: popularity: %w", row.name, err)
	}
	return row, nil
}

// decodeNotes decodes notes given as either a string or a list of strings.
func decodeNotes(b json.RawMessage) ([]string, error) {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s == "" {
			return nil, nil
		}
		return []string{s}, nil
	}
	var l []string
	if err := json.Unmarshal(b, &l); err != nil {
		return nil, err
	}
	return l, nil
}
