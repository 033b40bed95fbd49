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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// DefaultBankSize is the default number of rows per bank file.
const DefaultBankSize = 25000

// WriteOptions are options for writing a Package.
type WriteOptions struct {
	// BankSize is the maximum number of rows per bank file.
	BankSize int

	// Pretty indents the JSON files.
	Pretty bool
}

// DefaultWriteOptions is the default options for writing a Package.
var DefaultWriteOptions = WriteOptions{
	BankSize: DefaultBankSize,
}

// File is a file of a dictionary.
type File struct {
	Name string
	Data []byte
}

// Files returns the files of the dictionary in archive order.
func (p *Package) Files(opts *WriteOptions) ([]File, error) {
	if opts == nil {
		opts = &DefaultWriteOptions
	}
	size := opts.BankSize
	if size <= 0 {
		size = DefaultBankSize
	}

	var files []File
	add := func(name string, v any) error {
		b, err := encodeJSON(v, opts.Pretty)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
		files = append(files, File{Name: name, Data: b})
		return nil
	}

	if err := add("index.json", p.Index); err != nil {
		return nil, err
	}
	if len(p.Tags) > 0 {
		if err := add("tag_bank_1.json", p.Tags); err != nil {
			return nil, err
		}
	}
	for i, bank := range chunk(p.Terms, size) {
		if err := add(fmt.Sprintf("term_bank_%d.json", i+1), bank); err != nil {
			return nil, err
		}
	}
	for i, bank := range chunk(p.Meta, size) {
		if err := add(fmt.Sprintf("term_meta_bank_%d.json", i+1), bank); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// WriteZip writes the dictionary as a zip archive to w. File modification
// times are set to the index revision so that the archive only depends on
// the package contents.
func (p *Package) WriteZip(w io.Writer, opts *WriteOptions) error {
	modified, err := p.Index.Time()
	if err != nil {
		return err
	}
	files, err := p.Files(opts)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for _, f := range files {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("creating %s: %w", f.Name, err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}

// WriteZipFile writes the dictionary as a zip archive at path, creating
// parent directories as needed.
func (p *Package) WriteZipFile(path string, opts *WriteOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	if err := p.WriteZip(f, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}

// WriteDir writes the dictionary files unarchived into dir.
func (p *Package) WriteDir(dir string, opts *WriteOptions) error {
	files, err := p.Files(opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}
	return nil
}

// WriteIndex writes the standalone copy of the index that is published at
// the index URL.
func (p *Package) WriteIndex(path string, opts *WriteOptions) error {
	pretty := opts != nil && opts.Pretty
	b, err := encodeJSON(p.Index, pretty)
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

// ReadIndex reads an index file.
func ReadIndex(path string) (*Index, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	var idx Index
	if err := json.Unmarshal(b, &idx); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIndex, filepath.Base(path), err)
	}
	return &idx, nil
}

func encodeJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func chunk[T any](rows []T, size int) [][]T {
	var chunks [][]T
	for len(rows) > 0 {
		n := min(size, len(rows))
		chunks = append(chunks, rows[:n])
		rows = rows[n:]
	}
	return chunks
}
