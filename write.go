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
	"path/filepath"

	"github.com/ianlewis/go-kty/stardict"
	"github.com/ianlewis/go-kty/yomitan"
)

// WriteOptions are options for [Result.Write].
type WriteOptions struct {
	// BankSize is the number of rows per bank file.
	BankSize int

	// Pretty indents JSON files.
	Pretty bool

	// SaveTemps also writes the unarchived dictionary files.
	SaveTemps bool

	// StarDict also exports the dictionary in the StarDict format.
	StarDict bool

	// PlainText writes StarDict articles as plain text.
	PlainText bool
}

// ZipPath returns the path of the dictionary archive under root.
func (r *Result) ZipPath(root string) string {
	return filepath.Join(root, "dict", r.Langs.Target.String(), r.Langs.Source.String(), r.Name+".zip")
}

// IndexPath returns the path of the standalone index copy under root.
func (r *Result) IndexPath(root string) string {
	return filepath.Join(root, "index", r.Name+"-index.json")
}

// TempDir returns the directory holding the unarchived dictionary under root.
func (r *Result) TempDir(root string) string {
	return filepath.Join(root, "temp", r.Name)
}

// StarDictDir returns the directory of the StarDict export under root.
func (r *Result) StarDictDir(root string) string {
	return filepath.Join(root, "stardict", r.Langs.Target.String(), r.Langs.Source.String())
}

// Write writes the dictionary under root and returns the paths written.
// Nothing is written for an empty result.
func (r *Result) Write(root string, opts *WriteOptions) ([]string, error) {
	if r.Package == nil {
		return nil, nil
	}
	if opts == nil {
		opts = &WriteOptions{}
	}
	wopts := &yomitan.WriteOptions{
		BankSize: opts.BankSize,
		Pretty:   opts.Pretty,
	}

	var paths []string
	zipPath := r.ZipPath(root)
	if err := r.Package.WriteZipFile(zipPath, wopts); err != nil {
		return nil, err //nolint:wrapcheck // errors name the file
	}
	paths = append(paths, zipPath)

	indexPath := r.IndexPath(root)
	if err := r.Package.WriteIndex(indexPath, wopts); err != nil {
		return nil, err //nolint:wrapcheck // errors name the file
	}
	paths = append(paths, indexPath)

	if opts.SaveTemps {
		dir := r.TempDir(root)
		if err := r.Package.WriteDir(dir, wopts); err != nil {
			return nil, err //nolint:wrapcheck // errors name the file
		}
		paths = append(paths, dir)
	}

	if opts.StarDict {
		dir := r.StarDictDir(root)
		if _, err := stardict.Write(dir, r.Name, r.Package, &stardict.WriteOptions{
			PlainText: opts.PlainText,
		}); err != nil {
			return nil, err //nolint:wrapcheck // errors name the file
		}
		paths = append(paths, filepath.Join(dir, r.Name+".ifo"))
	}
	return paths, nil
}
