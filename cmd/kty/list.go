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
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kty/lang"
	"github.com/ianlewis/go-kty/yomitan"
)

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "list the dictionaries built under the root directory",
	Action: func(c *cli.Context) error {
		root := c.String("root-dir")
		paths, err := filepath.Glob(filepath.Join(root, "index", "*-index.json"))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrKty, err)
		}

		tbl := table.New("Title", "Revision", "Source", "Target", "Updatable").WithWriter(c.App.Writer)
		var errs []error
		for _, path := range paths {
			idx, err := yomitan.ReadIndex(path)
			if err != nil {
				fmt.Fprintln(c.App.ErrWriter, err)
				errs = append(errs, err)
				continue
			}
			source := idx.SourceLanguage
			if source == "" {
				source = lang.All.String()
			}
			tbl.AddRow(idx.Title, idx.Revision, source, idx.TargetLanguage, idx.IsUpdatable)
		}
		tbl.Print()

		if len(errs) > 0 {
			return fmt.Errorf("%w: %w", ErrKty, errors.Join(errs...))
		}
		return nil
	},
}
