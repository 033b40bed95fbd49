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

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kty/stardict"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "look up a word in the StarDict exports under the root directory",
	ArgsUsage: "WORD",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: lookup: want one word, got %d", ErrFlagParse, c.NArg())
		}
		query := c.Args().First()

		dicts, errs := stardict.OpenAll(filepath.Join(c.String("root-dir"), "stardict"))
		for _, err := range errs {
			fmt.Fprintln(c.App.ErrWriter, err)
		}
		defer func() {
			for _, d := range dicts {
				d.Close()
			}
		}()

		for _, d := range dicts {
			articles, err := d.Search(query)
			if err != nil {
				fmt.Fprintln(c.App.ErrWriter, err)
				errs = append(errs, err)
				continue
			}
			if len(articles) == 0 {
				continue
			}
			fmt.Fprintln(c.App.Writer, d.Info().Bookname)
			fmt.Fprintln(c.App.Writer)
			for _, a := range articles {
				text := a.Data
				if d.Info().SameTypeSequence == "h" {
					text = html2text.HTML2Text(text)
				}
				fmt.Fprintf(c.App.Writer, "%s\n%s\n\n", a.Word, text)
			}
		}

		if len(errs) > 0 {
			return fmt.Errorf("%w: %w", ErrKty, errors.Join(errs...))
		}
		return nil
	},
}
