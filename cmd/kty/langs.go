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
	"os"
	"path/filepath"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kty/lang"
)

var langsCommand = &cli.Command{
	Name:      "langs",
	Usage:     "list the supported editions, or the names of the given language codes",
	ArgsUsage: "[CODE...]",
	Action: func(c *cli.Context) error {
		if c.NArg() > 0 {
			return printLangs(c, c.Args().Slice())
		}
		return printEditions(c)
	},
}

func printLangs(c *cli.Context, args []string) error {
	tbl := table.New("Code", "Name").WithWriter(c.App.Writer)
	for _, arg := range args {
		code, err := lang.Parse(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		}
		tbl.AddRow(code, code.Name())
	}
	tbl.Print()
	return nil
}

// printEditions lists the editions with the extracts found under the root
// directory.
func printEditions(c *cli.Context) error {
	root := c.String("root-dir")
	tbl := table.New("Edition", "Name", "Extract").WithWriter(c.App.Writer)
	for _, code := range lang.Editions() {
		path := filepath.Join(root, "kaikki", code.String()+extractSuffix)
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
		tbl.AddRow(code, code.Name(), path)
	}
	tbl.Print()
	return nil
}
