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
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kty/kaikki"
	"github.com/ianlewis/go-kty/variant"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag or argument parsing
	// error.
	ExitCodeFlagParseError

	// ExitCodeConfigError is the exit code for an invalid configuration or
	// tag table.
	ExitCodeConfigError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrKty is a parent error for all command errors.
var ErrKty = errors.New("kty")

// ErrFlagParse is a flag or argument parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrKty)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newKtyApp() *cli.App {
	commands := []*cli.Command{
		newBuildCommand(variant.KindMain, "build a dictionary of SOURCE words defined in TARGET", "SOURCE TARGET"),
		newBuildCommand(variant.KindIpa, "build a pronunciation dictionary of SOURCE words from the TARGET edition", "SOURCE TARGET"),
		newBuildCommand(variant.KindIpaMerged, "build a pronunciation dictionary of TARGET words merged across editions", "TARGET"),
		newBuildCommand(variant.KindGlossary, "build a dictionary of SOURCE words translated into TARGET", "SOURCE TARGET"),
		newBuildCommand(variant.KindGlossaryExtended, "build a SOURCE to TARGET translation dictionary through the EDITION edition", "EDITION SOURCE TARGET"),
		listCommand,
		langsCommand,
		lookupCommand,
		versionCommand,
	}

	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Build Yomitan dictionaries from Wiktionary extracts.",
		Description: strings.Join([]string{
			"Dictionary builder for kaikki.org extracts written in Go.",
			"http://github.com/ianlewis/go-kty",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root-dir",
				Usage:   "read extracts from and write dictionaries under `DIR`",
				Aliases: []string{"r"},
				Value:   defaultRootDir(),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read settings from the YAML `FILE`",
				Aliases: []string{"c"},
			},
			&cli.StringSliceFlag{
				Name:  "dataset",
				Usage: "read the extract of an edition from a file given as `EDITION=PATH`",
			},
			&cli.StringFlag{
				Name:  "snapshot",
				Usage: "set the extract snapshot `DATE` (YYYY-MM-DD) used as the revision",
			},
			&cli.IntFlag{
				Name:  "first",
				Usage: "stop after `N` accepted records per extract",
			},
			&cli.StringSliceFlag{
				Name:  "filter",
				Usage: "only read records whose field matches `KEY=VALUE` (keys: " + strings.Join(kaikki.MatchKeys(), ", ") + ")",
			},
			&cli.StringSliceFlag{
				Name:  "reject",
				Usage: "skip records whose field matches `KEY=VALUE`",
			},
			&cli.BoolFlag{
				Name:               "save-temps",
				Usage:              "keep the normalized entries, unarchived files and diagnostics",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "pretty",
				Usage:              "indent JSON files",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "stardict",
				Usage:              "also export dictionaries in the StarDict format",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "plain-text",
				Usage:              "write StarDict articles as plain text",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "quiet",
				Usage:              "do not print the build report",
				Aliases:            []string{"q"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "print debug messages",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: commands,
	}
}
