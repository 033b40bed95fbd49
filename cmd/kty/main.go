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

	"github.com/ianlewis/go-kty/internal/config"
	"github.com/ianlewis/go-kty/lang"
	"github.com/ianlewis/go-kty/tag"
	"github.com/ianlewis/go-kty/variant"
)

func main() {
	app := newKtyApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.Name, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, ErrFlagParse),
		errors.Is(err, lang.ErrUnknownLang),
		errors.Is(err, variant.ErrLangs):
		return ExitCodeFlagParseError
	case errors.Is(err, tag.ErrConfig),
		errors.Is(err, config.ErrInvalid):
		return ExitCodeConfigError
	default:
		return ExitCodeUnknownError
	}
}
