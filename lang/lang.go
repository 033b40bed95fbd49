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

// Package lang validates the language codes used to name corpus editions
// and dictionary language pairs.
package lang

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrUnknownLang indicates that a language code could not be parsed.
var ErrUnknownLang = errors.New("unknown language code")

// Code is a lowercase language code as used by kaikki.org (e.g. "en", "de",
// "afb").
type Code string

const (
	// All is the sentinel used in place of a source language for
	// dictionaries that aggregate every edition, such as the merged
	// pronunciation dictionary.
	All Code = "all"

	// Simple is the Simple English Wiktionary edition. It is not a valid
	// BCP 47 tag but kaikki.org publishes an extract for it.
	Simple Code = "simple"
)

// editions are the Wiktionary editions that kaikki.org publishes extracts
// for.
var editions = []Code{
	"cs", "de", "el", "en", "es", "fr", "id", "it", "ja", "ko", "ku",
	"ms", "nl", "pl", "pt", "ru", Simple, "th", "tr", "vi", "zh",
}

// Editions returns the editions that kaikki.org publishes extracts for.
func Editions() []Code {
	return slices.Clone(editions)
}

// Parse validates s and returns it as a Code.
func Parse(s string) (Code, error) {
	c := strings.ToLower(strings.TrimSpace(s))
	switch Code(c) {
	case "":
		return "", fmt.Errorf("%w: empty", ErrUnknownLang)
	case All, Simple:
		return Code(c), nil
	}

	t, err := language.Parse(c)
	if err != nil {
		// kaikki.org uses ISO 639-3 codes that x/text may not know about.
		// They are well-formed so accept them as is.
		var ve language.ValueError
		if errors.As(err, &ve) && isLetters(c) {
			return Code(c), nil
		}
		return "", fmt.Errorf("%w: %q: %w", ErrUnknownLang, s, err)
	}
	if base, conf := t.Base(); conf == language.No || base.String() == "und" {
		return "", fmt.Errorf("%w: %q", ErrUnknownLang, s)
	}

	return Code(c), nil
}

func isLetters(s string) bool {
	if len(s) < 2 || len(s) > 3 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// MustParse is like Parse but panics on error. It is intended for constants
// in tests and defaults.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String implements [fmt.Stringer].
func (c Code) String() string {
	return string(c)
}

// Language returns the language that the records of edition c are written
// in. It is c for every edition except [Simple], whose records are English.
func (c Code) Language() Code {
	if c == Simple {
		return "en"
	}
	return c
}

// Name returns the English display name of the language, or the code itself
// if the name is unknown.
func (c Code) Name() string {
	switch c {
	case All:
		return "All languages"
	case Simple:
		return "Simple English"
	}
	t, err := language.Parse(string(c))
	if err != nil {
		return string(c)
	}
	if name := display.English.Languages().Name(t); name != "" {
		return name
	}
	return string(c)
}
