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

package kaikki

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrMatch indicates that a match expression is invalid.
var ErrMatch = errors.New("invalid match")

var matchFields = map[string]func(*Entry) string{
	"word":      func(e *Entry) string { return e.Word },
	"pos":       func(e *Entry) string { return e.POS },
	"lang":      func(e *Entry) string { return e.Lang },
	"lang_code": func(e *Entry) string { return e.LangCode },
}

// MatchKeys returns the keys that can be matched on.
func MatchKeys() []string {
	keys := make([]string, 0, len(matchFields))
	for k := range matchFields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Match matches entries whose field Key equals Value.
type Match struct {
	Key   string
	Value string
}

// ParseMatch parses a KEY=VALUE match expression.
func ParseMatch(s string) (Match, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return Match{}, fmt.Errorf("%w: %q: want KEY=VALUE", ErrMatch, s)
	}
	k = strings.TrimSpace(k)
	if _, ok := matchFields[k]; !ok {
		return Match{}, fmt.Errorf("%w: %q: unknown key %q, want one of %s",
			ErrMatch, s, k, strings.Join(MatchKeys(), ", "))
	}
	return Match{Key: k, Value: v}, nil
}

// Matches reports whether e matches m. Unknown keys never match.
func (m Match) Matches(e *Entry) bool {
	field, ok := matchFields[m.Key]
	if !ok {
		return false
	}
	return field(e) == m.Value
}

func (m Match) String() string {
	return m.Key + "=" + m.Value
}

// Selected reports whether e matches every filter and none of the rejects.
func Selected(e *Entry, filter, reject []Match) bool {
	for _, m := range reject {
		if m.Matches(e) {
			return false
		}
	}
	for _, m := range filter {
		if !m.Matches(e) {
			return false
		}
	}
	return true
}
