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

import "strings"

// shortPOS maps kaikki part of speech names to the short forms shown by
// dictionary readers.
var shortPOS = map[string]string{
	"noun":         "n",
	"verb":         "v",
	"adj":          "adj",
	"adv":          "adv",
	"pron":         "pron",
	"prep":         "prep",
	"postp":        "postp",
	"conj":         "conj",
	"intj":         "intj",
	"det":          "det",
	"article":      "art",
	"num":          "num",
	"particle":     "part",
	"name":         "name",
	"phrase":       "phr",
	"proverb":      "prov",
	"prep_phrase":  "prep-phr",
	"affix":        "affix",
	"prefix":       "pref",
	"suffix":       "suf",
	"infix":        "infix",
	"character":    "char",
	"symbol":       "sym",
	"punct":        "punct",
	"contraction":  "contr",
	"abbrev":       "abbr",
	"romanization": "rom",
}

// ShortPOS returns the short form of a kaikki part of speech. Unknown parts
// of speech are returned unchanged.
func ShortPOS(pos string) string {
	if s, ok := shortPOS[strings.ToLower(pos)]; ok {
		return s
	}
	return pos
}
