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

// Package kaikki implements reading wiktextract extracts as published by
// kaikki.org.
//
// An extract is a JSON Lines file. Each line is one word entry: a headword
// in one language, with one part of speech, as described by one Wiktionary
// edition. The fields decoded here are the subset needed to build
// dictionaries:
//  1. The headword, its part of speech and language code.
//  2. Senses with glosses, tags and examples.
//  3. Inflected forms with tags.
//  4. Sounds (IPA transcriptions) with tags.
//  5. Translations into other languages.
//  6. Etymology text.
//
// More info on the format can be found at this URL:
// https://github.com/tatuylonen/wiktextract
package kaikki
