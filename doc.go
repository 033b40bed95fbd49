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

// Package kty builds Yomitan dictionaries from kaikki.org extracts.
//
// Extracts are JSONL files with one record per word and part of speech. A
// build reads each dataset once, normalizes the records the dictionaries
// need and resolves their tags against a shared tag table. The resulting
// entries are handed to one or more [variant.Builder] implementations which
// project them into Yomitan term, meta and tag rows.
//
// Five dictionary flavors are supported:
//
//   - main: definitions of source language words written in the target
//     language edition, plus inflected forms linking back to their lemma.
//   - ipa: pronunciations of source language words from the target edition.
//   - ipa-merged: pronunciations of target language words merged across all
//     editions.
//   - glossary: translations of source language words into the target
//     language.
//   - glossary-extended: translations between two languages, pivoted through
//     a third edition.
//
// Builds are deterministic. The same datasets and snapshot date always
// produce byte-identical archives.
package kty
