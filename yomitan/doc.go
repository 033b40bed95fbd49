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

// Package yomitan implements the Yomitan dictionary format (version 3).
//
// A Yomitan dictionary is a zip archive holding an index.json file and a
// number of JSON "banks":
//
//	index.json           dictionary metadata and update URLs
//	tag_bank_N.json      tag definitions
//	term_bank_N.json     term definitions
//	term_meta_bank_N.json  term metadata such as IPA transcriptions
//
// Banks are JSON arrays of arrays. The row types in this package marshal to
// the exact array shapes expected by Yomitan.
//
// See https://github.com/yomidevs/yomitan/tree/master/ext/data/schemas
package yomitan
