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

// Package stardict exports dictionaries in the StarDict format.
//
// A StarDict dictionary is made up of a number of files that share a base
// name:
//
//   - .ifo: a text file holding the dictionary metadata.
//   - .idx: the sorted word index. Each entry is a null terminated word
//     followed by the 32-bit offset and size of the word's data.
//   - .dict.dz: the word data compressed in the dictzip format, which allows
//     random access to the compressed data.
//   - .syn: an optional synonym index mapping alternative words to entries
//     in the .idx file.
//
// [Write] converts a [yomitan.Package] into these files. Inflected forms are
// written as synonyms of their lemma. [Open] reads an exported dictionary back
// for lookups.
package stardict
