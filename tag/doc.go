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

// Package tag implements the tag table used to resolve and order the
// linguistic tags attached to corpus entries.
//
// The table is compiled from two configuration files:
//  1. An order table: a JSON object mapping a category to an ordered list of
//     tag names. Categories are flattened in file order into a single
//     priority list; a tag's position in that list is its order key.
//  2. An information table: a JSON list of rows of the form
//     [name, category, sortingOrder, notes, popularity] where notes is a
//     string or a list of strings. Notes double as aliases: each note is a
//     surface string that resolves to the row's tag.
//
// A Table is immutable once built and safe for concurrent use.
package tag
