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

// Package entry implements the intermediate representation of a corpus
// record.
//
// [Normalize] reshapes a [kaikki.Entry] into an [Entry] holding raw tag
// strings. A [Postprocessor] then resolves those strings against a
// [tag.Table] once per entry and assigns every sense, form and pronunciation
// its ordered, deduplicated canonical tags. Entries are read-only once
// postprocessed.
package entry
