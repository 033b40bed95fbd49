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

// Package textnorm normalizes corpus text before it is written to a
// dictionary.
package textnorm

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SpaceFolder is a [transform.Transformer] that trims leading and trailing
// whitespace and collapses each internal whitespace run into one ASCII space.
type SpaceFolder struct {
	// seenText is true once a non-space rune has been emitted.
	seenText bool

	// pending is true when a whitespace run follows emitted text.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (f *SpaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(r) {
			nSrc += size
			f.pending = f.seenText
			continue
		}

		// A rune error is re-encoded as U+FFFD which may be longer than
		// size.
		need := utf8.RuneLen(r)
		if f.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.pending {
			dst[nDst] = ' '
			nDst++
			f.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		f.seenText = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *SpaceFolder) Reset() {
	*f = SpaceFolder{}
}

// Clean returns s in Unicode normalization form C with whitespace folded.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(transform.Chain(norm.NFC, &SpaceFolder{}), s)
	if err != nil {
		// Neither transformer returns errors other than short buffer errors
		// which transform.String handles.
		return s
	}
	return out
}
