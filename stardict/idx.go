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

package stardict

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrInvalidIdx indicates that an .idx or .syn file is malformed.
var ErrInvalidIdx = errors.New("invalid index")

// Word is an .idx file entry.
type Word struct {
	Word   string
	Offset uint32
	Size   uint32
}

// String implements [fmt.Stringer].
func (w *Word) String() string {
	return w.Word
}

// Synonym is a .syn file entry.
type Synonym struct {
	Word string

	// OriginalWordIndex is the position of the word's entry in the .idx file.
	OriginalWordIndex uint32
}

// String implements [fmt.Stringer].
func (s *Synonym) String() string {
	return s.Word
}

// appendWord appends the encoded index entry.
func appendWord(b []byte, w *Word) []byte {
	b = append(b, w.Word...)
	b = append(b, 0)
	b = binary.BigEndian.AppendUint32(b, w.Offset)
	return binary.BigEndian.AppendUint32(b, w.Size)
}

// appendSynonym appends the encoded synonym entry.
func appendSynonym(b []byte, s *Synonym) []byte {
	b = append(b, s.Word...)
	b = append(b, 0)
	return binary.BigEndian.AppendUint32(b, s.OriginalWordIndex)
}

// scanner scans null terminated words followed by a fixed number of bytes.
type scanner struct {
	s     *bufio.Scanner
	trail int
}

func newScanner(r io.Reader, trail int) *scanner {
	s := &scanner{
		s:     bufio.NewScanner(r),
		trail: trail,
	}
	s.s.Split(s.split)
	return s
}

func (s *scanner) split(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		size := i + 1 + s.trail
		if len(data) >= size {
			return size, data[:size], nil
		}
	}
	if atEOF {
		return 0, nil, fmt.Errorf("%w: truncated entry", ErrInvalidIdx)
	}
	// Request more data.
	return 0, nil, nil
}

// next returns the word and trailing bytes of the next entry.
func (s *scanner) next() (string, []byte, bool) {
	if !s.s.Scan() {
		return "", nil, false
	}
	b := s.s.Bytes()
	i := bytes.IndexByte(b, 0)
	return string(b[:i]), b[i+1:], true
}

func (s *scanner) err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("scanning: %w", err)
	}
	return nil
}

// ReadIndex reads the entries of an .idx file with 32-bit offsets.
func ReadIndex(r io.Reader) ([]*Word, error) {
	var words []*Word
	s := newScanner(r, 8)
	for {
		word, trail, ok := s.next()
		if !ok {
			break
		}
		words = append(words, &Word{
			Word:   word,
			Offset: binary.BigEndian.Uint32(trail),
			Size:   binary.BigEndian.Uint32(trail[4:]),
		})
	}
	if err := s.err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ReadSynonyms reads the entries of a .syn file.
func ReadSynonyms(r io.Reader) ([]*Synonym, error) {
	var syns []*Synonym
	s := newScanner(r, 4)
	for {
		word, trail, ok := s.next()
		if !ok {
			break
		}
		syns = append(syns, &Synonym{
			Word:              word,
			OriginalWordIndex: binary.BigEndian.Uint32(trail),
		})
	}
	if err := s.err(); err != nil {
		return nil, err
	}
	return syns, nil
}

// checkSize returns an error if n does not fit the 32-bit index fields.
func checkSize(n int) error {
	if n > math.MaxUint32 {
		return fmt.Errorf("%w: %d exceeds 32-bit offsets", ErrInvalidIdx, n)
	}
	return nil
}
