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
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMalformed indicates that a line of the extract could not be decoded.
var ErrMalformed = errors.New("malformed entry")

// ErrLineTooLong indicates that a line is longer than the maximum line size.
// The line is skipped.
var ErrLineTooLong = fmt.Errorf("%w: line too long", ErrMalformed)

// Scanner scans an extract from start to end. Lines longer than the
// maximum line size are discarded and reported as malformed by Entry.
type Scanner struct {
	r       io.Reader
	br      *bufio.Reader
	max     int
	buf     []byte
	line    int
	tooLong bool
	err     error
}

// ScannerOptions are options for scanning an extract.
type ScannerOptions struct {
	// MaxLineSize is the size of the largest line that is decoded. Entries
	// for common words in the English edition are several megabytes long.
	MaxLineSize int
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	MaxLineSize: 64 << 20,
}

// NewScanner returns a new Scanner that reads from r. If r is an io.Closer
// it is closed by the Scanner's Close method.
func NewScanner(r io.Reader, options *ScannerOptions) *Scanner {
	if options == nil {
		options = DefaultScannerOptions
	}
	maxLineSize := options.MaxLineSize
	if maxLineSize <= 0 {
		maxLineSize = DefaultScannerOptions.MaxLineSize
	}

	return &Scanner{
		r:   r,
		br:  bufio.NewReaderSize(r, 64<<10),
		max: maxLineSize,
	}
}

// Open opens the extract at path.
func Open(path string, options *ScannerOptions) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening extract: %w", err)
	}
	return NewScanner(f, options), nil
}

// Scan advances the scanner to the next non-blank line. It returns false if
// the scan stops either by reaching the end of the extract or an error.
func (s *Scanner) Scan() bool {
	for s.readLine() {
		s.line++
		if s.tooLong || len(bytes.TrimSpace(s.buf)) > 0 {
			return true
		}
	}
	return false
}

// readLine reads the next line into buf. Bytes past the maximum line size
// are read and dropped.
func (s *Scanner) readLine() bool {
	if s.err != nil {
		return false
	}
	s.buf = s.buf[:0]
	s.tooLong = false
	n := 0
	for {
		frag, err := s.br.ReadSlice('\n')
		n += len(frag)
		if !s.tooLong {
			if len(s.buf)+len(frag) > s.max {
				s.tooLong = true
				s.buf = s.buf[:0]
			} else {
				s.buf = append(s.buf, frag...)
			}
		}
		switch {
		case err == nil:
			return true
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			s.err = io.EOF
			return n > 0
		default:
			s.err = err
			return false
		}
	}
}

// Line returns the 1-based line number of the current line.
func (s *Scanner) Line() int {
	return s.line
}

// Bytes returns the raw bytes of the current line. It is empty if the line
// was too long. The underlying array may be overwritten by a subsequent call
// to Scan.
func (s *Scanner) Bytes() []byte {
	return bytes.TrimRight(s.buf, "\r\n")
}

// Entry decodes the current line. Errors wrap ErrMalformed and are local to
// the line; scanning may continue.
func (s *Scanner) Entry() (*Entry, error) {
	if s.tooLong {
		return nil, fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, s.line, s.max)
	}
	var e Entry
	if err := json.Unmarshal(s.Bytes(), &e); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, s.line, err)
	}
	return &e, nil
}

// Err returns the first non-EOF error encountered by the scanner.
func (s *Scanner) Err() error {
	if errors.Is(s.err, io.EOF) {
		return nil
	}
	//nolint:wrapcheck // error should not be wrapped
	return s.err
}

// Close closes the underlying reader if it is an io.Closer.
func (s *Scanner) Close() error {
	c, ok := s.r.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		return fmt.Errorf("closing extract: %w", err)
	}
	return nil
}
