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
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const ifoMagic = "StarDict's dict ifo file"

// Version is the StarDict format version written by this package.
const Version = "3.0.0"

var (
	// ErrInvalidIfo indicates that an .ifo file is malformed.
	ErrInvalidIfo = errors.New("invalid ifo")

	errBadMagic = fmt.Errorf("%w: bad magic data", ErrInvalidIfo)
)

var keyRegex = regexp.MustCompile("^[a-zA-Z0-9-_]+$")

// Info is the dictionary metadata stored in the .ifo file.
type Info struct {
	Version          string
	Bookname         string
	WordCount        int
	SynWordCount     int
	IdxFileSize      int
	Author           string
	Website          string
	Description      string
	Date             string
	SameTypeSequence string
}

// WriteTo writes the .ifo file contents to w.
func (info *Info) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteString(ifoMagic + "\n")
	kv := func(k, v string) {
		if v == "" {
			return
		}
		// Values are single lines.
		v = strings.Join(strings.Fields(v), " ")
		fmt.Fprintf(&b, "%s=%s\n", k, v)
	}
	kv("version", info.Version)
	kv("bookname", info.Bookname)
	kv("wordcount", strconv.Itoa(info.WordCount))
	if info.SynWordCount > 0 {
		kv("synwordcount", strconv.Itoa(info.SynWordCount))
	}
	kv("idxfilesize", strconv.Itoa(info.IdxFileSize))
	kv("author", info.Author)
	kv("website", info.Website)
	kv("description", info.Description)
	kv("date", info.Date)
	kv("sametypesequence", info.SameTypeSequence)

	n, err := io.WriteString(w, b.String())
	if err != nil {
		return int64(n), fmt.Errorf("writing ifo: %w", err)
	}
	return int64(n), nil
}

// ReadInfo reads an .ifo file.
func ReadInfo(r io.Reader) (*Info, error) {
	s := bufio.NewScanner(r)
	if !s.Scan() || s.Text() != ifoMagic {
		return nil, errBadMagic
	}

	info := &Info{}
	first := true
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimRight(key, " ")
		value = strings.TrimLeft(value, " ")
		if !ok || !keyRegex.MatchString(key) {
			return nil, fmt.Errorf("%w: invalid line: %q", ErrInvalidIfo, line)
		}
		if first && key != "version" {
			return nil, fmt.Errorf("%w: missing version", ErrInvalidIfo)
		}
		first = false

		var err error
		switch key {
		case "version":
			info.Version = value
		case "bookname":
			info.Bookname = value
		case "wordcount":
			info.WordCount, err = strconv.Atoi(value)
		case "synwordcount":
			info.SynWordCount, err = strconv.Atoi(value)
		case "idxfilesize":
			info.IdxFileSize, err = strconv.Atoi(value)
		case "author":
			info.Author = value
		case "website":
			info.Website = value
		case "description":
			info.Description = value
		case "date":
			info.Date = value
		case "sametypesequence":
			info.SameTypeSequence = value
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidIfo, key, err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading ifo: %w", err)
	}

	if info.Bookname == "" {
		return nil, fmt.Errorf("%w: missing bookname", ErrInvalidIfo)
	}
	return info, nil
}
