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

package stardict_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-kty/stardict"
)

func TestInfo_WriteTo(t *testing.T) {
	t.Parallel()

	info := &stardict.Info{
		Version:          stardict.Version,
		Bookname:         "kty-de-en",
		WordCount:        2,
		SynWordCount:     1,
		IdxFileSize:      26,
		Description:      "German to English\nfrom Wiktionary",
		Date:             "2026.10.01",
		SameTypeSequence: "h",
	}

	var b bytes.Buffer
	if _, err := info.WriteTo(&b); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	want := `StarDict's dict ifo file
version=3.0.0
bookname=kty-de-en
wordcount=2
synwordcount=1
idxfilesize=26
description=German to English from Wiktionary
date=2026.10.01
sametypesequence=h
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("WriteTo (-want, +got):\n%s", diff)
	}

	got, err := stardict.ReadInfo(&b)
	if err != nil {
		t.Fatalf("ReadInfo: %v", err)
	}
	info.Description = "German to English from Wiktionary"
	if diff := cmp.Diff(info, got); diff != "" {
		t.Errorf("ReadInfo (-want, +got):\n%s", diff)
	}
}

func TestReadInfo_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{
			name: "bad magic",
			data: "not a dictionary\nversion=3.0.0\nbookname=x\n",
		},
		{
			name: "missing version",
			data: "StarDict's dict ifo file\nbookname=x\n",
		},
		{
			name: "bad wordcount",
			data: "StarDict's dict ifo file\nversion=3.0.0\nbookname=x\nwordcount=many\n",
		},
		{
			name: "missing bookname",
			data: "StarDict's dict ifo file\nversion=3.0.0\n",
		},
		{
			name: "invalid line",
			data: "StarDict's dict ifo file\nversion=3.0.0\nbookname\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := stardict.ReadInfo(strings.NewReader(tc.data))
			if !errors.Is(err, stardict.ErrInvalidIfo) {
				t.Errorf("ReadInfo: want %v, got %v", stardict.ErrInvalidIfo, err)
			}
		})
	}
}
