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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-kty/yomitan"
)

func TestRenderNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node yomitan.Node
		want string
	}{
		{
			name: "text",
			node: yomitan.TextNode("a < b"),
			want: "a &lt; b",
		},
		{
			name: "class and title",
			node: yomitan.Element{
				Tag:     "span",
				Content: yomitan.TextNode("pl"),
				Data:    map[string]string{"content": "tag"},
				Title:   "plural",
			},
			want: `<span class="tag" title="plural">pl</span>`,
		},
		{
			name: "nested",
			node: yomitan.Wrap("ol", "glosses", yomitan.Nodes{
				yomitan.Wrap("li", "sense", yomitan.TextNode("house")),
				yomitan.Wrap("li", "sense", yomitan.TextNode("home")),
			}),
			want: `<ol class="glosses"><li class="sense">house</li><li class="sense">home</li></ol>`,
		},
		{
			name: "style and data",
			node: yomitan.Element{
				Tag:   "div",
				Data:  map[string]string{"sense": "1"},
				Style: map[string]string{"margin": "0", "color": "red"},
				Lang:  "de",
			},
			want: `<div data-sense="1" style="color:red;margin:0" lang="de"></div>`,
		},
		{
			name: "void",
			node: yomitan.Element{Tag: "br"},
			want: "<br>",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var b strings.Builder
			renderNode(&b, tc.node)
			if diff := cmp.Diff(tc.want, b.String()); diff != "" {
				t.Errorf("renderNode (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRenderIPA(t *testing.T) {
	t.Parallel()

	got := renderIPA(&yomitan.MetaRow{
		Term: "house",
		Transcriptions: []yomitan.Transcription{
			{IPA: "/haʊs/", Tags: []string{"US"}},
			{IPA: "/hɑʊs/"},
		},
	})
	want := `<div class="ipa">/haʊs/ <span class="tags">US</span><br>/hɑʊs/</div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("renderIPA (-want, +got):\n%s", diff)
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	if got, want := plainText("<b>Haus</b>"), "Haus"; got != want {
		t.Errorf("plainText: want %q, got %q", want, got)
	}
}
