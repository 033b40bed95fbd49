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

package variant

import (
	"strings"

	"github.com/ianlewis/go-kty/entry"
	"github.com/ianlewis/go-kty/tag"
	"github.com/ianlewis/go-kty/yomitan"
)

// tagSet collects the tags used by a dictionary.
type tagSet struct {
	seen map[*tag.Tag]bool
	tags []*tag.Tag
}

func (s *tagSet) add(tags entry.Tags) {
	if s.seen == nil {
		s.seen = map[*tag.Tag]bool{}
	}
	for _, t := range tags {
		if !s.seen[t] {
			s.seen[t] = true
			s.tags = append(s.tags, t)
		}
	}
}

// rows returns the tag bank rows of the collected tags.
func (s *tagSet) rows() []yomitan.TagRow {
	rows := make([]yomitan.TagRow, 0, len(s.tags))
	for _, t := range s.tags {
		rows = append(rows, yomitan.TagRow{
			Name:     t.Name,
			Category: t.Category,
			Order:    t.SortingOrder,
			Notes:    t.NotesString(),
			Score:    t.Popularity,
		})
	}
	return rows
}

// lemmaContent returns the structured content of a lemma: its senses as an
// ordered list, followed by the etymology. It returns false if the entry has
// no glosses.
func lemmaContent(e *entry.Entry) (yomitan.Node, bool) {
	var senses yomitan.Nodes
	for i := range e.Senses {
		if node, ok := senseContent(&e.Senses[i]); ok {
			senses = append(senses, node)
		}
	}
	if len(senses) == 0 {
		return nil, false
	}

	content := yomitan.Nodes{yomitan.Wrap("ol", "glosses", senses)}
	if e.Etymology != "" {
		content = append(content, yomitan.Wrap("div", "etymology", yomitan.Nodes{
			yomitan.Wrap("span", "etymology-label", yomitan.TextNode("Etymology")),
			yomitan.Wrap("span", "etymology-text", yomitan.TextNode(e.Etymology)),
		}))
	}
	return yomitan.Wrap("div", "main", content), true
}

func senseContent(s *entry.Sense) (yomitan.Node, bool) {
	if len(s.Glosses) == 0 {
		return nil, false
	}

	var item yomitan.Nodes
	if len(s.Tags) > 0 {
		item = append(item, tagsContent(s.Tags))
	}
	item = append(item, yomitan.Wrap("span", "gloss", yomitan.TextNode(strings.Join(s.Glosses, "; "))))

	if len(s.Examples) > 0 {
		var examples yomitan.Nodes
		for _, ex := range s.Examples {
			example := yomitan.Nodes{yomitan.Wrap("span", "example-text", yomitan.TextNode(ex.Text))}
			if ex.Translation != "" {
				example = append(example, yomitan.Wrap("span", "example-translation", yomitan.TextNode(ex.Translation)))
			}
			examples = append(examples, yomitan.Wrap("li", "example", example))
		}
		item = append(item, yomitan.Wrap("ul", "examples", examples))
	}
	return yomitan.Wrap("li", "sense", item), true
}

func tagsContent(tags entry.Tags) yomitan.Node {
	nodes := make(yomitan.Nodes, 0, len(tags))
	for _, t := range tags {
		el := yomitan.Wrap("span", "tag", yomitan.TextNode(t.Name))
		el.Title = t.NotesString()
		nodes = append(nodes, el)
	}
	return yomitan.Wrap("span", "tags", nodes)
}
