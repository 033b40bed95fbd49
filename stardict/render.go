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
	"html"
	"maps"
	"slices"
	"strings"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-kty/yomitan"
)

var voidElements = map[string]bool{
	"br":  true,
	"img": true,
}

// renderNode writes structured content as HTML.
func renderNode(b *strings.Builder, n yomitan.Node) {
	switch n := n.(type) {
	case nil:
	case yomitan.TextNode:
		b.WriteString(html.EscapeString(string(n)))
	case yomitan.Nodes:
		for _, c := range n {
			renderNode(b, c)
		}
	case yomitan.Element:
		renderElement(b, n)
	}
}

func renderElement(b *strings.Builder, e yomitan.Element) {
	b.WriteString("<" + e.Tag)
	for _, k := range slices.Sorted(maps.Keys(e.Data)) {
		name := "data-" + k
		if k == "content" {
			name = "class"
		}
		attr(b, name, e.Data[k])
	}
	if len(e.Style) > 0 {
		var style []string
		for _, k := range slices.Sorted(maps.Keys(e.Style)) {
			style = append(style, k+":"+e.Style[k])
		}
		attr(b, "style", strings.Join(style, ";"))
	}
	if e.Title != "" {
		attr(b, "title", e.Title)
	}
	if e.Lang != "" {
		attr(b, "lang", e.Lang)
	}
	b.WriteString(">")
	if voidElements[e.Tag] {
		return
	}
	renderNode(b, e.Content)
	b.WriteString("</" + e.Tag + ">")
}

func attr(b *strings.Builder, name, value string) {
	b.WriteString(" " + name + `="` + html.EscapeString(value) + `"`)
}

// renderDefinition returns the HTML for a glossary item. Deinflections have
// no article text and return false.
func renderDefinition(d yomitan.Definition) (string, bool) {
	var b strings.Builder
	switch d := d.(type) {
	case yomitan.Text:
		b.WriteString("<p>" + html.EscapeString(string(d)) + "</p>")
	case yomitan.StructuredContent:
		renderNode(&b, d.Content)
	default:
		return "", false
	}
	return b.String(), true
}

// renderPOS returns the part of speech heading for a term row.
func renderPOS(pos string) string {
	if pos == "" {
		return ""
	}
	return `<i class="pos">` + html.EscapeString(pos) + "</i>"
}

// renderIPA returns the HTML for a pronunciation row.
func renderIPA(r *yomitan.MetaRow) string {
	var b strings.Builder
	b.WriteString(`<div class="ipa">`)
	for i, t := range r.Transcriptions {
		if i > 0 {
			b.WriteString("<br>")
		}
		b.WriteString(html.EscapeString(t.IPA))
		if len(t.Tags) > 0 {
			b.WriteString(` <span class="tags">` + html.EscapeString(strings.Join(t.Tags, ", ")) + "</span>")
		}
	}
	b.WriteString("</div>")
	return b.String()
}

// renderFormOf returns the text used for a form whose lemma has no article.
func renderFormOf(lemma string, rules []string) string {
	s := `<p class="form-of">form of <b>` + html.EscapeString(lemma) + "</b>"
	if len(rules) > 0 {
		s += " (" + html.EscapeString(strings.Join(rules, ", ")) + ")"
	}
	return s + "</p>"
}

// plainText converts article HTML to plain text.
func plainText(s string) string {
	return strings.TrimSpace(html2text.HTML2Text(s))
}
