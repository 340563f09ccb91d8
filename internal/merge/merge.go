// Package merge implements «Placeholder» substitution over docx
// paragraphs: the scanner that lists a template's placeholders, the
// run-aware substitution engine, and the per-record document renderer.
package merge

import (
	"regexp"
	"sort"
	"strings"

	"github.com/iyefymov/mailmerge/internal/docx"
)

// Placeholder delimiters, mail-merge style: «Project_Title»
const (
	DelimLeft  = "«"
	DelimRight = "»"
)

// Names may not contain the closing delimiter or a newline: paragraph
// texts are scanned joined by newlines and a placeholder must stay
// within one paragraph.
var placeholderRx = regexp.MustCompile(DelimLeft + "([^" + DelimRight + "\n]+)" + DelimRight)

// Token - the delimited form a placeholder takes in template text
func Token(name string) string {
	return DelimLeft + name + DelimRight
}

// Placeholders - every distinct placeholder name found in the document,
// sorted. Paragraph texts are scanned joined by newlines, so a
// placeholder can never span a paragraph or cell boundary.
func Placeholders(doc *docx.Document) []string {
	seen := map[string]bool{}
	var names []string
	for _, m := range placeholderRx.FindAllStringSubmatch(doc.Plaintext(), -1) {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	sort.Strings(names)
	return names
}

// Substitute replaces every occurrence of «name» in one paragraph with
// value. Reports whether the paragraph changed; a paragraph that does
// not contain the token is left byte-for-byte untouched.
//
// Whether the token appears in the paragraph's text and which runs
// physically hold its characters are two separate questions: when a
// single run holds the whole token the replacement happens inside that
// run alone and no styling is disturbed. When the token's characters
// cross run boundaries the paragraph text is rebuilt as a whole and
// collapsed into the first run, whose style wins.
func Substitute(p *docx.Paragraph, name, value string) bool {
	token := Token(name)
	full := p.Text()
	if !strings.Contains(full, token) {
		return false
	}

	for _, r := range p.Runs() {
		if strings.Contains(r.Text(), token) {
			r.SetText(strings.ReplaceAll(r.Text(), token, value))
			return true
		}
	}

	if len(p.Runs()) == 0 {
		return false
	}
	p.Collapse(strings.ReplaceAll(full, token, value))
	return true
}

// Rule binds one template placeholder to one source column.
type Rule struct {
	Placeholder string `yaml:"placeholder"`
	Column      string `yaml:"column"`
}

// Mapping is the ordered placeholder-to-column configuration. It is
// static per run and passed explicitly; placeholders a template uses
// but the mapping does not know are simply left in place.
type Mapping []Rule

// Column - the source column mapped to placeholder name; false when the
// placeholder is not mapped
func (m Mapping) Column(name string) (string, bool) {
	for _, r := range m {
		if r.Placeholder == name {
			return r.Column, true
		}
	}
	return "", false
}

// RenderDocument applies every mapping rule to every paragraph reachable
// from the document root, table cells included. A column absent from the
// record resolves to the empty string.
func RenderDocument(doc *docx.Document, record map[string]string, m Mapping) {
	doc.EachParagraph(func(p *docx.Paragraph) {
		for _, rule := range m {
			Substitute(p, rule.Placeholder, record[rule.Column])
		}
	})
}

// Render fills a fresh instance of the template for one record. The
// returned document shares nothing with the template or with documents
// rendered for other records.
func Render(t *docx.Template, record map[string]string, m Mapping) (*docx.Document, error) {
	doc, err := t.Instance()
	if err != nil {
		return nil, err
	}
	RenderDocument(doc, record, m)
	return doc, nil
}
