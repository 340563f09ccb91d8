package docx

import (
	"encoding/xml"
	"strings"
)

// Paragraph is a single text container: an ordered run sequence whose
// concatenated text is what the reader sees. Editors split visually
// contiguous phrases into many runs for reasons invisible to the user,
// so run boundaries carry no meaning beyond styling.
type Paragraph struct {
	node *xmlNode
}

// Runs - direct runs of the paragraph, in order
func (p *Paragraph) Runs() []*Run {
	nodes := p.node.childrenNamed("w-r")
	runs := make([]*Run, 0, len(nodes))
	for _, n := range nodes {
		runs = append(runs, &Run{node: n})
	}
	return runs
}

// Text - concatenation of all run texts in order
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.Text())
	}
	return sb.String()
}

// Collapse rewrites the paragraph as a single run holding text. The
// first run survives and keeps its style for the whole text; every
// other run is removed, so interior style boundaries are lost.
func (p *Paragraph) Collapse(text string) {
	runs := p.Runs()
	if len(runs) == 0 {
		return
	}
	for _, r := range runs[1:] {
		r.node.delete()
	}
	runs[0].SetText(text)
}

// Run is a minimal contiguous text span carrying one uniform style.
type Run struct {
	node *xmlNode
}

// Text - visible text of the run
func (r *Run) Text() string {
	var sb strings.Builder
	for _, t := range r.node.childrenNamed("w-t") {
		sb.Write(t.Content)
	}
	return sb.String()
}

// SetText replaces the run's visible text, keeping its properties
// (w-rPr) untouched. Extra text nodes are folded into the first one.
func (r *Run) SetText(text string) {
	texts := r.node.childrenNamed("w-t")
	if len(texts) == 0 {
		tnode := &xmlNode{
			XMLName: xml.Name{Local: "w-t"},
			parent:  r.node,
		}
		r.node.Nodes = append(r.node.Nodes, tnode)
		texts = []*xmlNode{tnode}
	}
	for _, extra := range texts[1:] {
		extra.delete()
	}

	tnode := texts[0]
	tnode.Content = []byte(text)
	tnode.setSpacePreserve(text != strings.TrimSpace(text))
}

// Style - the run's properties (w-rPr) as marshaled xml; empty when the
// run carries no explicit style
func (r *Run) Style() string {
	props := r.node.childrenNamed("w-rPr")
	if len(props) == 0 {
		return ""
	}
	return string(structToXMLBytes(props[0]))
}
