package docx

import (
	"encoding/xml"
)

// Generic OOXML element. The whole of word/document.xml is held as one
// tree of these; the typed views (Document, Paragraph, Run, Table) are
// thin wrappers that never copy the underlying nodes.
type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content []byte     `xml:",chardata"`
	Nodes   []*xmlNode `xml:",any"`

	parent *xmlNode
}

// UnmarshalXML ..
func (xnode *xmlNode) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type x xmlNode
	return d.DecodeElement((*x)(xnode), &start)
}

// Tag - local element name (w-p, w-r, w-tbl, ...)
func (xnode *xmlNode) Tag() string {
	return xnode.XMLName.Local
}

// Walk down all nodes and do custom stuff with given function
func (xnode *xmlNode) Walk(fn func(*xmlNode)) {
	for _, n := range xnode.Nodes {
		if n == nil {
			continue
		}

		fn(n) // do your custom stuff

		if len(n.Nodes) > 0 {
			// continue only if have deeper nodes
			n.Walk(fn)
		}
	}
}

// Direct children carrying the given tag, in document order
func (xnode *xmlNode) childrenNamed(tag string) []*xmlNode {
	var nodes []*xmlNode
	for _, n := range xnode.Nodes {
		if n != nil && n.Tag() == tag {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// index of element inside parent.Nodes slice
func (xnode *xmlNode) index() int {
	if xnode.parent != nil {
		for i, n := range xnode.parent.Nodes {
			if xnode == n {
				return i
			}
		}
	}
	return -1
}

// Delete node - spliced out of the parent so it never reaches the
// marshaled output
func (xnode *xmlNode) delete() {
	i := xnode.index()
	if i == -1 {
		return
	}
	parent := xnode.parent
	parent.Nodes = append(parent.Nodes[:i], parent.Nodes[i+1:]...)
	xnode.parent = nil
}

// Keep or drop the xml:space="preserve" marker. Word strips leading and
// trailing spaces from text nodes without it.
func (xnode *xmlNode) setSpacePreserve(on bool) {
	attrs := xnode.Attrs[:0]
	for _, a := range xnode.Attrs {
		if a.Name.Local == "space" || a.Name.Local == "xml:space" {
			continue
		}
		attrs = append(attrs, a)
	}
	xnode.Attrs = attrs
	if on {
		xnode.Attrs = append(xnode.Attrs, xml.Attr{
			Name:  xml.Name{Local: "xml:space"},
			Value: "preserve",
		})
	}
}
