package docx

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Document is one parsed instance of a template's main part. It owns its
// node tree exclusively and is mutated in place during substitution.
type Document struct {
	root *xmlNode
}

// Parse builds a Document from raw word/document.xml bytes.
func Parse(buf []byte) (*Document, error) {
	root := &xmlNode{}
	if err := xml.Unmarshal(decodePrefixes(buf), root); err != nil {
		return nil, fmt.Errorf("document.xml: %w", err)
	}

	// Assign parent nodes to all nodes
	for _, n := range root.Nodes {
		n.parent = root
	}
	root.Walk(func(xnode *xmlNode) {
		for _, n := range xnode.Nodes {
			n.parent = xnode
		}
	})

	return &Document{root: root}, nil
}

// Bytes - document as word/document.xml content (without the xml header)
func (d *Document) Bytes() []byte {
	return structToXMLBytes(d.root)
}

func (d *Document) body() *xmlNode {
	if d.root == nil {
		return nil
	}
	if nodes := d.root.childrenNamed("w-body"); len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

// Paragraphs - top-level paragraphs of the document body, excluding
// paragraphs nested inside tables
func (d *Document) Paragraphs() []*Paragraph {
	body := d.body()
	if body == nil {
		return nil
	}
	var paras []*Paragraph
	for _, n := range body.childrenNamed("w-p") {
		paras = append(paras, &Paragraph{node: n})
	}
	return paras
}

// Tables - top-level tables of the document body
func (d *Document) Tables() []*Table {
	body := d.body()
	if body == nil {
		return nil
	}
	var tables []*Table
	for _, n := range body.childrenNamed("w-tbl") {
		tables = append(tables, &Table{node: n})
	}
	return tables
}

// EachParagraph visits every paragraph in document order: body
// paragraphs and every paragraph inside every table cell, tables nested
// in cells included.
func (d *Document) EachParagraph(fn func(*Paragraph)) {
	body := d.body()
	if body == nil {
		return
	}
	eachParagraph(body, fn)
}

func eachParagraph(container *xmlNode, fn func(*Paragraph)) {
	for _, n := range container.Nodes {
		switch n.Tag() {
		case "w-p":
			fn(&Paragraph{node: n})
		case "w-tbl":
			for _, row := range (&Table{node: n}).Rows() {
				for _, cell := range row.Cells() {
					eachParagraph(cell.node, fn)
				}
			}
		}
	}
}

// Plaintext - visible text of the whole document, one line per paragraph
func (d *Document) Plaintext() string {
	var sb strings.Builder
	d.EachParagraph(func(p *Paragraph) {
		sb.WriteString(p.Text())
		sb.WriteByte('\n')
	})
	return sb.String()
}

// Table ..
type Table struct {
	node *xmlNode
}

// Rows ..
func (t *Table) Rows() []*TableRow {
	var rows []*TableRow
	for _, n := range t.node.childrenNamed("w-tr") {
		rows = append(rows, &TableRow{node: n})
	}
	return rows
}

// TableRow ..
type TableRow struct {
	node *xmlNode
}

// Cells ..
func (r *TableRow) Cells() []*TableCell {
	var cells []*TableCell
	for _, n := range r.node.childrenNamed("w-tc") {
		cells = append(cells, &TableCell{node: n})
	}
	return cells
}

// TableCell ..
type TableCell struct {
	node *xmlNode
}

// Paragraphs - direct paragraphs of the cell
func (c *TableCell) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, n := range c.node.childrenNamed("w-p") {
		paras = append(paras, &Paragraph{node: n})
	}
	return paras
}
