package docx

import (
	"bytes"
	"strings"
	"testing"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
	`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Hello «Na</w:t></w:r><w:r><w:t>me», welcome</w:t></w:r></w:p>` +
	`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Cell «City»</w:t></w:r></w:p></w:tc>` +
	`<w:tc><w:p><w:r><w:t>Second cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
	`<w:p><w:r><w:t>Tail</w:t></w:r></w:p>` +
	`</w:body></w:document>`

func testDoc(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse([]byte(testDocumentXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestParseStructure(t *testing.T) {
	doc := testDoc(t)

	if n := len(doc.Paragraphs()); n != 2 {
		t.Fatalf("Expected 2 body paragraphs, got %d", n)
	}
	if n := len(doc.Tables()); n != 1 {
		t.Fatalf("Expected 1 table, got %d", n)
	}

	rows := doc.Tables()[0].Rows()
	if len(rows) != 1 {
		t.Fatalf("Expected 1 table row, got %d", len(rows))
	}
	if n := len(rows[0].Cells()); n != 2 {
		t.Fatalf("Expected 2 cells, got %d", n)
	}
	if n := len(rows[0].Cells()[0].Paragraphs()); n != 1 {
		t.Fatalf("Expected 1 paragraph in first cell, got %d", n)
	}
}

func TestEachParagraphOrder(t *testing.T) {
	doc := testDoc(t)

	var texts []string
	doc.EachParagraph(func(p *Paragraph) {
		texts = append(texts, p.Text())
	})

	want := []string{
		"Hello «Name», welcome",
		"Cell «City»",
		"Second cell",
		"Tail",
	}
	if len(texts) != len(want) {
		t.Fatalf("Expected %d paragraphs, got %d: %q", len(want), len(texts), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("Paragraph %d: expected %q, got %q", i, want[i], texts[i])
		}
	}
}

func TestPlaintext(t *testing.T) {
	doc := testDoc(t)

	plaintext := doc.Plaintext()
	for _, line := range []string{"Hello «Name», welcome", "Cell «City»", "Tail"} {
		if !strings.Contains(plaintext, line) {
			t.Fatalf("Plaintext missing %q:\n%s", line, plaintext)
		}
	}
}

func TestRunText(t *testing.T) {
	doc := testDoc(t)

	runs := doc.Paragraphs()[0].Runs()
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Text() != "Hello «Na" {
		t.Fatalf("Unexpected first run text: %q", runs[0].Text())
	}
	if runs[1].Text() != "me», welcome" {
		t.Fatalf("Unexpected second run text: %q", runs[1].Text())
	}
}

func TestCollapseKeepsFirstRunStyle(t *testing.T) {
	doc := testDoc(t)

	para := doc.Paragraphs()[0]
	styleBefore := para.Runs()[0].Style()
	if !strings.Contains(styleBefore, "<w:b") {
		t.Fatalf("Fixture first run must be bold, got style %q", styleBefore)
	}

	para.Collapse("Hello Ana, welcome")

	runs := para.Runs()
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run after collapse, got %d", len(runs))
	}
	if runs[0].Text() != "Hello Ana, welcome" {
		t.Fatalf("Unexpected collapsed text: %q", runs[0].Text())
	}
	if runs[0].Style() != styleBefore {
		t.Fatalf("Collapse must keep the first run's style: %q != %q", runs[0].Style(), styleBefore)
	}

	if !bytes.Contains(doc.Bytes(), []byte("Hello Ana, welcome")) {
		t.Fatalf("Collapsed text missing from marshaled document")
	}
}

func TestSetTextSpacePreserve(t *testing.T) {
	doc := testDoc(t)

	run := doc.Paragraphs()[1].Runs()[0]
	run.SetText(" padded ")

	buf := doc.Bytes()
	if !bytes.Contains(buf, []byte(`xml:space="preserve"`)) {
		t.Fatalf("Expected xml:space=\"preserve\" marker:\n%s", buf)
	}

	// and off again for trimmed text
	run.SetText("plain")
	buf = doc.Bytes()
	if bytes.Contains(buf, []byte(`xml:space="preserve"`)) {
		t.Fatalf("Marker must be dropped for trimmed text:\n%s", buf)
	}
}

func TestSetTextOnRunWithoutTextNode(t *testing.T) {
	buf := []byte(`<w:document><w:body><w:p><w:r><w:rPr><w:i/></w:rPr></w:r></w:p></w:body></w:document>`)
	doc, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	run := doc.Paragraphs()[0].Runs()[0]
	if run.Text() != "" {
		t.Fatalf("Expected empty run text, got %q", run.Text())
	}
	run.SetText("late")
	if run.Text() != "late" {
		t.Fatalf("Expected %q, got %q", "late", run.Text())
	}
	if !bytes.Contains(doc.Bytes(), []byte("late")) {
		t.Fatalf("New text node missing from marshaled document")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	doc := testDoc(t)

	buf := doc.Bytes()
	for _, tag := range []string{"<w:document", "<w:body>", "<w:tbl>", "<w:rPr><w:b", "</w:document>"} {
		if !bytes.Contains(buf, []byte(tag)) {
			t.Fatalf("Marshaled document missing %q:\n%s", tag, buf)
		}
	}
	if bytes.Contains(buf, []byte("<w-")) {
		t.Fatalf("Internal prefix leaked into output:\n%s", buf)
	}

	// output must parse again
	if _, err := Parse(buf); err != nil {
		t.Fatalf("Re-parse: %v", err)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("<w:document><unclosed")); err == nil {
		t.Fatalf("Expected error for broken xml")
	}
}
