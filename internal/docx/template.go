// Package docx opens .docx templates and exposes their paragraphs, runs
// and tables for in-place text substitution.
//
// A Template is the read-only source; every call to Instance parses a
// fresh, independent Document from it, so rendered documents never share
// state with each other or with the template.
package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

const mainDocument = "word/document.xml"

// Template ..
type Template struct {
	path string
	zipr *zip.ReadCloser

	// save all zip files here so we can build the docx again
	files map[string]*zip.File

	// raw word/document.xml, parsed fresh for every Instance
	docXML []byte
}

// OpenTemplate ..
func OpenTemplate(docpath string) (*Template, error) {
	t := &Template{
		path:  docpath,
		files: map[string]*zip.File{},
	}

	// Unzip
	var err error
	if t.zipr, err = zip.OpenReader(t.path); err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}

	for _, f := range t.zipr.File {
		t.files[f.Name] = f
	}

	// Get main document
	fxml, ok := t.files[mainDocument]
	if !ok {
		_ = t.zipr.Close()
		return nil, fmt.Errorf("mandatory [ %s ] not found in %s", mainDocument, docpath)
	}

	fr, err := fxml.Open()
	if err != nil {
		_ = t.zipr.Close()
		return nil, fmt.Errorf("read %s: %w", mainDocument, err)
	}
	t.docXML = readerBytes(fr)

	return t, nil
}

// Path of the underlying .docx file
func (t *Template) Path() string {
	return t.path
}

// Close the underlying archive
func (t *Template) Close() error {
	return t.zipr.Close()
}

// Instance - fresh, independent document tree. One instance per record;
// instances never share nodes with each other or with the template.
func (t *Template) Instance() (*Document, error) {
	return Parse(t.docXML)
}

// Save - build a new docx at path from the template archive with the
// given document swapped in as the main part
func (t *Template) Save(doc *Document, path string) error {
	fDocx, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer fDocx.Close()

	zipw := zip.NewWriter(fDocx)

	// Loop existing files to build docx archive again
	for _, f := range t.zipr.File {
		var fw io.Writer
		if fw, err = zipw.Create(f.Name); err != nil {
			return fmt.Errorf("write [ %s ] to archive: %w", f.Name, err)
		}

		if f.Name == mainDocument {
			head := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
			if _, err = fw.Write(append(head, doc.Bytes()...)); err != nil {
				return fmt.Errorf("write [ %s ] to archive: %w", f.Name, err)
			}
			continue
		}

		var fr io.ReadCloser
		if fr, err = f.Open(); err != nil {
			return fmt.Errorf("read [ %s ] from archive: %w", f.Name, err)
		}
		if _, err = fw.Write(readerBytes(fr)); err != nil {
			return fmt.Errorf("write [ %s ] to archive: %w", f.Name, err)
		}
	}

	if err = zipw.Close(); err != nil {
		return fmt.Errorf("finish archive: %w", err)
	}
	return fDocx.Close()
}
