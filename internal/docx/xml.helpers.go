package docx

import (
	"bytes"
	"encoding/xml"
	"io"
	"log"
)

func readerBytes(rdr io.ReadCloser) []byte {
	buf := new(bytes.Buffer)

	if rdr == nil {
		log.Printf("can't read bytes from empty reader")
		return nil
	}

	if _, err := buf.ReadFrom(rdr); err != nil {
		log.Printf("can't read bytes: %s", err)
		return nil
	}

	if err := rdr.Close(); err != nil {
		log.Printf("can't close reader: %s", err)
		return nil
	}

	return buf.Bytes()
}

// xml decoder doesnt support <w:t so swap namespace prefixes to "w-"
// before decoding. Any string without "w:" stays the same and every
// "w-" is swapped back by structToXMLBytes.
func decodePrefixes(buf []byte) []byte {
	buf = bytes.ReplaceAll(buf, []byte("<w:"), []byte("<w-"))
	buf = bytes.ReplaceAll(buf, []byte("</w:"), []byte("</w-"))
	buf = bytes.ReplaceAll(buf, []byte("<v:"), []byte("<v-"))
	buf = bytes.ReplaceAll(buf, []byte("</v:"), []byte("</v-"))
	return buf
}

// Encode node tree back to xml code string
func structToXMLBytes(v any) []byte {
	buf, err := xml.Marshal(v)
	if err != nil {
		return nil
	}

	// This is fixing `xmlns` attribute representation after marshal
	buf = bytes.ReplaceAll(buf, []byte(` xmlns:_xmlns="xmlns"`), []byte(""))
	buf = bytes.ReplaceAll(buf, []byte(`_xmlns:`), []byte("xmlns:"))
	buf = bytes.ReplaceAll(buf, []byte(` xmlns:r="r"`), []byte(""))
	buf = bytes.ReplaceAll(buf, []byte(` xmlns:o="o"`), []byte(""))
	buf = bytes.ReplaceAll(buf, []byte(` xmlns:w="w"`), []byte(""))
	buf = bytes.ReplaceAll(buf, []byte(` xmlns:v="v"`), []byte(""))
	buf = bytes.ReplaceAll(buf, []byte(` xmlns:xml="xml"`), []byte(""))

	// reverse of decodePrefixes
	buf = bytes.ReplaceAll(buf, []byte("<w-"), []byte("<w:"))
	buf = bytes.ReplaceAll(buf, []byte("</w-"), []byte("</w:"))
	buf = bytes.ReplaceAll(buf, []byte("<v-"), []byte("<v:"))
	buf = bytes.ReplaceAll(buf, []byte("</v-"), []byte("</v:"))

	return buf
}
