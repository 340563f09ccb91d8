// Package filename derives filesystem-safe output names from record
// field values.
package filename

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Characters Windows refuses in filenames; the other platforms cope,
// the names must work everywhere.
var reserved = strings.NewReplacer(
	"<", "_", ">", "_", ":", "_", `"`, "_",
	"/", "_", `\`, "_", "|", "_", "?", "_", "*", "_",
)

// Normalize makes text safe for use in a filename: accented characters
// decompose to their base form (ò -> o, é -> e), anything without a
// 7-bit representation is dropped, and reserved characters become "_".
// Pure and total; idempotent on its own output.
func Normalize(text string) string {
	// transformers carry state between Transform calls, so the chain is
	// built per call rather than shared
	asciiOnly := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	ascii, _, _ := transform.String(asciiOnly, text)
	return reserved.Replace(ascii)
}

// Identifier builds the output name for one record: every non-blank
// part normalized and bracketed, joined by single spaces. When all
// parts are blank the 1-based row number names the record instead.
// Identifiers are not guaranteed unique across records.
func Identifier(parts []string, row int) string {
	var kept []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kept = append(kept, "["+Normalize(p)+"]")
	}
	if len(kept) == 0 {
		return fmt.Sprintf("row_%d", row)
	}
	return strings.Join(kept, " ")
}
