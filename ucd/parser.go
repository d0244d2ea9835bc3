/*
Package ucd parses Unicode Character Database text files and builds the two
reference-data structures unicover needs: the bit-per-codepoint assignment
map and the named block table.

The package understands both the modern (Unicode ≥ 3.1.0) and the legacy
file layouts; the caller selects by version, never by sniffing file
contents.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ucd

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unicover.ucd'
func tracer() tracing.Trace {
	return tracing.Select("unicover.ucd")
}

// UCD data files are line oriented: semicolon-separated fields, `#` starts
// a comment, blank lines are ignored. This scanner yields the trimmed
// fields of one record per call, in the manner described by UAX #44.
type lineScanner struct {
	scanner *bufio.Scanner
	fields  []string
	line    int
	err     error
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{scanner: bufio.NewScanner(r)}
}

// next advances to the next non-empty record. It returns false at EOF or on
// a read error.
func (s *lineScanner) next() bool {
	for s.scanner.Scan() {
		s.line++
		text := s.scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts := strings.Split(text, ";")
		s.fields = s.fields[:0]
		for _, f := range parts {
			s.fields = append(s.fields, strings.TrimSpace(f))
		}
		return true
	}
	s.err = s.scanner.Err()
	return false
}

// parseHex decodes one hexadecimal code point field.
func parseHex(field string) (rune, bool) {
	n, err := strconv.ParseUint(field, 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}
