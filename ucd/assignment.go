package ucd

import (
	"io"
	"strings"

	"github.com/npillmayer/unicover"
	"github.com/npillmayer/unicover/bitvec"
)

// RecordKind is the parse-time classification of one UnicodeData.txt
// record. Classification happens exactly once, during parsing; no later
// stage re-inspects description text.
type RecordKind int

const (
	// Ordinary records assign a single code point.
	Ordinary RecordKind = iota
	// RangeStart opens a First/Last code point range.
	RangeStart
	// RangeEnd closes a First/Last code point range.
	RangeEnd
	// Excluded records carry a control, private-use or surrogate
	// designation. They never contribute assigned bits, not even as part
	// of a First/Last pair: the UCD emits those categories as dedicated
	// pairs whose own descriptor matches the exclusion pattern.
	Excluded
)

// AssignRecord is one decoded record of an assignment file.
type AssignRecord struct {
	Point rune
	Name  string
	Kind  RecordKind
}

// classify tags a record by its descriptive name field. Special names in
// UnicodeData.txt are enclosed in angle brackets; regular character names
// never are, so a name like "CONTROL KNOBS" stays Ordinary.
func classify(name string) RecordKind {
	if !strings.HasPrefix(name, "<") {
		return Ordinary
	}
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "control"),
		strings.Contains(lower, "private use"),
		strings.Contains(lower, "surrogate"):
		return Excluded
	case strings.HasSuffix(name, ", First>"):
		return RangeStart
	case strings.HasSuffix(name, ", Last>"):
		return RangeEnd
	}
	return Ordinary
}

// ParseAssignments reads a UnicodeData.txt-style file and returns its
// records, classified. The per-version differences of UnicodeData.txt all
// live in fields unicover ignores, so a single parse covers every
// supported Unicode version.
func ParseAssignments(r io.Reader) ([]AssignRecord, error) {
	var records []AssignRecord
	s := newLineScanner(r)
	for s.next() {
		if len(s.fields) < 2 {
			return nil, unicover.Errorf(unicover.KindMalformedInput,
				"assignment record at line %d has no name field", s.line)
		}
		point, ok := parseHex(s.fields[0])
		if !ok || s.fields[1] == "" {
			return nil, unicover.Errorf(unicover.KindMalformedInput,
				"assignment record at line %d: bad code point %q", s.line, s.fields[0])
		}
		records = append(records, AssignRecord{
			Point: point,
			Name:  s.fields[1],
			Kind:  classify(s.fields[1]),
		})
	}
	if s.err != nil {
		return nil, unicover.Wrap(unicover.KindMalformedInput, s.err, "reading assignment file")
	}
	return records, nil
}

// AssignmentMap records which code points Unicode assigns in one version.
type AssignmentMap struct {
	Bits  *bitvec.Vector
	Total int // number of set bits, kept for reporting and sanity checks
}

// BuildAssignmentMap folds classified records into the assignment bitmap.
//
// Excluded records are skipped wholesale. Code points at or above
// unicover.MaxCodepoint are dropped, even inside an otherwise valid range.
// A RangeEnd without a pending RangeStart, or a range with last < first, is
// a fatal invariant violation. Global codepoint order of the input is not
// required; only First/Last pairing order matters.
func BuildAssignmentMap(records []AssignRecord) (*AssignmentMap, error) {
	am := &AssignmentMap{Bits: bitvec.New(int(unicover.MaxCodepoint))}
	pending := rune(-1)
	for _, rec := range records {
		switch rec.Kind {
		case Excluded:
			continue
		case RangeStart:
			if pending >= 0 {
				return nil, unicover.Errorf(unicover.KindRangeInvariantViolation,
					"range start U+%04X while U+%04X is still open", rec.Point, pending)
			}
			pending = rec.Point
		case RangeEnd:
			if pending < 0 {
				return nil, unicover.Errorf(unicover.KindRangeInvariantViolation,
					"range end U+%04X without a preceding range start", rec.Point)
			}
			if rec.Point < pending {
				return nil, unicover.Errorf(unicover.KindRangeInvariantViolation,
					"range end U+%04X precedes range start U+%04X", rec.Point, pending)
			}
			for c := pending; c <= rec.Point; c++ {
				am.set(c)
			}
			pending = -1
		default:
			am.set(rec.Point)
		}
	}
	if pending >= 0 {
		return nil, unicover.Errorf(unicover.KindRangeInvariantViolation,
			"range start U+%04X never closed", pending)
	}
	tracer().Infof("assignment map holds %d assigned code points", am.Total)
	return am, nil
}

func (am *AssignmentMap) set(c rune) {
	if c >= unicover.MaxCodepoint || am.Bits.Test(c) {
		return
	}
	am.Bits.Set(c)
	am.Total++
}
