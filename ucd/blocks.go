package ucd

import (
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/unicover"
)

// Grammar selects the Blocks.txt line format. Unicode 3.1.0 switched from
// `start; end; name` to `start..end; name`; which one applies is decided by
// version, not by probing file contents.
type Grammar int

const (
	// GrammarModern parses `start..end; name` lines (Unicode ≥ 3.1.0).
	GrammarModern Grammar = iota
	// GrammarLegacy parses `start; end; name` lines (Unicode < 3.1.0).
	GrammarLegacy
)

// BlockRecord is one raw block-range line, before special-casing.
type BlockRecord struct {
	Start, End rune
	Name       string
}

// Block is one entry of the final block table.
type Block struct {
	Name     string `json:"name"`
	Start    rune   `json:"start"`
	End      rune   `json:"end"`
	Assigned int    `json:"assigned"`
}

// ParseBlocks reads a Blocks.txt-style file with the given grammar. Records
// without a description are silently skipped (comment and blank line
// tolerance); a record matching neither grammar is malformed.
func ParseBlocks(r io.Reader, grammar Grammar) ([]BlockRecord, error) {
	var records []BlockRecord
	s := newLineScanner(r)
	for s.next() {
		rec, ok, err := parseBlockLine(s.fields, grammar)
		if err != nil {
			return nil, unicover.Wrap(unicover.KindMalformedInput, err,
				"block record at line %d", s.line)
		}
		if ok {
			records = append(records, rec)
		}
	}
	if s.err != nil {
		return nil, unicover.Wrap(unicover.KindMalformedInput, s.err, "reading blocks file")
	}
	return records, nil
}

func parseBlockLine(fields []string, grammar Grammar) (BlockRecord, bool, error) {
	var rec BlockRecord
	switch grammar {
	case GrammarLegacy:
		if len(fields) < 3 || fields[2] == "" {
			return rec, false, nil // no description, tolerated
		}
		start, okStart := parseHex(fields[0])
		end, okEnd := parseHex(fields[1])
		if !okStart || !okEnd {
			return rec, false, unicover.Errorf(unicover.KindMalformedInput,
				"bad code points %q; %q", fields[0], fields[1])
		}
		rec = BlockRecord{Start: start, End: end, Name: fields[2]}
	default:
		if len(fields) < 2 || fields[1] == "" {
			return rec, false, nil
		}
		lo, hi, found := strings.Cut(fields[0], "..")
		if !found {
			return rec, false, unicover.Errorf(unicover.KindMalformedInput,
				"bad code point range %q", fields[0])
		}
		start, okStart := parseHex(lo)
		end, okEnd := parseHex(hi)
		if !okStart || !okEnd {
			return rec, false, unicover.Errorf(unicover.KindMalformedInput,
				"bad code point range %q", fields[0])
		}
		rec = BlockRecord{Start: start, End: end, Name: fields[1]}
	}
	if rec.End < rec.Start {
		return rec, false, unicover.Errorf(unicover.KindMalformedInput,
			"block %q ends before it starts", rec.Name)
	}
	return rec, true, nil
}

// Historical irregularities of the Unicode block list, normalized by
// BuildBlockTable. Before Unicode 3.1.0 block names were not unique:
// the two supplementary private-use planes were both named "Private Use",
// and "Specials" appeared twice because the byte order mark had a
// one-codepoint block of its own.
const (
	controlSpan   = 0x20
	spuaAOrigin   = 0xF0000
	spuaBOrigin   = 0x100000
	byteOrderMark = 0xFEFF
)

// Names of the synthetic control blocks peeled off "Basic Latin" and
// "Latin-1 Supplement". Their assigned count is zero by definition, since
// control characters never enter the assignment map.
const (
	c0Name = "C0 Control Character"
	c1Name = "C1 Control Character"
)

// BuildBlockTable normalizes raw block records against an assignment map.
//
// Applied in order: control-range splitting (a synthetic C0/C1 control
// block is peeled off "Basic Latin" and "Latin-1 Supplement"),
// pre-unification renaming and dropping, then the per-block population
// count. The result is sorted by start and guaranteed free of duplicate
// names. Blocks lying wholly above unicover.MaxCodepoint stay in the
// table; their assigned count is simply zero.
func BuildBlockTable(records []BlockRecord, am *AssignmentMap) ([]Block, error) {
	var table []Block
	for _, rec := range records {
		switch {
		case rec.Name == "Basic Latin":
			table = append(table, Block{Name: c0Name, Start: rec.Start, End: rec.Start + controlSpan - 1})
			rec.Start += controlSpan
		case rec.Name == "Latin-1 Supplement":
			table = append(table, Block{Name: c1Name, Start: rec.Start, End: rec.Start + controlSpan - 1})
			rec.Start += controlSpan
		case rec.Start == spuaAOrigin:
			rec.Name = "Supplementary Private Use Area-A"
		case rec.Start == spuaBOrigin:
			rec.Name = "Supplementary Private Use Area-B"
		case rec.Start == byteOrderMark && rec.End == byteOrderMark:
			// pre-3.1.0 duplicate of "Specials"; dropping it keeps names unique
			tracer().Debugf("dropping one-codepoint block %q at U+FEFF", rec.Name)
			continue
		}
		table = append(table, Block{Name: rec.Name, Start: rec.Start, End: rec.End})
	}
	sort.SliceStable(table, func(i, j int) bool { return table[i].Start < table[j].Start })
	seen := make(map[string]bool, len(table))
	for i := range table {
		b := &table[i]
		if seen[b.Name] {
			return nil, unicover.Errorf(unicover.KindMalformedInput,
				"duplicate block name %q", b.Name)
		}
		seen[b.Name] = true
		if b.Name == c0Name || b.Name == c1Name {
			continue
		}
		b.Assigned = am.Bits.CountRange(b.Start, b.End)
	}
	tracer().Infof("block table holds %d blocks", len(table))
	return table, nil
}
