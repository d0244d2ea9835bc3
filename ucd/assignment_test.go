package ucd

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unicover"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type AssignmentTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestAssignmentBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicover.ucd")
	defer teardown()
	suite.Run(t, new(AssignmentTestEnviron))
}

func (env *AssignmentTestEnviron) parse(lines ...string) []AssignRecord {
	records, err := ParseAssignments(strings.NewReader(strings.Join(lines, "\n")))
	env.Require().NoError(err)
	return records
}

// --- Tests -----------------------------------------------------------------

func (env *AssignmentTestEnviron) TestOrdinaryAndRange() {
	records := env.parse(
		"0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;",
		"3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;",
		"4DB5;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;",
	)
	am, err := BuildAssignmentMap(records)
	env.Require().NoError(err)
	env.True(am.Bits.Test(0x41))
	env.False(am.Bits.Test(0x42))
	env.True(am.Bits.Test(0x3400))
	env.True(am.Bits.Test(0x4DB5))
	env.False(am.Bits.Test(0x4DB6))
	env.Equal(1+(0x4DB5-0x3400+1), am.Total)
}

func (env *AssignmentTestEnviron) TestExclusionOfSingletons() {
	records := env.parse(
		"0000;<control>;Cc;0;BN;;;;;N;NULL;;;;",
		"001F;<control>;Cc;0;S;;;;;N;UNIT SEPARATOR;;;;",
		"0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;",
	)
	am, err := BuildAssignmentMap(records)
	env.Require().NoError(err)
	env.False(am.Bits.Test(0x0000))
	env.False(am.Bits.Test(0x001F))
	env.Equal(1, am.Total)
}

func (env *AssignmentTestEnviron) TestExclusionOfRanges() {
	records := env.parse(
		"D800;<Non Private Use High Surrogate, First>;Cs;0;L;;;;;N;;;;;",
		"DB7F;<Non Private Use High Surrogate, Last>;Cs;0;L;;;;;N;;;;;",
		"E000;<Private Use, First>;Co;0;L;;;;;N;;;;;",
		"F8FF;<Private Use, Last>;Co;0;L;;;;;N;;;;;",
	)
	am, err := BuildAssignmentMap(records)
	env.Require().NoError(err)
	for _, c := range []rune{0xD800, 0xDA00, 0xDB7F, 0xE000, 0xF000, 0xF8FF} {
		env.False(am.Bits.Test(c), "U+%04X must stay unassigned", c)
	}
	env.Zero(am.Total)
}

func (env *AssignmentTestEnviron) TestOrdinaryNameContainingControl() {
	// a regular character name is never an exclusion designation
	records := env.parse("1F39B;CONTROL KNOBS;So;0;ON;;;;;N;;;;;")
	am, err := BuildAssignmentMap(records)
	env.Require().NoError(err)
	env.True(am.Bits.Test(0x1F39B))
}

func (env *AssignmentTestEnviron) TestCeilingDropsHighCodepoints() {
	records := env.parse(
		"20000;<CJK Ideograph Extension B, First>;Lo;0;L;;;;;N;;;;;",
		"40000;<CJK Ideograph Extension B, Last>;Lo;0;L;;;;;N;;;;;",
		"E0001;LANGUAGE TAG;Cf;0;BN;;;;;N;;;;;",
	)
	am, err := BuildAssignmentMap(records)
	env.Require().NoError(err)
	env.True(am.Bits.Test(0x20000))
	env.True(am.Bits.Test(0x2FFFF))
	env.False(am.Bits.Test(0x30000), "ceiling code point must be dropped")
	env.False(am.Bits.Test(0xE0001))
	env.Equal(int(unicover.MaxCodepoint)-0x20000, am.Total)
}

func (env *AssignmentTestEnviron) TestRangeEndWithoutStart() {
	records := env.parse("4DB5;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;")
	_, err := BuildAssignmentMap(records)
	env.Require().Error(err)
	env.True(errors.Is(err, unicover.ErrRangeInvariantViolation))
}

func (env *AssignmentTestEnviron) TestRangeEndBeforeStart() {
	records := env.parse(
		"4DB5;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;",
		"3400;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;",
	)
	_, err := BuildAssignmentMap(records)
	env.True(errors.Is(err, unicover.ErrRangeInvariantViolation))
}

func (env *AssignmentTestEnviron) TestDanglingRangeStart() {
	records := env.parse(
		"3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;",
		"0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;",
	)
	_, err := BuildAssignmentMap(records)
	env.True(errors.Is(err, unicover.ErrRangeInvariantViolation))
}

func (env *AssignmentTestEnviron) TestMissingNameField() {
	_, err := ParseAssignments(strings.NewReader("0041\n"))
	env.True(errors.Is(err, unicover.ErrMalformedInput))
}

func (env *AssignmentTestEnviron) TestCommentAndBlankTolerance() {
	records := env.parse(
		"# UnicodeData-style comment",
		"",
		"0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;",
	)
	env.Len(records, 1)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		kind RecordKind
	}{
		{"LATIN CAPITAL LETTER A", Ordinary},
		{"<control>", Excluded},
		{"<Private Use, First>", Excluded},
		{"<Plane 15 Private Use, Last>", Excluded},
		{"<Low Surrogate, First>", Excluded},
		{"<CJK Ideograph Extension A, First>", RangeStart},
		{"<CJK Ideograph Extension A, Last>", RangeEnd},
		{"CONTROL KNOBS", Ordinary},
		{"PRIVATE USE AREA dingus", Ordinary},
	}
	for _, c := range cases {
		if got := classify(c.name); got != c.kind {
			t.Errorf("classify(%q) = %v, want %v", c.name, got, c.kind)
		}
	}
}
