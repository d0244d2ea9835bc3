/*
Package coverage tallies, per Unicode block, how many code points a font
maps. Counts are split into "expected" (code points Unicode assigns) and
"unexpected" (code points the font maps although Unicode leaves them
unassigned).

Compute is a pure function of two read-only inputs and may run concurrently
for independent fonts; only aggregation of several fonts into one combined
set is a fold that needs a single writer.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package coverage

import (
	"math/bits"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unicover"
	"github.com/npillmayer/unicover/bitvec"
	"github.com/npillmayer/unicover/refdata"
	"github.com/npillmayer/unicover/ucd"
)

// tracer traces with key 'unicover.fonts'
func tracer() tracing.Trace {
	return tracing.Select("unicover.fonts")
}

// BlockCoverage is the per-block tally for one font or aggregate.
type BlockCoverage struct {
	Block      ucd.Block
	Expected   int // mapped code points which Unicode assigns
	Unexpected int // mapped code points which Unicode leaves unassigned
}

// Result is the coverage of one font (or one aggregate of fonts) against
// one Unicode version, ordered by block start. It is immutable once
// computed.
type Result struct {
	Font    string
	Version string
	Blocks  []BlockCoverage
}

// Compute tallies a font's code point set against reference data. It has no
// error outcomes: a font contributing zero bits yields all-zero counts.
//
// Per block the inner loop walks the words spanned by the block's inclusive
// range, masking off bits below the range start in the first word and above
// the range end in the last. Zero font words are skipped outright; a
// reference word that is entirely unset or entirely set short-circuits the
// split, otherwise both halves are population-counted independently.
func Compute(fontBits *bitvec.Vector, ref *refdata.ReferenceData) *Result {
	res := &Result{Version: ref.Version, Blocks: make([]BlockCoverage, 0, len(ref.Blocks))}
	for _, block := range ref.Blocks {
		cov := BlockCoverage{Block: block}
		loWord := int(block.Start) / bitvec.WordBits
		hiWord := int(block.End) / bitvec.WordBits
		for k := loWord; k <= hiWord; k++ {
			fontWord := fontBits.Word(k)
			if fontWord == 0 {
				continue
			}
			mapped := fontWord & bitvec.RangeMask(k, block.Start, block.End)
			if mapped == 0 {
				continue
			}
			switch refWord := ref.Assigned.Word(k); refWord {
			case 0:
				cov.Unexpected += bits.OnesCount64(mapped)
			case ^uint64(0):
				cov.Expected += bits.OnesCount64(mapped)
			default:
				cov.Expected += bits.OnesCount64(mapped & refWord)
				cov.Unexpected += bits.OnesCount64(mapped &^ refWord)
			}
		}
		res.Blocks = append(res.Blocks, cov)
	}
	return res
}

// Union folds any number of font code point sets into one combined set,
// zero-extending shorter vectors. An empty input is not a zero-coverage
// report but an abort condition.
func Union(sets []*bitvec.Vector) (*bitvec.Vector, error) {
	if len(sets) == 0 {
		return nil, unicover.Errorf(unicover.KindNoUsableInput, "no font data to aggregate")
	}
	combined := sets[0].Clone()
	for _, set := range sets[1:] {
		combined.Or(set)
	}
	tracer().Debugf("aggregated %d font code point sets", len(sets))
	return combined, nil
}
