/*
Package refdata assembles and persists the reference data of one Unicode
version: the assignment bitmap and the block table, bundled as an immutable
value.

ReferenceData is never package-global state. Values are built (or loaded)
once and passed explicitly into every computation, so that several Unicode
versions can coexist within one process. After construction a value is
read-only and may be shared across goroutines without locking.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package refdata

import (
	"os"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unicover"
	"github.com/npillmayer/unicover/bitvec"
	"github.com/npillmayer/unicover/ucd"
	"golang.org/x/text/unicode/rangetable"
)

// tracer traces with key 'unicover.ucd'
func tracer() tracing.Trace {
	return tracing.Select("unicover.ucd")
}

// ReferenceData is the reference artifact for one Unicode version.
type ReferenceData struct {
	Version       string         `json:"unicodeVersion"`
	Assigned      *bitvec.Vector `json:"assigned"`
	AssignedTotal int            `json:"assignedTotal"`
	Blocks        []ucd.Block    `json:"blocks"`
}

// Build runs both reference builders against the UCD files for one Unicode
// version, resolved inside dir by the version-threshold rule.
func Build(dir, version string) (*ReferenceData, error) {
	assignPath, blocksPath := ucd.Files(dir, version)

	assignFile, err := os.Open(assignPath)
	if err != nil {
		return nil, unicover.Wrap(unicover.KindMalformedInput, err, "assignment data for %s", version)
	}
	defer assignFile.Close()
	records, err := ucd.ParseAssignments(assignFile)
	if err != nil {
		return nil, err
	}
	am, err := ucd.BuildAssignmentMap(records)
	if err != nil {
		return nil, err
	}

	blocksFile, err := os.Open(blocksPath)
	if err != nil {
		return nil, unicover.Wrap(unicover.KindMalformedInput, err, "block data for %s", version)
	}
	defer blocksFile.Close()
	blockRecords, err := ucd.ParseBlocks(blocksFile, ucd.GrammarFor(version))
	if err != nil {
		return nil, err
	}
	blocks, err := ucd.BuildBlockTable(blockRecords, am)
	if err != nil {
		return nil, err
	}

	tracer().Infof("built reference data for Unicode %s: %d assigned code points, %d blocks",
		version, am.Total, len(blocks))
	return &ReferenceData{
		Version:       version,
		Assigned:      am.Bits,
		AssignedTotal: am.Total,
		Blocks:        blocks,
	}, nil
}

// RangeTable derives a stdlib range table of all assigned code points, for
// interop with unicode.Is and friends.
func (ref *ReferenceData) RangeTable() *unicode.RangeTable {
	runes := make([]rune, 0, ref.AssignedTotal)
	for c := rune(0); c < unicover.MaxCodepoint; c++ {
		if ref.Assigned.Test(c) {
			runes = append(runes, c)
		}
	}
	return rangetable.New(runes...)
}
