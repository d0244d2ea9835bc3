package ucd

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/npillmayer/unicover"
)

// CompareVersions orders two dotted-decimal Unicode version strings.
// It returns a negative value if a < b, zero if equal, positive if a > b.
// Missing components compare as zero, so "3.1" equals "3.1.0".
func CompareVersions(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var an, bn int
		if i < len(as) {
			an, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bn, _ = strconv.Atoi(bs[i])
		}
		if an != bn {
			return an - bn
		}
	}
	return 0
}

// Legacy reports whether a Unicode version predates the 3.1.0 threshold,
// i.e. uses versioned file names, the old Blocks.txt grammar and
// non-unique block names.
func Legacy(version string) bool {
	return CompareVersions(version, unicover.ThresholdVersion) < 0
}

// GrammarFor returns the Blocks.txt grammar for a Unicode version.
func GrammarFor(version string) Grammar {
	if Legacy(version) {
		return GrammarLegacy
	}
	return GrammarModern
}

// Files resolves the assignment and blocks file paths for one Unicode
// version inside a UCD directory. Modern versions use the unversioned
// names; legacy versions carry the version in the file name. Resolution is
// purely by version check, never by probing the directory.
func Files(dir, version string) (assignments, blocks string) {
	if Legacy(version) {
		return filepath.Join(dir, "UnicodeData-"+version+".txt"),
			filepath.Join(dir, "Blocks-"+version+".txt")
	}
	return filepath.Join(dir, "UnicodeData.txt"), filepath.Join(dir, "Blocks.txt")
}
