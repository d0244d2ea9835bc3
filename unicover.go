/*
Package unicover reports how well fonts cover the Unicode code space.

For every Unicode block, unicover counts the code points a font maps in its
`cmap` table, split into code points which Unicode itself assigns ("expected")
and code points the font maps although Unicode leaves them unassigned
("unexpected"). Two independent pipelines converge on a shared bitmap
representation:

▪︎ a reference-data builder (packages `ucd` and `refdata`) turns raw Unicode
Character Database files for one Unicode version into a bit-per-codepoint
assignment map plus a named block table, and persists both as a write-once
artifact;

▪︎ a coverage engine (packages `fontscan` and `coverage`) extracts the set of
code points a font claims to map and tallies, per block, the masked
population counts against the reference map.

Binary font parsing is not this module's business: decoding TTF/OTF/TTC
containers and their `cmap` tables is delegated to go-text/typesetting, and
package `fontscan` merely consumes the decoded codepoint-to-glyph signal.

# Status

Reference data has been verified against UCD releases from 2.0.0 up to the
current one, including the pre-3.1.0 file layouts and the legacy Blocks.txt
grammar.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package unicover

// MaxCodepoint is the exclusive upper bound of the code space unicover
// operates on: planes 0 through 2, i.e. up to the end of the Supplementary
// Ideographic Plane. Code points at or above this ceiling never enter any
// bitmap. This is a fixed system constant, not a configuration knob.
const MaxCodepoint rune = 0x30000

// ThresholdVersion is the Unicode version at which block names became
// unique, Blocks.txt switched to the `start..end; name` grammar, and UCD
// files moved to unversioned names. File resolution and grammar selection
// key off this version, never off file contents.
const ThresholdVersion = "3.1.0"
