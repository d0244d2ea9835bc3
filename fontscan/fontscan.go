/*
Package fontscan extracts, per font, the set of code points the font's cmap
table claims to map, as a bit vector over the unicover code space. It is
the bridge between the external font-parsing collaborator and the coverage
engine: everything binary about fonts stays on the other side of
internal/fontload.

Batch scanning follows a skip-and-continue policy: one unreadable font in a
batch must not abort the whole report.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fontscan

import (
	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unicover"
	"github.com/npillmayer/unicover/bitvec"
	"github.com/npillmayer/unicover/internal/fontload"
)

// tracer traces with key 'unicover.fonts'
func tracer() tracing.Trace {
	return tracing.Select("unicover.fonts")
}

// Options configure code point extraction.
type Options struct {
	// RequireOutline keeps only code points whose glyph carries actual
	// data (an outline with segments, an embedded bitmap, or an SVG
	// document). Off by default: a cmap entry alone counts as support.
	RequireOutline bool
}

// FontBits is the extracted code point set of one font.
type FontBits struct {
	Name string
	Bits *bitvec.Vector
}

// Skipped reports one font file (or collection member) that was left out of
// a batch scan, together with the classified reason.
type Skipped struct {
	Path string
	Err  error
}

// Extract probes the font's cmap for every code point of the unicover code
// space and returns the mapped set.
func Extract(face *font.Face, opts Options) *bitvec.Vector {
	bits := bitvec.New(int(unicover.MaxCodepoint))
	for c := rune(0); c < unicover.MaxCodepoint; c++ {
		gid, ok := face.NominalGlyph(c)
		if !ok {
			continue
		}
		if opts.RequireOutline && !hasGlyphData(face, gid) {
			continue
		}
		bits.Set(c)
	}
	return bits
}

// hasGlyphData reports whether a glyph resolves to non-empty glyph data.
func hasGlyphData(face *font.Face, gid font.GID) bool {
	switch data := face.GlyphData(gid).(type) {
	case font.GlyphOutline:
		return len(data.Segments) > 0
	case font.GlyphBitmap, font.GlyphSVG:
		return true
	}
	return false
}

// ScanFile extracts the code point sets of every font in one container
// file. Failures to open or parse are classified as UnreadableFont.
func ScanFile(path string, opts Options) ([]FontBits, error) {
	fonts, err := fontload.LoadFontFile(path)
	if err != nil {
		return nil, unicover.Wrap(unicover.KindUnreadableFont, err, "font file %s", path)
	}
	extracted := make([]FontBits, len(fonts))
	for i, f := range fonts {
		extracted[i] = FontBits{Name: f.Fontname, Bits: Extract(f.Face, opts)}
		tracer().Infof("font %s maps %d code points", f.Fontname, extracted[i].Bits.Count())
	}
	return extracted, nil
}

// ScanAll scans a batch of font files. Unreadable files and fonts whose
// resolved name has already been scanned are logged, recorded as skipped
// and do not abort the run. The caller decides what zero usable fonts
// means (typically NoUsableInput).
func ScanAll(paths []string, opts Options) (fonts []FontBits, skipped []Skipped) {
	seen := make(map[string]bool)
	for _, path := range paths {
		extracted, err := ScanFile(path, opts)
		if err != nil {
			tracer().Errorf("skipping %s: %v", path, err)
			skipped = append(skipped, Skipped{Path: path, Err: err})
			continue
		}
		for _, fb := range extracted {
			if seen[fb.Name] {
				tracer().Infof("skipping duplicate font %s (%s)", fb.Name, path)
				skipped = append(skipped, Skipped{Path: path, Err: unicover.Errorf(
					unicover.KindDuplicateFont, "font %s already scanned", fb.Name)})
				continue
			}
			seen[fb.Name] = true
			fonts = append(fonts, fb)
		}
	}
	return fonts, skipped
}
