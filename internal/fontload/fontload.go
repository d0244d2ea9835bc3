// Package fontload opens font container files and hands out the decoded
// per-font views the coverage engine consumes. Binary parsing is fully
// delegated: go-text/typesetting decodes the containers and cmap tables,
// x/image/sfnt supplies the display names.
package fontload

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'unicover.fonts'
func tracer() tracing.Trace {
	return tracing.Select("unicover.fonts")
}

// ScalableFont is a parsed scalable font with original bytes and the
// typesetting view used for cmap and glyph queries.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	Face     *font.Face
}

// LoadFontFile loads all fonts of an OpenType container file. Single-font
// files (TTF, OTF) yield one entry; collection files (TTC) yield one entry
// per member font.
func LoadFontFile(fontfile string) ([]*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return ParseFonts(bytez, filepath.Base(fontfile))
}

// ttcTag is the magic number of a TrueType collection header.
var ttcTag = []byte("ttcf")

// ParseFonts parses one font container from memory. fallback names fonts
// whose `name` table cannot be decoded.
func ParseFonts(fbytes []byte, fallback string) ([]*ScalableFont, error) {
	var faces []*font.Face
	var err error
	if bytes.HasPrefix(fbytes, ttcTag) {
		faces, err = font.ParseTTC(bytes.NewReader(fbytes))
	} else {
		var face *font.Face
		face, err = font.ParseTTF(bytes.NewReader(fbytes))
		faces = []*font.Face{face}
	}
	if err != nil {
		return nil, err
	}
	fonts := make([]*ScalableFont, len(faces))
	for i, face := range faces {
		fonts[i] = &ScalableFont{
			Fontname: fontName(fbytes, i, fallback),
			Binary:   fbytes,
			Face:     face,
		}
		tracer().Debugf("loaded and parsed font %s", fonts[i].Fontname)
	}
	return fonts, nil
}

// fontName extracts the full font name of collection member i via the SFNT
// `name` table, falling back to a synthesized name.
func fontName(fbytes []byte, i int, fallback string) string {
	synthesized := fallback
	if i > 0 {
		synthesized = fmt.Sprintf("%s#%d", fallback, i)
	}
	coll, err := sfnt.ParseCollection(fbytes)
	if err != nil || i >= coll.NumFonts() {
		return synthesized
	}
	f, err := coll.Font(i)
	if err != nil {
		return synthesized
	}
	name, err := f.Name(nil, sfnt.NameIDFull)
	if err != nil || name == "" {
		return synthesized
	}
	return name
}
