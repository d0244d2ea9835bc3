package fontscan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unicover"
	"github.com/npillmayer/unicover/internal/fontload"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

type FontScanTestEnviron struct {
	suite.Suite
	fontPath string
}

// listen for 'go test' command --> run test methods
func TestFontScanning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicover.fonts")
	defer teardown()
	suite.Run(t, new(FontScanTestEnviron))
}

// run once, before test suite methods
func (env *FontScanTestEnviron) SetupSuite() {
	env.fontPath = filepath.Join(env.T().TempDir(), "GoRegular.ttf")
	env.Require().NoError(os.WriteFile(env.fontPath, goregular.TTF, 0o644))
}

// --- Tests -----------------------------------------------------------------

func (env *FontScanTestEnviron) TestExtractMappedCodepoints() {
	fonts, err := fontload.ParseFonts(goregular.TTF, "GoRegular.ttf")
	env.Require().NoError(err)
	env.Require().Len(fonts, 1)

	bits := Extract(fonts[0].Face, Options{})
	env.True(bits.Test('A'), "Go Regular must map LATIN CAPITAL LETTER A")
	env.True(bits.Test(' '))
	env.True(bits.Test(0x03B1), "Go Regular covers Greek")
	env.False(bits.Test(0x4E00), "Go Regular has no CJK ideographs")
	env.Greater(bits.Count(), 100)
}

func (env *FontScanTestEnviron) TestOutlineFilterNarrowsTheSet() {
	fonts, err := fontload.ParseFonts(goregular.TTF, "GoRegular.ttf")
	env.Require().NoError(err)

	unfiltered := Extract(fonts[0].Face, Options{})
	filtered := Extract(fonts[0].Face, Options{RequireOutline: true})
	env.True(filtered.Test('A'))
	env.LessOrEqual(filtered.Count(), unfiltered.Count())
	env.False(filtered.Test(' '), "the space glyph has no outline")
}

func (env *FontScanTestEnviron) TestScanFile() {
	fonts, err := ScanFile(env.fontPath, Options{})
	env.Require().NoError(err)
	env.Require().Len(fonts, 1)
	env.NotEmpty(fonts[0].Name)
	env.True(fonts[0].Bits.Test('A'))
}

func (env *FontScanTestEnviron) TestScanFileUnreadable() {
	_, err := ScanFile(filepath.Join(env.T().TempDir(), "no-such.ttf"), Options{})
	env.Require().Error(err)
	env.True(errors.Is(err, unicover.ErrUnreadableFont))

	garbage := filepath.Join(env.T().TempDir(), "garbage.ttf")
	env.Require().NoError(os.WriteFile(garbage, []byte("this is not a font"), 0o644))
	_, err = ScanFile(garbage, Options{})
	env.True(errors.Is(err, unicover.ErrUnreadableFont))
}

func (env *FontScanTestEnviron) TestScanAllSkipsAndContinues() {
	missing := filepath.Join(env.T().TempDir(), "no-such.ttf")
	fonts, skipped := ScanAll([]string{env.fontPath, missing, env.fontPath}, Options{})

	env.Require().Len(fonts, 1, "duplicate and unreadable fonts must be skipped")
	env.Require().Len(skipped, 2)
	env.True(errors.Is(skipped[0].Err, unicover.ErrUnreadableFont))
	env.True(errors.Is(skipped[1].Err, unicover.ErrDuplicateFont))
}
