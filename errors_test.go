package unicover

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindMatching(t *testing.T) {
	err := Errorf(KindMissingReferenceVersion, "no reference data installed for Unicode %s", "13.0.0")
	assert.True(t, errors.Is(err, ErrMissingReferenceVersion))
	assert.False(t, errors.Is(err, ErrMalformedInput))
	assert.Contains(t, err.Error(), "MissingReferenceVersion")
	assert.Contains(t, err.Error(), "13.0.0")
}

func TestErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(KindUnreadableFont, cause, "font file %s", "Broken.ttf")
	assert.True(t, errors.Is(err, ErrUnreadableFont))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Broken.ttf")
	assert.Contains(t, err.Error(), "permission denied")

	// matching survives further wrapping by callers
	outer := fmt.Errorf("scanning batch: %w", err)
	assert.True(t, errors.Is(outer, ErrUnreadableFont))
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(fmt.Errorf("anything else")))
	assert.Equal(t, ExitMalformed, ExitCode(Errorf(KindMalformedInput, "bad record")))
	assert.Equal(t, ExitRange, ExitCode(Errorf(KindRangeInvariantViolation, "dangling range")))
	assert.Equal(t, ExitMissing, ExitCode(Errorf(KindMissingReferenceVersion, "not installed")))
	assert.Equal(t, ExitNoInput, ExitCode(Errorf(KindNoUsableInput, "no fonts")))
	assert.Equal(t, ExitExists, ExitCode(Errorf(KindArtifactExists, "installed")))
	// recoverable per-font kinds never bubble up as process failures of
	// their own category
	assert.Equal(t, ExitFailure, ExitCode(Errorf(KindUnreadableFont, "skipped")))
}
