package vlc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "NothingSpecial", StateNothingSpecial.String())
	assert.Equal(t, "Playing", StatePlaying.String())
	assert.Equal(t, "Error", StateError.String())
	assert.Equal(t, "State(42)", State(42).String())
}

func TestTrackTypeString(t *testing.T) {
	assert.Equal(t, "Audio", TrackAudio.String())
	assert.Equal(t, "Unknown", TrackUnknown.String())
	assert.Equal(t, "TrackType(7)", TrackType(7).String())
}

func TestParsedStatusString(t *testing.T) {
	assert.Equal(t, "Done", ParsedDone.String())
	assert.Equal(t, "ParsedStatus(9)", ParsedStatus(9).String())
}
