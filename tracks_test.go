package vlc

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTracks(t *testing.T) {
	lang := []byte("eng\x00")
	desc := []byte("Stereo\x00")
	audio := cMediaTrack{
		codec: 0x6134706d, fourcc: 0x6134706d,
		id: 1, typ: int32(TrackAudio), bitrate: 128000,
		language:    uintptr(unsafe.Pointer(&lang[0])),
		description: uintptr(unsafe.Pointer(&desc[0])),
	}
	video := cMediaTrack{id: 0, typ: int32(TrackVideo), profile: 100, level: 31}
	ptrs := []uintptr{
		uintptr(unsafe.Pointer(&audio)),
		uintptr(unsafe.Pointer(&video)),
	}

	tracks := decodeTracks(uintptr(unsafe.Pointer(&ptrs[0])), 2)
	require.Len(t, tracks, 2)
	assert.Equal(t, TrackAudio, tracks[0].Type)
	assert.Equal(t, 1, tracks[0].ID)
	assert.Equal(t, uint(128000), tracks[0].Bitrate)
	assert.Equal(t, "eng", tracks[0].Language)
	assert.Equal(t, "Stereo", tracks[0].Description)
	assert.Equal(t, TrackVideo, tracks[1].Type)
	assert.Equal(t, 100, tracks[1].Profile)
	assert.Equal(t, 31, tracks[1].Level)
	runtime.KeepAlive(lang)
	runtime.KeepAlive(desc)
	runtime.KeepAlive(&audio)
	runtime.KeepAlive(&video)
}

func TestDecodeTracksEmpty(t *testing.T) {
	assert.Nil(t, decodeTracks(0, 0))
}
