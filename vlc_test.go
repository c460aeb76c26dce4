package vlc

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireLib skips when no libvlc is installed. Everything below this
// gate exercises the real native library.
func requireLib(t *testing.T) {
	t.Helper()
	if err := Load(); err != nil {
		t.Skipf("libvlc unavailable: %v", err)
	}
}

func TestLoadIdempotent(t *testing.T) {
	requireLib(t)
	require.NoError(t, Load())
	assert.NotEmpty(t, LibraryPath())
}

func TestLibVersion(t *testing.T) {
	requireLib(t)
	v, err := LibVersion()
	require.NoError(t, err)
	assert.NotEmpty(t, v)
	assert.NotZero(t, LibHexVersion())
}

func TestInstanceLifecycle(t *testing.T) {
	requireLib(t)
	inst, err := New("--no-video", "--no-audio")
	require.NoError(t, err)
	require.NotNil(t, inst)
	defer inst.Release()

	require.NoError(t, inst.SetUserAgent("govlc test", "govlc/test"))
}

func TestMediaAliasesOneHandle(t *testing.T) {
	requireLib(t)
	inst, err := New("--no-video", "--no-audio")
	require.NoError(t, err)
	defer inst.Release()

	m, err := inst.NewMediaFromURL("http://example.invalid/stream")
	require.NoError(t, err)

	// Two wrappers over one native handle stay independent Go values but
	// forward to the same object.
	require.NoError(t, m.Retain())
	alias := &Media{ptr: m.ptr}
	mrl1, err := m.MRL()
	require.NoError(t, err)
	mrl2, err := alias.MRL()
	require.NoError(t, err)
	assert.Equal(t, mrl1, mrl2)

	alias.Release()
	m.Release()
}

// TestPlaybackSmoke drives real playback: Playing must be reached and the
// observed states must move forward, never back to Opening.
func TestPlaybackSmoke(t *testing.T) {
	requireLib(t)
	path := os.Getenv("GOVLC_TEST_MEDIA")
	if path == "" {
		t.Skip("GOVLC_TEST_MEDIA not set")
	}

	inst, err := New("--no-video", "--no-audio")
	require.NoError(t, err)
	defer inst.Release()

	m, err := inst.NewMedia(path)
	require.NoError(t, err)
	defer m.Release()

	p, err := inst.NewMediaPlayer()
	require.NoError(t, err)
	defer p.Release()
	require.NoError(t, p.SetMedia(m))

	var mu sync.Mutex
	var states []State
	em := p.EventManager()
	require.NotNil(t, em)
	record := func(ev Event) {
		mu.Lock()
		states = append(states, stateForEvent(ev.Type))
		mu.Unlock()
	}
	for _, et := range []EventType{
		EventMediaPlayerOpening, EventMediaPlayerBuffering,
		EventMediaPlayerPlaying, EventMediaPlayerStopped,
	} {
		require.NoError(t, em.Attach(et, record))
	}
	defer em.DetachAll()

	require.NoError(t, p.Play())
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		st, err := p.State()
		require.NoError(t, err)
		if st == StatePlaying {
			break
		}
		require.NotEqual(t, StateError, st)
		time.Sleep(50 * time.Millisecond)
	}
	st, err := p.State()
	require.NoError(t, err)
	require.Equal(t, StatePlaying, st)

	require.NoError(t, p.Stop())
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	prev := StateNothingSpecial
	for _, s := range states {
		if s == StateStopped {
			continue
		}
		assert.GreaterOrEqual(t, int32(s), int32(prev), "state went backwards")
		prev = s
	}
}

func stateForEvent(et EventType) State {
	switch et {
	case EventMediaPlayerOpening:
		return StateOpening
	case EventMediaPlayerBuffering:
		return StateBuffering
	case EventMediaPlayerPlaying:
		return StatePlaying
	case EventMediaPlayerStopped:
		return StateStopped
	}
	return StateNothingSpecial
}

// TestAttachDetachNoLeak attaches, receives, detaches and verifies the
// registry is empty again, against the real native event path.
func TestAttachDetachNoLeak(t *testing.T) {
	requireLib(t)
	before := Registrations()

	inst, err := New("--no-video", "--no-audio")
	require.NoError(t, err)
	defer inst.Release()

	p, err := inst.NewMediaPlayer()
	require.NoError(t, err)
	defer p.Release()

	em := p.EventManager()
	require.NotNil(t, em)
	require.NoError(t, em.Attach(EventMediaPlayerPlaying, func(Event) {}))
	assert.Equal(t, before+1, Registrations())

	// Re-attach replaces, never accumulates.
	require.NoError(t, em.Attach(EventMediaPlayerPlaying, func(Event) {}))
	assert.Equal(t, before+1, Registrations())

	require.NoError(t, em.Detach(EventMediaPlayerPlaying))
	require.NoError(t, em.Detach(EventMediaPlayerPlaying))
	assert.Equal(t, before, Registrations())
}

func TestAttachValidation(t *testing.T) {
	requireLib(t)
	inst, err := New("--no-video", "--no-audio")
	require.NoError(t, err)
	defer inst.Release()

	p, err := inst.NewMediaPlayer()
	require.NoError(t, err)
	defer p.Release()

	em := p.EventManager()
	require.NotNil(t, em)
	assert.Error(t, em.Attach(EventMediaPlayerPlaying, nil))
	assert.Error(t, em.Attach(EventType(0x7777), func(Event) {}))
}
