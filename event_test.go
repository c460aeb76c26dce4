package vlc

import (
	"math"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// putU32/putU64 write payload bytes the way libvlc does: at host byte order,
// into the raw union.
func putU32(b []byte, v uint32) { *(*uint32)(unsafe.Pointer(&b[0])) = v }
func putU64(b []byte, v uint64) { *(*uint64)(unsafe.Pointer(&b[0])) = v }

// newTestRegistry keeps registry tests off the process-wide table so they do
// not interfere with each other or with a loaded library.
func newTestRegistry() *eventRegistry {
	return &eventRegistry{
		byToken: map[uint64]*registration{},
		byKey:   map[registryKey]uint64{},
	}
}

func TestRegistryAttachDetach(t *testing.T) {
	r := newTestRegistry()
	const mgr = uintptr(0x1000)

	var got []Event
	tok := r.register(mgr, EventMediaPlayerPlaying, func(ev Event) {
		got = append(got, ev)
	})
	assert.Equal(t, 1, r.size())

	r.dispatch(tok, Event{Type: EventMediaPlayerPlaying})
	r.dispatch(tok, Event{Type: EventMediaPlayerPlaying})
	require.Len(t, got, 2)

	dropped, ok := r.unregister(mgr, EventMediaPlayerPlaying)
	require.True(t, ok)
	assert.Equal(t, tok, dropped)
	assert.Equal(t, 0, r.size())

	// A detached token in flight is dropped, never delivered.
	r.dispatch(tok, Event{Type: EventMediaPlayerPlaying})
	assert.Len(t, got, 2)
}

func TestRegistryUnregisterMissing(t *testing.T) {
	r := newTestRegistry()
	_, ok := r.unregister(0x1000, EventMediaPlayerPaused)
	assert.False(t, ok)
}

func TestRegistryReplace(t *testing.T) {
	r := newTestRegistry()
	const mgr = uintptr(0x1000)

	first := 0
	second := 0
	r.register(mgr, EventMediaPlayerTimeChanged, func(Event) { first++ })

	// Re-attach of a registered type replaces: the old entry goes away
	// before the new one is recorded, exactly the sequence Attach runs.
	oldTok, ok := r.unregister(mgr, EventMediaPlayerTimeChanged)
	require.True(t, ok)
	newTok := r.register(mgr, EventMediaPlayerTimeChanged, func(Event) { second++ })
	assert.NotEqual(t, oldTok, newTok)
	assert.Equal(t, 1, r.size())

	r.dispatch(oldTok, Event{Type: EventMediaPlayerTimeChanged})
	r.dispatch(newTok, Event{Type: EventMediaPlayerTimeChanged})
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestRegistryUnregisterAll(t *testing.T) {
	r := newTestRegistry()
	const mgrA = uintptr(0x1000)
	const mgrB = uintptr(0x2000)

	r.register(mgrA, EventMediaPlayerPlaying, func(Event) {})
	r.register(mgrA, EventMediaPlayerStopped, func(Event) {})
	tokB := r.register(mgrB, EventMediaPlayerPlaying, func(Event) {})

	dropped := r.unregisterAll(mgrA)
	assert.Len(t, dropped, 2)
	assert.Contains(t, dropped, EventMediaPlayerPlaying)
	assert.Contains(t, dropped, EventMediaPlayerStopped)

	// The other manager's registration survives the sweep.
	assert.Equal(t, 1, r.size())
	_, ok := r.lookup(tokB)
	assert.True(t, ok)
}

func TestRegistryDispatchRecoversPanic(t *testing.T) {
	r := newTestRegistry()
	tok := r.register(0x1000, EventMediaPlayerEndReached, func(Event) {
		panic("callback exploded")
	})

	assert.NotPanics(t, func() {
		r.dispatch(tok, Event{Type: EventMediaPlayerEndReached})
	})
}

func TestRegistryConcurrentDispatch(t *testing.T) {
	r := newTestRegistry()
	const mgr = uintptr(0x1000)

	var mu sync.Mutex
	calls := 0
	tok := r.register(mgr, EventMediaPlayerPositionChanged, func(Event) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	// Dispatch runs on native threads while Detach runs on goroutines; the
	// registry must tolerate both at once.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.dispatch(tok, Event{Type: EventMediaPlayerPositionChanged})
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.unregister(mgr, EventMediaPlayerPositionChanged)
	}()
	wg.Wait()

	assert.Equal(t, 0, r.size())
	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, calls, 800)
}

func TestDecodeEvent(t *testing.T) {
	ce := cEvent{typ: int32(EventMediaPlayerTimeChanged), obj: 0xdead}
	putU64(ce.u[:8], 42000)

	ev := decodeEvent(uintptr(unsafe.Pointer(&ce)))
	assert.Equal(t, EventMediaPlayerTimeChanged, ev.Type)
	assert.Equal(t, uintptr(0xdead), ev.Object)
	assert.Equal(t, int64(42000), ev.NewTime())
}

func TestEventPayloadAccessors(t *testing.T) {
	t.Run("state", func(t *testing.T) {
		var ev Event
		putU32(ev.u[:4], uint32(StatePlaying))
		assert.Equal(t, StatePlaying, ev.NewState())
	})

	t.Run("position", func(t *testing.T) {
		var ev Event
		putU32(ev.u[:4], math.Float32bits(0.25))
		assert.InDelta(t, 0.25, ev.NewPosition(), 1e-6)
	})

	t.Run("duration", func(t *testing.T) {
		var ev Event
		putU64(ev.u[:8], 90000)
		assert.Equal(t, int64(90000), ev.NewDuration())
	})

	t.Run("seekable", func(t *testing.T) {
		var ev Event
		putU32(ev.u[:4], 1)
		assert.True(t, ev.NewSeekable())
	})

	t.Run("meta", func(t *testing.T) {
		var ev Event
		putU32(ev.u[:4], uint32(MetaArtist))
		assert.Equal(t, MetaArtist, ev.NewMeta())
	})

	t.Run("list item", func(t *testing.T) {
		// media_list_item_added carries the item handle first, then the
		// index.
		var ev Event
		putU64(ev.u[:8], 0xbeef)
		putU32(ev.u[8:12], 3)
		require.NotNil(t, ev.Item())
		assert.Equal(t, uintptr(0xbeef), ev.Item().ptr)
		assert.Equal(t, 3, ev.ItemIndex())
	})

	t.Run("list item absent", func(t *testing.T) {
		var ev Event
		assert.Nil(t, ev.Item())
	})
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "MediaPlayerEndReached", EventMediaPlayerEndReached.String())
	assert.Equal(t, "MediaListEndReached", EventMediaListEndReached.String())
	assert.Equal(t, "EventType(0x7777)", EventType(0x7777).String())
}

func TestNewEventManagerNilOnNull(t *testing.T) {
	assert.Nil(t, newEventManager(0))
	assert.NotNil(t, newEventManager(0x1000))
}
