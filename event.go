package vlc

import (
	"fmt"
	"math"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

// EventType identifies an asynchronous libvlc notification
// (libvlc_event_e). The values are part of the native ABI.
type EventType int32

const (
	EventMediaMetaChanged EventType = iota
	EventMediaSubItemAdded
	EventMediaDurationChanged
	EventMediaParsedChanged
	EventMediaFreed
	EventMediaStateChanged
	EventMediaSubItemTreeAdded
)

const (
	EventMediaPlayerMediaChanged EventType = iota + 0x100
	EventMediaPlayerNothingSpecial
	EventMediaPlayerOpening
	EventMediaPlayerBuffering
	EventMediaPlayerPlaying
	EventMediaPlayerPaused
	EventMediaPlayerStopped
	EventMediaPlayerForward
	EventMediaPlayerBackward
	EventMediaPlayerEndReached
	EventMediaPlayerEncounteredError
	EventMediaPlayerTimeChanged
	EventMediaPlayerPositionChanged
	EventMediaPlayerSeekableChanged
	EventMediaPlayerPausableChanged
	EventMediaPlayerTitleChanged
	EventMediaPlayerSnapshotTaken
	EventMediaPlayerLengthChanged
	EventMediaPlayerVout
	EventMediaPlayerScrambledChanged
	EventMediaPlayerESAdded
	EventMediaPlayerESDeleted
	EventMediaPlayerESSelected
	EventMediaPlayerCorked
	EventMediaPlayerUncorked
	EventMediaPlayerMuted
	EventMediaPlayerUnmuted
	EventMediaPlayerAudioVolume
	EventMediaPlayerAudioDevice
	EventMediaPlayerChapterChanged
)

const (
	EventMediaListItemAdded EventType = iota + 0x200
	EventMediaListWillAddItem
	EventMediaListItemDeleted
	EventMediaListWillDeleteItem
	EventMediaListEndReached
)

const (
	EventMediaListViewItemAdded EventType = iota + 0x300
	EventMediaListViewWillAddItem
	EventMediaListViewItemDeleted
	EventMediaListViewWillDeleteItem
)

const (
	EventMediaListPlayerPlayed EventType = iota + 0x400
	EventMediaListPlayerNextItemSet
	EventMediaListPlayerStopped
)

const (
	EventMediaDiscovererStarted EventType = iota + 0x500
	EventMediaDiscovererEnded
	EventRendererDiscovererItemAdded
	EventRendererDiscovererItemDeleted
)

var eventTypeNames = map[EventType]string{
	EventMediaMetaChanged:              "MediaMetaChanged",
	EventMediaSubItemAdded:             "MediaSubItemAdded",
	EventMediaDurationChanged:          "MediaDurationChanged",
	EventMediaParsedChanged:            "MediaParsedChanged",
	EventMediaFreed:                    "MediaFreed",
	EventMediaStateChanged:             "MediaStateChanged",
	EventMediaSubItemTreeAdded:         "MediaSubItemTreeAdded",
	EventMediaPlayerMediaChanged:       "MediaPlayerMediaChanged",
	EventMediaPlayerNothingSpecial:     "MediaPlayerNothingSpecial",
	EventMediaPlayerOpening:            "MediaPlayerOpening",
	EventMediaPlayerBuffering:          "MediaPlayerBuffering",
	EventMediaPlayerPlaying:            "MediaPlayerPlaying",
	EventMediaPlayerPaused:             "MediaPlayerPaused",
	EventMediaPlayerStopped:            "MediaPlayerStopped",
	EventMediaPlayerForward:            "MediaPlayerForward",
	EventMediaPlayerBackward:           "MediaPlayerBackward",
	EventMediaPlayerEndReached:         "MediaPlayerEndReached",
	EventMediaPlayerEncounteredError:   "MediaPlayerEncounteredError",
	EventMediaPlayerTimeChanged:        "MediaPlayerTimeChanged",
	EventMediaPlayerPositionChanged:    "MediaPlayerPositionChanged",
	EventMediaPlayerSeekableChanged:    "MediaPlayerSeekableChanged",
	EventMediaPlayerPausableChanged:    "MediaPlayerPausableChanged",
	EventMediaPlayerTitleChanged:       "MediaPlayerTitleChanged",
	EventMediaPlayerSnapshotTaken:      "MediaPlayerSnapshotTaken",
	EventMediaPlayerLengthChanged:      "MediaPlayerLengthChanged",
	EventMediaPlayerVout:               "MediaPlayerVout",
	EventMediaPlayerScrambledChanged:   "MediaPlayerScrambledChanged",
	EventMediaPlayerESAdded:            "MediaPlayerESAdded",
	EventMediaPlayerESDeleted:          "MediaPlayerESDeleted",
	EventMediaPlayerESSelected:         "MediaPlayerESSelected",
	EventMediaPlayerCorked:             "MediaPlayerCorked",
	EventMediaPlayerUncorked:           "MediaPlayerUncorked",
	EventMediaPlayerMuted:              "MediaPlayerMuted",
	EventMediaPlayerUnmuted:            "MediaPlayerUnmuted",
	EventMediaPlayerAudioVolume:        "MediaPlayerAudioVolume",
	EventMediaPlayerAudioDevice:        "MediaPlayerAudioDevice",
	EventMediaPlayerChapterChanged:     "MediaPlayerChapterChanged",
	EventMediaListItemAdded:            "MediaListItemAdded",
	EventMediaListWillAddItem:          "MediaListWillAddItem",
	EventMediaListItemDeleted:          "MediaListItemDeleted",
	EventMediaListWillDeleteItem:       "MediaListWillDeleteItem",
	EventMediaListEndReached:           "MediaListEndReached",
	EventMediaListViewItemAdded:        "MediaListViewItemAdded",
	EventMediaListViewWillAddItem:      "MediaListViewWillAddItem",
	EventMediaListViewItemDeleted:      "MediaListViewItemDeleted",
	EventMediaListViewWillDeleteItem:   "MediaListViewWillDeleteItem",
	EventMediaListPlayerPlayed:         "MediaListPlayerPlayed",
	EventMediaListPlayerNextItemSet:    "MediaListPlayerNextItemSet",
	EventMediaListPlayerStopped:        "MediaListPlayerStopped",
	EventMediaDiscovererStarted:        "MediaDiscovererStarted",
	EventMediaDiscovererEnded:          "MediaDiscovererEnded",
	EventRendererDiscovererItemAdded:   "RendererDiscovererItemAdded",
	EventRendererDiscovererItemDeleted: "RendererDiscovererItemDeleted",
}

func (t EventType) String() string {
	if n, ok := eventTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("EventType(0x%x)", int32(t))
}

// Event is the Go view of a native libvlc_event_t. The union payload is
// copied out of the native struct before the user callback runs, so an Event
// value stays valid after the callback returns (the native struct does not).
type Event struct {
	Type EventType
	// Object is the raw handle of the emitting object (player, media, ...).
	Object uintptr

	u [16]byte
}

// native libvlc_event_t layout on 64-bit targets: int type, 4 bytes of
// padding, void *p_obj, then the payload union (at most two pointers wide).
type cEvent struct {
	typ int32
	_   int32
	obj uintptr
	u   [16]byte
}

func decodeEvent(p uintptr) Event {
	ce := (*cEvent)(unsafe.Pointer(p))
	return Event{Type: EventType(ce.typ), Object: ce.obj, u: ce.u}
}

// Payload reads follow the native union layout in host memory: the bytes
// were copied verbatim out of the native struct in decodeEvent, so they are
// read back at host byte order, like the cEvent layout above.
func (e Event) u32() uint32 { return *(*uint32)(unsafe.Pointer(&e.u[0])) }
func (e Event) u64() uint64 { return *(*uint64)(unsafe.Pointer(&e.u[0])) }

// NewState decodes the payload of MediaStateChanged.
func (e Event) NewState() State { return State(e.u32()) }

// NewTime decodes the payload of MediaPlayerTimeChanged (milliseconds).
func (e Event) NewTime() int64 { return int64(e.u64()) }

// NewPosition decodes the payload of MediaPlayerPositionChanged (0..1).
func (e Event) NewPosition() float32 { return math.Float32frombits(e.u32()) }

// NewDuration decodes the payload of MediaDurationChanged (milliseconds).
func (e Event) NewDuration() int64 { return int64(e.u64()) }

// NewLength decodes the payload of MediaPlayerLengthChanged (milliseconds).
func (e Event) NewLength() int64 { return int64(e.u64()) }

// NewTitle decodes the payload of MediaPlayerTitleChanged.
func (e Event) NewTitle() int { return int(int32(e.u32())) }

// NewSeekable decodes the payload of MediaPlayerSeekableChanged.
func (e Event) NewSeekable() bool { return e.u32() != 0 }

// NewPausable decodes the payload of MediaPlayerPausableChanged.
func (e Event) NewPausable() bool { return e.u32() != 0 }

// NewMeta decodes the payload of MediaMetaChanged.
func (e Event) NewMeta() Meta { return Meta(e.u32()) }

// NewParsedStatus decodes the payload of MediaParsedChanged.
func (e Event) NewParsedStatus() ParsedStatus { return ParsedStatus(e.u32()) }

// Volume decodes the payload of MediaPlayerAudioVolume (0..1).
func (e Event) Volume() float32 { return math.Float32frombits(e.u32()) }

// Item decodes the media carried by the media-list item events. The wrapper
// borrows the handle owned by the list; Retain it to keep it past the
// callback. Returns nil when the event carries no item.
func (e Event) Item() *Media {
	ptr := uintptr(e.u64())
	if ptr == 0 {
		return nil
	}
	return &Media{ptr: ptr}
}

// ItemIndex decodes the index payload of the media-list item events.
func (e Event) ItemIndex() int { return int(*(*int32)(unsafe.Pointer(&e.u[8]))) }

// EventCallback receives a decoded event. It runs on a thread owned by
// libvlc, never by the Go runtime; it must not block the dispatcher for long
// and must not call back into the emitting object's Release.
type EventCallback func(Event)

// registration is one (manager, event-type, callback) entry. The token that
// keys it is what crosses the FFI boundary as user_data, so the trampoline
// can find the entry without touching Go pointers from native code.
type registration struct {
	manager uintptr
	event   EventType
	cb      EventCallback
}

type registryKey struct {
	manager uintptr
	event   EventType
}

// eventRegistry is the process-wide callback table behind every
// EventManager. All mutation happens under mu: Attach/Detach run on caller
// goroutines while dispatch runs on native threads (spec: libvlc delivers
// events from its own internal threads).
type eventRegistry struct {
	mu      sync.RWMutex
	nextTok uint64
	byToken map[uint64]*registration
	byKey   map[registryKey]uint64
}

var events = &eventRegistry{
	byToken: map[uint64]*registration{},
	byKey:   map[registryKey]uint64{},
}

func (r *eventRegistry) register(manager uintptr, et EventType, cb EventCallback) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextTok++
	tok := r.nextTok
	r.byToken[tok] = &registration{manager: manager, event: et, cb: cb}
	r.byKey[registryKey{manager, et}] = tok
	return tok
}

// unregister removes the entry for (manager, event) and returns its token.
func (r *eventRegistry) unregister(manager uintptr, et EventType) (uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := registryKey{manager, et}
	tok, ok := r.byKey[key]
	if !ok {
		return 0, false
	}
	delete(r.byKey, key)
	delete(r.byToken, tok)
	return tok, true
}

// unregisterAll drops every registration of one manager and returns the
// removed entries so the caller can issue the native detach calls.
func (r *eventRegistry) unregisterAll(manager uintptr) map[EventType]uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := map[EventType]uint64{}
	for key, tok := range r.byKey {
		if key.manager != manager {
			continue
		}
		dropped[key.event] = tok
		delete(r.byKey, key)
		delete(r.byToken, tok)
	}
	return dropped
}

func (r *eventRegistry) lookup(token uint64) (EventCallback, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.byToken[token]
	if !ok {
		return nil, false
	}
	return reg.cb, true
}

func (r *eventRegistry) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byToken)
}

// dispatch routes one native event to its callback. A token with no entry
// means the registration was detached while the event was in flight; the
// event is silently dropped. Panics are contained here: the call frame below
// this one is native libvlc code and must never see a Go unwind.
func (r *eventRegistry) dispatch(token uint64, ev Event) {
	cb, ok := r.lookup(token)
	if !ok {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			log.WithFields(logrus.Fields{
				"event": ev.Type,
				"panic": p,
			}).Error("panic in event callback")
		}
	}()
	cb(ev)
}

// The native trampoline is created once per process. NewCallback slots are
// never reclaimed by purego, so one shared trampoline plus token dispatch
// replaces the per-manager closure of the ctypes original.
var (
	trampolineOnce sync.Once
	trampolinePtr  uintptr
)

func trampoline() uintptr {
	trampolineOnce.Do(func() {
		trampolinePtr = purego.NewCallback(func(event, userData uintptr) uintptr {
			events.dispatch(uint64(userData), decodeEvent(event))
			return 0
		})
	})
	return trampolinePtr
}

// EventManager bridges one native event manager to Go callbacks.
//
// At most one callback is registered per event type; attaching to an already
// registered type replaces the previous callback (the previous native
// registration is detached first). Wrappers are stateless views over the
// native handle, so two EventManager values obtained from the same object
// share the same registrations.
type EventManager struct {
	ptr uintptr
}

func newEventManager(ptr uintptr) *EventManager {
	if ptr == 0 {
		return nil
	}
	return &EventManager{ptr: ptr}
}

// Attach registers cb for et. Returns the native attach failure unchanged
// (ENOMEM is the only one libvlc documents).
func (em *EventManager) Attach(et EventType, cb EventCallback) error {
	if err := requireSymbol("libvlc_event_attach"); err != nil {
		return err
	}
	if cb == nil {
		return &Error{Message: "callback required"}
	}
	if _, ok := eventTypeNames[et]; !ok {
		return &Error{Message: fmt.Sprintf("unknown event type %d", int32(et))}
	}

	tramp := trampoline()
	if tok, ok := events.unregister(em.ptr, et); ok {
		libvlc.eventDetach(em.ptr, int32(et), tramp, uintptr(tok))
	}
	tok := events.register(em.ptr, et, cb)
	if rc := libvlc.eventAttach(em.ptr, int32(et), tramp, uintptr(tok)); rc != 0 {
		events.unregister(em.ptr, et)
		return errorFromLib("libvlc_event_attach")
	}
	log.WithFields(logrus.Fields{"event": et, "token": tok}).Debug("event attached")
	return nil
}

// Detach removes the registration for et. Detaching an event type that was
// never attached is a no-op; the call is idempotent.
func (em *EventManager) Detach(et EventType) error {
	if err := requireSymbol("libvlc_event_detach"); err != nil {
		return err
	}
	if tok, ok := events.unregister(em.ptr, et); ok {
		libvlc.eventDetach(em.ptr, int32(et), trampoline(), uintptr(tok))
		log.WithFields(logrus.Fields{"event": et, "token": tok}).Debug("event detached")
	}
	return nil
}

// DetachAll removes every registration made through this manager's native
// handle. Wrappers call it before releasing the owning object so no
// registry entries outlive the native event manager.
func (em *EventManager) DetachAll() {
	if em == nil || Load() != nil {
		return
	}
	for et, tok := range events.unregisterAll(em.ptr) {
		libvlc.eventDetach(em.ptr, int32(et), trampoline(), uintptr(tok))
	}
}

// Registrations returns the number of live callback registrations across
// all event managers. Exposed for leak diagnostics (see examples/gcstress).
func Registrations() int {
	return events.size()
}

// EventTypeName returns libvlc's own name for an event type, falling back
// to the Go-side name table when the symbol is unavailable.
func EventTypeName(et EventType) string {
	if requireSymbol("libvlc_event_type_name") == nil {
		if n := libvlc.eventTypeName(int32(et)); n != "" {
			return n
		}
	}
	return et.String()
}
