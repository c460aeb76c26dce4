package vlc

import "time"

// Media wraps a libvlc_media_t. Media objects are reference counted by
// libvlc; a player keeps its own reference, so releasing a media right after
// SetMedia is the normal pattern.
type Media struct {
	ptr uintptr
}

// AddOptions appends option=value strings to the media, written without the
// leading double dash (e.g. "sub-filter=marq").
func (m *Media) AddOptions(options ...string) error {
	if len(options) == 0 {
		return nil
	}
	if err := requireSymbol("libvlc_media_add_option"); err != nil {
		return err
	}
	for _, o := range options {
		libvlc.mediaAddOption(m.ptr, o)
	}
	return nil
}

// MRL returns the media resource locator.
func (m *Media) MRL() (string, error) {
	if err := requireSymbol("libvlc_media_get_mrl"); err != nil {
		return "", err
	}
	return ownedString(libvlc.mediaGetMRL(m.ptr)), nil
}

// Duration returns the media duration, valid once the media is parsed.
func (m *Media) Duration() (time.Duration, error) {
	if err := requireSymbol("libvlc_media_get_duration"); err != nil {
		return 0, err
	}
	ms := libvlc.mediaGetDuration(m.ptr)
	if ms < 0 {
		return 0, errorFromLib("libvlc_media_get_duration")
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// State returns the current media state.
func (m *Media) State() (State, error) {
	if err := requireSymbol("libvlc_media_get_state"); err != nil {
		return StateNothingSpecial, err
	}
	return State(libvlc.mediaGetState(m.ptr)), nil
}

// Meta returns one metadata field. Parsing (or playback) must have happened
// for most fields to be populated.
func (m *Media) Meta(meta Meta) (string, error) {
	if err := requireSymbol("libvlc_media_get_meta"); err != nil {
		return "", err
	}
	return ownedString(libvlc.mediaGetMeta(m.ptr, int32(meta))), nil
}

// SetMeta sets a metadata field locally; SaveMeta writes it back to the
// file.
func (m *Media) SetMeta(meta Meta, value string) error {
	if err := requireSymbol("libvlc_media_set_meta"); err != nil {
		return err
	}
	libvlc.mediaSetMeta(m.ptr, int32(meta), value)
	return nil
}

// SaveMeta persists previously set metadata.
func (m *Media) SaveMeta() error {
	if err := requireSymbol("libvlc_media_save_meta"); err != nil {
		return err
	}
	if libvlc.mediaSaveMeta(m.ptr) == 0 {
		return errorFromLib("libvlc_media_save_meta")
	}
	return nil
}

// Parse fetches local metadata asynchronously; completion is reported
// through the MediaParsedChanged event and ParsedStatus. timeout <= 0 uses
// the library default.
func (m *Media) Parse(flags ParseFlag, timeout time.Duration) error {
	if err := requireSymbol("libvlc_media_parse_with_options"); err != nil {
		return err
	}
	t := int32(-1)
	if timeout > 0 {
		t = int32(timeout / time.Millisecond)
	}
	if libvlc.mediaParseWithOptions(m.ptr, int32(flags), t) != 0 {
		return errorFromLib("libvlc_media_parse_with_options")
	}
	return nil
}

// ParsedStatus reports the outcome of the last Parse.
func (m *Media) ParsedStatus() (ParsedStatus, error) {
	if err := requireSymbol("libvlc_media_get_parsed_status"); err != nil {
		return 0, err
	}
	return ParsedStatus(libvlc.mediaGetParsedStatus(m.ptr)), nil
}

// SubItems returns the sub-item list (playlist entries and the like). The
// caller owns the returned list reference.
func (m *Media) SubItems() (*MediaList, error) {
	if err := requireSymbol("libvlc_media_subitems"); err != nil {
		return nil, err
	}
	ptr := libvlc.mediaSubitems(m.ptr)
	if ptr == 0 {
		return nil, nil
	}
	return &MediaList{ptr: ptr}, nil
}

// Duplicate creates an independent copy of the media descriptor.
func (m *Media) Duplicate() (*Media, error) {
	if err := requireSymbol("libvlc_media_duplicate"); err != nil {
		return nil, err
	}
	ptr := libvlc.mediaDuplicate(m.ptr)
	if ptr == 0 {
		return nil, errorFromLib("libvlc_media_duplicate")
	}
	return &Media{ptr: ptr}, nil
}

// EventManager returns the event manager of this media. The returned
// wrapper is a stateless view; see EventManager.
func (m *Media) EventManager() *EventManager {
	if requireSymbol("libvlc_media_event_manager") != nil {
		return nil
	}
	return newEventManager(libvlc.mediaEventManager(m.ptr))
}

// Retain increments the native reference count.
func (m *Media) Retain() error {
	if err := requireSymbol("libvlc_media_retain"); err != nil {
		return err
	}
	libvlc.mediaRetain(m.ptr)
	return nil
}

// Release decrements the native reference count. Callbacks still attached
// through this media's event manager should be detached first (or via
// EventManager.DetachAll); entries left behind are never invoked again but
// occupy registry memory until detached.
func (m *Media) Release() {
	if Load() == nil {
		libvlc.mediaRelease(m.ptr)
	}
}
