package vlc

// MediaList wraps a libvlc_media_list_t. Mutating calls must be bracketed
// by Lock/Unlock, mirroring the native API.
type MediaList struct {
	ptr uintptr
}

// Lock acquires the native list lock.
func (l *MediaList) Lock() error {
	if err := requireSymbol("libvlc_media_list_lock"); err != nil {
		return err
	}
	libvlc.listLock(l.ptr)
	return nil
}

// Unlock releases the native list lock.
func (l *MediaList) Unlock() error {
	if err := requireSymbol("libvlc_media_list_unlock"); err != nil {
		return err
	}
	libvlc.listUnlock(l.ptr)
	return nil
}

// AddMedia appends m to the list. The list must be locked and writable.
func (l *MediaList) AddMedia(m *Media) error {
	if err := requireSymbol("libvlc_media_list_add_media"); err != nil {
		return err
	}
	if libvlc.listAddMedia(l.ptr, m.ptr) != 0 {
		return errorFromLib("libvlc_media_list_add_media")
	}
	return nil
}

// InsertMedia inserts m at index. The list must be locked and writable.
func (l *MediaList) InsertMedia(m *Media, index int) error {
	if err := requireSymbol("libvlc_media_list_insert_media"); err != nil {
		return err
	}
	if libvlc.listInsertMedia(l.ptr, m.ptr, int32(index)) != 0 {
		return errorFromLib("libvlc_media_list_insert_media")
	}
	return nil
}

// RemoveIndex removes the item at index. The list must be locked.
func (l *MediaList) RemoveIndex(index int) error {
	if err := requireSymbol("libvlc_media_list_remove_index"); err != nil {
		return err
	}
	if libvlc.listRemoveIndex(l.ptr, int32(index)) != 0 {
		return errorFromLib("libvlc_media_list_remove_index")
	}
	return nil
}

// Count returns the number of items. The list must be locked.
func (l *MediaList) Count() (int, error) {
	if err := requireSymbol("libvlc_media_list_count"); err != nil {
		return 0, err
	}
	return int(libvlc.listCount(l.ptr)), nil
}

// ItemAtIndex returns the item at index with a new reference, or nil when
// out of range. The list must be locked.
func (l *MediaList) ItemAtIndex(index int) (*Media, error) {
	if err := requireSymbol("libvlc_media_list_item_at_index"); err != nil {
		return nil, err
	}
	ptr := libvlc.listItemAtIndex(l.ptr, int32(index))
	if ptr == 0 {
		return nil, nil
	}
	return &Media{ptr: ptr}, nil
}

// IndexOfItem returns the position of m, or -1 when absent. The list must
// be locked.
func (l *MediaList) IndexOfItem(m *Media) (int, error) {
	if err := requireSymbol("libvlc_media_list_index_of_item"); err != nil {
		return -1, err
	}
	return int(libvlc.listIndexOfItem(l.ptr, m.ptr)), nil
}

// SetMedia associates a media with the list (the list then mirrors the
// media's sub-items).
func (l *MediaList) SetMedia(m *Media) error {
	if err := requireSymbol("libvlc_media_list_set_media"); err != nil {
		return err
	}
	libvlc.listSetMedia(l.ptr, m.ptr)
	return nil
}

// Media returns the associated media with a new reference, or nil.
func (l *MediaList) Media() (*Media, error) {
	if err := requireSymbol("libvlc_media_list_media"); err != nil {
		return nil, err
	}
	ptr := libvlc.listMedia(l.ptr)
	if ptr == 0 {
		return nil, nil
	}
	return &Media{ptr: ptr}, nil
}

// IsReadOnly reports whether the list can be modified.
func (l *MediaList) IsReadOnly() bool {
	if requireSymbol("libvlc_media_list_is_readonly") != nil {
		return false
	}
	return libvlc.listIsReadonly(l.ptr) != 0
}

// EventManager returns the event manager of this list.
func (l *MediaList) EventManager() *EventManager {
	if requireSymbol("libvlc_media_list_event_manager") != nil {
		return nil
	}
	return newEventManager(libvlc.listEventManager(l.ptr))
}

// Retain increments the native reference count.
func (l *MediaList) Retain() error {
	if err := requireSymbol("libvlc_media_list_retain"); err != nil {
		return err
	}
	libvlc.listRetain(l.ptr)
	return nil
}

// Release decrements the native reference count.
func (l *MediaList) Release() {
	if Load() == nil {
		libvlc.listRelease(l.ptr)
	}
}

// MediaListPlayer wraps a libvlc_media_list_player_t, driving a MediaPlayer
// through the items of a MediaList.
type MediaListPlayer struct {
	ptr uintptr
}

// SetMediaList sets the list to play.
func (lp *MediaListPlayer) SetMediaList(l *MediaList) error {
	if err := requireSymbol("libvlc_media_list_player_set_media_list"); err != nil {
		return err
	}
	libvlc.listPlayerSetMediaList(lp.ptr, l.ptr)
	return nil
}

// SetMediaPlayer replaces the underlying media player used for playback.
func (lp *MediaListPlayer) SetMediaPlayer(p *MediaPlayer) error {
	if err := requireSymbol("libvlc_media_list_player_set_media_player"); err != nil {
		return err
	}
	libvlc.listPlayerSetMediaPlayer(lp.ptr, p.ptr)
	return nil
}

// Play starts playing the list.
func (lp *MediaListPlayer) Play() error {
	if err := requireSymbol("libvlc_media_list_player_play"); err != nil {
		return err
	}
	libvlc.listPlayerPlay(lp.ptr)
	return nil
}

// Pause toggles pause.
func (lp *MediaListPlayer) Pause() error {
	if err := requireSymbol("libvlc_media_list_player_pause"); err != nil {
		return err
	}
	libvlc.listPlayerPause(lp.ptr)
	return nil
}

// Stop stops playback.
func (lp *MediaListPlayer) Stop() error {
	if err := requireSymbol("libvlc_media_list_player_stop"); err != nil {
		return err
	}
	libvlc.listPlayerStop(lp.ptr)
	return nil
}

// PlayItemAt plays the list item at index.
func (lp *MediaListPlayer) PlayItemAt(index int) error {
	if err := requireSymbol("libvlc_media_list_player_play_item_at_index"); err != nil {
		return err
	}
	if libvlc.listPlayerPlayItemAtIndex(lp.ptr, int32(index)) != 0 {
		return errorFromLib("libvlc_media_list_player_play_item_at_index")
	}
	return nil
}

// Next skips to the next item.
func (lp *MediaListPlayer) Next() error {
	if err := requireSymbol("libvlc_media_list_player_next"); err != nil {
		return err
	}
	if libvlc.listPlayerNext(lp.ptr) != 0 {
		return errorFromLib("libvlc_media_list_player_next")
	}
	return nil
}

// Previous skips to the previous item.
func (lp *MediaListPlayer) Previous() error {
	if err := requireSymbol("libvlc_media_list_player_previous"); err != nil {
		return err
	}
	if libvlc.listPlayerPrevious(lp.ptr) != 0 {
		return errorFromLib("libvlc_media_list_player_previous")
	}
	return nil
}

// State returns the list player state.
func (lp *MediaListPlayer) State() (State, error) {
	if err := requireSymbol("libvlc_media_list_player_get_state"); err != nil {
		return StateNothingSpecial, err
	}
	return State(libvlc.listPlayerGetState(lp.ptr)), nil
}

// SetPlaybackMode selects default, loop or repeat playback.
func (lp *MediaListPlayer) SetPlaybackMode(mode PlaybackMode) error {
	if err := requireSymbol("libvlc_media_list_player_set_playback_mode"); err != nil {
		return err
	}
	libvlc.listPlayerSetPlaybackMode(lp.ptr, int32(mode))
	return nil
}

// EventManager returns the event manager of this list player.
func (lp *MediaListPlayer) EventManager() *EventManager {
	if requireSymbol("libvlc_media_list_player_event_manager") != nil {
		return nil
	}
	return newEventManager(libvlc.listPlayerEventManager(lp.ptr))
}

// Retain increments the native reference count.
func (lp *MediaListPlayer) Retain() error {
	if err := requireSymbol("libvlc_media_list_player_retain"); err != nil {
		return err
	}
	libvlc.listPlayerRetain(lp.ptr)
	return nil
}

// Release decrements the native reference count.
func (lp *MediaListPlayer) Release() {
	if Load() == nil {
		libvlc.listPlayerRelease(lp.ptr)
	}
}
