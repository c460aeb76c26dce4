package vlc

import (
	"time"
	"unsafe"
)

// MediaPlayer wraps a libvlc_media_player_t.
type MediaPlayer struct {
	ptr uintptr
}

// NewMediaPlayerFromMedia creates a player preloaded with m, sharing m's
// owning instance.
func NewMediaPlayerFromMedia(m *Media) (*MediaPlayer, error) {
	if err := requireSymbol("libvlc_media_player_new_from_media"); err != nil {
		return nil, err
	}
	ptr := libvlc.playerNewFromMedia(m.ptr)
	if ptr == 0 {
		return nil, errorFromLib("libvlc_media_player_new_from_media")
	}
	return &MediaPlayer{ptr: ptr}, nil
}

// SetMedia sets the media to play. The player takes its own reference; the
// caller may Release m afterwards.
func (p *MediaPlayer) SetMedia(m *Media) error {
	if err := requireSymbol("libvlc_media_player_set_media"); err != nil {
		return err
	}
	libvlc.playerSetMedia(p.ptr, m.ptr)
	return nil
}

// Media returns the current media, or nil when none is set. The returned
// wrapper carries a new native reference; Release it.
func (p *MediaPlayer) Media() (*Media, error) {
	if err := requireSymbol("libvlc_media_player_get_media"); err != nil {
		return nil, err
	}
	ptr := libvlc.playerGetMedia(p.ptr)
	if ptr == 0 {
		return nil, nil
	}
	return &Media{ptr: ptr}, nil
}

// Play starts playback. Asynchronous: the Playing state is reported later
// through MediaPlayerPlaying.
func (p *MediaPlayer) Play() error {
	if err := requireSymbol("libvlc_media_player_play"); err != nil {
		return err
	}
	if libvlc.playerPlay(p.ptr) != 0 {
		return errorFromLib("libvlc_media_player_play")
	}
	return nil
}

// Pause toggles pause.
func (p *MediaPlayer) Pause() error {
	if err := requireSymbol("libvlc_media_player_pause"); err != nil {
		return err
	}
	libvlc.playerPause(p.ptr)
	return nil
}

// SetPause pauses (true) or resumes (false) without toggling.
func (p *MediaPlayer) SetPause(pause bool) error {
	if err := requireSymbol("libvlc_media_player_set_pause"); err != nil {
		return err
	}
	libvlc.playerSetPause(p.ptr, boolToInt(pause))
	return nil
}

// Stop stops playback and rewinds.
func (p *MediaPlayer) Stop() error {
	if err := requireSymbol("libvlc_media_player_stop"); err != nil {
		return err
	}
	libvlc.playerStop(p.ptr)
	return nil
}

// IsPlaying reports whether the player is currently playing.
func (p *MediaPlayer) IsPlaying() bool {
	if requireSymbol("libvlc_media_player_is_playing") != nil {
		return false
	}
	return libvlc.playerIsPlaying(p.ptr) != 0
}

// State returns the player state.
func (p *MediaPlayer) State() (State, error) {
	if err := requireSymbol("libvlc_media_player_get_state"); err != nil {
		return StateNothingSpecial, err
	}
	return State(libvlc.playerGetState(p.ptr)), nil
}

// WillPlay reports whether the player can start playing the current media.
func (p *MediaPlayer) WillPlay() bool {
	if requireSymbol("libvlc_media_player_will_play") != nil {
		return false
	}
	return libvlc.playerWillPlay(p.ptr) != 0
}

// Length returns the length of the current media, or an error when unknown.
func (p *MediaPlayer) Length() (time.Duration, error) {
	if err := requireSymbol("libvlc_media_player_get_length"); err != nil {
		return 0, err
	}
	ms := libvlc.playerGetLength(p.ptr)
	if ms < 0 {
		return 0, errorFromLib("libvlc_media_player_get_length")
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// Time returns the playback position as a time offset.
func (p *MediaPlayer) Time() (time.Duration, error) {
	if err := requireSymbol("libvlc_media_player_get_time"); err != nil {
		return 0, err
	}
	ms := libvlc.playerGetTime(p.ptr)
	if ms < 0 {
		return 0, errorFromLib("libvlc_media_player_get_time")
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// SetTime seeks to an absolute time offset. Only works while a media is
// loaded and seekable.
func (p *MediaPlayer) SetTime(t time.Duration) error {
	if err := requireSymbol("libvlc_media_player_set_time"); err != nil {
		return err
	}
	if t < 0 {
		t = 0
	}
	libvlc.playerSetTime(p.ptr, int64(t/time.Millisecond))
	return nil
}

// Position returns the playback position as a fraction in [0, 1].
func (p *MediaPlayer) Position() (float32, error) {
	if err := requireSymbol("libvlc_media_player_get_position"); err != nil {
		return 0, err
	}
	pos := libvlc.playerGetPosition(p.ptr)
	if pos < 0 {
		return 0, errorFromLib("libvlc_media_player_get_position")
	}
	return pos, nil
}

// SetPosition seeks to a fraction of the media in [0, 1].
func (p *MediaPlayer) SetPosition(pos float32) error {
	if err := requireSymbol("libvlc_media_player_set_position"); err != nil {
		return err
	}
	libvlc.playerSetPosition(p.ptr, pos)
	return nil
}

// Rate returns the requested playback rate (1.0 is normal speed).
func (p *MediaPlayer) Rate() (float32, error) {
	if err := requireSymbol("libvlc_media_player_get_rate"); err != nil {
		return 0, err
	}
	return libvlc.playerGetRate(p.ptr), nil
}

// SetRate sets the playback rate; not every media supports it.
func (p *MediaPlayer) SetRate(rate float32) error {
	if err := requireSymbol("libvlc_media_player_set_rate"); err != nil {
		return err
	}
	if libvlc.playerSetRate(p.ptr, rate) != 0 {
		return errorFromLib("libvlc_media_player_set_rate")
	}
	return nil
}

// IsSeekable reports whether the current media supports seeking.
func (p *MediaPlayer) IsSeekable() bool {
	if requireSymbol("libvlc_media_player_is_seekable") != nil {
		return false
	}
	return libvlc.playerIsSeekable(p.ptr) != 0
}

// CanPause reports whether the current media can be paused.
func (p *MediaPlayer) CanPause() bool {
	if requireSymbol("libvlc_media_player_can_pause") != nil {
		return false
	}
	return libvlc.playerCanPause(p.ptr) != 0
}

// NextFrame displays the next video frame, when supported by the demuxer.
func (p *MediaPlayer) NextFrame() error {
	if err := requireSymbol("libvlc_media_player_next_frame"); err != nil {
		return err
	}
	libvlc.playerNextFrame(p.ptr)
	return nil
}

// FPS returns the frame rate of the current media, 0 when unknown.
func (p *MediaPlayer) FPS() (float32, error) {
	if err := requireSymbol("libvlc_media_player_get_fps"); err != nil {
		return 0, err
	}
	return libvlc.playerGetFPS(p.ptr), nil
}

// EventManager returns the event manager of this player.
func (p *MediaPlayer) EventManager() *EventManager {
	if requireSymbol("libvlc_media_player_event_manager") != nil {
		return nil
	}
	return newEventManager(libvlc.playerEventManager(p.ptr))
}

// SetXWindow attaches video output to an X11 drawable id.
func (p *MediaPlayer) SetXWindow(drawable uint32) error {
	if err := requireSymbol("libvlc_media_player_set_xwindow"); err != nil {
		return err
	}
	libvlc.playerSetXWindow(p.ptr, drawable)
	return nil
}

// SetHWND attaches video output to a Win32 window handle.
func (p *MediaPlayer) SetHWND(hwnd uintptr) error {
	if err := requireSymbol("libvlc_media_player_set_hwnd"); err != nil {
		return err
	}
	libvlc.playerSetHWND(p.ptr, hwnd)
	return nil
}

// SetNSObject attaches video output to an NSView pointer.
func (p *MediaPlayer) SetNSObject(view uintptr) error {
	if err := requireSymbol("libvlc_media_player_set_nsobject"); err != nil {
		return err
	}
	libvlc.playerSetNSObject(p.ptr, view)
	return nil
}

// ToggleFullscreen toggles fullscreen on a non-embedded video output.
func (p *MediaPlayer) ToggleFullscreen() error {
	if err := requireSymbol("libvlc_toggle_fullscreen"); err != nil {
		return err
	}
	libvlc.toggleFullscreen(p.ptr)
	return nil
}

// SetFullscreen enables or disables fullscreen.
func (p *MediaPlayer) SetFullscreen(fullscreen bool) error {
	if err := requireSymbol("libvlc_set_fullscreen"); err != nil {
		return err
	}
	libvlc.setFullscreen(p.ptr, boolToInt(fullscreen))
	return nil
}

// Fullscreen reports the fullscreen state.
func (p *MediaPlayer) Fullscreen() bool {
	if requireSymbol("libvlc_get_fullscreen") != nil {
		return false
	}
	return libvlc.getFullscreen(p.ptr) != 0
}

// VideoSize returns the pixel dimensions of video output num (usually 0).
func (p *MediaPlayer) VideoSize(num uint) (width, height uint32, err error) {
	if err := requireSymbol("libvlc_video_get_size"); err != nil {
		return 0, 0, err
	}
	var w, h uint32
	rc := libvlc.videoGetSize(p.ptr, uint32(num),
		uintptr(unsafe.Pointer(&w)), uintptr(unsafe.Pointer(&h)))
	if rc != 0 {
		return 0, 0, errorFromLib("libvlc_video_get_size")
	}
	return w, h, nil
}

// TakeSnapshot saves a snapshot of video output num to path. width/height 0
// keeps the original aspect ratio.
func (p *MediaPlayer) TakeSnapshot(num uint, path string, width, height uint32) error {
	if err := requireSymbol("libvlc_video_take_snapshot"); err != nil {
		return err
	}
	if libvlc.videoTakeSnapshot(p.ptr, uint32(num), path, width, height) != 0 {
		return errorFromLib("libvlc_video_take_snapshot")
	}
	return nil
}

// SetMarqueeInt sets an integer marquee option (requires the marq
// sub-filter on the media).
func (p *MediaPlayer) SetMarqueeInt(option MarqueeOption, value int) error {
	if err := requireSymbol("libvlc_video_set_marquee_int"); err != nil {
		return err
	}
	libvlc.videoSetMarqueeInt(p.ptr, int32(option), int32(value))
	return nil
}

// SetMarqueeString sets a string marquee option, typically MarqueeText.
func (p *MediaPlayer) SetMarqueeString(option MarqueeOption, text string) error {
	if err := requireSymbol("libvlc_video_set_marquee_string"); err != nil {
		return err
	}
	libvlc.videoSetMarqueeString(p.ptr, int32(option), text)
	return nil
}

// Volume returns the software volume in percent (0..100, may exceed 100).
func (p *MediaPlayer) Volume() (int, error) {
	if err := requireSymbol("libvlc_audio_get_volume"); err != nil {
		return 0, err
	}
	return int(libvlc.audioGetVolume(p.ptr)), nil
}

// SetVolume sets the software volume in percent.
func (p *MediaPlayer) SetVolume(volume int) error {
	if err := requireSymbol("libvlc_audio_set_volume"); err != nil {
		return err
	}
	if libvlc.audioSetVolume(p.ptr, int32(volume)) != 0 {
		return errorFromLib("libvlc_audio_set_volume")
	}
	return nil
}

// Muted reports the mute state.
func (p *MediaPlayer) Muted() bool {
	if requireSymbol("libvlc_audio_get_mute") != nil {
		return false
	}
	return libvlc.audioGetMute(p.ptr) > 0
}

// SetMute sets the mute state.
func (p *MediaPlayer) SetMute(mute bool) error {
	if err := requireSymbol("libvlc_audio_set_mute"); err != nil {
		return err
	}
	libvlc.audioSetMute(p.ptr, boolToInt(mute))
	return nil
}

// ToggleMute flips the mute state.
func (p *MediaPlayer) ToggleMute() error {
	if err := requireSymbol("libvlc_audio_toggle_mute"); err != nil {
		return err
	}
	libvlc.audioToggleMute(p.ptr)
	return nil
}

// Retain increments the native reference count.
func (p *MediaPlayer) Retain() error {
	if err := requireSymbol("libvlc_media_player_retain"); err != nil {
		return err
	}
	libvlc.playerRetain(p.ptr)
	return nil
}

// Release decrements the native reference count. Attached event callbacks
// should be detached first; see Media.Release for the registry semantics.
func (p *MediaPlayer) Release() {
	if Load() == nil {
		libvlc.playerRelease(p.ptr)
	}
}
