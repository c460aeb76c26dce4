package vlc

import (
	"github.com/ebitengine/purego"

	"github.com/oaubert/govlc/internal/dl"
)

// bindings holds one typed Go function per native symbol the wrappers use.
// Handles and natively-owned strings travel as uintptr; const char*
// parameters go as Go strings (purego copies them for the duration of the
// call). A field left nil means the loaded library does not export the
// symbol; the wrapper method then returns ErrNotSupported instead.
type bindings struct {
	// core
	newInstance  func(argc int32, argv uintptr) uintptr
	release      func(inst uintptr)
	retain       func(inst uintptr)
	errmsg       func() string
	clearerr     func()
	free         func(ptr uintptr)
	getVersion   func() string
	getCompiler  func() string
	getChangeset func() string
	addIntf      func(inst uintptr, name string) int32
	wait         func(inst uintptr)
	setUserAgent func(inst uintptr, name, http string)
	setAppID     func(inst uintptr, id, version, icon string)

	// events
	eventAttach   func(em uintptr, eventType int32, callback, userData uintptr) int32
	eventDetach   func(em uintptr, eventType int32, callback, userData uintptr)
	eventTypeName func(eventType int32) string

	// media
	mediaNewPath          func(inst uintptr, path string) uintptr
	mediaNewLocation      func(inst uintptr, mrl string) uintptr
	mediaAddOption        func(m uintptr, option string)
	mediaGetMRL           func(m uintptr) uintptr
	mediaGetDuration      func(m uintptr) int64
	mediaGetState         func(m uintptr) int32
	mediaGetMeta          func(m uintptr, meta int32) uintptr
	mediaSetMeta          func(m uintptr, meta int32, value string)
	mediaSaveMeta         func(m uintptr) int32
	mediaParseWithOptions func(m uintptr, flags int32, timeout int32) int32
	mediaGetParsedStatus  func(m uintptr) int32
	mediaSubitems         func(m uintptr) uintptr
	mediaDuplicate        func(m uintptr) uintptr
	mediaEventManager     func(m uintptr) uintptr
	mediaRetain           func(m uintptr)
	mediaRelease          func(m uintptr)
	mediaTracksGet        func(m uintptr, tracks uintptr) uint32
	mediaTracksRelease    func(tracks uintptr, count uint32)

	// media player
	playerNew          func(inst uintptr) uintptr
	playerNewFromMedia func(m uintptr) uintptr
	playerRetain       func(p uintptr)
	playerRelease      func(p uintptr)
	playerSetMedia     func(p, m uintptr)
	playerGetMedia     func(p uintptr) uintptr
	playerPlay         func(p uintptr) int32
	playerPause        func(p uintptr)
	playerSetPause     func(p uintptr, pause int32)
	playerStop         func(p uintptr)
	playerIsPlaying    func(p uintptr) int32
	playerGetState     func(p uintptr) int32
	playerWillPlay     func(p uintptr) int32
	playerGetLength    func(p uintptr) int64
	playerGetTime      func(p uintptr) int64
	playerSetTime      func(p uintptr, t int64)
	playerGetPosition  func(p uintptr) float32
	playerSetPosition  func(p uintptr, pos float32)
	playerGetRate      func(p uintptr) float32
	playerSetRate      func(p uintptr, rate float32) int32
	playerIsSeekable   func(p uintptr) int32
	playerCanPause     func(p uintptr) int32
	playerNextFrame    func(p uintptr)
	playerGetFPS       func(p uintptr) float32
	playerEventManager func(p uintptr) uintptr
	playerSetXWindow   func(p uintptr, drawable uint32)
	playerSetHWND      func(p uintptr, hwnd uintptr)
	playerSetNSObject  func(p uintptr, drawable uintptr)

	// video
	toggleFullscreen      func(p uintptr)
	setFullscreen         func(p uintptr, fullscreen int32)
	getFullscreen         func(p uintptr) int32
	videoGetSize          func(p uintptr, num uint32, width, height uintptr) int32
	videoTakeSnapshot     func(p uintptr, num uint32, path string, width, height uint32) int32
	videoSetMarqueeInt    func(p uintptr, option, value int32)
	videoSetMarqueeString func(p uintptr, option int32, text string)

	// audio
	audioGetVolume  func(p uintptr) int32
	audioSetVolume  func(p uintptr, volume int32) int32
	audioGetMute    func(p uintptr) int32
	audioSetMute    func(p uintptr, mute int32)
	audioToggleMute func(p uintptr)

	// media list
	listNew          func(inst uintptr) uintptr
	listRetain       func(l uintptr)
	listRelease      func(l uintptr)
	listLock         func(l uintptr)
	listUnlock       func(l uintptr)
	listAddMedia     func(l, m uintptr) int32
	listInsertMedia  func(l, m uintptr, index int32) int32
	listRemoveIndex  func(l uintptr, index int32) int32
	listCount        func(l uintptr) int32
	listItemAtIndex  func(l uintptr, index int32) uintptr
	listIndexOfItem  func(l, m uintptr) int32
	listSetMedia     func(l, m uintptr)
	listMedia        func(l uintptr) uintptr
	listIsReadonly   func(l uintptr) int32
	listEventManager func(l uintptr) uintptr

	// media list player
	listPlayerNew             func(inst uintptr) uintptr
	listPlayerRetain          func(lp uintptr)
	listPlayerRelease         func(lp uintptr)
	listPlayerSetMediaList    func(lp, l uintptr)
	listPlayerSetMediaPlayer  func(lp, p uintptr)
	listPlayerPlay            func(lp uintptr)
	listPlayerPause           func(lp uintptr)
	listPlayerStop            func(lp uintptr)
	listPlayerPlayItemAtIndex func(lp uintptr, index int32) int32
	listPlayerNext            func(lp uintptr) int32
	listPlayerPrevious        func(lp uintptr) int32
	listPlayerGetState        func(lp uintptr) int32
	listPlayerSetPlaybackMode func(lp uintptr, mode int32)
	listPlayerEventManager    func(lp uintptr) uintptr

	// module descriptions
	audioFilterListGet           func(inst uintptr) uintptr
	videoFilterListGet           func(inst uintptr) uintptr
	moduleDescriptionListRelease func(head uintptr)
}

var (
	libvlc  bindings
	missing = map[string]struct{}{}
)

// coreSymbols must resolve for the binding to work at all. Their absence
// means a libvlc generation older than 1.1 (the errmsg generation), which is
// rejected at load time rather than supported through the legacy per-call
// exception out-parameter convention.
var coreSymbols = []string{
	"libvlc_new",
	"libvlc_release",
	"libvlc_errmsg",
	"libvlc_get_version",
	"libvlc_event_attach",
	"libvlc_event_detach",
	"libvlc_media_player_new",
	"libvlc_media_new_path",
}

// bind resolves name and registers it on fptr. Absent symbols are recorded
// and left nil so the owning method can report ErrNotSupported.
func bind(lib *dl.Library, fptr interface{}, name string) {
	addr, err := lib.Lookup(name)
	if err != nil {
		missing[name] = struct{}{}
		log.WithField("symbol", name).Debug("symbol not exported by loaded libvlc")
		return
	}
	purego.RegisterFunc(fptr, addr)
}

// supported reports whether the named native symbol resolved at load time.
func supported(name string) bool {
	_, absent := missing[name]
	return !absent
}

// requireSymbol ensures the library is loaded and the symbol bound.
func requireSymbol(name string) error {
	if err := Load(); err != nil {
		return err
	}
	if !supported(name) {
		return &NotSupportedError{Symbol: name}
	}
	return nil
}

func checkCoreSymbols() error {
	for _, name := range coreSymbols {
		if !supported(name) {
			return &NotSupportedError{Symbol: name}
		}
	}
	return nil
}

func bindSymbols(lib *dl.Library) {
	bind(lib, &libvlc.newInstance, "libvlc_new")
	bind(lib, &libvlc.release, "libvlc_release")
	bind(lib, &libvlc.retain, "libvlc_retain")
	bind(lib, &libvlc.errmsg, "libvlc_errmsg")
	bind(lib, &libvlc.clearerr, "libvlc_clearerr")
	bind(lib, &libvlc.free, "libvlc_free")
	bind(lib, &libvlc.getVersion, "libvlc_get_version")
	bind(lib, &libvlc.getCompiler, "libvlc_get_compiler")
	bind(lib, &libvlc.getChangeset, "libvlc_get_changeset")
	bind(lib, &libvlc.addIntf, "libvlc_add_intf")
	bind(lib, &libvlc.wait, "libvlc_wait")
	bind(lib, &libvlc.setUserAgent, "libvlc_set_user_agent")
	bind(lib, &libvlc.setAppID, "libvlc_set_app_id")

	bind(lib, &libvlc.eventAttach, "libvlc_event_attach")
	bind(lib, &libvlc.eventDetach, "libvlc_event_detach")
	bind(lib, &libvlc.eventTypeName, "libvlc_event_type_name")

	bind(lib, &libvlc.mediaNewPath, "libvlc_media_new_path")
	bind(lib, &libvlc.mediaNewLocation, "libvlc_media_new_location")
	bind(lib, &libvlc.mediaAddOption, "libvlc_media_add_option")
	bind(lib, &libvlc.mediaGetMRL, "libvlc_media_get_mrl")
	bind(lib, &libvlc.mediaGetDuration, "libvlc_media_get_duration")
	bind(lib, &libvlc.mediaGetState, "libvlc_media_get_state")
	bind(lib, &libvlc.mediaGetMeta, "libvlc_media_get_meta")
	bind(lib, &libvlc.mediaSetMeta, "libvlc_media_set_meta")
	bind(lib, &libvlc.mediaSaveMeta, "libvlc_media_save_meta")
	bind(lib, &libvlc.mediaParseWithOptions, "libvlc_media_parse_with_options")
	bind(lib, &libvlc.mediaGetParsedStatus, "libvlc_media_get_parsed_status")
	bind(lib, &libvlc.mediaSubitems, "libvlc_media_subitems")
	bind(lib, &libvlc.mediaDuplicate, "libvlc_media_duplicate")
	bind(lib, &libvlc.mediaEventManager, "libvlc_media_event_manager")
	bind(lib, &libvlc.mediaRetain, "libvlc_media_retain")
	bind(lib, &libvlc.mediaRelease, "libvlc_media_release")
	bind(lib, &libvlc.mediaTracksGet, "libvlc_media_tracks_get")
	bind(lib, &libvlc.mediaTracksRelease, "libvlc_media_tracks_release")

	bind(lib, &libvlc.playerNew, "libvlc_media_player_new")
	bind(lib, &libvlc.playerNewFromMedia, "libvlc_media_player_new_from_media")
	bind(lib, &libvlc.playerRetain, "libvlc_media_player_retain")
	bind(lib, &libvlc.playerRelease, "libvlc_media_player_release")
	bind(lib, &libvlc.playerSetMedia, "libvlc_media_player_set_media")
	bind(lib, &libvlc.playerGetMedia, "libvlc_media_player_get_media")
	bind(lib, &libvlc.playerPlay, "libvlc_media_player_play")
	bind(lib, &libvlc.playerPause, "libvlc_media_player_pause")
	bind(lib, &libvlc.playerSetPause, "libvlc_media_player_set_pause")
	bind(lib, &libvlc.playerStop, "libvlc_media_player_stop")
	bind(lib, &libvlc.playerIsPlaying, "libvlc_media_player_is_playing")
	bind(lib, &libvlc.playerGetState, "libvlc_media_player_get_state")
	bind(lib, &libvlc.playerWillPlay, "libvlc_media_player_will_play")
	bind(lib, &libvlc.playerGetLength, "libvlc_media_player_get_length")
	bind(lib, &libvlc.playerGetTime, "libvlc_media_player_get_time")
	bind(lib, &libvlc.playerSetTime, "libvlc_media_player_set_time")
	bind(lib, &libvlc.playerGetPosition, "libvlc_media_player_get_position")
	bind(lib, &libvlc.playerSetPosition, "libvlc_media_player_set_position")
	bind(lib, &libvlc.playerGetRate, "libvlc_media_player_get_rate")
	bind(lib, &libvlc.playerSetRate, "libvlc_media_player_set_rate")
	bind(lib, &libvlc.playerIsSeekable, "libvlc_media_player_is_seekable")
	bind(lib, &libvlc.playerCanPause, "libvlc_media_player_can_pause")
	bind(lib, &libvlc.playerNextFrame, "libvlc_media_player_next_frame")
	bind(lib, &libvlc.playerGetFPS, "libvlc_media_player_get_fps")
	bind(lib, &libvlc.playerEventManager, "libvlc_media_player_event_manager")
	bind(lib, &libvlc.playerSetXWindow, "libvlc_media_player_set_xwindow")
	bind(lib, &libvlc.playerSetHWND, "libvlc_media_player_set_hwnd")
	bind(lib, &libvlc.playerSetNSObject, "libvlc_media_player_set_nsobject")

	bind(lib, &libvlc.toggleFullscreen, "libvlc_toggle_fullscreen")
	bind(lib, &libvlc.setFullscreen, "libvlc_set_fullscreen")
	bind(lib, &libvlc.getFullscreen, "libvlc_get_fullscreen")
	bind(lib, &libvlc.videoGetSize, "libvlc_video_get_size")
	bind(lib, &libvlc.videoTakeSnapshot, "libvlc_video_take_snapshot")
	bind(lib, &libvlc.videoSetMarqueeInt, "libvlc_video_set_marquee_int")
	bind(lib, &libvlc.videoSetMarqueeString, "libvlc_video_set_marquee_string")

	bind(lib, &libvlc.audioGetVolume, "libvlc_audio_get_volume")
	bind(lib, &libvlc.audioSetVolume, "libvlc_audio_set_volume")
	bind(lib, &libvlc.audioGetMute, "libvlc_audio_get_mute")
	bind(lib, &libvlc.audioSetMute, "libvlc_audio_set_mute")
	bind(lib, &libvlc.audioToggleMute, "libvlc_audio_toggle_mute")

	bind(lib, &libvlc.listNew, "libvlc_media_list_new")
	bind(lib, &libvlc.listRetain, "libvlc_media_list_retain")
	bind(lib, &libvlc.listRelease, "libvlc_media_list_release")
	bind(lib, &libvlc.listLock, "libvlc_media_list_lock")
	bind(lib, &libvlc.listUnlock, "libvlc_media_list_unlock")
	bind(lib, &libvlc.listAddMedia, "libvlc_media_list_add_media")
	bind(lib, &libvlc.listInsertMedia, "libvlc_media_list_insert_media")
	bind(lib, &libvlc.listRemoveIndex, "libvlc_media_list_remove_index")
	bind(lib, &libvlc.listCount, "libvlc_media_list_count")
	bind(lib, &libvlc.listItemAtIndex, "libvlc_media_list_item_at_index")
	bind(lib, &libvlc.listIndexOfItem, "libvlc_media_list_index_of_item")
	bind(lib, &libvlc.listSetMedia, "libvlc_media_list_set_media")
	bind(lib, &libvlc.listMedia, "libvlc_media_list_media")
	bind(lib, &libvlc.listIsReadonly, "libvlc_media_list_is_readonly")
	bind(lib, &libvlc.listEventManager, "libvlc_media_list_event_manager")

	bind(lib, &libvlc.listPlayerNew, "libvlc_media_list_player_new")
	bind(lib, &libvlc.listPlayerRetain, "libvlc_media_list_player_retain")
	bind(lib, &libvlc.listPlayerRelease, "libvlc_media_list_player_release")
	bind(lib, &libvlc.listPlayerSetMediaList, "libvlc_media_list_player_set_media_list")
	bind(lib, &libvlc.listPlayerSetMediaPlayer, "libvlc_media_list_player_set_media_player")
	bind(lib, &libvlc.listPlayerPlay, "libvlc_media_list_player_play")
	bind(lib, &libvlc.listPlayerPause, "libvlc_media_list_player_pause")
	bind(lib, &libvlc.listPlayerStop, "libvlc_media_list_player_stop")
	bind(lib, &libvlc.listPlayerPlayItemAtIndex, "libvlc_media_list_player_play_item_at_index")
	bind(lib, &libvlc.listPlayerNext, "libvlc_media_list_player_next")
	bind(lib, &libvlc.listPlayerPrevious, "libvlc_media_list_player_previous")
	bind(lib, &libvlc.listPlayerGetState, "libvlc_media_list_player_get_state")
	bind(lib, &libvlc.listPlayerSetPlaybackMode, "libvlc_media_list_player_set_playback_mode")
	bind(lib, &libvlc.listPlayerEventManager, "libvlc_media_list_player_event_manager")

	bind(lib, &libvlc.audioFilterListGet, "libvlc_audio_filter_list_get")
	bind(lib, &libvlc.videoFilterListGet, "libvlc_video_filter_list_get")
	bind(lib, &libvlc.moduleDescriptionListRelease, "libvlc_module_description_list_release")
}
