package vlc

import (
	"runtime"
	"unsafe"
)

// Instance wraps a libvlc_instance_t. It is the factory for every other
// object kind and holds the first native reference; Release when done.
type Instance struct {
	ptr uintptr
}

// New creates a libvlc instance. args are vlc command-line options (without
// a program name). With no args and a detected VLC install, the plugin
// directory hint is passed as --plugin-path, mirroring the ctypes bindings'
// behavior on Windows and macOS.
func New(args ...string) (*Instance, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	if len(args) == 0 && pluginPath != "" {
		args = []string{"--plugin-path=" + pluginPath}
	}

	argv, backing := cstrings(args)
	var argvPtr uintptr
	if len(argv) > 0 {
		argvPtr = uintptr(unsafe.Pointer(&argv[0]))
	}
	ptr := libvlc.newInstance(int32(len(args)), argvPtr)
	runtime.KeepAlive(argv)
	runtime.KeepAlive(backing)
	if ptr == 0 {
		return nil, errorFromLib("libvlc_new")
	}
	return &Instance{ptr: ptr}, nil
}

// Retain increments the native reference count.
func (i *Instance) Retain() error {
	if err := requireSymbol("libvlc_retain"); err != nil {
		return err
	}
	libvlc.retain(i.ptr)
	return nil
}

// Release decrements the native reference count, destroying the instance
// when it reaches zero. The wrapper must not be used afterwards.
func (i *Instance) Release() {
	if Load() == nil {
		libvlc.release(i.ptr)
	}
}

// AddInterface starts a user interface module ("" for the default).
func (i *Instance) AddInterface(name string) error {
	if err := requireSymbol("libvlc_add_intf"); err != nil {
		return err
	}
	if libvlc.addIntf(i.ptr, name) != 0 {
		return errorFromLib("libvlc_add_intf")
	}
	return nil
}

// Wait blocks until an interface causes the instance to exit. Blocks
// indefinitely by design, mirroring the native call.
func (i *Instance) Wait() error {
	if err := requireSymbol("libvlc_wait"); err != nil {
		return err
	}
	libvlc.wait(i.ptr)
	return nil
}

// SetUserAgent sets the application name and HTTP user agent string.
func (i *Instance) SetUserAgent(name, http string) error {
	if err := requireSymbol("libvlc_set_user_agent"); err != nil {
		return err
	}
	libvlc.setUserAgent(i.ptr, name, http)
	return nil
}

// SetAppID sets the meta-information about the application (reverse-DNS id,
// version, icon name).
func (i *Instance) SetAppID(id, version, icon string) error {
	if err := requireSymbol("libvlc_set_app_id"); err != nil {
		return err
	}
	libvlc.setAppID(i.ptr, id, version, icon)
	return nil
}

// NewMedia creates a media from a local file path.
func (i *Instance) NewMedia(path string, options ...string) (*Media, error) {
	if err := requireSymbol("libvlc_media_new_path"); err != nil {
		return nil, err
	}
	ptr := libvlc.mediaNewPath(i.ptr, path)
	if ptr == 0 {
		return nil, errorFromLib("libvlc_media_new_path")
	}
	m := &Media{ptr: ptr}
	return m, m.AddOptions(options...)
}

// NewMediaFromURL creates a media from an MRL (URL form).
func (i *Instance) NewMediaFromURL(mrl string, options ...string) (*Media, error) {
	if err := requireSymbol("libvlc_media_new_location"); err != nil {
		return nil, err
	}
	ptr := libvlc.mediaNewLocation(i.ptr, mrl)
	if ptr == 0 {
		return nil, errorFromLib("libvlc_media_new_location")
	}
	m := &Media{ptr: ptr}
	return m, m.AddOptions(options...)
}

// NewMediaPlayer creates an empty media player.
func (i *Instance) NewMediaPlayer() (*MediaPlayer, error) {
	if err := requireSymbol("libvlc_media_player_new"); err != nil {
		return nil, err
	}
	ptr := libvlc.playerNew(i.ptr)
	if ptr == 0 {
		return nil, errorFromLib("libvlc_media_player_new")
	}
	return &MediaPlayer{ptr: ptr}, nil
}

// NewMediaList creates an empty media list.
func (i *Instance) NewMediaList() (*MediaList, error) {
	if err := requireSymbol("libvlc_media_list_new"); err != nil {
		return nil, err
	}
	ptr := libvlc.listNew(i.ptr)
	if ptr == 0 {
		return nil, errorFromLib("libvlc_media_list_new")
	}
	return &MediaList{ptr: ptr}, nil
}

// NewMediaListPlayer creates a media list player.
func (i *Instance) NewMediaListPlayer() (*MediaListPlayer, error) {
	if err := requireSymbol("libvlc_media_list_player_new"); err != nil {
		return nil, err
	}
	ptr := libvlc.listPlayerNew(i.ptr)
	if ptr == 0 {
		return nil, errorFromLib("libvlc_media_list_player_new")
	}
	return &MediaListPlayer{ptr: ptr}, nil
}

// AudioFilterList returns the available audio filter modules.
func (i *Instance) AudioFilterList() ([]ModuleDescription, error) {
	if err := requireSymbol("libvlc_audio_filter_list_get"); err != nil {
		return nil, err
	}
	return moduleDescriptionList(libvlc.audioFilterListGet(i.ptr)), nil
}

// VideoFilterList returns the available video filter modules.
func (i *Instance) VideoFilterList() ([]ModuleDescription, error) {
	if err := requireSymbol("libvlc_video_filter_list_get"); err != nil {
		return nil, err
	}
	return moduleDescriptionList(libvlc.videoFilterListGet(i.ptr)), nil
}
