// Package vlc provides Go bindings for the native libvlc media framework.
//
// The shared library is located and loaded at runtime (no cgo, no link-time
// dependency), so a single build works against any installed libvlc from the
// 2.x/3.x generation onward. Wrapper methods whose underlying symbol is not
// exported by the loaded library return ErrNotSupported instead of being
// absent, which is how forward and backward version compatibility is kept.
//
// Example:
//
//	instance, err := vlc.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer instance.Release()
//
//	player, err := instance.NewMediaPlayer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer player.Release()
//
//	media, err := instance.NewMedia("movie.mp4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	player.SetMedia(media)
//	media.Release()
//
//	em := player.EventManager()
//	em.Attach(vlc.EventMediaPlayerEndReached, func(e vlc.Event) {
//	    fmt.Println("done")
//	})
//
//	player.Play()
//
// Event callbacks are invoked on threads created by libvlc itself, never by
// the Go runtime. The bridge recovers panics at the boundary (a panic must
// not unwind into the native stack) and drops events whose registration was
// already detached. All playback functionality lives behind the libvlc ABI;
// this package only marshals calls, events and reference counts across it.
//
// Object lifetimes follow libvlc's manual reference counting: Release must
// be called explicitly, the Go garbage collector is never involved. Using a
// wrapper after releasing its last reference is undefined behavior, exactly
// as in the C API.
package vlc
