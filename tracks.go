package vlc

import "unsafe"

// MediaTrack describes one elementary stream of a parsed media.
type MediaTrack struct {
	Codec          uint32
	OriginalFourCC uint32
	ID             int
	Type           TrackType
	Profile        int
	Level          int
	Bitrate        uint
	Language       string
	Description    string
}

// native libvlc_media_track_t on 64-bit targets. The per-kind descriptor
// union is carried as an opaque pointer and not decoded.
type cMediaTrack struct {
	codec       uint32
	fourcc      uint32
	id          int32
	typ         int32
	profile     int32
	level       int32
	union       uintptr
	bitrate     uint32
	_           uint32
	language    uintptr
	description uintptr
}

// decodeTracks copies a native track array (an array of n pointers) into Go
// values.
func decodeTracks(head uintptr, n uint32) []MediaTrack {
	if head == 0 || n == 0 {
		return nil
	}
	ptrs := unsafe.Slice((*uintptr)(unsafe.Pointer(head)), n)
	tracks := make([]MediaTrack, 0, n)
	for _, p := range ptrs {
		if p == 0 {
			continue
		}
		ct := (*cMediaTrack)(unsafe.Pointer(p))
		tracks = append(tracks, MediaTrack{
			Codec:          ct.codec,
			OriginalFourCC: ct.fourcc,
			ID:             int(ct.id),
			Type:           TrackType(ct.typ),
			Profile:        int(ct.profile),
			Level:          int(ct.level),
			Bitrate:        uint(ct.bitrate),
			Language:       goString(ct.language),
			Description:    goString(ct.description),
		})
	}
	return tracks
}

// Tracks returns the elementary streams of the media. The media must be
// parsed (or played once) for its tracks to be known.
func (m *Media) Tracks() ([]MediaTrack, error) {
	if err := requireSymbol("libvlc_media_tracks_get"); err != nil {
		return nil, err
	}
	var head uintptr
	n := libvlc.mediaTracksGet(m.ptr, uintptr(unsafe.Pointer(&head)))
	tracks := decodeTracks(head, n)
	if head != 0 && libvlc.mediaTracksRelease != nil {
		libvlc.mediaTracksRelease(head, n)
	}
	return tracks, nil
}
