package vlc

import "fmt"

// State is the playback state machine of a media or player
// (libvlc_state_t). Transitions observed through state-change events move
// forward through Opening, Buffering/Playing and on to Ended or Stopped.
type State int32

const (
	StateNothingSpecial State = iota
	StateOpening
	StateBuffering
	StatePlaying
	StatePaused
	StateStopped
	StateEnded
	StateError
)

var stateNames = map[State]string{
	StateNothingSpecial: "NothingSpecial",
	StateOpening:        "Opening",
	StateBuffering:      "Buffering",
	StatePlaying:        "Playing",
	StatePaused:         "Paused",
	StateStopped:        "Stopped",
	StateEnded:          "Ended",
	StateError:          "Error",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Meta identifies a media metadata field (libvlc_meta_t).
type Meta int32

const (
	MetaTitle Meta = iota
	MetaArtist
	MetaGenre
	MetaCopyright
	MetaAlbum
	MetaTrackNumber
	MetaDescription
	MetaRating
	MetaDate
	MetaSetting
	MetaURL
	MetaLanguage
	MetaNowPlaying
	MetaPublisher
	MetaEncodedBy
	MetaArtworkURL
	MetaTrackID
	MetaTrackTotal
	MetaDirector
	MetaSeason
	MetaEpisode
	MetaShowName
	MetaActors
	MetaAlbumArtist
	MetaDiscNumber
	MetaDiscTotal
)

// TrackType identifies an elementary stream kind (libvlc_track_type_t).
type TrackType int32

const (
	TrackUnknown TrackType = iota - 1
	TrackAudio
	TrackVideo
	TrackText
)

var trackTypeNames = map[TrackType]string{
	TrackUnknown: "Unknown",
	TrackAudio:   "Audio",
	TrackVideo:   "Video",
	TrackText:    "Text",
}

func (t TrackType) String() string {
	if n, ok := trackTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("TrackType(%d)", int32(t))
}

// PlaybackMode configures a MediaListPlayer (libvlc_playback_mode_t).
type PlaybackMode int32

const (
	PlaybackDefault PlaybackMode = iota
	PlaybackLoop
	PlaybackRepeat
)

// ParsedStatus reports the outcome of Media.Parse
// (libvlc_media_parsed_status_t).
type ParsedStatus int32

const (
	ParsedSkipped ParsedStatus = iota + 1
	ParsedFailed
	ParsedTimeout
	ParsedDone
)

var parsedStatusNames = map[ParsedStatus]string{
	ParsedSkipped: "Skipped",
	ParsedFailed:  "Failed",
	ParsedTimeout: "Timeout",
	ParsedDone:    "Done",
}

func (s ParsedStatus) String() string {
	if n, ok := parsedStatusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("ParsedStatus(%d)", int32(s))
}

// ParseFlag selects how Media.Parse fetches metadata
// (libvlc_media_parse_flag_t). Flags combine with bitwise or.
type ParseFlag int32

const (
	ParseLocal   ParseFlag = 0x00
	ParseNetwork ParseFlag = 0x01
	FetchLocal   ParseFlag = 0x02
	FetchNetwork ParseFlag = 0x04
	DoInteract   ParseFlag = 0x08
)

// MarqueeOption selects a marquee parameter for
// MediaPlayer.SetMarqueeInt/SetMarqueeString (libvlc_video_marquee_option_t).
type MarqueeOption int32

const (
	MarqueeEnable MarqueeOption = iota
	MarqueeText
	MarqueeColor
	MarqueeOpacity
	MarqueePosition
	MarqueeRefresh
	MarqueeSize
	MarqueeTimeout
	MarqueeX
	MarqueeY
)

// Position constants for the MarqueePosition option.
const (
	PositionCenter      = 0
	PositionLeft        = 1
	PositionRight       = 2
	PositionTop         = 4
	PositionTopLeft     = 5
	PositionTopRight    = 6
	PositionBottom      = 8
	PositionBottomLeft  = 9
	PositionBottomRight = 10
)
