package domain

import "time"

// VideoRecord is a resolved, playable video inside a playlist. The ID is
// assigned by the library and is unique within its playlist; VideoID is the
// provider-side identifier (e.g. a YouTube video ID) and may repeat.
type VideoRecord struct {
	ID              string    `json:"id"`
	Provider        string    `json:"provider"`
	VideoID         string    `json:"video_id"`
	Title           string    `json:"title"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	DurationSeconds int       `json:"duration_seconds,omitempty"`
	AddedAt         time.Time `json:"added_at"`
}

// Playlist is a named, ordered collection of video records. Slice order is
// the playback and display order.
type Playlist struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Videos    []VideoRecord `json:"videos"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// VideoMetadata is what a resolver returns for a raw URL before the library
// wraps it into a VideoRecord.
type VideoMetadata struct {
	Provider        string `json:"provider"`
	VideoID         string `json:"video_id"`
	Title           string `json:"title"`
	ThumbnailURL    string `json:"thumbnail_url"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// PlayerStatus is the playback state machine position.
type PlayerStatus string

const (
	StatusIdle    PlayerStatus = "idle"
	StatusPlaying PlayerStatus = "playing"
	StatusPaused  PlayerStatus = "paused"
)

// PlaybackState is the player's externally visible state. PlaylistID is empty
// when no playlist is bound. When bound to a non-empty playlist,
// 0 <= CurrentIndex < len(videos).
type PlaybackState struct {
	PlaylistID   string       `json:"playlist_id,omitempty"`
	CurrentIndex int          `json:"current_index"`
	Status       PlayerStatus `json:"status"`
}

// IsPlaying reports whether playback is actively advancing.
func (s PlaybackState) IsPlaying() bool {
	return s.Status == StatusPlaying
}
