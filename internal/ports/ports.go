package ports

import (
	"context"

	"github.com/quicklist/quicklist-api/internal/domain"
)

// VideoResolver defines the contract a video platform adapter must implement.
// This is the driven port that turns a pasted URL into playable metadata.
type VideoResolver interface {
	// Resolve extracts the platform video ID from rawURL and fetches display
	// metadata for it. A URL this provider cannot parse fails with a
	// domain.ValidationError; an upstream failure with a domain.ResolutionError.
	Resolve(ctx context.Context, rawURL string) (*domain.VideoMetadata, error)

	// Name returns the provider identifier (e.g. "youtube").
	Name() string
}

// PlaylistRepository is the driven port for durable playlist storage. The
// library loads once at startup and saves the full set after every mutation;
// save failures are non-fatal to in-memory operation.
type PlaylistRepository interface {
	Load(ctx context.Context) ([]domain.Playlist, error)
	Save(ctx context.Context, playlists []domain.Playlist) error
}

// EventPublisher broadcasts state changes to external surfaces. Publishing is
// best-effort; implementations must not fail the triggering mutation.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any)
}

// PlaybackObserver receives synchronous notifications from the library when a
// playlist mutates underneath an in-progress playback, so the player can keep
// its index pointing at the right video.
type PlaybackObserver interface {
	// VideoRemoved reports that the video at index was removed, leaving
	// remaining videos in the playlist.
	VideoRemoved(playlistID string, index, remaining int)

	// VideosReordered reports a wholesale replacement of the playlist's
	// sequence, with the sequences before and after the change.
	VideosReordered(playlistID string, before, after []domain.VideoRecord)

	// PlaylistDeleted reports that the playlist no longer exists.
	PlaylistDeleted(playlistID string)
}

// LibraryService is the driving port for playlist curation.
type LibraryService interface {
	CreatePlaylist(ctx context.Context, name string) (*domain.Playlist, error)
	RenamePlaylist(ctx context.Context, id, name string) error
	DeletePlaylist(ctx context.Context, id string) error
	ListPlaylists(ctx context.Context) []domain.Playlist
	GetPlaylist(ctx context.Context, id string) (*domain.Playlist, error)

	// AddVideo resolves rawURL through the registered providers and appends
	// the result to the playlist. Duplicates by provider video ID are allowed.
	AddVideo(ctx context.Context, playlistID, rawURL string) (*domain.VideoRecord, error)

	// RemoveVideo removes the video with the given library-assigned ID.
	// Removing an ID that is already gone is a no-op.
	RemoveVideo(ctx context.Context, playlistID, videoID string) error

	// ReorderVideos replaces the playlist's sequence with the given permutation
	// of its current video IDs.
	ReorderVideos(ctx context.Context, playlistID string, videoIDs []string) error
}

// PlayerService is the driving port for the playback queue.
type PlayerService interface {
	Play(ctx context.Context, playlistID string, startIndex int) (domain.PlaybackState, error)
	Pause(ctx context.Context) domain.PlaybackState
	Resume(ctx context.Context) domain.PlaybackState
	Next(ctx context.Context) domain.PlaybackState
	Previous(ctx context.Context) domain.PlaybackState

	// VideoEnded is invoked by the playback surface on natural completion of
	// the current video. Unlike Next, ending the last video stops playback.
	VideoEnded(ctx context.Context) domain.PlaybackState

	// JumpTo selects a queue entry explicitly and starts playing it.
	JumpTo(ctx context.Context, index int) (domain.PlaybackState, error)

	// Shuffle randomizes the active playlist's order and restarts the queue
	// from the top.
	Shuffle(ctx context.Context) (domain.PlaybackState, error)

	State(ctx context.Context) domain.PlaybackState
}
