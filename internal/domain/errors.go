package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the library and player. Callers distinguish them with
// errors.Is; the HTTP adapter maps them to status codes.
var (
	// ErrPlaylistNotFound means an operation referenced a playlist ID that no
	// longer exists. Expected under racing UI edits, not a bug.
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrEmptyPlaylist means playback was requested on a playlist with no videos.
	ErrEmptyPlaylist = errors.New("playlist has no videos")

	// ErrIndexOutOfRange means an explicit queue selection was outside the
	// playlist bounds. Indicates a caller bug and is surfaced loudly.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoActivePlaylist means a player command arrived while nothing is bound
	// to playback.
	ErrNoActivePlaylist = errors.New("no active playlist")
)

// ValidationError reports invalid user input, such as a blank playlist name
// or an unparseable video URL.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ResolutionError reports that an external metadata lookup failed. The URL was
// well-formed; the provider could not be reached or rejected the request.
type ResolutionError struct {
	Provider string
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: resolve video: %v", e.Provider, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
