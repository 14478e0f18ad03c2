package memory

import (
	"context"
	"sync"

	"github.com/quicklist/quicklist-api/internal/domain"
)

// Repository is an in-memory ports.PlaylistRepository. Used when no database
// path is configured and throughout the test suites.
type Repository struct {
	mu        sync.Mutex
	playlists []domain.Playlist
}

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{}
}

func (r *Repository) Load(ctx context.Context) ([]domain.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Playlist, len(r.playlists))
	copy(out, r.playlists)
	return out, nil
}

func (r *Repository) Save(ctx context.Context, playlists []domain.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playlists = make([]domain.Playlist, len(playlists))
	copy(r.playlists, playlists)
	return nil
}
