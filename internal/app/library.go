package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/quicklist/quicklist-api/internal/adapters/resolver"
	"github.com/quicklist/quicklist-api/internal/domain"
	"github.com/quicklist/quicklist-api/internal/ports"
)

// Library implements ports.LibraryService. It owns the playlist set and is the
// single writer for playlist contents; the player only ever observes.
type Library struct {
	resolvers *resolver.Registry
	repo      ports.PlaylistRepository
	events    ports.EventPublisher

	mu        sync.RWMutex
	playlists []*domain.Playlist
	observer  ports.PlaybackObserver
	idSeq     uint64
}

// NewLibrary creates a library backed by the given resolver registry and
// repository. Previously saved playlists are loaded eagerly; a load failure is
// logged and the library starts empty rather than refusing to serve.
func NewLibrary(ctx context.Context, resolvers *resolver.Registry, repo ports.PlaylistRepository, events ports.EventPublisher) *Library {
	l := &Library{
		resolvers: resolvers,
		repo:      repo,
		events:    events,
	}

	saved, err := repo.Load(ctx)
	if err != nil {
		log.Errorf("[library] load playlists: %v", err)
		return l
	}
	for i := range saved {
		pl := saved[i]
		l.playlists = append(l.playlists, &pl)
	}
	log.Infof("[library] loaded %d playlists", len(saved))
	return l
}

// SetObserver registers the playback observer notified after every structural
// mutation. Must be called during wiring, before the library serves requests.
func (l *Library) SetObserver(obs ports.PlaybackObserver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observer = obs
}

func (l *Library) CreatePlaylist(ctx context.Context, name string) (*domain.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Validationf("playlist name must not be empty")
	}

	l.mu.Lock()
	now := time.Now()
	pl := &domain.Playlist{
		ID:        l.nextIDLocked(now),
		Name:      name,
		Videos:    []domain.VideoRecord{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	l.playlists = append(l.playlists, pl)
	created := clonePlaylist(pl)
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	l.persist(ctx, snapshot)
	l.publish(ctx, "playlist.created", created)
	return &created, nil
}

func (l *Library) RenamePlaylist(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Validationf("playlist name must not be empty")
	}

	l.mu.Lock()
	pl := l.findLocked(id)
	if pl == nil {
		l.mu.Unlock()
		return domain.ErrPlaylistNotFound
	}
	pl.Name = name
	pl.UpdatedAt = time.Now()
	renamed := clonePlaylist(pl)
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	l.persist(ctx, snapshot)
	l.publish(ctx, "playlist.renamed", renamed)
	return nil
}

// DeletePlaylist removes the playlist. Deleting an unknown ID is a no-op: the
// UI may race a delete against a refresh, and that is not an error.
func (l *Library) DeletePlaylist(ctx context.Context, id string) error {
	l.mu.Lock()
	idx := -1
	for i, pl := range l.playlists {
		if pl.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return nil
	}
	l.playlists = append(l.playlists[:idx], l.playlists[idx+1:]...)
	obs := l.observer
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	if obs != nil {
		obs.PlaylistDeleted(id)
	}
	l.persist(ctx, snapshot)
	l.publish(ctx, "playlist.deleted", map[string]string{"id": id})
	return nil
}

func (l *Library) ListPlaylists(ctx context.Context) []domain.Playlist {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshotLocked()
}

func (l *Library) GetPlaylist(ctx context.Context, id string) (*domain.Playlist, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	pl := l.findLocked(id)
	if pl == nil {
		return nil, domain.ErrPlaylistNotFound
	}
	c := clonePlaylist(pl)
	return &c, nil
}

func (l *Library) AddVideo(ctx context.Context, playlistID, rawURL string) (*domain.VideoRecord, error) {
	if _, err := l.GetPlaylist(ctx, playlistID); err != nil {
		return nil, err
	}

	// Resolution happens outside the lock; it is the only slow path in the
	// library and may be cancelled by the caller going away.
	meta, err := l.resolvers.Resolve(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		// The caller abandoned the request while we were resolving; the
		// result must be discarded, not applied.
		return nil, ctx.Err()
	}

	l.mu.Lock()
	pl := l.findLocked(playlistID)
	if pl == nil {
		// Deleted while the lookup was in flight.
		l.mu.Unlock()
		return nil, domain.ErrPlaylistNotFound
	}
	now := time.Now()
	rec := domain.VideoRecord{
		ID:              l.nextIDLocked(now),
		Provider:        meta.Provider,
		VideoID:         meta.VideoID,
		Title:           meta.Title,
		ThumbnailURL:    meta.ThumbnailURL,
		DurationSeconds: meta.DurationSeconds,
		AddedAt:         now,
	}
	pl.Videos = append(pl.Videos, rec)
	pl.UpdatedAt = now
	changed := clonePlaylist(pl)
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	log.Infof("[library] added video %s (%s) to playlist %s", rec.VideoID, rec.Title, playlistID)
	l.persist(ctx, snapshot)
	l.publish(ctx, "playlist.changed", changed)
	return &rec, nil
}

func (l *Library) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	l.mu.Lock()
	pl := l.findLocked(playlistID)
	if pl == nil {
		l.mu.Unlock()
		return domain.ErrPlaylistNotFound
	}
	idx := -1
	for i := range pl.Videos {
		if pl.Videos[i].ID == videoID {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Already gone; racing removals are expected.
		l.mu.Unlock()
		return nil
	}
	pl.Videos = append(pl.Videos[:idx], pl.Videos[idx+1:]...)
	pl.UpdatedAt = time.Now()
	remaining := len(pl.Videos)
	obs := l.observer
	changed := clonePlaylist(pl)
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	if obs != nil {
		obs.VideoRemoved(playlistID, idx, remaining)
	}
	l.persist(ctx, snapshot)
	l.publish(ctx, "playlist.changed", changed)
	return nil
}

// ReorderVideos replaces the playlist's sequence with the permutation named by
// videoIDs. The IDs must be exactly the playlist's current video IDs.
func (l *Library) ReorderVideos(ctx context.Context, playlistID string, videoIDs []string) error {
	l.mu.Lock()
	pl := l.findLocked(playlistID)
	if pl == nil {
		l.mu.Unlock()
		return domain.ErrPlaylistNotFound
	}

	if len(videoIDs) != len(pl.Videos) {
		l.mu.Unlock()
		return domain.Validationf("reorder must contain all %d videos, got %d", len(pl.Videos), len(videoIDs))
	}
	byID := make(map[string]domain.VideoRecord, len(pl.Videos))
	for _, v := range pl.Videos {
		byID[v.ID] = v
	}
	reordered := make([]domain.VideoRecord, 0, len(videoIDs))
	for _, id := range videoIDs {
		v, ok := byID[id]
		if !ok {
			l.mu.Unlock()
			return domain.Validationf("unknown or duplicate video id %q in reorder", id)
		}
		delete(byID, id)
		reordered = append(reordered, v)
	}

	before := cloneVideos(pl.Videos)
	pl.Videos = reordered
	pl.UpdatedAt = time.Now()
	after := cloneVideos(pl.Videos)
	obs := l.observer
	changed := clonePlaylist(pl)
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	if obs != nil {
		obs.VideosReordered(playlistID, before, after)
	}
	l.persist(ctx, snapshot)
	l.publish(ctx, "playlist.changed", changed)
	return nil
}

// -- internals ---------------------------------------------------------------

func (l *Library) findLocked(id string) *domain.Playlist {
	for _, pl := range l.playlists {
		if pl.ID == id {
			return pl
		}
	}
	return nil
}

// nextIDLocked issues an ID that stays unique under rapid calls within the
// same clock tick.
func (l *Library) nextIDLocked(now time.Time) string {
	l.idSeq++
	return fmt.Sprintf("%d-%d", now.UnixMilli(), l.idSeq)
}

func (l *Library) snapshotLocked() []domain.Playlist {
	out := make([]domain.Playlist, 0, len(l.playlists))
	for _, pl := range l.playlists {
		out = append(out, clonePlaylist(pl))
	}
	return out
}

// persist saves the full playlist set. Storage failures are logged and
// swallowed: the in-memory state stays authoritative.
func (l *Library) persist(ctx context.Context, snapshot []domain.Playlist) {
	if l.repo == nil {
		return
	}
	if err := l.repo.Save(ctx, snapshot); err != nil {
		log.Errorf("[library] save playlists: %v", err)
	}
}

func (l *Library) publish(ctx context.Context, eventType string, payload any) {
	if l.events == nil {
		return
	}
	l.events.Publish(ctx, eventType, payload)
}

func clonePlaylist(pl *domain.Playlist) domain.Playlist {
	c := *pl
	c.Videos = cloneVideos(pl.Videos)
	return c
}

func cloneVideos(videos []domain.VideoRecord) []domain.VideoRecord {
	out := make([]domain.VideoRecord, len(videos))
	copy(out, videos)
	return out
}
