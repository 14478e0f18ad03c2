package app

import (
	"context"
	"math/rand"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/quicklist/quicklist-api/internal/domain"
	"github.com/quicklist/quicklist-api/internal/ports"
)

// ShuffleFunc produces a permutation of [0, n). Injectable so tests can pin
// the order; the default is rand.Perm.
type ShuffleFunc func(n int) []int

// Player implements ports.PlayerService: a state machine over
// {idle, playing, paused} bound to at most one playlist, with the current
// queue index cross-cutting all states. It never owns playlist contents; it
// reads snapshots from the library and is notified of mutations through the
// ports.PlaybackObserver callbacks.
type Player struct {
	library ports.LibraryService
	events  ports.EventPublisher
	shuffle ShuffleFunc

	mu    sync.Mutex
	state domain.PlaybackState
}

// NewPlayer creates an idle player reading from the given library. A nil
// shuffle falls back to rand.Perm.
func NewPlayer(library ports.LibraryService, events ports.EventPublisher, shuffle ShuffleFunc) *Player {
	if shuffle == nil {
		shuffle = rand.Perm
	}
	return &Player{
		library: library,
		events:  events,
		shuffle: shuffle,
		state:   domain.PlaybackState{Status: domain.StatusIdle},
	}
}

func (p *Player) Play(ctx context.Context, playlistID string, startIndex int) (domain.PlaybackState, error) {
	pl, err := p.library.GetPlaylist(ctx, playlistID)
	if err != nil {
		return p.State(ctx), err
	}
	if len(pl.Videos) == 0 {
		return p.State(ctx), domain.ErrEmptyPlaylist
	}

	p.mu.Lock()
	p.state = domain.PlaybackState{
		PlaylistID:   playlistID,
		CurrentIndex: clamp(startIndex, 0, len(pl.Videos)-1),
		Status:       domain.StatusPlaying,
	}
	st := p.state
	p.mu.Unlock()

	log.Infof("[player] playing playlist %s from index %d", playlistID, st.CurrentIndex)
	p.publish(ctx, st)
	return st, nil
}

func (p *Player) Pause(ctx context.Context) domain.PlaybackState {
	p.mu.Lock()
	changed := p.state.Status == domain.StatusPlaying
	if changed {
		p.state.Status = domain.StatusPaused
	}
	st := p.state
	p.mu.Unlock()

	if changed {
		p.publish(ctx, st)
	}
	return st
}

func (p *Player) Resume(ctx context.Context) domain.PlaybackState {
	p.mu.Lock()
	changed := p.state.Status == domain.StatusPaused
	if changed {
		p.state.Status = domain.StatusPlaying
	}
	st := p.state
	p.mu.Unlock()

	if changed {
		p.publish(ctx, st)
	}
	return st
}

// Next advances to the next queue entry. At the last entry it is a no-op:
// pressing skip on the final video neither wraps nor stops.
func (p *Player) Next(ctx context.Context) domain.PlaybackState {
	return p.advance(ctx, false)
}

// VideoEnded advances like Next, except that finishing the last video stops
// playback instead of staying on it.
func (p *Player) VideoEnded(ctx context.Context) domain.PlaybackState {
	return p.advance(ctx, true)
}

func (p *Player) advance(ctx context.Context, stopAtEnd bool) domain.PlaybackState {
	p.mu.Lock()
	if p.state.PlaylistID == "" {
		st := p.state
		p.mu.Unlock()
		return st
	}
	playlistID := p.state.PlaylistID
	p.mu.Unlock()

	pl, err := p.library.GetPlaylist(ctx, playlistID)
	if err != nil {
		// The playlist vanished between the delete notification and now;
		// treat it the same as a delete.
		return p.resetAndPublish(ctx)
	}

	p.mu.Lock()
	changed := false
	if p.state.CurrentIndex < len(pl.Videos)-1 {
		p.state.CurrentIndex++
		changed = true
	} else if stopAtEnd && p.state.Status == domain.StatusPlaying {
		// Natural completion of the final video: keep the position, stop
		// advancing.
		p.state.Status = domain.StatusIdle
		changed = true
	}
	st := p.state
	p.mu.Unlock()

	if changed {
		p.publish(ctx, st)
	}
	return st
}

// Previous steps back one queue entry; at the first entry it is a no-op.
func (p *Player) Previous(ctx context.Context) domain.PlaybackState {
	p.mu.Lock()
	changed := p.state.PlaylistID != "" && p.state.CurrentIndex > 0
	if changed {
		p.state.CurrentIndex--
	}
	st := p.state
	p.mu.Unlock()

	if changed {
		p.publish(ctx, st)
	}
	return st
}

func (p *Player) JumpTo(ctx context.Context, index int) (domain.PlaybackState, error) {
	p.mu.Lock()
	playlistID := p.state.PlaylistID
	p.mu.Unlock()
	if playlistID == "" {
		return p.State(ctx), domain.ErrNoActivePlaylist
	}

	pl, err := p.library.GetPlaylist(ctx, playlistID)
	if err != nil {
		return p.resetAndPublish(ctx), err
	}
	if index < 0 || index >= len(pl.Videos) {
		return p.State(ctx), domain.ErrIndexOutOfRange
	}

	p.mu.Lock()
	p.state.CurrentIndex = index
	p.state.Status = domain.StatusPlaying
	st := p.state
	p.mu.Unlock()

	p.publish(ctx, st)
	return st, nil
}

// Shuffle reorders the active playlist through the library and restarts the
// queue from the top. The multiset of videos is unchanged; only their order.
func (p *Player) Shuffle(ctx context.Context) (domain.PlaybackState, error) {
	p.mu.Lock()
	playlistID := p.state.PlaylistID
	p.mu.Unlock()
	if playlistID == "" {
		return p.State(ctx), domain.ErrNoActivePlaylist
	}

	pl, err := p.library.GetPlaylist(ctx, playlistID)
	if err != nil {
		return p.resetAndPublish(ctx), err
	}

	perm := p.shuffle(len(pl.Videos))
	ids := make([]string, len(perm))
	for i, j := range perm {
		ids[i] = pl.Videos[j].ID
	}
	if err := p.library.ReorderVideos(ctx, playlistID, ids); err != nil {
		return p.State(ctx), err
	}

	// The reorder notification above re-tracked the old current video to its
	// shuffled position; a shuffle restarts the queue instead.
	p.mu.Lock()
	p.state.CurrentIndex = 0
	st := p.state
	p.mu.Unlock()

	log.Infof("[player] shuffled playlist %s", playlistID)
	p.publish(ctx, st)
	return st, nil
}

func (p *Player) State(ctx context.Context) domain.PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// -- ports.PlaybackObserver --------------------------------------------------

// VideoRemoved reindexes the queue after a removal from the active playlist.
// A removed predecessor shifts the index down; removing the current video
// leaves the index addressing the video that followed it, clamped to the new
// end of the queue. An emptied playlist resets playback.
func (p *Player) VideoRemoved(playlistID string, index, remaining int) {
	p.mu.Lock()
	if p.state.PlaylistID != playlistID {
		p.mu.Unlock()
		return
	}
	if remaining == 0 {
		p.state = domain.PlaybackState{Status: domain.StatusIdle}
		st := p.state
		p.mu.Unlock()
		p.publish(context.Background(), st)
		return
	}
	changed := false
	if index < p.state.CurrentIndex {
		p.state.CurrentIndex--
		changed = true
	} else if p.state.CurrentIndex > remaining-1 {
		p.state.CurrentIndex = remaining - 1
		changed = true
	}
	st := p.state
	p.mu.Unlock()

	if changed {
		p.publish(context.Background(), st)
	}
}

// VideosReordered keeps the queue pointing at the same video after an
// external reorder by tracking its ID to the new position, falling back to
// clamping when the video is gone from the new sequence.
func (p *Player) VideosReordered(playlistID string, before, after []domain.VideoRecord) {
	p.mu.Lock()
	if p.state.PlaylistID != playlistID {
		p.mu.Unlock()
		return
	}
	if len(after) == 0 {
		p.state = domain.PlaybackState{Status: domain.StatusIdle}
		st := p.state
		p.mu.Unlock()
		p.publish(context.Background(), st)
		return
	}

	next := clamp(p.state.CurrentIndex, 0, len(after)-1)
	if p.state.CurrentIndex < len(before) {
		currentID := before[p.state.CurrentIndex].ID
		for i := range after {
			if after[i].ID == currentID {
				next = i
				break
			}
		}
	}
	changed := next != p.state.CurrentIndex
	p.state.CurrentIndex = next
	st := p.state
	p.mu.Unlock()

	if changed {
		p.publish(context.Background(), st)
	}
}

// PlaylistDeleted resets playback when the active playlist is destroyed.
func (p *Player) PlaylistDeleted(playlistID string) {
	p.mu.Lock()
	if p.state.PlaylistID != playlistID {
		p.mu.Unlock()
		return
	}
	p.state = domain.PlaybackState{Status: domain.StatusIdle}
	st := p.state
	p.mu.Unlock()

	log.Infof("[player] active playlist %s deleted, playback stopped", playlistID)
	p.publish(context.Background(), st)
}

// -- internals ---------------------------------------------------------------

func (p *Player) resetAndPublish(ctx context.Context) domain.PlaybackState {
	p.mu.Lock()
	p.state = domain.PlaybackState{Status: domain.StatusIdle}
	st := p.state
	p.mu.Unlock()
	p.publish(ctx, st)
	return st
}

func (p *Player) publish(ctx context.Context, st domain.PlaybackState) {
	if p.events == nil {
		return
	}
	p.events.Publish(ctx, "player.state_changed", st)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
