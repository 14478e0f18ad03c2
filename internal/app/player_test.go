package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicklist/quicklist-api/internal/domain"
)

// -- Helpers -----------------------------------------------------------------

// reversePerm is a deterministic stand-in for the shuffle randomness.
func reversePerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = n - 1 - i
	}
	return perm
}

// newTestPlayer wires a real library and player the way main does, with a
// three-video playlist ready to play.
func newTestPlayer(t *testing.T, shuffle ShuffleFunc) (*Library, *Player, domain.Playlist) {
	t.Helper()
	library, _ := newTestLibrary(t)
	player := NewPlayer(library, nil, shuffle)
	library.SetObserver(player)

	pl, err := library.CreatePlaylist(context.Background(), "Queue")
	require.NoError(t, err)
	addVideos(t, library, pl.ID, "a", "b", "c")

	got, err := library.GetPlaylist(context.Background(), pl.ID)
	require.NoError(t, err)
	return library, player, *got
}

func videoIDs(videos []domain.VideoRecord) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.VideoID
	}
	return out
}

// -- Tests -------------------------------------------------------------------

func TestPlay(t *testing.T) {
	_, player, pl := newTestPlayer(t, nil)

	st, err := player.Play(context.Background(), pl.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, pl.ID, st.PlaylistID)
	assert.Equal(t, 0, st.CurrentIndex)
	assert.Equal(t, domain.StatusPlaying, st.Status)
}

func TestPlay_ClampsStartIndex(t *testing.T) {
	_, player, pl := newTestPlayer(t, nil)

	st, err := player.Play(context.Background(), pl.ID, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, st.CurrentIndex)

	st, err = player.Play(context.Background(), pl.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, st.CurrentIndex)
}

func TestPlay_UnknownPlaylist(t *testing.T) {
	_, player, _ := newTestPlayer(t, nil)

	_, err := player.Play(context.Background(), "nope", 0)
	assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
}

func TestPlay_EmptyPlaylist(t *testing.T) {
	library, player, _ := newTestPlayer(t, nil)
	empty, err := library.CreatePlaylist(context.Background(), "Empty")
	require.NoError(t, err)

	_, err = player.Play(context.Background(), empty.ID, 0)
	assert.ErrorIs(t, err, domain.ErrEmptyPlaylist)
}

func TestVideoEnded_AdvancesThenStops(t *testing.T) {
	_, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 0)
	require.NoError(t, err)

	st := player.VideoEnded(context.Background())
	assert.Equal(t, 1, st.CurrentIndex)
	assert.True(t, st.IsPlaying())

	st = player.VideoEnded(context.Background())
	assert.Equal(t, 2, st.CurrentIndex)
	assert.True(t, st.IsPlaying())

	// Natural completion of the last video stops playback; no wraparound.
	st = player.VideoEnded(context.Background())
	assert.Equal(t, 2, st.CurrentIndex)
	assert.False(t, st.IsPlaying())
	assert.Equal(t, domain.StatusIdle, st.Status)
}

func TestNext_NoopAtLastIndex(t *testing.T) {
	_, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 2)
	require.NoError(t, err)

	// Explicit skip on the final video neither wraps nor stops, unlike
	// natural completion.
	st := player.Next(context.Background())
	assert.Equal(t, 2, st.CurrentIndex)
	assert.True(t, st.IsPlaying())
}

func TestNext_Advances(t *testing.T) {
	_, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 0)
	require.NoError(t, err)

	st := player.Next(context.Background())
	assert.Equal(t, 1, st.CurrentIndex)
	assert.True(t, st.IsPlaying())
}

func TestPrevious(t *testing.T) {
	_, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 1)
	require.NoError(t, err)

	st := player.Previous(context.Background())
	assert.Equal(t, 0, st.CurrentIndex)

	// No-op at the first entry.
	st = player.Previous(context.Background())
	assert.Equal(t, 0, st.CurrentIndex)
}

func TestPauseResume(t *testing.T) {
	_, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 1)
	require.NoError(t, err)

	st := player.Pause(context.Background())
	assert.Equal(t, domain.StatusPaused, st.Status)
	assert.Equal(t, 1, st.CurrentIndex)

	st = player.Resume(context.Background())
	assert.Equal(t, domain.StatusPlaying, st.Status)
	assert.Equal(t, 1, st.CurrentIndex)
}

func TestPauseResume_NoopWhenIdle(t *testing.T) {
	_, player, _ := newTestPlayer(t, nil)

	st := player.Pause(context.Background())
	assert.Equal(t, domain.StatusIdle, st.Status)

	st = player.Resume(context.Background())
	assert.Equal(t, domain.StatusIdle, st.Status)
}

func TestJumpTo(t *testing.T) {
	_, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 0)
	require.NoError(t, err)

	st, err := player.JumpTo(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, st.CurrentIndex)
	assert.True(t, st.IsPlaying())
}

func TestJumpTo_OutOfRange(t *testing.T) {
	_, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 0)
	require.NoError(t, err)

	_, err = player.JumpTo(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	_, err = player.JumpTo(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	// State is untouched by the rejected jump.
	st := player.State(context.Background())
	assert.Equal(t, 0, st.CurrentIndex)
}

func TestJumpTo_NoActivePlaylist(t *testing.T) {
	_, player, _ := newTestPlayer(t, nil)

	_, err := player.JumpTo(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrNoActivePlaylist)
}

func TestShuffle_ResetsIndexAndPreservesVideos(t *testing.T) {
	library, player, pl := newTestPlayer(t, reversePerm)
	_, err := player.Play(context.Background(), pl.ID, 1)
	require.NoError(t, err)

	st, err := player.Shuffle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, st.CurrentIndex)
	assert.True(t, st.IsPlaying())

	got, err := library.GetPlaylist(context.Background(), pl.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, videoIDs(got.Videos))
	assert.ElementsMatch(t, videoIDs(pl.Videos), videoIDs(got.Videos))
}

func TestShuffle_NoActivePlaylist(t *testing.T) {
	_, player, _ := newTestPlayer(t, reversePerm)

	_, err := player.Shuffle(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActivePlaylist)
}

func TestRemoveCurrentVideo_PointsAtFollowingVideo(t *testing.T) {
	library, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 1)
	require.NoError(t, err)

	// Remove B of [A, B, C] while B is playing: the index holds and now
	// addresses C. Playback is not reset.
	require.NoError(t, library.RemoveVideo(context.Background(), pl.ID, pl.Videos[1].ID))

	st := player.State(context.Background())
	assert.Equal(t, 1, st.CurrentIndex)
	assert.True(t, st.IsPlaying())

	got, err := library.GetPlaylist(context.Background(), pl.ID)
	require.NoError(t, err)
	assert.Equal(t, "c", got.Videos[st.CurrentIndex].VideoID)
}

func TestRemovePredecessor_ShiftsIndexDown(t *testing.T) {
	library, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 2)
	require.NoError(t, err)

	require.NoError(t, library.RemoveVideo(context.Background(), pl.ID, pl.Videos[0].ID))

	st := player.State(context.Background())
	assert.Equal(t, 1, st.CurrentIndex)
	assert.True(t, st.IsPlaying())

	got, err := library.GetPlaylist(context.Background(), pl.ID)
	require.NoError(t, err)
	assert.Equal(t, "c", got.Videos[st.CurrentIndex].VideoID)
}

func TestRemoveLastVideoWhileCurrent_ClampsToEnd(t *testing.T) {
	library, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 2)
	require.NoError(t, err)

	require.NoError(t, library.RemoveVideo(context.Background(), pl.ID, pl.Videos[2].ID))

	st := player.State(context.Background())
	assert.Equal(t, 1, st.CurrentIndex)
}

func TestRemoveSuccessor_LeavesIndexAlone(t *testing.T) {
	library, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 0)
	require.NoError(t, err)

	require.NoError(t, library.RemoveVideo(context.Background(), pl.ID, pl.Videos[2].ID))

	st := player.State(context.Background())
	assert.Equal(t, 0, st.CurrentIndex)
	assert.True(t, st.IsPlaying())
}

func TestEmptyingActivePlaylist_ResetsPlayback(t *testing.T) {
	library, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 0)
	require.NoError(t, err)

	for _, v := range pl.Videos {
		require.NoError(t, library.RemoveVideo(context.Background(), pl.ID, v.ID))
	}

	st := player.State(context.Background())
	assert.Equal(t, domain.StatusIdle, st.Status)
	assert.Empty(t, st.PlaylistID)
	assert.Equal(t, 0, st.CurrentIndex)
}

func TestDeleteActivePlaylist_ResetsPlayback(t *testing.T) {
	library, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 1)
	require.NoError(t, err)

	require.NoError(t, library.DeletePlaylist(context.Background(), pl.ID))

	st := player.State(context.Background())
	assert.Equal(t, domain.StatusIdle, st.Status)
	assert.Empty(t, st.PlaylistID)
	assert.False(t, st.IsPlaying())
}

func TestDeleteOtherPlaylist_LeavesPlaybackAlone(t *testing.T) {
	library, player, pl := newTestPlayer(t, nil)
	other, err := library.CreatePlaylist(context.Background(), "Other")
	require.NoError(t, err)

	_, err = player.Play(context.Background(), pl.ID, 1)
	require.NoError(t, err)

	require.NoError(t, library.DeletePlaylist(context.Background(), other.ID))

	st := player.State(context.Background())
	assert.Equal(t, pl.ID, st.PlaylistID)
	assert.Equal(t, 1, st.CurrentIndex)
	assert.True(t, st.IsPlaying())
}

func TestExternalReorder_TracksCurrentVideo(t *testing.T) {
	library, player, pl := newTestPlayer(t, nil)
	_, err := player.Play(context.Background(), pl.ID, 0)
	require.NoError(t, err)

	// A drag-reorder from a client moves the playing video A to the end; the
	// queue must follow it rather than jump to an unrelated video.
	require.NoError(t, library.ReorderVideos(context.Background(), pl.ID, []string{
		pl.Videos[1].ID, pl.Videos[2].ID, pl.Videos[0].ID,
	}))

	st := player.State(context.Background())
	assert.Equal(t, 2, st.CurrentIndex)
	assert.True(t, st.IsPlaying())

	got, err := library.GetPlaylist(context.Background(), pl.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Videos[st.CurrentIndex].VideoID)
}
