package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quicklist/quicklist-api/internal/domain"
	"github.com/quicklist/quicklist-api/internal/ports"
)

// Handler holds the HTTP handlers for the QuickList API.
type Handler struct {
	library ports.LibraryService
	player  ports.PlayerService
}

// NewHandler creates a new HTTP handler with the given library and player.
func NewHandler(library ports.LibraryService, player ports.PlayerService) *Handler {
	return &Handler{library: library, player: player}
}

// RegisterRoutes sets up all API routes on the given Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/playlists", h.ListPlaylists)
		api.POST("/playlists", h.CreatePlaylist)
		api.GET("/playlists/:id", h.GetPlaylist)
		api.PATCH("/playlists/:id", h.RenamePlaylist)
		api.DELETE("/playlists/:id", h.DeletePlaylist)

		api.POST("/playlists/:id/videos", h.AddVideo)
		api.PUT("/playlists/:id/videos", h.ReorderVideos)
		api.DELETE("/playlists/:id/videos/:videoId", h.RemoveVideo)

		api.GET("/player", h.PlayerState)
		api.POST("/player/play", h.Play)
		api.POST("/player/pause", h.Pause)
		api.POST("/player/resume", h.Resume)
		api.POST("/player/next", h.Next)
		api.POST("/player/previous", h.Previous)
		api.POST("/player/ended", h.VideoEnded)
		api.POST("/player/jump", h.JumpTo)
		api.POST("/player/shuffle", h.Shuffle)
	}
}

// Health returns a simple health check response.
//
//	@Summary		Health check
//	@Description	Returns the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// -- Playlists ----------------------------------------------------------------

type createPlaylistRequest struct {
	Name string `json:"name"`
}

type renamePlaylistRequest struct {
	Name string `json:"name"`
}

type reorderRequest struct {
	VideoIDs []string `json:"video_ids"`
}

type addVideoRequest struct {
	URL string `json:"url"`
}

// ListPlaylists returns all playlists in display order.
//
//	@Summary		List playlists
//	@Description	Returns every playlist with its videos in display order.
//	@Tags			playlists
//	@Produce		json
//	@Success		200	{array}	domain.Playlist
//	@Router			/api/v1/playlists [get]
func (h *Handler) ListPlaylists(c *gin.Context) {
	c.JSON(http.StatusOK, h.library.ListPlaylists(c.Request.Context()))
}

// CreatePlaylist creates a new, empty playlist.
//
//	@Summary		Create playlist
//	@Description	Creates an empty playlist with the given name.
//	@Tags			playlists
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createPlaylistRequest	true	"Playlist name"
//	@Success		201		{object}	domain.Playlist
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/v1/playlists [post]
func (h *Handler) CreatePlaylist(c *gin.Context) {
	var req createPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	pl, err := h.library.CreatePlaylist(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pl)
}

// GetPlaylist returns one playlist with its full video sequence.
//
//	@Summary		Get playlist
//	@Tags			playlists
//	@Produce		json
//	@Param			id	path		string	true	"Playlist ID"
//	@Success		200	{object}	domain.Playlist
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/playlists/{id} [get]
func (h *Handler) GetPlaylist(c *gin.Context) {
	pl, err := h.library.GetPlaylist(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pl)
}

// RenamePlaylist changes a playlist's name.
//
//	@Summary		Rename playlist
//	@Tags			playlists
//	@Accept			json
//	@Param			id		path	string					true	"Playlist ID"
//	@Param			request	body	renamePlaylistRequest	true	"New name"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/playlists/{id} [patch]
func (h *Handler) RenamePlaylist(c *gin.Context) {
	var req renamePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.library.RenamePlaylist(c.Request.Context(), c.Param("id"), req.Name); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeletePlaylist removes a playlist. Deleting an ID that is already gone
// still returns 204: the UI may race deletes against refreshes.
//
//	@Summary		Delete playlist
//	@Tags			playlists
//	@Param			id	path	string	true	"Playlist ID"
//	@Success		204
//	@Router			/api/v1/playlists/{id} [delete]
func (h *Handler) DeletePlaylist(c *gin.Context) {
	if err := h.library.DeletePlaylist(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddVideo resolves a pasted video URL and appends it to the playlist.
//
//	@Summary		Add video
//	@Description	Resolves a video URL (YouTube watch, youtu.be, embed, shorts, or bare ID)
//	@Description	and appends the resolved video to the end of the playlist.
//	@Tags			videos
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Playlist ID"
//	@Param			request	body		addVideoRequest	true	"Video URL"
//	@Success		201		{object}	domain.VideoRecord
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/v1/playlists/{id}/videos [post]
func (h *Handler) AddVideo(c *gin.Context) {
	var req addVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	rec, err := h.library.AddVideo(c.Request.Context(), c.Param("id"), req.URL)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// ReorderVideos replaces a playlist's video order with the given permutation.
//
//	@Summary		Reorder videos
//	@Description	Replaces the playlist's sequence with the given permutation of its video IDs,
//	@Description	e.g. after a drag-and-drop reorder in a client.
//	@Tags			videos
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Playlist ID"
//	@Param			request	body		reorderRequest	true	"Full permutation of the playlist's video IDs"
//	@Success		200		{object}	domain.Playlist
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/v1/playlists/{id}/videos [put]
func (h *Handler) ReorderVideos(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	id := c.Param("id")
	if err := h.library.ReorderVideos(c.Request.Context(), id, req.VideoIDs); err != nil {
		writeError(c, err)
		return
	}
	pl, err := h.library.GetPlaylist(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pl)
}

// RemoveVideo removes one video from a playlist. Removing a video that is
// already gone returns 204, as does a vanished playlist.
//
//	@Summary		Remove video
//	@Tags			videos
//	@Param			id		path	string	true	"Playlist ID"
//	@Param			videoId	path	string	true	"Video record ID"
//	@Success		204
//	@Router			/api/v1/playlists/{id}/videos/{videoId} [delete]
func (h *Handler) RemoveVideo(c *gin.Context) {
	err := h.library.RemoveVideo(c.Request.Context(), c.Param("id"), c.Param("videoId"))
	if err != nil && !errors.Is(err, domain.ErrPlaylistNotFound) {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// -- Player -------------------------------------------------------------------

type playRequest struct {
	PlaylistID string `json:"playlist_id"`
	Index      int    `json:"index"`
}

type jumpRequest struct {
	Index int `json:"index"`
}

// PlayerState returns the current playback state.
//
//	@Summary		Playback state
//	@Tags			player
//	@Produce		json
//	@Success		200	{object}	domain.PlaybackState
//	@Router			/api/v1/player [get]
func (h *Handler) PlayerState(c *gin.Context) {
	c.JSON(http.StatusOK, h.player.State(c.Request.Context()))
}

// Play binds a playlist to playback and starts it at the given index.
//
//	@Summary		Start playback
//	@Description	Binds the playlist to playback and starts at the given index (clamped).
//	@Tags			player
//	@Accept			json
//	@Produce		json
//	@Param			request	body		playRequest	true	"Playlist and start index"
//	@Success		200		{object}	domain.PlaybackState
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/api/v1/player/play [post]
func (h *Handler) Play(c *gin.Context) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	st, err := h.player.Play(c.Request.Context(), req.PlaylistID, req.Index)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// Pause suspends playback without losing the queue position.
//
//	@Summary	Pause playback
//	@Tags		player
//	@Produce	json
//	@Success	200	{object}	domain.PlaybackState
//	@Router		/api/v1/player/pause [post]
func (h *Handler) Pause(c *gin.Context) {
	c.JSON(http.StatusOK, h.player.Pause(c.Request.Context()))
}

// Resume continues paused playback.
//
//	@Summary	Resume playback
//	@Tags		player
//	@Produce	json
//	@Success	200	{object}	domain.PlaybackState
//	@Router		/api/v1/player/resume [post]
func (h *Handler) Resume(c *gin.Context) {
	c.JSON(http.StatusOK, h.player.Resume(c.Request.Context()))
}

// Next skips to the next video; a no-op on the last one.
//
//	@Summary	Skip to next video
//	@Tags		player
//	@Produce	json
//	@Success	200	{object}	domain.PlaybackState
//	@Router		/api/v1/player/next [post]
func (h *Handler) Next(c *gin.Context) {
	c.JSON(http.StatusOK, h.player.Next(c.Request.Context()))
}

// Previous steps back to the previous video; a no-op on the first one.
//
//	@Summary	Skip to previous video
//	@Tags		player
//	@Produce	json
//	@Success	200	{object}	domain.PlaybackState
//	@Router		/api/v1/player/previous [post]
func (h *Handler) Previous(c *gin.Context) {
	c.JSON(http.StatusOK, h.player.Previous(c.Request.Context()))
}

// VideoEnded reports natural completion of the current video. The playback
// surface calls this; finishing the last video stops playback.
//
//	@Summary	Report video completion
//	@Tags		player
//	@Produce	json
//	@Success	200	{object}	domain.PlaybackState
//	@Router		/api/v1/player/ended [post]
func (h *Handler) VideoEnded(c *gin.Context) {
	c.JSON(http.StatusOK, h.player.VideoEnded(c.Request.Context()))
}

// JumpTo selects a queue entry by index and plays it.
//
//	@Summary		Jump to queue entry
//	@Tags			player
//	@Accept			json
//	@Produce		json
//	@Param			request	body		jumpRequest	true	"Queue index"
//	@Success		200		{object}	domain.PlaybackState
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/v1/player/jump [post]
func (h *Handler) JumpTo(c *gin.Context) {
	var req jumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	st, err := h.player.JumpTo(c.Request.Context(), req.Index)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// Shuffle randomizes the active playlist and restarts its queue.
//
//	@Summary	Shuffle active playlist
//	@Tags		player
//	@Produce	json
//	@Success	200	{object}	domain.PlaybackState
//	@Failure	409	{object}	ErrorResponse
//	@Router		/api/v1/player/shuffle [post]
func (h *Handler) Shuffle(c *gin.Context) {
	st, err := h.player.Shuffle(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// -- Errors -------------------------------------------------------------------

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "bad_request",
		Message: msg,
	})
}

// writeError maps domain errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	var rerr *domain.ResolutionError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: verr.Reason})
	case errors.Is(err, domain.ErrPlaylistNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyPlaylist):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "empty_playlist", Message: err.Error()})
	case errors.Is(err, domain.ErrNoActivePlaylist):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "no_active_playlist", Message: err.Error()})
	case errors.Is(err, domain.ErrIndexOutOfRange):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "index_out_of_range", Message: err.Error()})
	case errors.As(err, &rerr):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "resolution_failed", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal_error", Message: err.Error()})
	}
}
