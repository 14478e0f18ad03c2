package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver

	"github.com/quicklist/quicklist-api/internal/domain"
)

// Repository implements ports.PlaylistRepository on a local SQLite file.
// The library saves the full playlist set after every mutation, so Save is a
// wholesale transactional replace; Load rebuilds the set in display order.
type Repository struct {
	db *sql.DB
}

// New opens (or creates) the database file at dbPath and ensures the schema
// exists. The parent directory must exist and be writable.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	r := &Repository{db: db}
	if err := r.initialize(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return r, nil
}

// Close releases the underlying database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) initialize(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS playlists (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		position   INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS videos (
		id               TEXT NOT NULL,
		playlist_id      TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
		provider         TEXT NOT NULL,
		video_id         TEXT NOT NULL,
		title            TEXT NOT NULL,
		thumbnail_url    TEXT NOT NULL,
		duration_seconds INTEGER NOT NULL DEFAULT 0,
		position         INTEGER NOT NULL,
		added_at         TIMESTAMP NOT NULL,
		PRIMARY KEY (playlist_id, id)
	);

	CREATE INDEX IF NOT EXISTS idx_videos_playlist ON videos(playlist_id, position);
	`
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *Repository) Load(ctx context.Context) ([]domain.Playlist, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM playlists
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []domain.Playlist
	index := make(map[string]int)
	for rows.Next() {
		var pl domain.Playlist
		if err := rows.Scan(&pl.ID, &pl.Name, &pl.CreatedAt, &pl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		pl.Videos = []domain.VideoRecord{}
		index[pl.ID] = len(playlists)
		playlists = append(playlists, pl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}

	vrows, err := r.db.QueryContext(ctx, `
		SELECT id, playlist_id, provider, video_id, title, thumbnail_url, duration_seconds, added_at
		FROM videos
		ORDER BY playlist_id, position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query videos: %w", err)
	}
	defer vrows.Close()

	for vrows.Next() {
		var v domain.VideoRecord
		var playlistID string
		if err := vrows.Scan(&v.ID, &playlistID, &v.Provider, &v.VideoID, &v.Title, &v.ThumbnailURL, &v.DurationSeconds, &v.AddedAt); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		if i, ok := index[playlistID]; ok {
			playlists[i].Videos = append(playlists[i].Videos, v)
		}
	}
	if err := vrows.Err(); err != nil {
		return nil, fmt.Errorf("iterate videos: %w", err)
	}
	return playlists, nil
}

func (r *Repository) Save(ctx context.Context, playlists []domain.Playlist) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM videos`); err != nil {
		return fmt.Errorf("clear videos: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM playlists`); err != nil {
		return fmt.Errorf("clear playlists: %w", err)
	}

	for pos, pl := range playlists {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO playlists (id, name, position, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, pl.ID, pl.Name, pos, pl.CreatedAt, pl.UpdatedAt); err != nil {
			return fmt.Errorf("insert playlist %s: %w", pl.ID, err)
		}
		for vpos, v := range pl.Videos {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO videos (id, playlist_id, provider, video_id, title, thumbnail_url, duration_seconds, position, added_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, v.ID, pl.ID, v.Provider, v.VideoID, v.Title, v.ThumbnailURL, v.DurationSeconds, vpos, v.AddedAt); err != nil {
				return fmt.Errorf("insert video %s: %w", v.ID, err)
			}
		}
	}
	return tx.Commit()
}
