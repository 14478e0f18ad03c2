package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/quicklist/quicklist-api/internal/domain"
)

const (
	providerName = "youtube"
	apiBaseURL   = "https://www.googleapis.com/youtube/v3"
	oembedURL    = "https://www.youtube.com/oembed"
)

// Accepted URL shapes: watch?v=, youtu.be/, embed/, shorts/, or a bare video ID.
var (
	urlPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([^&\n?#/]+)`),
		regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
	}
	bareIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// Resolver implements ports.VideoResolver for YouTube. With an API key it
// uses the Data API v3 and returns full metadata including duration; without
// one it falls back to the keyless oEmbed endpoint, which has no duration.
type Resolver struct {
	client *http.Client
	apiKey string
}

// NewResolver creates a YouTube resolver with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewResolver(client *http.Client, apiKey string) *Resolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &Resolver{client: client, apiKey: apiKey}
}

func (r *Resolver) Name() string {
	return providerName
}

// ExtractVideoID pulls the 11-character video ID out of a pasted URL.
// Returns a domain.ValidationError when the URL is not a YouTube video link.
func ExtractVideoID(rawURL string) (string, error) {
	for _, pattern := range urlPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}
	if bareIDPattern.MatchString(rawURL) {
		return rawURL, nil
	}
	return "", domain.Validationf("not a YouTube video URL: %q", rawURL)
}

// Thumbnail returns the stable thumbnail URL for a video ID.
func Thumbnail(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/hqdefault.jpg"
}

// -- API response types (internal) ------------------------------------------

type videoListResponse struct {
	Items []videoResource `json:"items"`
}

type videoResource struct {
	ID             string       `json:"id"`
	Snippet        videoSnippet `json:"snippet"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
}

type videoSnippet struct {
	Title      string `json:"title"`
	Thumbnails struct {
		High struct {
			URL string `json:"url"`
		} `json:"high"`
	} `json:"thumbnails"`
}

type oembedResponse struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// -- VideoResolver implementation --------------------------------------------

func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*domain.VideoMetadata, error) {
	videoID, err := ExtractVideoID(rawURL)
	if err != nil {
		return nil, err
	}
	if r.apiKey != "" {
		return r.resolveDataAPI(ctx, videoID)
	}
	return r.resolveOEmbed(ctx, videoID)
}

func (r *Resolver) resolveDataAPI(ctx context.Context, videoID string) (*domain.VideoMetadata, error) {
	endpoint := fmt.Sprintf(
		"%s/videos?part=snippet,contentDetails&id=%s&key=%s",
		apiBaseURL, url.QueryEscape(videoID), url.QueryEscape(r.apiKey),
	)

	body, err := r.doGet(ctx, endpoint)
	if err != nil {
		return nil, &domain.ResolutionError{Provider: providerName, Err: err}
	}

	var resp videoListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.ResolutionError{Provider: providerName, Err: fmt.Errorf("parse videos response: %w", err)}
	}
	if len(resp.Items) == 0 {
		return nil, &domain.ResolutionError{Provider: providerName, Err: fmt.Errorf("video %s not found", videoID)}
	}

	item := resp.Items[0]
	thumbnail := item.Snippet.Thumbnails.High.URL
	if thumbnail == "" {
		thumbnail = Thumbnail(videoID)
	}
	return &domain.VideoMetadata{
		Provider:        providerName,
		VideoID:         videoID,
		Title:           item.Snippet.Title,
		ThumbnailURL:    thumbnail,
		DurationSeconds: parseISODuration(item.ContentDetails.Duration),
	}, nil
}

func (r *Resolver) resolveOEmbed(ctx context.Context, videoID string) (*domain.VideoMetadata, error) {
	endpoint := fmt.Sprintf(
		"%s?url=%s&format=json",
		oembedURL, url.QueryEscape("https://www.youtube.com/watch?v="+videoID),
	)

	body, err := r.doGet(ctx, endpoint)
	if err != nil {
		return nil, &domain.ResolutionError{Provider: providerName, Err: err}
	}

	var resp oembedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.ResolutionError{Provider: providerName, Err: fmt.Errorf("parse oembed response: %w", err)}
	}

	thumbnail := resp.ThumbnailURL
	if thumbnail == "" {
		thumbnail = Thumbnail(videoID)
	}
	return &domain.VideoMetadata{
		Provider:     providerName,
		VideoID:      videoID,
		Title:        resp.Title,
		ThumbnailURL: thumbnail,
	}, nil
}

func (r *Resolver) doGet(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// parseISODuration converts an ISO 8601 duration like "PT1H2M3S" to seconds.
// Malformed input parses as 0.
var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

func parseISODuration(s string) int {
	m := isoDurationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[3]))
	return hours*3600 + minutes*60 + seconds
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
