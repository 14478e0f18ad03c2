package youtube

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicklist/quicklist-api/internal/domain"
)

// roundTripFunc lets tests stand in for the YouTube endpoints.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

// -- Tests -------------------------------------------------------------------

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}

	for _, tc := range cases {
		got, err := ExtractVideoID(tc.url)
		require.NoError(t, err, "url %s", tc.url)
		assert.Equal(t, tc.want, got, "url %s", tc.url)
	}
}

func TestExtractVideoID_Invalid(t *testing.T) {
	var verr *domain.ValidationError
	for _, url := range []string{
		"",
		"https://example.com/watch?v=abc",
		"https://vimeo.com/12345",
		"not a url at all",
	} {
		_, err := ExtractVideoID(url)
		require.ErrorAs(t, err, &verr, "url %q", url)
	}
}

func TestParseISODuration(t *testing.T) {
	cases := map[string]int{
		"PT3M33S":    213,
		"PT1H2M3S":   3723,
		"PT45S":      45,
		"PT2H":       7200,
		"PT1M":       60,
		"":           0,
		"nonsense":   0,
		"P1DT2H":     0, // days are not produced for videos
	}
	for input, want := range cases {
		assert.Equal(t, want, parseISODuration(input), "input %q", input)
	}
}

func TestResolve_DataAPI(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		assert.Contains(t, r.URL.Path, "/videos")
		assert.Equal(t, "dQw4w9WgXcQ", r.URL.Query().Get("id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		return jsonResponse(http.StatusOK, `{
			"items": [{
				"id": "dQw4w9WgXcQ",
				"snippet": {
					"title": "Never Gonna Give You Up",
					"thumbnails": {"high": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}}
				},
				"contentDetails": {"duration": "PT3M33S"}
			}]
		}`), nil
	})}

	r := NewResolver(client, "test-key")
	meta, err := r.Resolve(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "youtube", meta.Provider)
	assert.Equal(t, "dQw4w9WgXcQ", meta.VideoID)
	assert.Equal(t, "Never Gonna Give You Up", meta.Title)
	assert.Equal(t, "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg", meta.ThumbnailURL)
	assert.Equal(t, 213, meta.DurationSeconds)
}

func TestResolve_DataAPI_VideoMissing(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"items": []}`), nil
	})}

	r := NewResolver(client, "test-key")
	_, err := r.Resolve(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	var rerr *domain.ResolutionError
	require.ErrorAs(t, err, &rerr)
}

func TestResolve_OEmbedFallback(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "www.youtube.com", r.URL.Host)
		assert.Equal(t, "/oembed", r.URL.Path)
		return jsonResponse(http.StatusOK, `{
			"title": "Never Gonna Give You Up",
			"thumbnail_url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"
		}`), nil
	})}

	// No API key: keyless oEmbed path, no duration available.
	r := NewResolver(client, "")
	meta, err := r.Resolve(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Never Gonna Give You Up", meta.Title)
	assert.Equal(t, 0, meta.DurationSeconds)
}

func TestResolve_UpstreamError(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, `{"error": {"message": "quota exceeded"}}`), nil
	})}

	r := NewResolver(client, "test-key")
	_, err := r.Resolve(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	var rerr *domain.ResolutionError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, err.Error(), "quota")
}

func TestResolve_InvalidURL(t *testing.T) {
	r := NewResolver(nil, "")
	var verr *domain.ValidationError
	_, err := r.Resolve(context.Background(), "https://vimeo.com/12345")
	require.ErrorAs(t, err, &verr)
}
