package yt

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/patrickprogramme/transcribrr/internal/fetch"
)

// newTestClient pointe le client sur un serveur de test qui rejoue les
// trois endpoints de l'API Data v3.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", fetch.New(0, 0))
	c.baseURL = srv.URL
	return c
}

func TestFindRecentVideos(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("clé API absente de la requête %s", r.URL)
		}
		switch r.URL.Path {
		case "/search":
			w.Write([]byte(`{"items":[{"id":{"channelId":"UC123"},"snippet":{"title":"Some Channel"}}]}`))
		case "/channels":
			if got := r.URL.Query().Get("id"); got != "UC123" {
				t.Errorf("channels id = %q, want UC123", got)
			}
			w.Write([]byte(`{"items":[{"contentDetails":{"relatedPlaylists":{"uploads":"UU123"}}}]}`))
		case "/playlistItems":
			if got := r.URL.Query().Get("playlistId"); got != "UU123" {
				t.Errorf("playlistId = %q, want UU123", got)
			}
			w.Write([]byte(`{"items":[
				{"snippet":{"title":"First","resourceId":{"videoId":"vid1"}}},
				{"snippet":{"title":"Broken","resourceId":{}}},
				{"snippet":{"title":"Second","resourceId":{"videoId":"vid2"}}}
			]}`))
		default:
			t.Errorf("endpoint inattendu : %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}

	c := newTestClient(t, handler)
	videos, err := c.FindRecentVideos(context.Background(), "some channel", 10)
	if err != nil {
		t.Fatalf("FindRecentVideos: %v", err)
	}
	// l'item sans videoId est écarté
	if len(videos) != 2 {
		t.Fatalf("got %d vidéos, want 2 (%+v)", len(videos), videos)
	}
	if videos[0].ID != "vid1" || videos[0].Title != "First" {
		t.Errorf("videos[0] = %+v", videos[0])
	}
	if videos[1].ID != "vid2" {
		t.Errorf("videos[1] = %+v", videos[1])
	}
}

func TestFindRecentVideosChannelNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})

	_, err := c.FindRecentVideos(context.Background(), "nobody", 5)
	if !errors.Is(err, ErrChannelNotFound) {
		t.Fatalf("got %v, want ErrChannelNotFound", err)
	}
}

func TestFindRecentVideosAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// l'API renvoie parfois un corps "error" avec un statut 200
		w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
	})

	_, err := c.FindRecentVideos(context.Background(), "whoever", 5)
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if got := err.Error(); !strings.Contains(got, "403") || !strings.Contains(got, "quotaExceeded") {
		t.Errorf("l'erreur devrait porter le code et le message API : %v", err)
	}
}

func TestFindRecentVideosEmptyName(t *testing.T) {
	c := NewClient("k", nil)
	_, err := c.FindRecentVideos(context.Background(), "", 5)
	if !errors.Is(err, ErrChannelNotFound) {
		t.Fatalf("got %v, want ErrChannelNotFound", err)
	}
}
