package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/patrickprogramme/transcribrr/internal/fetch"
	"github.com/patrickprogramme/transcribrr/pkg/model"
)

const watchURLPrefix = "https://www.youtube.com/watch?v="

// reCaptionTracks isole le tableau "captionTracks" dans le JSON inliné de
// la page watch. Non-greedy : le tableau ne contient jamais de "]" interne.
var reCaptionTracks = regexp.MustCompile(`"captionTracks":(\[.*?\])`)

// Client télécharge les transcripts. Toutes les requêtes passent par le
// même client fetch (timeout et taille max partagés avec le reste de
// l'application).
type Client struct {
	api *fetch.Client
}

func NewClient(api *fetch.Client) *Client {
	return &Client{api: api}
}

// Fetch récupère le transcript d'une vidéo : page watch, sélection d'une
// piste, téléchargement json3, conversion en fragments.
// Retourne ErrDisabled si la vidéo n'expose aucune piste, ErrNotFound si
// aucune piste n'est exploitable ou si la piste retenue est vide.
func (c *Client) Fetch(ctx context.Context, videoID string) ([]model.Fragment, error) {
	page, err := c.api.Bytes(ctx, watchURLPrefix+videoID)
	if err != nil {
		return nil, fmt.Errorf("fetch watch page for %s: %w", videoID, err)
	}

	tracks, err := extractCaptionTracks(page)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	track, ok := pickTrack(tracks)
	if !ok {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrNotFound)
	}

	data, err := c.api.Bytes(ctx, json3URL(track.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("download transcript for %s: %w", videoID, err)
	}

	raw, err := parseJSON3(data)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	frags := toFragments(raw)
	if len(frags) == 0 {
		return nil, fmt.Errorf("video %s: empty transcript: %w", videoID, ErrNotFound)
	}
	return frags, nil
}

// extractCaptionTracks trouve et décode le bloc captionTracks de la page
// watch. L'absence du bloc signifie que les sous-titres sont désactivés.
func extractCaptionTracks(page []byte) ([]captionTrack, error) {
	m := reCaptionTracks.FindSubmatch(page)
	if m == nil {
		return nil, ErrDisabled
	}
	var tracks []captionTrack
	if err := json.Unmarshal(m[1], &tracks); err != nil {
		return nil, fmt.Errorf("decode captionTracks: %w", err)
	}
	if len(tracks) == 0 {
		return nil, ErrDisabled
	}
	return tracks, nil
}

// json3URL force le format json3 sur l'URL de piste. Les échappements
// & des baseUrl de la page watch sont déjà résolus par le décodage
// JSON du bloc captionTracks.
func json3URL(baseURL string) string {
	if strings.Contains(baseURL, "fmt=") {
		return baseURL
	}
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + "fmt=json3"
}
