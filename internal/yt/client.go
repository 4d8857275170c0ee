// Package yt implémente la recherche de chaîne et la liste des vidéos
// récentes via l'API YouTube Data v3 (JSON sur HTTPS, sans SDK).
package yt

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/patrickprogramme/transcribrr/internal/fetch"
	"github.com/patrickprogramme/transcribrr/pkg/model"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// DefaultMaxResults : nombre de vidéos récupérées si l'appelant ne précise rien.
const DefaultMaxResults = 25

var ErrChannelNotFound = errors.New("chaîne introuvable")

// Client interroge l'API Data v3. Une clé API est obligatoire.
type Client struct {
	api     *fetch.Client
	apiKey  string
	baseURL string
}

func NewClient(apiKey string, api *fetch.Client) *Client {
	if api == nil {
		api = fetch.New(0, 0)
	}
	return &Client{
		api:     api,
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}
}

// endpoint construit l'URL complète d'un appel API avec la clé.
func (c *Client) endpoint(path string, params url.Values) string {
	params.Set("key", c.apiKey)
	return c.baseURL + "/" + path + "?" + params.Encode()
}

// FindRecentVideos retourne les vidéos les plus récentes d'une chaîne,
// identifiée par son nom (recherche). Trois appels API :
//  1. search?type=channel -> channelId
//  2. channels?part=contentDetails -> playlist "uploads"
//  3. playlistItems -> [{video_id, title}]
//
// Retourne ErrChannelNotFound si la recherche ne donne rien. Les autres
// échecs remontent avec un message lisible ; dans tous les cas la liste
// retournée est vide en cas d'erreur.
func (c *Client) FindRecentVideos(ctx context.Context, channelName string, maxResults int) ([]model.Video, error) {
	if channelName == "" {
		return nil, fmt.Errorf("find videos: %w: nom de chaîne vide", ErrChannelNotFound)
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	channelID, err := c.searchChannel(ctx, channelName)
	if err != nil {
		return nil, err
	}

	uploadsID, err := c.uploadsPlaylist(ctx, channelID)
	if err != nil {
		return nil, err
	}

	return c.playlistVideos(ctx, uploadsID, maxResults)
}

func (c *Client) searchChannel(ctx context.Context, channelName string) (string, error) {
	params := url.Values{}
	params.Set("q", channelName)
	params.Set("type", "channel")
	params.Set("part", "id,snippet")
	params.Set("maxResults", "1")

	resp, err := fetch.JSON[searchResponse](ctx, c.api, c.endpoint("search", params))
	if err != nil {
		return "", fmt.Errorf("yt search: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("yt search: API error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	if len(resp.Items) == 0 || resp.Items[0].ID.ChannelID == "" {
		return "", fmt.Errorf("yt search %q: %w", channelName, ErrChannelNotFound)
	}
	return resp.Items[0].ID.ChannelID, nil
}

func (c *Client) uploadsPlaylist(ctx context.Context, channelID string) (string, error) {
	params := url.Values{}
	params.Set("id", channelID)
	params.Set("part", "contentDetails")

	resp, err := fetch.JSON[channelsResponse](ctx, c.api, c.endpoint("channels", params))
	if err != nil {
		return "", fmt.Errorf("yt channels: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("yt channels: API error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("yt channels %s: %w", channelID, ErrChannelNotFound)
	}
	uploads := resp.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return "", fmt.Errorf("yt channels %s: pas de playlist uploads", channelID)
	}
	return uploads, nil
}

func (c *Client) playlistVideos(ctx context.Context, playlistID string, maxResults int) ([]model.Video, error) {
	params := url.Values{}
	params.Set("playlistId", playlistID)
	params.Set("part", "snippet")
	params.Set("maxResults", strconv.Itoa(maxResults))

	resp, err := fetch.JSON[playlistItemsResponse](ctx, c.api, c.endpoint("playlistItems", params))
	if err != nil {
		return nil, fmt.Errorf("yt playlistItems: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("yt playlistItems: API error %d: %s", resp.Error.Code, resp.Error.Message)
	}

	videos := make([]model.Video, 0, len(resp.Items))
	for _, it := range resp.Items {
		if it.Snippet.ResourceID.VideoID == "" {
			continue
		}
		videos = append(videos, model.Video{
			ID:    it.Snippet.ResourceID.VideoID,
			Title: it.Snippet.Title,
		})
	}
	return videos, nil
}
