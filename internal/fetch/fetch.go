// Package fetch fournit un petit client HTTP borné et testable pour
// télécharger des ressources distantes (API YouTube, pistes timedtext).
// Tout est lu en mémoire : adapté aux payloads JSON, pas aux gros binaires.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultMaxBytes  = 10_000_000
	DefaultUserAgent = "Transcribrr/1.0"
)

// Erreurs exportées
var (
	ErrStatus   = errors.New("unexpected HTTP status")
	ErrTooLarge = errors.New("response body too large")
)

// Client encapsule http.Client + les limites par défaut.
// Le zéro value n'est pas utilisable : passer par New.
type Client struct {
	hc        *http.Client
	userAgent string
	maxBytes  int64
}

// New construit un Client avec les valeurs par défaut.
// timeout <=0 -> DefaultTimeout, maxBytes <=0 -> DefaultMaxBytes.
func New(timeout time.Duration, maxBytes int64) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Client{
		hc:        &http.Client{Timeout: timeout},
		userAgent: DefaultUserAgent,
		maxBytes:  maxBytes,
	}
}

// get effectue la requête et valide le statut + le Content-Length annoncé.
// L'appelant doit fermer resp.Body.
func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// valider l'URL tôt
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("fetch: invalid url %q: %w", rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: new request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch: %w: %s", ErrStatus, resp.Status)
	}

	// si Content-Length connu et supérieur à maxBytes -> échouer vite
	if resp.ContentLength > 0 && resp.ContentLength > c.maxBytes {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch: content-length %d exceeds limit %d: %w",
			resp.ContentLength, c.maxBytes, ErrTooLarge)
	}
	return resp, nil
}

// Bytes télécharge rawURL et retourne le corps complet.
func (c *Client) Bytes(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	r := io.LimitReader(resp.Body, c.maxBytes+1) // +1 pour détecter dépassement
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(data)) > c.maxBytes {
		return nil, fmt.Errorf("fetch: body exceeds %d bytes: %w", c.maxBytes, ErrTooLarge)
	}
	return data, nil
}
