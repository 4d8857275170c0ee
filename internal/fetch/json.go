package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// countingReader compte le nombre d'octets lus via Read.
type countingReader struct {
	R io.Reader
	N int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.R.Read(p)
	if n > 0 {
		c.N += int64(n)
	}
	return n, err
}

// JSONInto télécharge rawURL et décode le JSON directement dans dst
// (dst doit être un pointeur). Décode en streaming sur un reader limité
// et détecte le dépassement via le compteur.
func (c *Client) JSONInto(ctx context.Context, rawURL string, dst interface{}) error {
	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("fetch json: %w", err)
	}
	defer resp.Body.Close()

	limitReader := io.LimitReader(resp.Body, c.maxBytes+1) // +1 pour détecter dépassement
	cr := &countingReader{R: limitReader}
	dec := json.NewDecoder(cr)

	if err := dec.Decode(dst); err != nil {
		// erreur de décodage (JSON invalide, EOF inattendu, etc.)
		return fmt.Errorf("fetch json: decode: %w", err)
	}

	// si on a lu plus que maxBytes, le decode a consommé maxBytes+1 => overflow
	if cr.N > c.maxBytes {
		return ErrTooLarge
	}
	return nil
}

// JSON générique : fetch + décode dans une valeur typée.
func JSON[T any](ctx context.Context, c *Client, rawURL string) (T, error) {
	var v T
	if err := c.JSONInto(ctx, rawURL, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
