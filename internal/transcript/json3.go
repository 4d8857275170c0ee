package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/patrickprogramme/transcribrr/pkg/model"
)

// rawJSON3 représente la structure "brute" telle qu'on la récupère depuis
// l'endpoint timedtext de YouTube au format json3.
type rawJSON3 struct {
	WireMagic string     `json:"wireMagic,omitempty"`
	Events    []rawEvent `json:"events"`
}

type rawEvent struct {
	TStartMs    *int64   `json:"tStartMs,omitempty"`
	DDurationMs *int64   `json:"dDurationMs,omitempty"`
	Segs        []rawSeg `json:"segs,omitempty"`
	// On ignore volontairement d'autres champs (wpWinPosId, wWinId, etc.)
}

type rawSeg struct {
	Utf8      string `json:"utf8"`
	TOffsetMs *int64 `json:"tOffsetMs,omitempty"`
}

// isNewlineOnly indique si l'event ne porte que des retours à la ligne ou
// des espaces : ces events de mise en page n'apportent aucun texte.
func (e rawEvent) isNewlineOnly() bool {
	if len(e.Segs) == 0 {
		return false
	}
	for _, s := range e.Segs {
		t := strings.TrimSpace(s.Utf8)
		if t == "" || t == "\n" || t == "\\n" {
			continue
		}
		return false
	}
	return true
}

// parseJSON3 parse un blob json3 ([]byte) et retourne la structure rawJSON3.
// Pas de DisallowUnknownFields : le JSON contient souvent des champs
// non mappés qu'on veut ignorer proprement.
func parseJSON3(b []byte) (rawJSON3, error) {
	var raw rawJSON3
	if len(b) == 0 {
		return raw, fmt.Errorf("parseJSON3: empty input")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&raw); err != nil {
		return raw, fmt.Errorf("parseJSON3: decode error: %w", err)
	}
	return raw, nil
}

// toFragments convertit les events json3 en fragments horodatés. Les events
// sans texte (cues de mise en page, segs vides) sont écartés.
func toFragments(raw rawJSON3) []model.Fragment {
	frags := make([]model.Fragment, 0, len(raw.Events))
	for _, ev := range raw.Events {
		if len(ev.Segs) == 0 || ev.isNewlineOnly() {
			continue
		}
		var sb strings.Builder
		for _, seg := range ev.Segs {
			sb.WriteString(seg.Utf8)
		}
		text := strings.TrimSpace(strings.ReplaceAll(sb.String(), "\n", " "))
		if text == "" {
			continue
		}
		var start, dur int64
		if ev.TStartMs != nil {
			start = *ev.TStartMs
		}
		if ev.DDurationMs != nil {
			dur = *ev.DDurationMs
		}
		frags = append(frags, model.Fragment{
			Text:       text,
			StartMs:    start,
			DurationMs: dur,
		})
	}
	return frags
}
