// Package transcript récupère la piste de sous-titres d'une vidéo et la
// transforme en fragments exploitables par le pipeline. La découverte des
// pistes passe par la page watch (bloc captionTracks), le téléchargement
// par l'endpoint timedtext au format json3.
package transcript

import (
	"errors"
	"strings"
)

// Erreurs distinguables pour l'appelant : dans les deux cas on saute la
// vidéo et on continue le lot.
var (
	// ErrDisabled : la vidéo n'expose aucune donnée de sous-titres.
	ErrDisabled = errors.New("transcripts disabled for this video")
	// ErrNotFound : des pistes existent mais aucune n'est exploitable.
	ErrNotFound = errors.New("no usable transcript found")
)

// captionTrack décrit une piste dans le bloc "captionTracks" de la page
// watch. Kind == "asr" signale une piste générée automatiquement.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
	Name         struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
}

func (t captionTrack) isASR() bool {
	return t.Kind == "asr"
}

func (t captionTrack) isEnglish() bool {
	return strings.HasPrefix(t.LanguageCode, "en")
}

// pickTrack choisit la piste à télécharger : manuelle anglaise, puis
// manuelle quelconque, puis auto anglaise, puis auto quelconque.
func pickTrack(tracks []captionTrack) (captionTrack, bool) {
	var empty captionTrack

	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if t.BaseURL != "" {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return empty, false
	}

	for _, t := range usable {
		if !t.isASR() && t.isEnglish() {
			return t, true
		}
	}
	for _, t := range usable {
		if !t.isASR() {
			return t, true
		}
	}
	for _, t := range usable {
		if t.isEnglish() {
			return t, true
		}
	}
	return usable[0], true
}
