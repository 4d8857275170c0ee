package pipeline

import (
	"strings"

	"github.com/patrickprogramme/transcribrr/pkg/model"
)

// taille des paquets du mode chunked
const chunkSize = 4

// AssembleFlat concatène TOUS les fragments bruts avec un espace, puis
// normalise le bloc entier en une seule passe. C'est le mode par défaut :
// normaliser après concaténation répare les contractions coupées entre
// deux fragments ("hes" + "going" -> "he's going").
func AssembleFlat(frags []model.Fragment) string {
	if len(frags) == 0 {
		return ""
	}
	parts := make([]string, 0, len(frags))
	for _, f := range frags {
		parts = append(parts, f.Text)
	}
	return Normalize(strings.Join(parts, " "))
}

// AssembleChunked normalise chaque fragment indépendamment, puis groupe les
// fragments normalisés par paquets de 4 joints par un espace ; les paragraphes
// sont séparés par une ligne vide. Le dernier paquet peut être incomplet.
// L'ordre des fragments est préservé.
func AssembleChunked(frags []model.Fragment) string {
	if len(frags) == 0 {
		return ""
	}

	cleaned := make([]string, 0, len(frags))
	for _, f := range frags {
		cleaned = append(cleaned, Normalize(f.Text))
	}

	var paragraphs []string
	for start := 0; start < len(cleaned); start += chunkSize {
		end := start + chunkSize
		if end > len(cleaned) {
			end = len(cleaned)
		}
		paragraphs = append(paragraphs, strings.Join(cleaned[start:end], " "))
	}
	return strings.Join(paragraphs, "\n\n")
}

// Assemble choisit la stratégie selon le mode configuré.
func Assemble(mode model.AssembleMode, frags []model.Fragment) string {
	switch mode {
	case model.AssembleChunked:
		return AssembleChunked(frags)
	case model.AssembleFlat:
		return AssembleFlat(frags)
	default:
		return AssembleFlat(frags) // choix par défaut
	}
}
