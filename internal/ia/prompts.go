// Package ia porte l'intégration Gemini : chargement des prompts embarqués,
// composition du prompt complet et appel au modèle.
package ia

import (
	"fmt"

	"github.com/patrickprogramme/transcribrr/internal/assets"
	"github.com/patrickprogramme/transcribrr/pkg/model"
)

// GetPrompt retourne le prompt système embarqué associé au format.
// Seuls les formats IA (brainrot, explainer) ont un prompt.
func GetPrompt(f model.Format) ([]byte, error) {
	// récupération du chemin dans l'embed
	tplPath := assets.PromptByName[f.String()]
	if tplPath == "" {
		return nil, fmt.Errorf("aucun prompt embarqué pour le format %s", f)
	}
	b, err := assets.Embedded.ReadFile(tplPath)
	if err != nil {
		return nil, fmt.Errorf("lecture prompt embarqué %s: %w", tplPath, err)
	}
	return b, nil
}

// BuildFullPrompt assemble le prompt système et le texte à réécrire dans
// le gabarit attendu par le modèle. Le délimiteur --- borne le texte.
func BuildFullPrompt(system, text string) string {
	return fmt.Sprintf("%s\n\nHere is the text:\n---\n%s\n---", system, text)
}
