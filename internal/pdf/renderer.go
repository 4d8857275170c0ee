// Package pdf produit le document final. Deux moteurs :
//   - basic  : mise en page directe via fpdf, avec repli texte brut
//     si le markup ne passe pas. Ne dépend d'aucun environnement.
//   - styled : markdown -> HTML (goldmark) + thème CSS, imprimé en PDF
//     par un Chrome headless (go-rod). Échec fatal si l'environnement
//     ne fournit pas de navigateur : pas de repli, le rendu dégradé
//     serait mensonger.
package pdf

import (
	"context"
	"fmt"

	"github.com/patrickprogramme/transcribrr/pkg/model"
)

// Renderer transforme les documents traités en octets PDF.
type Renderer interface {
	Render(ctx context.Context, docs []model.ProcessedDocument) ([]byte, error)
}

// Options regroupe les paramètres de rendu.
type Options struct {
	// FontDir : dossier des polices DejaVu (rendu basic uniquement).
	FontDir string
	// ThemeCSS : feuille de style du rendu styled.
	ThemeCSS []byte
}

// New retourne le moteur correspondant au style demandé.
func New(style model.RenderStyle, opts Options) (Renderer, error) {
	switch style {
	case model.RenderBasic:
		return newBasicRenderer(opts.FontDir), nil
	case model.RenderStyled:
		return newStyledRenderer(opts.ThemeCSS), nil
	default:
		return nil, fmt.Errorf("style de rendu inconnu: %s", style)
	}
}
