package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickprogramme/transcribrr/internal/assets"
	"github.com/patrickprogramme/transcribrr/internal/clipboard"
	"github.com/patrickprogramme/transcribrr/internal/fsutil"
	"github.com/patrickprogramme/transcribrr/internal/ia"
	"github.com/patrickprogramme/transcribrr/internal/pdf"
	"github.com/patrickprogramme/transcribrr/internal/ui"
	"github.com/patrickprogramme/transcribrr/pkg/model"
)

// applyFormat applique le format demandé au transcript nettoyé.
// - original : texte tel quel
// - brainrot/explainer avec clé Gemini : réécriture par le modèle
// - brainrot/explainer sans clé : prompt copié dans le presse-papier,
//   l'utilisateur colle la réponse de son chat IA
func (a *App) applyFormat(ctx context.Context, format model.Format, title, text string) (string, error) {
	if !format.UsesAI() {
		return text, nil
	}

	promptBytes, err := ia.GetPrompt(format)
	if err != nil {
		return "", fmt.Errorf("chargement du prompt %s: %w", format, err)
	}
	system := string(promptBytes)

	if key := a.cfg.GeminiKey(); key != "" {
		a.ui.PrintInfo(ctx, fmt.Sprintf("Réécriture %s via Gemini : %s...", format, title))
		rewriter := ia.NewRewriter(key, a.cfg.Gemini.Model)
		// le contrat d'erreur de Rewrite est textuel : l'échec éventuel
		// apparaît dans le document, le lot continue
		return rewriter.Rewrite(ctx, system, text), nil
	}

	// pas de clé -> flux presse-papier
	return a.rewriteViaClipboard(ctx, system, title, text)
}

// rewriteViaClipboard copie le prompt complet dans le presse-papier et
// attend que l'utilisateur y dépose la réponse de son chat IA.
// Si l'utilisateur passe, le transcript original est conservé.
func (a *App) rewriteViaClipboard(ctx context.Context, system, title, text string) (string, error) {
	full := ia.BuildFullPrompt(system, text)
	if err := clipboard.WriteAll(full); err != nil {
		return "", fmt.Errorf("copie du prompt dans le presse-papier: %w", err)
	}

	initial, readErr := clipboard.ReadAll()
	if readErr != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("warning: impossible de relire le presse-papier: %v", readErr))
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Aucune clé Gemini configurée. Prompt pour %q copié dans le presse-papier.", title))

	resp, approved, err := a.waitForAIResponse(ctx, initial)
	if err != nil {
		return "", err
	}
	if !approved {
		a.ui.PrintInfo(ctx, "Réécriture ignorée, transcript original conservé.")
		return text, nil
	}
	return resp, nil
}

// waitForAIResponse récupère la réponse IA depuis le presse-papier.
// Mode auto : polling jusqu'à changement. Mode interactif : l'utilisateur
// confirme puis valide l'aperçu.
func (a *App) waitForAIResponse(ctx context.Context, initialPrompt string) (string, bool, error) {
	if a.autoMode() {
		interval := 500 * time.Millisecond
		timeout := 300 * time.Second
		a.ui.PrintInfo(ctx, "Mode auto activé: surveillance du presse-papier en cours.")
		resp, err := a.ui.WaitForClipboardChange(ctx, initialPrompt, interval, timeout)
		if err != nil {
			return "", false, fmt.Errorf("en attente d'un changement du presse-papier: %w", err)
		}
		// on accepte automatiquement la première valeur différente
		return resp, true, nil
	}

	// mode interactif : demander à l'utilisateur d'indiquer qu'il a copié la réponse
	skip, err := a.ui.WaitForUserToCopyResponse(ctx)
	if err != nil {
		return "", false, fmt.Errorf("en attente que l'utilisateur copie la réponse: %w", err)
	}
	if skip {
		return "", false, nil
	}

	// ensuite, afficher preview et choix
	for {
		content, choice, err := a.ui.GetClipboardChoice(ctx)
		if err != nil {
			return "", false, fmt.Errorf("get clipboard choice: %w", err)
		}
		switch choice {
		case ui.ChoiceUse: // approuvé
			return content, true, nil
		case ui.ChoiceSkip: // ignore et passe
			return "", false, nil
		default: // retry
			time.Sleep(250 * time.Millisecond)
			continue
		}
	}
}

// renderAndSave choisit le moteur selon le format, rend le lot et écrit
// le PDF sur disque. overrideOut, s'il est non vide, remplace le chemin
// de sortie de la config.
func (a *App) renderAndSave(ctx context.Context, docs []model.ProcessedDocument, format model.Format, overrideOut string) (string, error) {
	style, err := a.cfg.RenderStyle(format)
	if err != nil {
		return "", err
	}

	opts := pdf.Options{FontDir: a.cfg.PDF.FontDir}
	if style == model.RenderStyled {
		theme, err := a.loadTheme()
		if err != nil {
			return "", err
		}
		opts.ThemeCSS = theme
	}

	renderer, err := pdf.New(style, opts)
	if err != nil {
		return "", err
	}

	a.ui.PrintInfo(ctx, fmt.Sprintf("Génération du PDF (%s)...", style))
	data, err := renderer.Render(ctx, docs)
	if err != nil {
		return "", fmt.Errorf("rendu pdf: %w", err)
	}

	if overrideOut != "" {
		outPath := overrideOut
		if !strings.HasSuffix(strings.ToLower(outPath), ".pdf") {
			outPath += ".pdf"
		}
		if err := os.MkdirAll(filepath.Dir(outPath), dirPerm); err != nil {
			return "", fmt.Errorf("create out dir: %w", err)
		}
		if err := fsutil.WriteFileAtomic(outPath, data, 0o644); err != nil {
			return "", fmt.Errorf("écriture du pdf %s: %w", outPath, err)
		}
		return outPath, nil
	}

	out := a.cfg.OutputPath()
	if err := os.MkdirAll(filepath.Dir(out), dirPerm); err != nil {
		return "", fmt.Errorf("create out dir: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(out), ".pdf")
	return fsutil.SaveDocumentAtomic(filepath.Dir(out), base, ".pdf", data, true)
}

// loadTheme retourne le CSS du thème : fichier configuré, sinon l'asset embarqué.
func (a *App) loadTheme() ([]byte, error) {
	if p := strings.TrimSpace(a.cfg.PDF.ThemePath); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("lecture du thème %s: %w", p, err)
		}
		return b, nil
	}
	b, err := assets.Embedded.ReadFile(assets.DefaultThemeAsset)
	if err != nil {
		return nil, fmt.Errorf("lecture du thème embarqué: %w", err)
	}
	return b, nil
}

// baseNameNoExt retourne le nom de fichier sans dossier ni extension.
func baseNameNoExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
