package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/transcribrr/internal/config"
	"github.com/patrickprogramme/transcribrr/internal/fetch"
	"github.com/patrickprogramme/transcribrr/internal/fsutil"
	"github.com/patrickprogramme/transcribrr/internal/pipeline"
	"github.com/patrickprogramme/transcribrr/internal/transcript"
	"github.com/patrickprogramme/transcribrr/internal/ui"
	"github.com/patrickprogramme/transcribrr/internal/yt"
	"github.com/patrickprogramme/transcribrr/pkg/model"
)

const dirPerm = 0o755

// CLIFlags contient les information venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	Channel    string
	Max        int
	Format     string
	Auto       bool

	// Mode autonome : formater un fichier texte local sans toucher au réseau.
	InPath  string
	OutPath string
}

// App orchestre les différentes dépendances (UI, clients réseau, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	ytClient *yt.Client
	tsClient *transcript.Client
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags) *App {
	api := fetch.New(cfg.FetchTimeout(), cfg.MaxBodyBytes())
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		flags:    flags,
		ytClient: yt.NewClient(cfg.YouTubeKey(), api),
		tsClient: transcript.NewClient(api),
	}
}

// Run exécute le flux principal : recherche de la chaîne, sélection des
// vidéos, récupération et traitement des transcripts, rendu PDF.
func (a *App) Run(ctx context.Context) error {
	// fichier local -> pas de réseau, pas de sélection
	if a.flags.InPath != "" {
		return a.runStandalone(ctx)
	}

	format, err := a.resolveFormat()
	if err != nil {
		return err
	}
	mode, err := a.cfg.AssembleMode()
	if err != nil {
		return err
	}

	if a.cfg.YouTubeKey() == "" {
		return fmt.Errorf("aucune clé YouTube Data API configurée (youtube.api_key ou YOUTUBE_API_KEY)")
	}

	// Récupération du nom de chaîne : priorité flag > prompt
	channel := a.flags.Channel
	if channel == "" {
		c, err := a.ui.GetChannelName(ctx)
		if err != nil {
			return fmt.Errorf("get channel: %w", err)
		}
		channel = c
	}

	maxVideos := a.cfg.YouTube.MaxVideos
	if a.flags.Max > 0 {
		maxVideos = a.flags.Max
	}

	a.ui.PrintInfo(ctx, fmt.Sprintf("Recherche des vidéos récentes de %q...", channel))
	videos, err := a.ytClient.FindRecentVideos(ctx, channel, maxVideos)
	if err != nil {
		return fmt.Errorf("recherche de la chaîne: %w", err)
	}
	if len(videos) == 0 {
		return fmt.Errorf("aucune vidéo trouvée pour la chaîne %q", channel)
	}

	// Sélection : tout en mode auto, sinon choix numéroté
	selected := videos
	if !a.autoMode() {
		selected, err = a.ui.SelectVideos(ctx, videos)
		if err != nil {
			return fmt.Errorf("sélection des vidéos: %w", err)
		}
		if len(selected) == 0 {
			return fmt.Errorf("aucune vidéo sélectionnée")
		}
	}

	docs, err := a.processVideos(ctx, selected, format, mode)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("aucun transcript exploitable parmi les vidéos sélectionnées")
	}

	outPath, err := a.renderAndSave(ctx, docs, format, "")
	if err != nil {
		return err
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("PDF écrit dans :\n%s", outPath))

	// en mode auto on rend la main tout de suite ; sinon on laisse la
	// console ouverte jusqu'au Ctrl+C
	if a.autoMode() {
		return nil
	}
	return a.ui.WaitForExit(ctx)
}

// processVideos traite chaque vidéo indépendamment : un échec de
// transcript saute la vidéo et n'interrompt jamais le lot.
func (a *App) processVideos(ctx context.Context, videos []model.Video, format model.Format, mode model.AssembleMode) ([]model.ProcessedDocument, error) {
	docs := make([]model.ProcessedDocument, 0, len(videos))

	for i, v := range videos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// pause entre deux récupérations, jamais avant la première
		if i > 0 {
			if err := sleepCtx(ctx, a.cfg.FetchDelay()); err != nil {
				return nil, err
			}
		}

		a.ui.PrintInfo(ctx, fmt.Sprintf("Récupération du transcript : %s (%s)", v.Title, v.URL()))
		frags, err := a.tsClient.Fetch(ctx, v.ID)
		if err != nil {
			switch {
			case errors.Is(err, transcript.ErrDisabled):
				a.ui.PrintError(ctx, fmt.Sprintf("⚠️  Sous-titres désactivés pour %q, vidéo ignorée.", v.Title))
			case errors.Is(err, transcript.ErrNotFound):
				a.ui.PrintError(ctx, fmt.Sprintf("⚠️  Aucun transcript exploitable pour %q, vidéo ignorée.", v.Title))
			default:
				a.ui.PrintError(ctx, fmt.Sprintf("⚠️  Échec de récupération pour %q: %v — vidéo ignorée.", v.Title, err))
			}
			continue
		}

		text := pipeline.Assemble(mode, frags)

		final, err := a.applyFormat(ctx, format, v.Title, text)
		if err != nil {
			return nil, err
		}

		docs = append(docs, model.ProcessedDocument{
			Title:   "Video: " + v.Title,
			Content: final,
		})
	}
	return docs, nil
}

// runStandalone lit un fichier texte local et le fait passer par le même
// traitement que les transcripts téléchargés.
func (a *App) runStandalone(ctx context.Context) error {
	format, err := a.resolveFormat()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(a.flags.InPath)
	if err != nil {
		return fmt.Errorf("lecture du fichier d'entrée: %w", err)
	}

	title := fsutil.CapitalizeFirst(baseNameNoExt(a.flags.InPath))
	text := pipeline.Normalize(string(data))

	final, err := a.applyFormat(ctx, format, title, text)
	if err != nil {
		return err
	}

	docs := []model.ProcessedDocument{{Title: "Video: " + title, Content: final}}
	outPath, err := a.renderAndSave(ctx, docs, format, a.standaloneOutPath(title))
	if err != nil {
		return err
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("PDF écrit dans :\n%s", outPath))
	return nil
}

// standaloneOutPath retourne le chemin de sortie du mode autonome :
// le flag -out s'il est donné, sinon le titre assaini dans le dossier
// de sortie configuré.
func (a *App) standaloneOutPath(title string) string {
	if a.flags.OutPath != "" {
		return a.flags.OutPath
	}
	return filepath.Join(a.cfg.OutputDir, fsutil.SanitizeFilename(title)+".pdf")
}

func (a *App) resolveFormat() (model.Format, error) {
	if a.flags.Format != "" {
		return model.ParseFormat(a.flags.Format)
	}
	return a.cfg.OutputFormat()
}

func (a *App) autoMode() bool {
	return a.cfg.AutoMode || a.flags.Auto
}

// sleepCtx attend d (interruptible par ctx).
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
