package ui

import (
	"context"
	"time"

	"github.com/patrickprogramme/transcribrr/pkg/model"
)

type Interface interface {
	// GetChannelName doit renvoyer un nom de chaîne non vide.
	GetChannelName(ctx context.Context) (string, error)

	// SelectVideos affiche la liste numérotée et retourne la sélection.
	// Entrée vide ou "all" => toutes les vidéos.
	SelectVideos(ctx context.Context, videos []model.Video) ([]model.Video, error)

	// WaitForExit bloque jusqu'à ce qu'un signal d'annulation soit reçu via ctx (Ctrl+C).
	WaitForExit(ctx context.Context) error

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	WaitForUserToCopyResponse(ctx context.Context) (bool, error)
	// GetClipboardChoice interagit avec l'utilisateur et retourne:
	// - content : texte (potentiellement vide si choice != "use")
	// - choice  : "use", "retry" ou "skip"
	// - err     : erreur éventuelle
	GetClipboardChoice(ctx context.Context) (content string, choice string, err error)
	WaitForClipboardChange(ctx context.Context, initial string, interval time.Duration, timeout time.Duration) (string, error)
}
