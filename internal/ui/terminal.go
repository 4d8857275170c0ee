package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/patrickprogramme/transcribrr/internal/clipboard"
	"github.com/patrickprogramme/transcribrr/pkg/model"
)

type terminalUI struct {
	reader *bufio.Reader
}

func NewTerminal() Interface {
	return &terminalUI{reader: bufio.NewReader(os.Stdin)}
}

// Choix de l'utilisateur retourné par GetClipboardChoice
const (
	ChoiceUse   = "use"   // utiliser le texte du clipboard
	ChoiceRetry = "retry" // ne pas utiliser et recommencer le processus
	ChoiceSkip  = "skip"  // continuer sans utiliser le texte (garder le transcript original)
)

func (t *terminalUI) GetChannelName(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Print("Entrez le nom d'une chaîne Youtube: ")
		input, err := t.reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("lecture stdin: %w", err)
		}
		name := strings.TrimSpace(input)
		if name != "" {
			return name, nil
		}
		fmt.Println("❌ Nom vide. Essayez à nouveau.")
	}
}

// SelectVideos affiche la liste numérotée puis lit une sélection du type
// "1,3,5" ou "1 3 5". Entrée vide ou "all" => tout prendre.
func (t *terminalUI) SelectVideos(ctx context.Context, videos []model.Video) ([]model.Video, error) {
	if len(videos) == 0 {
		return nil, nil
	}

	fmt.Printf("\n%d vidéos récentes trouvées :\n", len(videos))
	for i, v := range videos {
		fmt.Printf("  %2d. %s (ID: %s)\n", i+1, v.Title, v.ID)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fmt.Print("Numéros à traiter (ex: 1,3,5 — vide ou 'all' pour tout) : ")
		input, err := t.reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("lecture stdin: %w", err)
		}
		input = strings.TrimSpace(strings.ToLower(input))
		if input == "" || input == "all" || input == "a" {
			return videos, nil
		}

		picked, ok := parseSelection(input, len(videos))
		if !ok {
			fmt.Println("❌ Sélection invalide. Essayez à nouveau.")
			continue
		}
		out := make([]model.Video, 0, len(picked))
		for _, idx := range picked {
			out = append(out, videos[idx])
		}
		return out, nil
	}
}

// parseSelection accepte des numéros 1-based séparés par virgules ou
// espaces, dédoublonnés en conservant l'ordre de saisie.
func parseSelection(input string, n int) ([]int, bool) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
	if len(fields) == 0 {
		return nil, false
	}
	seen := make(map[int]bool, len(fields))
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 1 || v > n {
			return nil, false
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v-1)
	}
	return out, true
}

func (t *terminalUI) WaitForExit(ctx context.Context) error {
	fmt.Println("\n\nAppuyez sur Ctrl+C pour quitter.")

	// Prépare le canal pour les signaux d'interruption
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done(): // Context annulé ailleurs
		return ctx.Err()
	case <-sigCh: // Reçu Ctrl+C (SIGINT ou SIGTERM)
		return nil
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}

// GetClipboardChoice propose d'utiliser le texte du presse-papier.
// Retourne (content, choice, err).
// - content : texte provenant du clipboard (vide si choice != ChoiceUse).
// - choice : one of "use", "retry", "skip".
func (t *terminalUI) GetClipboardChoice(ctx context.Context) (string, string, error) {
	// tentative de lecture du clipboard
	clip, err := clipboard.ReadAll()
	if err != nil || strings.TrimSpace(clip) == "" {
		fmt.Println("Le presse-papier est vide ou inaccessible.")
		fmt.Println("Appuyez sur Entrée pour réessayer, ou tapez 's' puis Entrée pour garder le transcript original.")
		input, _ := t.reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))
		if input == "s" {
			return "", ChoiceSkip, nil
		}
		return "", ChoiceRetry, nil
	}

	// affiche un aperçu
	lines := strings.SplitN(clip, "\n", 6)
	preview := strings.Join(lines[:min(len(lines), 5)], "\n")
	fmt.Println("Aperçu du presse-papier :")
	fmt.Println("────────────────────────")
	fmt.Println(preview)
	if len(strings.Split(clip, "\n")) > 5 {
		fmt.Println("...")
	}
	fmt.Println("────────────────────────")
	fmt.Print("(o) Utiliser ce texte  (n) Réessayer  (s) Garder l'original  ? [o/n/s] : ")

	// lecture choix utilisateur (bloquant)
	resp, _ := t.reader.ReadString('\n')
	resp = strings.TrimSpace(strings.ToLower(resp))

	switch resp {
	case "o", "oui", "y", "yes":
		// petite normalisation : retirer BOM éventuel et trim final
		clip = strings.TrimPrefix(clip, "\ufeff")
		clip = strings.ReplaceAll(clip, "\r\n", "\n")
		return clip, ChoiceUse, nil
	case "s":
		return "", ChoiceSkip, nil
	default:
		// par défaut on considère comme retry
		time.Sleep(100 * time.Millisecond)
		return "", ChoiceRetry, nil
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// WaitForUserToCopyResponse attend que l'utilisateur indique qu'il a copié la réponse IA.
// Retourne true si l'utilisateur a choisi d'ignorer/sauter (tape 's'), false sinon.
func (t *terminalUI) WaitForUserToCopyResponse(ctx context.Context) (bool, error) {
	fmt.Println("Ouvrez votre chat IA, collez le prompt, puis copiez la réponse.")
	fmt.Print("Quand vous êtes prêt, appuyez sur Entrée. Tapez 's' puis Entrée pour garder le transcript original : ")
	input, err := t.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("lecture stdin: %w", err)
	}
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "s" {
		return true, nil
	}
	return false, nil
}

// WaitForClipboardChange poll le presse-papier jusqu'à ce que son contenu
// diffère de `initial` et soit non vide, ou jusqu'au timeout/context done.
// interval : durée entre lectures (ex: 500*time.Millisecond).
// timeout : 0 => attendre indéfiniment (ou utiliser ctx pour annulation).
func (t *terminalUI) WaitForClipboardChange(ctx context.Context, initial string, interval time.Duration, timeout time.Duration) (string, error) {
	normalize := func(s string) string {
		s = strings.TrimPrefix(s, "\ufeff")
		s = strings.ReplaceAll(s, "\r\n", "\n")
		return strings.TrimSpace(s)
	}
	rawInitial := initial
	initial = normalize(initial)

	// laisse l'OS opérer le collage si on vient d'écrire le clipboard
	time.Sleep(150 * time.Millisecond)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if timeout > 0 {
		deadline = time.After(timeout)
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
			// comparaison brute d'abord : inutile de normaliser tant
			// que le contenu n'a pas bougé
			if clipboard.ClipboardEquals(rawInitial) {
				continue
			}
			current, err := clipboard.ReadAll()
			if err != nil {
				continue
			}
			current = normalize(current)
			if current != "" && current != initial {
				return current, nil
			}
		case <-deadline:
			return "", fmt.Errorf("timeout waiting clipboard change after %v", timeout)
		}
	}
}
