package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/patrickprogramme/transcribrr/internal/app"
	"github.com/patrickprogramme/transcribrr/internal/assets"
	"github.com/patrickprogramme/transcribrr/internal/bootstrap"
	"github.com/patrickprogramme/transcribrr/internal/config"
	"github.com/patrickprogramme/transcribrr/internal/ui"
)

func main() {
	flags, exportDir := parseFlags()

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
		fmt.Printf("Lancement depuis: %s\n", exePath)
	}

	// -export-defaults : déposer le thème et les prompts embarqués puis sortir
	if exportDir != "" {
		status, err := bootstrap.ExportDefaults(assets.Embedded, ".", exportDir, false)
		for p, s := range status {
			fmt.Printf("  %s : %s\n", p, s)
		}
		if err != nil {
			log.Fatalf("export defaults: %v", err)
		}
		return
	}

	// emplacement config par défaut
	if flags.ConfigPath == "transcribrr.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "transcribrr.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	// charger la config depuis flags.ConfigPath
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	// appliquer le flag -auto par-dessus la config
	if flags.Auto {
		cfg.AutoMode = true
	}

	// avertissements statiques (polices, thème) : non fatals au lancement,
	// le rendu échouera de toute façon clairement si l'un manque
	if warnings, err := cfg.ValidateFontPresence(); err != nil {
		log.Printf("validation des polices: %v", err)
	} else {
		for _, w := range warnings {
			log.Printf("warning: %s", w)
		}
	}
	if err := cfg.ValidateThemePresence(); err != nil {
		log.Printf("warning: %v", err)
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags)
	// l'annulation par Ctrl+C en fin de run est une sortie normale
	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("app run: %v", err)
	}
}

func parseFlags() (*app.CLIFlags, string) {
	f := &app.CLIFlags{}
	var exportDir string
	flag.StringVar(&f.ConfigPath, "config", "transcribrr.yaml", "path to config file")
	flag.StringVar(&f.Channel, "channel", "", "nom de la chaîne YouTube (optionnel)")
	flag.IntVar(&f.Max, "max", 0, "nombre maximum de vidéos récentes (0 = valeur de la config)")
	flag.StringVar(&f.Format, "format", "", "format de sortie : original, brainrot ou explainer")
	flag.BoolVar(&f.Auto, "auto", false, "exécution automatique sans interaction")
	flag.StringVar(&f.InPath, "in", "", "fichier texte local à formater (mode autonome)")
	flag.StringVar(&f.OutPath, "out", "", "chemin du PDF de sortie (mode autonome)")
	flag.StringVar(&exportDir, "export-defaults", "", "exporter le thème et les prompts embarqués vers ce dossier puis quitter")
	flag.Parse()
	return f, exportDir
}
