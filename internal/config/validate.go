package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Polices requises par le rendu "basic" (unicode complet).
var requiredFonts = []string{"DejaVuSans.ttf", "DejaVuSans-Bold.ttf"}

// ValidateFontPresence vérifie de manière statique que le dossier de polices
// existe et contient les fichiers DejaVu requis par le rendu basic.
// Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) ValidateFontPresence() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	dir := strings.TrimSpace(c.PDF.FontDir)
	if dir == "" {
		warnings = append(warnings, "aucun dossier de polices configuré; le rendu basic échouera")
		return warnings, nil
	}

	if st, serr := os.Stat(dir); serr != nil {
		if os.IsNotExist(serr) {
			warnings = append(warnings, fmt.Sprintf("le dossier de polices n'existe pas : %s", dir))
			return warnings, nil
		}
		return warnings, fmt.Errorf("impossible d'accéder au dossier de polices %s : %w", dir, serr)
	} else if !st.IsDir() {
		return warnings, fmt.Errorf("le chemin de polices configuré n'est pas un répertoire : %s", dir)
	}

	for _, name := range requiredFonts {
		p := filepath.Join(dir, name)
		if info, serr := os.Stat(p); serr != nil {
			if os.IsNotExist(serr) {
				warnings = append(warnings, fmt.Sprintf("police introuvable : %s", p))
				continue
			}
			return warnings, fmt.Errorf("erreur lors du test du fichier %s : %w", p, serr)
		} else if info.IsDir() {
			return warnings, fmt.Errorf("le chemin de police est un répertoire : %s", p)
		}
	}

	return warnings, nil
}

// ValidateThemePresence vérifie qu'un theme_path personnalisé, s'il est
// défini, pointe vers un fichier lisible. Vide => thème embarqué, rien à faire.
func (c *Config) ValidateThemePresence() error {
	if c == nil {
		return fmt.Errorf("config nil")
	}
	p := strings.TrimSpace(c.PDF.ThemePath)
	if p == "" {
		return nil
	}
	info, err := os.Stat(p)
	if err != nil {
		return fmt.Errorf("thème CSS introuvable : %s : %w", p, err)
	}
	if info.IsDir() {
		return fmt.Errorf("le chemin du thème est un répertoire : %s", p)
	}
	return nil
}
