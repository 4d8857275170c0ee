package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickprogramme/transcribrr/internal/assets"
	"github.com/patrickprogramme/transcribrr/internal/fsutil"
	"github.com/patrickprogramme/transcribrr/pkg/model"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir  string `yaml:"output_dir"`
	OutputFile string `yaml:"output_file"`

	// Mode automatique
	AutoMode bool `yaml:"auto_mode"`

	// YouTube Data API
	YouTube struct {
		APIKey    string `yaml:"api_key"`
		MaxVideos int    `yaml:"max_videos"`
	} `yaml:"youtube"`

	// Réseau
	Fetch struct {
		DelaySeconds   int `yaml:"delay_seconds"`
		TimeoutSeconds int `yaml:"timeout_seconds"`
		MaxBodyMB      int `yaml:"max_body_mb"`
	} `yaml:"fetch"`

	// Pipeline de texte
	Pipeline struct {
		AssembleMode string `yaml:"assemble_mode"`
	} `yaml:"pipeline"`

	// Format de sortie
	Format string `yaml:"format"`

	// Gemini
	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	// Rendu PDF
	PDF struct {
		Style     string `yaml:"style"`
		FontDir   string `yaml:"font_dir"`
		ThemePath string `yaml:"theme_path"`
	} `yaml:"pdf"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	c.OutputDir = "."
	c.OutputFile = "transcribrr_output.pdf"
	c.AutoMode = false

	c.YouTube.APIKey = ""
	c.YouTube.MaxVideos = 25

	c.Fetch.DelaySeconds = 1
	c.Fetch.TimeoutSeconds = 20
	c.Fetch.MaxBodyMB = 20

	c.Pipeline.AssembleMode = "flat"

	c.Format = "original"

	c.Gemini.APIKey = ""
	c.Gemini.Model = "models/gemini-pro-latest"

	c.PDF.Style = ""
	c.PDF.FontDir = "fonts"
	c.PDF.ThemePath = ""

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "transcribrr.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	// lire le YAML brut et déserialiser dans cfg (les champs présents écraseront les defaults)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		// re-normaliser au cas où la migration a modifié des valeurs
		cfg.normalizeConfig()
	}

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	// lire l'asset embarqué via assets.Embedded et DefaultConfigAsset
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// s'assurer que le dossier parent existe
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	// log utile pour le debugging
	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = filepath.Clean(c.OutputDir)
	c.PDF.FontDir = filepath.Clean(c.PDF.FontDir)

	c.OutputFile = strings.TrimSpace(c.OutputFile)
	if c.OutputFile == "" {
		c.OutputFile = "transcribrr_output.pdf"
	}
	if !strings.HasSuffix(strings.ToLower(c.OutputFile), ".pdf") {
		c.OutputFile += ".pdf"
	}

	// Trim and normalize strings
	c.Format = strings.TrimSpace(strings.ToLower(c.Format))
	if c.Format == "" {
		c.Format = "original"
	}
	c.Pipeline.AssembleMode = strings.TrimSpace(strings.ToLower(c.Pipeline.AssembleMode))
	if c.Pipeline.AssembleMode == "" {
		c.Pipeline.AssembleMode = "flat"
	}
	c.PDF.Style = strings.TrimSpace(strings.ToLower(c.PDF.Style))

	c.Gemini.Model = strings.TrimSpace(c.Gemini.Model)
	if c.Gemini.Model == "" {
		c.Gemini.Model = "models/gemini-pro-latest"
	}

	if c.YouTube.MaxVideos <= 0 {
		c.YouTube.MaxVideos = 25
	}
	if c.Fetch.DelaySeconds < 0 {
		c.Fetch.DelaySeconds = 1
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		c.Fetch.TimeoutSeconds = 20
	}
	if c.Fetch.MaxBodyMB <= 0 {
		c.Fetch.MaxBodyMB = 20
	}
}

// YouTubeKey retourne la clé Data API : config d'abord, sinon
// la variable d'environnement YOUTUBE_API_KEY.
func (c *Config) YouTubeKey() string {
	if k := strings.TrimSpace(c.YouTube.APIKey); k != "" {
		return k
	}
	return strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY"))
}

// GeminiKey retourne la clé Gemini : config d'abord, sinon
// la variable d'environnement GEMINI_API_KEY.
func (c *Config) GeminiKey() string {
	if k := strings.TrimSpace(c.Gemini.APIKey); k != "" {
		return k
	}
	return strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
}

// FetchTimeout retourne le timeout réseau sous forme typée.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// FetchDelay retourne la pause entre deux récupérations de transcript.
func (c *Config) FetchDelay() time.Duration {
	return time.Duration(c.Fetch.DelaySeconds) * time.Second
}

// MaxBodyBytes retourne la taille maximale d'une réponse HTTP en octets.
func (c *Config) MaxBodyBytes() int64 {
	return int64(c.Fetch.MaxBodyMB) * 1024 * 1024
}

// OutputFormat décode la clé format.
func (c *Config) OutputFormat() (model.Format, error) {
	return model.ParseFormat(c.Format)
}

// RenderStyle décode pdf.style. Vide => style déduit du format.
func (c *Config) RenderStyle(f model.Format) (model.RenderStyle, error) {
	if c.PDF.Style == "" {
		return f.RenderStyle(), nil
	}
	return model.ParseRenderStyle(c.PDF.Style)
}

// AssembleMode décode pipeline.assemble_mode.
func (c *Config) AssembleMode() (model.AssembleMode, error) {
	return model.ParseAssembleMode(c.Pipeline.AssembleMode)
}

// OutputPath retourne le chemin complet du PDF de sortie.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.OutputFile)
}
