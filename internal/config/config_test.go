package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transcribrr.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("le fichier de config par défaut n'a pas été créé : %v", err)
	}

	if cfg.OutputFile != "transcribrr_output.pdf" {
		t.Errorf("OutputFile = %q, want transcribrr_output.pdf", cfg.OutputFile)
	}
	if cfg.YouTube.MaxVideos != 25 {
		t.Errorf("MaxVideos = %d, want 25", cfg.YouTube.MaxVideos)
	}
	if cfg.Gemini.Model != "models/gemini-pro-latest" {
		t.Errorf("Gemini.Model = %q", cfg.Gemini.Model)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Errorf("ConfigVersion = %d, want %d", cfg.ConfigVersion, CurrentConfigVersion)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transcribrr.yaml")
	yaml := `
output_dir: "out"
output_file: "notes"
format: "EXPLAINER"
pipeline:
  assemble_mode: "chunked"
youtube:
  max_videos: 5
fetch:
  delay_seconds: 2
config_version: 1
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// ".pdf" est ajouté automatiquement
	if cfg.OutputFile != "notes.pdf" {
		t.Errorf("OutputFile = %q, want notes.pdf", cfg.OutputFile)
	}
	if got := cfg.OutputPath(); got != filepath.Join("out", "notes.pdf") {
		t.Errorf("OutputPath = %q", got)
	}
	// le format est normalisé en minuscules
	if cfg.Format != "explainer" {
		t.Errorf("Format = %q, want explainer", cfg.Format)
	}
	f, err := cfg.OutputFormat()
	if err != nil {
		t.Fatalf("OutputFormat: %v", err)
	}
	style, err := cfg.RenderStyle(f)
	if err != nil {
		t.Fatalf("RenderStyle: %v", err)
	}
	if style.String() != "styled" {
		t.Errorf("style dérivé = %q, want styled", style)
	}
	mode, err := cfg.AssembleMode()
	if err != nil {
		t.Fatalf("AssembleMode: %v", err)
	}
	if mode.String() != "chunked" {
		t.Errorf("mode = %q, want chunked", mode)
	}
	if cfg.YouTube.MaxVideos != 5 {
		t.Errorf("MaxVideos = %d, want 5", cfg.YouTube.MaxVideos)
	}
	if cfg.Fetch.DelaySeconds != 2 {
		t.Errorf("DelaySeconds = %d, want 2", cfg.Fetch.DelaySeconds)
	}
	// les valeurs absentes gardent les defaults
	if cfg.Fetch.TimeoutSeconds != 20 {
		t.Errorf("TimeoutSeconds = %d, want 20 (default)", cfg.Fetch.TimeoutSeconds)
	}
}

func TestKeysFallBackToEnv(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "transcribrr.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	t.Setenv("YOUTUBE_API_KEY", "yt-env")
	t.Setenv("GEMINI_API_KEY", "gm-env")

	if got := cfg.YouTubeKey(); got != "yt-env" {
		t.Errorf("YouTubeKey = %q, want yt-env", got)
	}
	if got := cfg.GeminiKey(); got != "gm-env" {
		t.Errorf("GeminiKey = %q, want gm-env", got)
	}

	// la valeur explicite de la config prime sur l'environnement
	cfg.Gemini.APIKey = "gm-cfg"
	if got := cfg.GeminiKey(); got != "gm-cfg" {
		t.Errorf("GeminiKey = %q, want gm-cfg", got)
	}
}
