package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestExportDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/a.txt.tmpl":     {Data: []byte("prompt A")},
		"templates/sub/b.txt.tmpl": {Data: []byte("prompt B")},
	}
	dest := t.TempDir()

	status, err := ExportDefaults(fsys, "templates", dest, false)
	if err != nil {
		t.Fatalf("ExportDefaults: %v", err)
	}
	if status["templates/a.txt.tmpl"] != "written" {
		t.Errorf("status a = %q, want written", status["templates/a.txt.tmpl"])
	}

	got, err := os.ReadFile(filepath.Join(dest, "sub", "b.txt.tmpl"))
	if err != nil {
		t.Fatalf("lecture fichier exporté : %v", err)
	}
	if string(got) != "prompt B" {
		t.Errorf("contenu = %q", got)
	}

	// deuxième passe : rien ne change
	status, err = ExportDefaults(fsys, "templates", dest, false)
	if err != nil {
		t.Fatalf("ExportDefaults (2e passe) : %v", err)
	}
	if status["templates/a.txt.tmpl"] != "unchanged" {
		t.Errorf("status a (2e passe) = %q, want unchanged", status["templates/a.txt.tmpl"])
	}

	// fichier modifié localement, sans force : on ne touche pas
	local := filepath.Join(dest, "a.txt.tmpl")
	if err := os.WriteFile(local, []byte("edited"), 0o644); err != nil {
		t.Fatal(err)
	}
	status, err = ExportDefaults(fsys, "templates", dest, false)
	if err != nil {
		t.Fatalf("ExportDefaults (3e passe) : %v", err)
	}
	if status["templates/a.txt.tmpl"] != "skipped (different)" {
		t.Errorf("status a (3e passe) = %q, want skipped (different)", status["templates/a.txt.tmpl"])
	}

	// avec force : backup puis écrasement
	status, err = ExportDefaults(fsys, "templates", dest, true)
	if err != nil {
		t.Fatalf("ExportDefaults (force) : %v", err)
	}
	if status["templates/a.txt.tmpl"] != "overwritten" {
		t.Errorf("status a (force) = %q, want overwritten", status["templates/a.txt.tmpl"])
	}
	got, _ = os.ReadFile(local)
	if string(got) != "prompt A" {
		t.Errorf("contenu après force = %q", got)
	}
}

func TestEnsureConfigPresent(t *testing.T) {
	fsys := fstest.MapFS{
		"example.yaml": {Data: []byte("output_dir: .\n")},
	}
	dir := t.TempDir()
	dst := filepath.Join(dir, "conf", "transcribrr.yaml")

	if err := EnsureConfigPresent(dst, fsys, "example.yaml"); err != nil {
		t.Fatalf("EnsureConfigPresent: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("lecture config créée : %v", err)
	}
	if string(got) != "output_dir: .\n" {
		t.Errorf("contenu = %q", got)
	}

	// idempotent : un fichier existant n'est jamais remplacé
	if err := os.WriteFile(dst, []byte("local"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureConfigPresent(dst, fsys, "example.yaml"); err != nil {
		t.Fatalf("EnsureConfigPresent (2e passe) : %v", err)
	}
	got, _ = os.ReadFile(dst)
	if string(got) != "local" {
		t.Errorf("le fichier local a été remplacé : %q", got)
	}
}
