package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "a", "b", "out.txt")

	if err := WriteFileAtomic(dest, []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("lecture: %v", err)
	}
	if string(got) != "data" {
		t.Errorf("contenu = %q", got)
	}
	// aucun fichier temporaire ne doit traîner
	entries, _ := os.ReadDir(filepath.Dir(dest))
	if len(entries) != 1 {
		t.Errorf("%d entrées dans le dossier, want 1", len(entries))
	}
}

func TestSaveDocumentAtomicCollisions(t *testing.T) {
	dir := t.TempDir()

	p1, err := SaveDocumentAtomic(dir, "doc", ".pdf", []byte("one"), false)
	if err != nil {
		t.Fatalf("première écriture : %v", err)
	}
	if filepath.Base(p1) != "doc.pdf" {
		t.Errorf("p1 = %q", p1)
	}

	p2, err := SaveDocumentAtomic(dir, "doc", ".pdf", []byte("two"), false)
	if err != nil {
		t.Fatalf("deuxième écriture : %v", err)
	}
	if filepath.Base(p2) != "doc_1.pdf" {
		t.Errorf("p2 = %q, want doc_1.pdf", p2)
	}

	// overwrite=true écrase le fichier d'origine
	p3, err := SaveDocumentAtomic(dir, "doc", ".pdf", []byte("three"), true)
	if err != nil {
		t.Fatalf("troisième écriture : %v", err)
	}
	if p3 != p1 {
		t.Errorf("p3 = %q, want %q", p3, p1)
	}
	got, _ := os.ReadFile(p1)
	if string(got) != "three" {
		t.Errorf("contenu après overwrite = %q", got)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "untitled"},
		{"hello: world", "Hello- world"},
		{`a<b>c?d`, "A b c d"},
		{"trailing...", "Trailing"},
		{"   spaced    out   ", "Spaced out"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
