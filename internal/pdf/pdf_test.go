package pdf

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/patrickprogramme/transcribrr/pkg/model"
)

func TestNewSelectsRenderer(t *testing.T) {
	r, err := New(model.RenderBasic, Options{FontDir: "fonts"})
	if err != nil {
		t.Fatalf("New(basic): %v", err)
	}
	if _, ok := r.(*basicRenderer); !ok {
		t.Errorf("got %T, want *basicRenderer", r)
	}

	r, err = New(model.RenderStyled, Options{ThemeCSS: []byte("body{}")})
	if err != nil {
		t.Fatalf("New(styled): %v", err)
	}
	if _, ok := r.(*styledRenderer); !ok {
		t.Errorf("got %T, want *styledRenderer", r)
	}

	if _, err := New(model.RenderStyle("weird"), Options{}); err == nil {
		t.Error("style inconnu : want error, got nil")
	}
}

func TestBasicRenderFailsWithoutFonts(t *testing.T) {
	r := newBasicRenderer(t.TempDir())
	_, err := r.Render(context.Background(), []model.ProcessedDocument{
		{Title: "Video: x", Content: "hello"},
	})
	if err == nil {
		t.Fatal("polices absentes : want error, got nil")
	}
	if !strings.Contains(err.Error(), "DejaVuSans.ttf") {
		t.Errorf("l'erreur devrait nommer la police manquante : %v", err)
	}
}

func TestInlineRunsKeepBold(t *testing.T) {
	r := newBasicRenderer("")
	src := []byte("intro **key point** outro")
	root := r.md.Parser().Parse(gmtext.NewReader(src))

	runs := inlineRuns(root.FirstChild(), src)
	if len(runs) == 0 {
		t.Fatal("aucun segment produit")
	}

	var all, boldOnly strings.Builder
	for _, run := range runs {
		all.WriteString(run.text)
		if run.bold {
			boldOnly.WriteString(run.text)
		}
	}
	if got := all.String(); got != "intro key point outro" {
		t.Errorf("texte aplati = %q, want %q", got, "intro key point outro")
	}
	if got := boldOnly.String(); got != "key point" {
		t.Errorf("segments gras = %q, want %q", got, "key point")
	}
}

// La mise en page directe doit passer tous les types de bloc sans mettre
// le document en erreur (police de base du moteur, pas de fichier requis).
func TestBasicChapterBodyWritesMarkup(t *testing.T) {
	r := newBasicRenderer("")
	r.family = "helvetica"

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	r.chapterBody(doc, "### Heading\n\nA **bold** claim.\n\n* first\n* second\n\n1. one\n2. two\n\n---\n\ntail")
	if doc.Err() {
		t.Fatalf("document en erreur : %v", doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("pdf vide")
	}
}

// Si l'interprétation du markup échoue, la section est réécrite en texte
// brut et le document reste produit.
func TestBasicChapterBodyFallsBackToPlainText(t *testing.T) {
	r := newBasicRenderer("")
	r.family = "helvetica"
	r.markup = func(*fpdf.Fpdf, string) error {
		return errors.New("interprétation refusée")
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	r.chapterBody(doc, "contenu * mal ** forme")
	if doc.Err() {
		t.Fatalf("le repli texte brut ne doit pas mettre le document en erreur : %v", doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("pdf vide")
	}
}

func TestStyledBuildHTML(t *testing.T) {
	r := newStyledRenderer([]byte(".video-section{page-break-before:always}"))

	docs := []model.ProcessedDocument{
		{Title: "Video: First <One>", Content: "Part 1: Intro\nplain text"},
		{Title: "Video: Second", Content: "more text"},
	}

	html, err := r.buildHTML(docs)
	if err != nil {
		t.Fatalf("buildHTML: %v", err)
	}

	if got := strings.Count(html, `<div class="video-section">`); got != 2 {
		t.Errorf("%d sections video, want 2", got)
	}
	// le préfixe "Video: " est retiré du titre, le HTML est échappé
	if !strings.Contains(html, "<h1>First &lt;One&gt;</h1>") {
		t.Errorf("titre manquant ou mal échappé dans :\n%s", html)
	}
	// la reconstruction promeut les en-têtes "Part N:" avant conversion
	if !strings.Contains(html, "<h3>Part 1: Intro</h3>") {
		t.Errorf("en-tête Part non promu dans :\n%s", html)
	}
	if !strings.Contains(html, "page-break-before:always") {
		t.Error("thème CSS absent du document")
	}
	if !strings.Contains(html, "<title>Transcribrr Summary</title>") {
		t.Error("titre du document absent")
	}
}

func TestHeadingSize(t *testing.T) {
	if headingSize(1) <= headingSize(2) || headingSize(2) <= headingSize(3) {
		t.Error("les tailles de titre doivent décroître avec le niveau")
	}
	if headingSize(6) != 12 {
		t.Errorf("headingSize(6) = %v, want 12", headingSize(6))
	}
}
