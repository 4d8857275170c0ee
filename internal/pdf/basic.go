package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/patrickprogramme/transcribrr/pkg/model"
)

const (
	fontFamily      = "DejaVu"
	fontRegularFile = "DejaVuSans.ttf"
	fontBoldFile    = "DejaVuSans-Bold.ttf"
	lineHeight      = 10
)

// basicRenderer : mise en page directe via fpdf. Le markup est interprété
// bloc par bloc ; si l'interprétation échoue, la section est réécrite en
// texte brut plutôt que de faire échouer tout le document.
type basicRenderer struct {
	fontDir string
	family  string
	md      goldmark.Markdown

	// markup pointe sur writeMarkup ; remplaçable en test pour forcer
	// le chemin de repli.
	markup func(doc *fpdf.Fpdf, markup string) error
}

func newBasicRenderer(fontDir string) *basicRenderer {
	r := &basicRenderer{
		fontDir: fontDir,
		family:  fontFamily,
		md:      goldmark.New(),
	}
	r.markup = r.writeMarkup
	return r
}

func (r *basicRenderer) Render(ctx context.Context, docs []model.ProcessedDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// L'absence des polices est fatale : sans unicode complet le rendu
	// mutilerait le texte en silence.
	for _, name := range []string{fontRegularFile, fontBoldFile} {
		if _, err := os.Stat(filepath.Join(r.fontDir, name)); err != nil {
			return nil, fmt.Errorf("police %s introuvable dans %s : %w", name, r.fontDir, err)
		}
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddUTF8Font(r.family, "", filepath.Join(r.fontDir, fontRegularFile))
	doc.AddUTF8Font(r.family, "B", filepath.Join(r.fontDir, fontBoldFile))
	if doc.Err() {
		return nil, fmt.Errorf("chargement des polices : %w", doc.Error())
	}

	doc.SetHeaderFunc(func() {
		doc.SetFont(r.family, "B", 12)
		doc.CellFormat(0, 10, "Transcribrr 🚀", "", 1, "C", false, 0, "")
	})

	for _, d := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc.AddPage()
		r.chapterTitle(doc, d.Title)
		r.chapterBody(doc, d.Content)
	}

	if doc.Err() {
		return nil, fmt.Errorf("rendu pdf : %w", doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("écriture pdf : %w", err)
	}
	return buf.Bytes(), nil
}

func (r *basicRenderer) chapterTitle(doc *fpdf.Fpdf, title string) {
	doc.SetFont(r.family, "B", 14)
	doc.MultiCell(0, 10, title, "", "L", false)
	doc.Ln(5)
}

// chapterBody écrit le corps en interprétant le markup ; en cas de pépin
// on retombe sur le texte brut, la section reste lisible.
func (r *basicRenderer) chapterBody(doc *fpdf.Fpdf, content string) {
	if err := r.markup(doc, content); err != nil {
		doc.SetFont(r.family, "", 12)
		doc.MultiCell(0, lineHeight, content, "", "L", false)
	}
	doc.Ln(lineHeight)
}

// writeMarkup parcourt les blocs markdown de premier niveau et les pose
// dans la page. Tout panic du parcours est converti en erreur pour
// déclencher le repli texte brut.
func (r *basicRenderer) writeMarkup(doc *fpdf.Fpdf, markup string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("interprétation du markup : %v", p)
		}
	}()

	src := []byte(markup)
	root := r.md.Parser().Parse(gmtext.NewReader(src))

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		r.writeBlock(doc, n, src)
	}
	return nil
}

func (r *basicRenderer) writeBlock(doc *fpdf.Fpdf, n ast.Node, src []byte) {
	switch b := n.(type) {
	case *ast.Heading:
		size := headingSize(b.Level)
		doc.SetFont(r.family, "B", size)
		doc.MultiCell(0, lineHeight, nodeText(b, src), "", "L", false)
		doc.Ln(2)

	case *ast.List:
		r.writeList(doc, b, src)

	case *ast.ThematicBreak:
		doc.Ln(3)
		x, y := doc.GetX(), doc.GetY()
		w, _ := doc.GetPageSize()
		_, _, rightMargin, _ := doc.GetMargins()
		doc.Line(x, y, w-rightMargin, y)
		doc.Ln(5)

	default:
		// paragraphes et blocs inconnus : texte courant, gras conservé
		r.writeRuns(doc, inlineRuns(n, src))
		doc.Ln(2)
	}
}

func (r *basicRenderer) writeList(doc *fpdf.Fpdf, list *ast.List, src []byte) {
	num := list.Start
	if num == 0 {
		num = 1
	}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		doc.SetFont(r.family, "", 12)
		doc.Write(lineHeight, marker)
		r.writeRuns(doc, inlineRuns(item, src))
	}
	doc.Ln(2)
}

// writeRuns pose une suite de segments stylés au fil de la ligne puis
// termine la ligne courante.
func (r *basicRenderer) writeRuns(doc *fpdf.Fpdf, runs []inlineRun) {
	for _, run := range runs {
		style := ""
		if run.bold {
			style = "B"
		}
		doc.SetFont(r.family, style, 12)
		doc.Write(lineHeight, run.text)
	}
	doc.Ln(lineHeight)
}

func headingSize(level int) float64 {
	switch level {
	case 1:
		return 18
	case 2:
		return 16
	case 3:
		return 14
	default:
		return 12
	}
}

// inlineRun : un segment de texte en ligne et son style.
type inlineRun struct {
	text string
	bold bool
}

// inlineRuns aplatit le sous-arbre en segments stylés. L'emphase forte
// (niveau 2, **texte**) devient grasse ; l'emphase simple reste en romain,
// seule la variante B de la police est chargée.
func inlineRuns(n ast.Node, src []byte) []inlineRun {
	var runs []inlineRun
	bold := 0
	emit := func(s string) {
		if s == "" {
			return
		}
		runs = append(runs, inlineRun{text: s, bold: bold > 0})
	}
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		switch t := c.(type) {
		case *ast.Emphasis:
			if t.Level >= 2 {
				if entering {
					bold++
				} else {
					bold--
				}
			}
		case *ast.Text:
			if entering {
				emit(string(t.Segment.Value(src)))
				if t.SoftLineBreak() || t.HardLineBreak() {
					emit(" ")
				}
			}
		case *ast.String:
			if entering {
				emit(string(t.Value))
			}
		}
		return ast.WalkContinue, nil
	})
	return runs
}

// nodeText aplatit le sous-arbre en texte simple (les retours à la ligne
// doux deviennent des espaces).
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
