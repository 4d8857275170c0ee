package pdf

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/yuin/goldmark"

	"github.com/patrickprogramme/transcribrr/internal/pipeline"
	"github.com/patrickprogramme/transcribrr/pkg/model"
)

// styledRenderer : chaque document est d'abord reconstruit en markdown
// propre, converti en HTML, habillé du thème CSS puis imprimé par un
// Chrome headless. Aucun repli : si l'environnement ne fournit pas de
// navigateur, l'erreur remonte telle quelle.
type styledRenderer struct {
	themeCSS []byte
	md       goldmark.Markdown
}

func newStyledRenderer(themeCSS []byte) *styledRenderer {
	return &styledRenderer{
		themeCSS: themeCSS,
		md:       goldmark.New(),
	}
}

func (r *styledRenderer) Render(ctx context.Context, docs []model.ProcessedDocument) ([]byte, error) {
	htmlDoc, err := r.buildHTML(docs)
	if err != nil {
		return nil, err
	}
	return r.printToPDF(ctx, htmlDoc)
}

// buildHTML reconstruit chaque section puis concatène le tout dans un
// document unique. Les .video-section forcent un saut de page chacune
// (voir le thème CSS), sauf la première.
func (r *styledRenderer) buildHTML(docs []model.ProcessedDocument) (string, error) {
	var body strings.Builder
	for _, d := range docs {
		section := pipeline.ReconstructDocument(d.Title, d.Content)

		var converted bytes.Buffer
		if err := r.md.Convert([]byte(section.Markup), &converted); err != nil {
			return "", fmt.Errorf("conversion markdown de %q : %w", section.Title, err)
		}

		body.WriteString(`<div class="video-section"><h1>`)
		body.WriteString(html.EscapeString(section.Title))
		body.WriteString(`</h1>`)
		body.Write(converted.Bytes())
		body.WriteString(`</div>`)
	}

	var doc strings.Builder
	doc.WriteString("<html>\n<head>\n<meta charset=\"UTF-8\">\n<title>Transcribrr Summary</title>\n<style>\n")
	doc.Write(r.themeCSS)
	doc.WriteString("\n</style>\n</head>\n<body>\n")
	doc.WriteString(body.String())
	doc.WriteString("\n</body>\n</html>")
	return doc.String(), nil
}

func (r *styledRenderer) printToPDF(ctx context.Context, htmlDoc string) ([]byte, error) {
	launchURL, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("lancement du navigateur headless : %w", err)
	}

	browser := rod.New().ControlURL(launchURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connexion au navigateur headless : %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("ouverture de la page : %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(htmlDoc); err != nil {
		return nil, fmt.Errorf("injection du document : %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("chargement du document : %w", err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("impression pdf : %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("lecture du flux pdf : %w", err)
	}
	return data, nil
}
