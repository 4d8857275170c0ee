package pipeline

import (
	"regexp"
	"strings"

	"github.com/patrickprogramme/transcribrr/pkg/model"
)

// La sortie du modèle génératif arrive en prose avec des marqueurs de
// structure incohérents (titres sans ##, listes collées au texte...).
// On la répare par une liste ORDONNÉE de règles ligne/motif : chaque règle
// opère sur le texte déjà transformé par les précédentes, et aucune règle
// ne supprime du contenu (hors BOM et artefact produit). Ne pas réordonner.

// rewriteRule : une transformation nommée, testable isolément.
type rewriteRule struct {
	name  string
	apply func(string) string
}

var (
	reWatermark    = regexp.MustCompile(`\s*Transcribrr\s*`)
	rePartHeader   = regexp.MustCompile(`(?m)^(Part \d+:.*)$`)
	reLearnings    = regexp.MustCompile(`(?m)^(Learnings and Actionable Takeaways)$`)
	reLetterHeader = regexp.MustCompile(`(?m)^([A-Z]\..*)$`)
	reInlineNumber = regexp.MustCompile(`( \d+\. )`)
	reInlineBullet = regexp.MustCompile(`( \* )`)
	reJammedNumber = regexp.MustCompile(`(\S) (\d+\.)`)
	reBlankRuns    = regexp.MustCompile(`\n\n+`)
)

// rewriteRules : l'ordre est significatif.
var rewriteRules = []rewriteRule{
	{"strip-bom", func(s string) string {
		return strings.ReplaceAll(s, "\ufeff", "")
	}},
	{"drop-watermark", func(s string) string {
		// l'artefact "Transcribrr" que le modèle recopie depuis l'en-tête
		return strings.TrimSpace(reWatermark.ReplaceAllString(s, "\n"))
	}},
	{"part-header", func(s string) string {
		// "Part 1: ..." -> header niveau 3
		return rePartHeader.ReplaceAllString(s, "### $1")
	}},
	{"learnings-header", func(s string) string {
		// la section finale de l'explainer : règle horizontale + header niveau 2
		return reLearnings.ReplaceAllString(s, "\n---\n## $1")
	}},
	{"letter-header", func(s string) string {
		// "A. Core Philosophy" -> header niveau 3
		return reLetterHeader.ReplaceAllString(s, "### $1")
	}},
	{"unicode-bullet", func(s string) string {
		return strings.ReplaceAll(s, "•", "*")
	}},
	{"break-inline-numbers", func(s string) string {
		// listes numérotées écrites au fil de la prose ("... 1. Inbound 2. Outbound")
		return reInlineNumber.ReplaceAllString(s, "\n$1")
	}},
	{"break-inline-bullets", func(s string) string {
		return reInlineBullet.ReplaceAllString(s, "\n$1")
	}},
	{"break-jammed-numbers", func(s string) string {
		// item collé à la prose sans l'espace de tête ("Funnel: 2. Create...")
		return reJammedNumber.ReplaceAllString(s, "$1\n$2")
	}},
	{"collapse-blank-lines", func(s string) string {
		return reBlankRuns.ReplaceAllString(s, "\n\n")
	}},
	{"trim", strings.TrimSpace},
}

// Reconstruct applique toutes les règles dans l'ordre et retourne du markdown
// exploitable. Best-effort : on n'analyse pas la structure voulue par le
// modèle, on répare des motifs — le rendu aval doit tolérer les restes.
func Reconstruct(text string) string {
	for _, r := range rewriteRules {
		text = r.apply(text)
	}
	return text
}

// ReconstructDocument reconstruit "{title}\n{content}" puis sépare la
// première ligne comme titre affiché (préfixe "Video: " retiré).
func ReconstructDocument(title, content string) model.Section {
	cleaned := Reconstruct(title + "\n" + content)

	lines := strings.SplitN(cleaned, "\n", 2)
	displayTitle := strings.TrimSpace(strings.ReplaceAll(lines[0], "Video: ", ""))
	body := ""
	if len(lines) > 1 {
		body = lines[1]
	}
	return model.Section{Title: displayTitle, Markup: body}
}
