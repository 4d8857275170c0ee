// Package pipeline contient le cœur du traitement texte : normalisation des
// fragments de transcript, assemblage en paragraphes, et reconstruction
// markdown de la sortie IA. Tout est pur (string -> string), sans I/O.
package pipeline

import (
	"regexp"
	"strings"
)

// contractionRule : une substitution regex indépendante. Les règles sont
// appliquées dans l'ordre de la table, chacune sur la chaîne déjà modifiée
// par les précédentes — l'ordre fait partie du contrat.
type contractionRule struct {
	re   *regexp.Regexp
	repl string
}

// contractions : table ordonnée des réparations de contractions.
// Les transcripts auto de YouTube perdent les apostrophes ("dont", "hes"...).
// La première règle remet la majuscule sur le "i" isolé (suivi d'un espace).
var contractions = []contractionRule{
	{regexp.MustCompile(`(?i)\bi\s+`), "I "},
	{regexp.MustCompile(`(?i)\bim\b`), "I'm"},
	{regexp.MustCompile(`(?i)\bid\b`), "I'd"},
	{regexp.MustCompile(`(?i)\bive\b`), "I've"},
	{regexp.MustCompile(`(?i)\byoure\b`), "you're"},
	{regexp.MustCompile(`(?i)\byouve\b`), "you've"},
	{regexp.MustCompile(`(?i)\bhes\b`), "he's"},
	{regexp.MustCompile(`(?i)\bshes\b`), "she's"},
	{regexp.MustCompile(`(?i)\bits\b`), "it's"},
	{regexp.MustCompile(`(?i)\btheyre\b`), "they're"},
	{regexp.MustCompile(`(?i)\btheyve\b`), "they've"},
	{regexp.MustCompile(`(?i)\bweve\b`), "we've"},
	{regexp.MustCompile(`(?i)\bwere\b`), "we're"},
	{regexp.MustCompile(`(?i)\bdont\b`), "don't"},
	{regexp.MustCompile(`(?i)\bwont\b`), "won't"},
	{regexp.MustCompile(`(?i)\bcant\b`), "can't"},
	{regexp.MustCompile(`(?i)\bisnt\b`), "isn't"},
	{regexp.MustCompile(`(?i)\bwasnt\b`), "wasn't"},
	{regexp.MustCompile(`(?i)\barent\b`), "aren't"},
	{regexp.MustCompile(`(?i)\bdidnt\b`), "didn't"},
	{regexp.MustCompile(`(?i)\bdoesnt\b`), "doesn't"},
	{regexp.MustCompile(`(?i)\bhavent\b`), "haven't"},
	{regexp.MustCompile(`(?i)\bhasnt\b`), "hasn't"},
	{regexp.MustCompile(`(?i)\bhadnt\b`), "hadn't"},
	{regexp.MustCompile(`(?i)\bwouldnt\b`), "wouldn't"},
	{regexp.MustCompile(`(?i)\bshouldnt\b`), "shouldn't"},
	{regexp.MustCompile(`(?i)\bcouldnt\b`), "couldn't"},
	{regexp.MustCompile(`(?i)\bthats\b`), "that's"},
	{regexp.MustCompile(`(?i)\bwhats\b`), "what's"},
	{regexp.MustCompile(`(?i)\bwheres\b`), "where's"},
}

var (
	reSpaceBeforePunct = regexp.MustCompile(`\s+([,.!?])`)
	rePunctThenWord    = regexp.MustCompile(`([,.!?])(\w)`)
)

// Normalize nettoie un texte brut de transcript :
//  1. réduit toute séquence d'espaces à un seul espace, trim aux extrémités
//  2. applique la table de contractions dans l'ordre
//  3. supprime les espaces devant , . ! ?
//  4. insère un espace après , . ! ? quand un caractère de mot suit
//
// Fonction pure, idempotente. Pas d'erreur possible.
func Normalize(text string) string {
	text = strings.TrimSpace(strings.Join(strings.Fields(text), " "))

	for _, c := range contractions {
		text = c.re.ReplaceAllString(text, c.repl)
	}

	text = reSpaceBeforePunct.ReplaceAllString(text, "$1")
	text = rePunctThenWord.ReplaceAllString(text, "$1 $2")
	return text
}
