package model

// Video identifie une vidéo retournée par la recherche de chaîne.
type Video struct {
	ID    string `json:"video_id"`
	Title string `json:"title"`
}

// URL retourne l'URL de visionnage de la vidéo.
func (v Video) URL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// Fragment est l'unité atomique produite par le service de transcript :
// un bout de texte brut avec son timing. Immutable, consommé une seule
// fois par l'assembleur.
type Fragment struct {
	Text       string
	StartMs    int64
	DurationMs int64
}

// ProcessedDocument : contenu final d'une vidéo, après l'éventuelle
// réécriture IA. Content peut être du texte normalisé brut ou la sortie
// du modèle (prose peu structurée).
type ProcessedDocument struct {
	Title   string
	Content string
}

// Section : contenu prêt pour le rendu, après reconstruction markdown.
// Markup est du markdown valide (headers, listes, règles horizontales).
type Section struct {
	Title  string
	Markup string
}
