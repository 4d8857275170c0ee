package assets

import "embed"

//go:embed transcribrr.example.yaml
//go:embed theme.css
//go:embed templates/*tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "transcribrr.example.yaml"

// Thème CSS par défaut pour le rendu "styled" (chemin DANS Embedded)
const DefaultThemeAsset = "theme.css"

// PromptByName donne un accès par clé aux prompts embarqués.
// Ce sont des chemins relatifs DANS Embedded.
var PromptByName = map[string]string{
	"brainrot":  "templates/brainrot_prompt.txt.tmpl",
	"explainer": "templates/explainer_prompt.txt.tmpl",
}
