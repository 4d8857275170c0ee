package model

import "fmt"

// Format représente le format de sortie demandé par l'utilisateur.
// original = transcript nettoyé, sans IA
// brainrot = réécriture "Gen Z" via Gemini
// explainer = notes détaillées via Gemini (rendu stylé)
type Format string

const (
	FormatOriginal  Format = "original"
	FormatBrainrot  Format = "brainrot"
	FormatExplainer Format = "explainer"
)

// du format en chaine à la constante de type Format, return une erreur si format inconnu
func ParseFormat(s string) (Format, error) {
	switch s {
	case "original":
		return FormatOriginal, nil
	case "brainrot":
		return FormatBrainrot, nil
	case "explainer":
		return FormatExplainer, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

// UsesAI indique si le format nécessite un appel au modèle génératif.
func (f Format) UsesAI() bool {
	return f == FormatBrainrot || f == FormatExplainer
}

// RenderStyle retourne le style de rendu associé au format :
// seul explainer passe par le rendu stylé (reconstruit en markdown),
// les deux autres utilisent le rendu standard.
func (f Format) RenderStyle() RenderStyle {
	if f == FormatExplainer {
		return RenderStyled
	}
	return RenderBasic
}

func (f Format) String() string {
	return string(f)
}

// RenderStyle sélectionne la variante de moteur PDF.
type RenderStyle string

const (
	RenderBasic  RenderStyle = "basic"
	RenderStyled RenderStyle = "styled"
)

func ParseRenderStyle(s string) (RenderStyle, error) {
	switch s {
	case "basic":
		return RenderBasic, nil
	case "styled":
		return RenderStyled, nil
	default:
		return "", fmt.Errorf("style de rendu inconnu: %s", s)
	}
}

func (r RenderStyle) String() string {
	return string(r)
}

// AssembleMode sélectionne la stratégie d'assemblage des fragments.
// flat    = concaténer tous les fragments bruts puis normaliser une seule fois
// chunked = normaliser chaque fragment puis grouper par paquets de 4
// Les deux modes produisent des résultats différents autour des contractions
// coupées entre fragments ; on conserve les deux volontairement.
type AssembleMode string

const (
	AssembleFlat    AssembleMode = "flat"
	AssembleChunked AssembleMode = "chunked"
)

func ParseAssembleMode(s string) (AssembleMode, error) {
	switch s {
	case "flat":
		return AssembleFlat, nil
	case "chunked":
		return AssembleChunked, nil
	default:
		return "", fmt.Errorf("mode d'assemblage inconnu: %s", s)
	}
}

func (m AssembleMode) String() string {
	return string(m)
}
