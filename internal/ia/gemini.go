package ia

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Plafond volontairement énorme : on veut la réécriture intégrale, jamais
// une sortie tronquée par le quota de tokens.
const maxOutputTokens = 9999999

// Rewriter encapsule l'appel au modèle génératif.
type Rewriter struct {
	apiKey string
	model  string
}

func NewRewriter(apiKey, model string) *Rewriter {
	return &Rewriter{apiKey: apiKey, model: model}
}

// Rewrite envoie le texte au modèle et retourne la réécriture.
// Contrat d'erreur : en cas d'échec, le texte retourné est le message
// d'erreur ("Error calling Gemini: ...") et l'appelant le rend tel quel
// dans le document. Le lot continue, la section fautive reste lisible.
func (r *Rewriter) Rewrite(ctx context.Context, systemPrompt, text string) string {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  r.apiKey,
	})
	if err != nil {
		return fmt.Sprintf("Error calling Gemini: %v", err)
	}

	full := BuildFullPrompt(systemPrompt, text)
	contents := []*genai.Content{
		genai.NewContentFromText(full, genai.RoleUser),
	}

	response, err := client.Models.GenerateContent(ctx, r.model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: maxOutputTokens,
	})
	if err != nil {
		return fmt.Sprintf("Error calling Gemini: %v", err)
	}

	out := strings.TrimSpace(response.Text())
	if out == "" {
		return "Error calling Gemini: empty response"
	}
	return out
}
