package suggest

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const systemInstruction = "Tu es directeur artistique. Tu proposes des identités de marque cohérentes. " +
	"Réponds uniquement avec un objet JSON valide, sans texte autour."

type gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Generator backed by the Gemini API. Answers are
// requested as application/json.
func NewGemini(ctx context.Context, apiKey, model string) (Generator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create genai client: %w", err)
	}

	return &gemini{client: client, model: model}, nil
}

func (g *gemini) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       genai.Ptr[float32](0.9),
	})
	if err != nil {
		return "", fmt.Errorf("could not generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", errors.New("empty generation")
	}

	return text, nil
}
