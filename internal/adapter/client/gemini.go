package client

import (
	"context"
	"fmt"
	"strings"

	"timefilter-core/internal/domain/entity"

	"google.golang.org/genai"
)

// GeminiCompleter sends role-tagged prompt turns to a Gemini model and returns its text.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, projectID, location string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
}

func NewGeminiCompleter(c *genai.Client, model string) *GeminiCompleter {
	return &GeminiCompleter{client: c, model: model}
}

func (g *GeminiCompleter) Complete(ctx context.Context, turns []entity.PromptTurn) (string, error) {
	system, contents := toContents(turns)

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
	}
	if system != nil {
		config.SystemInstruction = system
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", g.model, err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", entity.ErrEmptyCompletion
	}
	return text, nil
}

// toContents splits system turns into a single system instruction and maps the
// remaining turns onto Gemini's user/model roles.
func toContents(turns []entity.PromptTurn) (*genai.Content, []*genai.Content) {
	var system []string
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		switch t.Role {
		case entity.RoleSystem:
			system = append(system, t.Content)
		case entity.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(t.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(t.Content, genai.RoleUser))
		}
	}
	if len(system) == 0 {
		return nil, contents
	}
	return genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser), contents
}
