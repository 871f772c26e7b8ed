package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"shopmate/internal/domain"
)

type geminiClient struct {
	client *genai.Client
}

// NewGeminiFactory builds per-credential Gemini API clients.
func NewGeminiFactory() ClientFactory {
	return func(ctx context.Context, key string) (Client, error) {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		return &geminiClient{client: client}, nil
	}
}

// Only block high-severity content; the kiosk talks groceries, anything
// stricter produces spurious refusals on Arabic colloquialisms.
func safetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	out := make([]*genai.SafetySetting, 0, len(categories))
	for _, cat := range categories {
		out = append(out, &genai.SafetySetting{
			Category:  cat,
			Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
		})
	}
	return out
}

func (g *geminiClient) Generate(ctx context.Context, model string, transcript []domain.Message) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
		ResponseMIMEType:  "application/json",
		SafetySettings:    safetySettings(),
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents(transcript), cfg)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}
	return text, nil
}

// contents translates the transcript into the role-alternating wire shape:
// the customer maps to the user role, everything else to the model role.
func contents(transcript []domain.Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(transcript))
	for _, m := range transcript {
		role := "model"
		if m.Sender == domain.SenderUser {
			role = "user"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Text}},
		})
	}
	return out
}
