package vision

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"framecast/internal/domain/entity"
	"framecast/internal/domain/model"
	"framecast/pkg/logger"
)

const analysisPrompt = `Analyze this photograph and respond with a single JSON object containing:
"title" (short evocative title), "description" (one paragraph),
"mood", "timeOfDay", "composition" (compositional descriptor),
"dominantColors" and "accentColors" (arrays of hex strings),
"directionality" ({"score": number in [-1.0, 1.0], negative = leftward visual flow, "reasoning": string}),
"subjects" (array of {"label", "structural": [stable facial/body attributes], "transient": [temporary attributes]}),
"regions" (ranked regions of interest: {"box": {"x","y","width","height"} normalized to [0,1], "rank": integer starting at 1}).
Respond with JSON only.`

// Gemini implements the vision capability contract against the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Gemini{
		client:  client,
		model:   cfg.Model,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}, nil
}

// Analyze sends the image to the model and schema-validates the structured
// response before returning it. The response is untrusted input: anything
// that fails validation is rejected, never partially stored.
func (g *Gemini) Analyze(ctx context.Context, data []byte, mimeType string) (*model.Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
			{Text: analysisPrompt},
		},
	}}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, &entity.RemoteError{Service: "vision", Reason: err.Error()}
	}
	if resp == nil {
		return nil, &entity.RemoteError{Service: "vision", Reason: "empty response"}
	}

	logger.Debug("vision response received",
		"model", g.model, "duration", time.Since(start).String())

	analysis, err := ParseAnalysis(resp.Text())
	if err != nil {
		return nil, fmt.Errorf("vision response rejected: %w", err)
	}

	return analysis, nil
}
