// Package gemini implements knowledgebase.Generator with Google's Gemini API.
package gemini

import (
	"checkups/pkg/knowledgebase"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is used when Options.Model is empty.
const DefaultModel = "models/gemini-1.5-pro"

var ErrEmptyAnswer = errors.New("model returned no answer")

type Options struct {
	APIKey      string
	Model       string
	Temperature *float32
}

type Generator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// Ensure Generator conforms to the knowledgebase.Generator interface at compile time.
var _ knowledgebase.Generator = (*Generator)(nil)

func New(ctx context.Context, opts Options) (*Generator, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("could not create gemini client: %w", err)
	}

	name := opts.Model
	if name == "" {
		name = DefaultModel
	}
	model := client.GenerativeModel(name)
	if opts.Temperature != nil {
		model.SetTemperature(*opts.Temperature)
	}

	return &Generator{client: client, model: model}, nil
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("could not generate content: %w", err)
	}

	return answerText(resp)
}

func (g *Generator) Close() error {
	return g.client.Close()
}

// answerText concatenates the text parts of the first candidate.
func answerText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyAnswer
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return sb.String(), nil
}
