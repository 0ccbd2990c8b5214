// Package gemini implements imagegen.Generator on Google's Imagen API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/Adefolalu/clinkers/internal/imagegen"
)

var _ imagegen.Generator = &generator{}

const defaultModel = "imagen-3.0-generate-002"

type generator struct {
	client *genai.Client
	model  string
}

// New creates a new Imagen-backed Generator. model may be empty to use the
// default.
func New(ctx context.Context, apiKey, model string) (imagegen.Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &generator{
		client: client,
		model:  model,
	}, nil
}

// Generate renders one square image for the prompt.
func (g *generator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.Models.GenerateImages(ctx, g.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/png",
		AspectRatio:    "1:1",
	})
	if err != nil {
		return nil, fmt.Errorf("imagen request failed: %w", err)
	}

	// The API returns an empty list when every candidate was filtered.
	if len(resp.GeneratedImages) == 0 ||
		resp.GeneratedImages[0].Image == nil ||
		len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, imagegen.ErrNoImage
	}

	return resp.GeneratedImages[0].Image.ImageBytes, nil
}

// Ping checks the key by fetching the model's metadata.
func (g *generator) Ping(ctx context.Context) error {
	if _, err := g.client.Models.Get(ctx, g.model, nil); err != nil {
		return fmt.Errorf("imagen is unavailable: %w", err)
	}
	return nil
}
