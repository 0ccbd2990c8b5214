// Package openai implements imagegen.Generator on OpenAI's image API.
package openai

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/Adefolalu/clinkers/internal/imagegen"
)

var _ imagegen.Generator = &generator{}

const defaultModel = openai.ImageModelDallE3

type generator struct {
	client openai.Client
	model  openai.ImageModel
}

// New creates a new OpenAI-backed Generator. model may be empty to use the
// default.
func New(apiKey, model string) (imagegen.Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	return &generator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.ImageModel(model),
	}, nil
}

// Generate renders one square image for the prompt.
func (g *generator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		Model:          g.model,
		N:              openai.Int(1),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
		Size:           openai.ImageGenerateParamsSize1024x1024,
	})
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, imagegen.ErrNoImage
	}

	b, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}

	return b, nil
}

// Ping checks the key by fetching the model's metadata.
func (g *generator) Ping(ctx context.Context) error {
	if _, err := g.client.Models.Get(ctx, string(g.model)); err != nil {
		return fmt.Errorf("image api is unavailable: %w", err)
	}
	return nil
}
