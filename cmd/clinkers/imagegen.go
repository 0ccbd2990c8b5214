package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Adefolalu/clinkers/internal/imagegen"
	"github.com/Adefolalu/clinkers/internal/imagegen/gemini"
	"github.com/Adefolalu/clinkers/internal/imagegen/openai"
)

type ImageGenOpts struct {
	ImageGenBackend string `long:"imagegen.backend" env:"IMAGEGEN_BACKEND" default:"gemini" description:"image generation backend" choice:"gemini" choice:"openai"`
	ImageGenAPIKey  string `long:"imagegen.api-key" env:"IMAGEGEN_API_KEY" description:"image generation api key"`
	ImageGenModel   string `long:"imagegen.model" env:"IMAGEGEN_MODEL" default:"" description:"image generation model, empty for the backend's default"`
}

func mustGetImageGenerator() imagegen.Generator {
	var (
		ig  imagegen.Generator
		err error
	)

	switch opts.ImageGenBackend {
	case "openai":
		ig, err = openai.New(opts.ImageGenAPIKey, opts.ImageGenModel)
	default:
		ig, err = gemini.New(context.Background(), opts.ImageGenAPIKey, opts.ImageGenModel)
	}
	if err != nil {
		logrus.WithError(err).Fatal("failed to create image generator")
	}

	return ig
}
