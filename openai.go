package md2deck

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAITextGenerator implements textGenerator using the official
// openai-go SDK (chat completions).
type openAITextGenerator struct {
	model string
	opts  []option.RequestOption
}

func newOpenAITextGenerator(apiKey, baseURL, model string) (*openAITextGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if model == "" {
		return nil, errors.New("text model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &openAITextGenerator{model: model, opts: opts}, nil
}

func (g *openAITextGenerator) GenerateText(ctx context.Context, system, user string) (string, error) {
	client := openai.NewClient(g.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// openAIImageGenerator implements imageGenerator using the openai-go
// images API with a base64 response payload.
type openAIImageGenerator struct {
	model string
	opts  []option.RequestOption
}

func newOpenAIImageGenerator(apiKey, baseURL, model string) (*openAIImageGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if model == "" {
		return nil, errors.New("image model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &openAIImageGenerator{model: model, opts: opts}, nil
}

func (g *openAIImageGenerator) GenerateImage(ctx context.Context, prompt, size string) ([]byte, error) {
	client := openai.NewClient(g.opts...)

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		Model:          openai.ImageModel(g.model),
		Size:           openai.ImageGenerateParamsSize(size),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
		N:              openai.Int(1),
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, ErrNoImagePayload
	}

	payload, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decoding image payload: %w", err)
	}
	return payload, nil
}
