package aiprovider

import (
	"context"
	"fmt"

	"easynote/pkg/gemini"
	"easynote/pkg/openaichat"
)

// emptyItemsResult is the no-op payload for unsupported audio requests.
const emptyItemsResult = `{"items": []}`

// jsonSystemMessage pins OpenAI-compatible providers to strict JSON output.
const jsonSystemMessage = "你是一个任务管理助手。请严格返回 JSON 格式。"

// geminiGateway is the Gemini wire family: direct generative endpoint,
// native audio support.
type geminiGateway struct {
	id     string
	apiKey string
	client gemini.IGemini
}

func (g *geminiGateway) CallText(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%w: %s", ErrNotConfigured, g.id)
	}
	out, err := g.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", &ProviderError{Provider: g.id, Err: err}
	}
	return out, nil
}

func (g *geminiGateway) CallAudio(ctx context.Context, audioBase64, mimeType, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%w: %s", ErrNotConfigured, g.id)
	}
	out, err := g.client.GenerateAudio(ctx, audioBase64, mimeType, prompt)
	if err != nil {
		return "", &ProviderError{Provider: g.id, Err: err}
	}
	return out, nil
}

func (g *geminiGateway) Name() string        { return g.id }
func (g *geminiGateway) Model() string       { return g.client.Model() }
func (g *geminiGateway) SupportsAudio() bool { return true }

// openAIGateway is the chat-completions wire family. No audio support:
// audio calls return a well-formed empty result so callers treat it as
// a no-op, not an error.
type openAIGateway struct {
	id     string
	apiKey string
	client openaichat.IOpenAIChat
}

func (g *openAIGateway) CallText(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%w: %s", ErrNotConfigured, g.id)
	}
	out, err := g.client.ChatJSON(ctx, jsonSystemMessage, prompt)
	if err != nil {
		return "", &ProviderError{Provider: g.id, Err: err}
	}
	return out, nil
}

func (g *openAIGateway) CallAudio(ctx context.Context, audioBase64, mimeType, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%w: %s", ErrNotConfigured, g.id)
	}
	return emptyItemsResult, nil
}

func (g *openAIGateway) Name() string        { return g.id }
func (g *openAIGateway) Model() string       { return g.client.Model() }
func (g *openAIGateway) SupportsAudio() bool { return false }
