package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"easynote/pkg/log"
)

type geminiImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
	l          log.Logger
}

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
		l:          cfg.Logger,
	}
}

// relaxedSafetySettings disables blocking on all categories. Productivity
// content ("kill the old draft", medical reminders, ...) trips the default
// thresholds often enough to matter.
var relaxedSafetySettings = []geminiSafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_NONE"},
}

// GenerateText sends a text prompt to the Gemini API.
func (g *geminiImpl) GenerateText(ctx context.Context, prompt string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &geminiGenerationConfig{ResponseMimeType: "application/json"},
		SafetySettings:   relaxedSafetySettings,
	}
	return g.callAPI(ctx, req)
}

// GenerateAudio sends an inline audio payload plus an instruction prompt.
func (g *geminiImpl) GenerateAudio(ctx context.Context, audioBase64, mimeType, prompt string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{
				{InlineData: &geminiInlineData{MimeType: mimeType, Data: audioBase64}},
				{Text: prompt},
			}},
		},
		GenerationConfig: &geminiGenerationConfig{ResponseMimeType: "application/json"},
		SafetySettings:   relaxedSafetySettings,
	}
	return g.callAPI(ctx, req)
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// callAPI posts the request, retrying exactly once against the alias API
// version path (/v1beta <-> /v1) when the primary path fails. Some
// Gemini-compatible proxies serve only one of the two version segments.
func (g *geminiImpl) callAPI(ctx context.Context, req geminiRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	text, err := g.doRequest(ctx, g.apiURL, body)
	if err == nil {
		return text, nil
	}

	altURL := alternatePath(g.apiURL)
	if altURL == g.apiURL {
		return "", err
	}

	text, altErr := g.doRequest(ctx, altURL, body)
	if altErr != nil {
		return "", fmt.Errorf("gemini: primary path failed (%v), alternate path failed: %w", err, altErr)
	}

	// A rescued request means the configured URL serves the wrong API
	// version. Keep it visible instead of paying the extra round trip
	// silently on every call.
	if g.l != nil {
		g.l.Warnf(ctx, "gemini: primary path %s failed (%v), alternate path %s succeeded", g.apiURL, err, altURL)
	}
	return text, nil
}

func (g *geminiImpl) doRequest(ctx context.Context, baseURL string, body []byte) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", baseURL, g.model, g.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return extractText(&result)
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *geminiResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: empty response, no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}

// alternatePath swaps the API version segment of the endpoint.
func alternatePath(apiURL string) string {
	trimmed := strings.TrimSuffix(apiURL, "/")
	switch {
	case strings.HasSuffix(trimmed, "/v1beta"):
		return strings.TrimSuffix(trimmed, "/v1beta") + "/v1"
	case strings.HasSuffix(trimmed, "/v1"):
		return strings.TrimSuffix(trimmed, "/v1") + "/v1beta"
	}
	return apiURL
}
