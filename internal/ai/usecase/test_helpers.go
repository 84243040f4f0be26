package usecase

import (
	"context"

	"easynote/config"
	"easynote/pkg/aiprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock gateway with injectable call behavior
type mockGateway struct {
	textFunc  func(ctx context.Context, prompt string) (string, error)
	audioFunc func(ctx context.Context, audioBase64, mimeType, prompt string) (string, error)
}

func (m *mockGateway) CallText(ctx context.Context, prompt string) (string, error) {
	if m.textFunc != nil {
		return m.textFunc(ctx, prompt)
	}
	return "", nil
}

func (m *mockGateway) CallAudio(ctx context.Context, audioBase64, mimeType, prompt string) (string, error) {
	if m.audioFunc != nil {
		return m.audioFunc(ctx, audioBase64, mimeType, prompt)
	}
	return "", nil
}

func (m *mockGateway) Name() string        { return "mock" }
func (m *mockGateway) Model() string       { return "mock-model" }
func (m *mockGateway) SupportsAudio() bool { return true }

func testAIConfig() config.AIConfig {
	return config.AIConfig{
		DefaultProvider: "siliconflow",
		Providers: []config.ProviderConfig{
			{ID: "gemini", APIKey: "key-g", Model: "gemini-test"},
			{ID: "openai", APIKey: "", Model: "gpt-test"},
			{ID: "siliconflow", APIKey: "key-s", Model: "qwen-test"},
			{ID: "deepseek", APIKey: "key-d", Model: "deepseek-test"},
		},
	}
}

// newTestUseCase wires a use case to a fixed gateway, bypassing the
// provider factory.
func newTestUseCase(gw aiprovider.Gateway) *implUseCase {
	uc := New(&mockLogger{}, aiprovider.NewResolver(testAIConfig()))
	uc.gateway = func(cfg config.ProviderConfig) (aiprovider.Gateway, error) {
		return gw, nil
	}
	return uc
}
