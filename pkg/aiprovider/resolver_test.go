package aiprovider

import (
	"context"
	"errors"
	"testing"

	"easynote/config"
)

func testAIConfig() config.AIConfig {
	return config.AIConfig{
		DefaultProvider: "siliconflow",
		Providers: []config.ProviderConfig{
			{ID: "gemini", APIKey: "g-key", Model: "gemini-2.0-flash"},
			{ID: "openai", APIKey: "", Model: "gpt-4o-mini"},
			{ID: "siliconflow", APIKey: "sf-key", Model: "Qwen/Qwen2.5-7B-Instruct"},
			{ID: "deepseek", APIKey: "", Model: "deepseek-chat"},
		},
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(testAIConfig())

	t.Run("Case Insensitive Lookup", func(t *testing.T) {
		cfg := r.Resolve("GeMiNi")
		if cfg.ID != "gemini" {
			t.Errorf("expected gemini, got %s", cfg.ID)
		}
	})

	t.Run("Empty Falls Back To Default", func(t *testing.T) {
		cfg := r.Resolve("")
		if cfg.ID != "siliconflow" {
			t.Errorf("expected default provider siliconflow, got %s", cfg.ID)
		}
	})

	t.Run("Unknown Falls Back To Default", func(t *testing.T) {
		cfg := r.Resolve("claude")
		if cfg.ID != "siliconflow" {
			t.Errorf("unknown id should degrade to default, got %s", cfg.ID)
		}
	})

	t.Run("Empty Key Still Resolvable", func(t *testing.T) {
		cfg := r.Resolve("openai")
		if cfg.ID != "openai" {
			t.Errorf("provider without key must still resolve, got %s", cfg.ID)
		}
		if cfg.APIKey != "" {
			t.Errorf("expected empty key")
		}
	})
}

func TestResolver_UnknownDefaultUsesFirstProvider(t *testing.T) {
	cfg := testAIConfig()
	cfg.DefaultProvider = "nonsense"
	r := NewResolver(cfg)

	if got := r.DefaultProvider(); got != "gemini" {
		t.Errorf("expected first provider as default, got %s", got)
	}
}

func TestResolver_ListAvailability(t *testing.T) {
	r := NewResolver(testAIConfig())
	statuses := r.ListAvailability()

	if len(statuses) != 4 {
		t.Fatalf("expected 4 providers, got %d", len(statuses))
	}

	want := map[string]bool{
		"gemini":      true,
		"openai":      false,
		"siliconflow": true,
		"deepseek":    false,
	}
	for _, s := range statuses {
		if s.Available != want[s.ID] {
			t.Errorf("provider %s: available = %v, want %v", s.ID, s.Available, want[s.ID])
		}
		if (s.ID == "gemini") != s.SupportsAudio {
			t.Errorf("provider %s: unexpected SupportsAudio %v", s.ID, s.SupportsAudio)
		}
	}

	// Order follows configuration order
	if statuses[0].ID != "gemini" || statuses[3].ID != "deepseek" {
		t.Errorf("availability listing out of order: %+v", statuses)
	}
}

func TestGateway_NotConfiguredBeforeNetwork(t *testing.T) {
	// BaseURL points nowhere; the credential check must fire first.
	gw, err := NewGateway(config.ProviderConfig{ID: "openai", APIKey: "", BaseURL: "http://127.0.0.1:0"}, nil)
	if err != nil {
		t.Fatalf("unexpected factory error: %v", err)
	}

	_, err = gw.CallText(context.Background(), "hello")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGateway_AudioUnsupportedFamilyIsNoOp(t *testing.T) {
	gw, err := NewGateway(config.ProviderConfig{ID: "siliconflow", APIKey: "sf-key", BaseURL: "http://127.0.0.1:0"}, nil)
	if err != nil {
		t.Fatalf("unexpected factory error: %v", err)
	}
	if gw.SupportsAudio() {
		t.Error("chat-completions family must not report audio support")
	}

	out, err := gw.CallAudio(context.Background(), "QUJD", "audio/webm", "transcribe")
	if err != nil {
		t.Fatalf("audio on unsupported family must not error: %v", err)
	}
	if out != `{"items": []}` {
		t.Errorf("expected well-formed empty result, got %q", out)
	}
}

func TestNewGateway_ClosedSet(t *testing.T) {
	if _, err := NewGateway(config.ProviderConfig{ID: "claude"}, nil); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("expected ErrUnknownProvider, got %v", err)
	}
}
