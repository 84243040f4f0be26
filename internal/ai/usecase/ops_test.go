package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"easynote/internal/ai"
	"easynote/pkg/aiprovider"
)

func TestParseText(t *testing.T) {
	t.Run("fenced output normalizes end to end", func(t *testing.T) {
		gw := &mockGateway{
			textFunc: func(ctx context.Context, prompt string) (string, error) {
				return "```json\n{\"items\":[{\"text\":\"交报告\",\"dueDate\":\"2025-01-02\",\"category\":\"future2\",\"isArchived\":false}]}\n```", nil
			},
		}
		uc := newTestUseCase(gw)

		items, err := uc.ParseText(context.Background(), ai.ParseTextInput{
			Text: "明天交报告", TodayISO: "2025-01-01", TodayDisplay: "2025年01月01日 Wednesday",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].Text != "交报告" || items[0].DueDate != "2025-01-02" {
			t.Errorf("unexpected item: %+v", items[0])
		}
		if items[0].StartDate != "2025-01-02" {
			t.Errorf("startDate should fall back to dueDate, got %s", items[0].StartDate)
		}
	})

	t.Run("malformed output degrades to the raw input", func(t *testing.T) {
		gw := &mockGateway{
			textFunc: func(ctx context.Context, prompt string) (string, error) {
				return "I could not produce JSON today, sorry.", nil
			},
		}
		uc := newTestUseCase(gw)

		items, err := uc.ParseText(context.Background(), ai.ParseTextInput{
			Text: "买牛奶", TodayISO: "2025-01-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 fallback item, got %d", len(items))
		}
		if items[0].Text != "买牛奶" || items[0].DueDate != "2025-01-01" || items[0].Category != "today" {
			t.Errorf("unexpected fallback item: %+v", items[0])
		}
	})

	t.Run("transport error degrades to the raw input", func(t *testing.T) {
		gw := &mockGateway{
			textFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		uc := newTestUseCase(gw)

		items, err := uc.ParseText(context.Background(), ai.ParseTextInput{
			Text: "买牛奶", TodayISO: "2025-01-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].Text != "买牛奶" {
			t.Errorf("unexpected fallback: %+v", items)
		}
	})

	t.Run("missing credentials surface, never degrade", func(t *testing.T) {
		gw := &mockGateway{
			textFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", aiprovider.ErrNotConfigured
			},
		}
		uc := newTestUseCase(gw)

		_, err := uc.ParseText(context.Background(), ai.ParseTextInput{
			Text: "买牛奶", TodayISO: "2025-01-01",
		})
		if !errors.Is(err, aiprovider.ErrNotConfigured) {
			t.Errorf("expected ErrNotConfigured, got %v", err)
		}
	})
}

func TestParseAudio(t *testing.T) {
	t.Run("provider without audio support yields empty list", func(t *testing.T) {
		gw := &mockGateway{
			audioFunc: func(ctx context.Context, audioBase64, mimeType, prompt string) (string, error) {
				return `{"items": []}`, nil
			},
		}
		uc := newTestUseCase(gw)

		items, err := uc.ParseAudio(context.Background(), ai.ParseAudioInput{
			AudioBase64: "AAAA", MimeType: "audio/webm", TodayISO: "2025-01-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("expected empty list, got %+v", items)
		}
	})

	t.Run("failure degrades to empty list", func(t *testing.T) {
		gw := &mockGateway{
			audioFunc: func(ctx context.Context, audioBase64, mimeType, prompt string) (string, error) {
				return "", errors.New("timeout")
			},
		}
		uc := newTestUseCase(gw)

		items, err := uc.ParseAudio(context.Background(), ai.ParseAudioInput{
			AudioBase64: "AAAA", MimeType: "audio/webm", TodayISO: "2025-01-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("expected empty list, got %+v", items)
		}
	})
}

func TestPlan(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		gw := &mockGateway{
			textFunc: func(ctx context.Context, prompt string) (string, error) {
				return `{"analysis": "两步走", "items": [{"text": "步骤一", "dueDate": "2025-01-02"}]}`, nil
			},
		}
		uc := newTestUseCase(gw)

		out, err := uc.Plan(context.Background(), ai.PlanInput{Input: "帮我安排", TodayISO: "2025-01-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Analysis != "两步走" || len(out.Items) != 1 {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("failure degrades to error analysis", func(t *testing.T) {
		gw := &mockGateway{
			textFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("boom")
			},
		}
		uc := newTestUseCase(gw)

		out, err := uc.Plan(context.Background(), ai.PlanInput{Input: "帮我安排", TodayISO: "2025-01-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out.Analysis, "抱歉，AI 处理出错") {
			t.Errorf("unexpected analysis: %q", out.Analysis)
		}
		if len(out.Items) != 0 {
			t.Errorf("expected no items, got %+v", out.Items)
		}
	})
}

func TestChat(t *testing.T) {
	t.Run("returns trimmed reply", func(t *testing.T) {
		gw := &mockGateway{
			textFunc: func(ctx context.Context, prompt string) (string, error) {
				return "  先拆成三步。\n", nil
			},
		}
		uc := newTestUseCase(gw)

		reply, err := uc.Chat(context.Background(), ai.ChatInput{
			Messages: []ai.ChatMessage{{Role: "user", Text: "怎么做？"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != "先拆成三步。" {
			t.Errorf("unexpected reply: %q", reply)
		}
	})

	t.Run("failure degrades to error string", func(t *testing.T) {
		gw := &mockGateway{
			textFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("boom")
			},
		}
		uc := newTestUseCase(gw)

		reply, err := uc.Chat(context.Background(), ai.ChatInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply, "boom") {
			t.Errorf("reply should carry the failure detail, got %q", reply)
		}
	})
}

func TestFormatNotes(t *testing.T) {
	t.Run("empty input short-circuits", func(t *testing.T) {
		called := false
		gw := &mockGateway{
			textFunc: func(ctx context.Context, prompt string) (string, error) {
				called = true
				return "", nil
			},
		}
		uc := newTestUseCase(gw)

		out, err := uc.FormatNotes(context.Background(), ai.FormatNotesInput{Text: "   "})
		if err != nil || out != "" {
			t.Errorf("expected empty result, got %q, %v", out, err)
		}
		if called {
			t.Errorf("empty input must not reach the provider")
		}
	})

	t.Run("failure returns the original text", func(t *testing.T) {
		gw := &mockGateway{
			textFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("boom")
			},
		}
		uc := newTestUseCase(gw)

		out, err := uc.FormatNotes(context.Background(), ai.FormatNotesInput{Text: "原始笔记"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "原始笔记" {
			t.Errorf("expected original text back, got %q", out)
		}
	})
}

func TestTranscribe_FailureDegradesToEmpty(t *testing.T) {
	gw := &mockGateway{
		audioFunc: func(ctx context.Context, audioBase64, mimeType, prompt string) (string, error) {
			return "", errors.New("boom")
		},
	}
	uc := newTestUseCase(gw)

	out, err := uc.Transcribe(context.Background(), ai.TranscribeInput{AudioBase64: "AAAA", MimeType: "audio/webm"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty transcript, got %q", out)
	}
}

func TestDailyInsight(t *testing.T) {
	t.Run("strips wrapping quotes", func(t *testing.T) {
		gw := &mockGateway{
			textFunc: func(ctx context.Context, prompt string) (string, error) {
				return "\"该收尾了，别拖。\"\n", nil
			},
		}
		uc := newTestUseCase(gw)

		out, err := uc.DailyInsight(context.Background(), ai.DailyInsightInput{TasksSummary: "3 项逾期"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "该收尾了，别拖。" {
			t.Errorf("unexpected insight: %q", out)
		}
	})

	t.Run("failure degrades to the fixed encouragement", func(t *testing.T) {
		gw := &mockGateway{
			textFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("boom")
			},
		}
		uc := newTestUseCase(gw)

		out, err := uc.DailyInsight(context.Background(), ai.DailyInsightInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != fallbackInsight {
			t.Errorf("unexpected fallback: %q", out)
		}
	})
}

func TestProviders(t *testing.T) {
	uc := newTestUseCase(&mockGateway{})

	out := uc.Providers(context.Background())
	if out.Current != "siliconflow" {
		t.Errorf("expected siliconflow default, got %s", out.Current)
	}
	if len(out.Providers) != 4 {
		t.Fatalf("expected 4 providers, got %d", len(out.Providers))
	}
	for _, p := range out.Providers {
		if p.ID == "openai" && p.Available {
			t.Errorf("openai has no key and must be unavailable")
		}
		if p.ID == "gemini" && !p.SupportsAudio {
			t.Errorf("gemini must report audio support")
		}
	}
}
