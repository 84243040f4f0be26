package usecase

import (
	"strings"
	"testing"

	"easynote/internal/ai"
)

func TestBuildParseTextPrompt(t *testing.T) {
	prompt := buildParseTextPrompt("明天交报告", "2025-06-10", "2025年06月10日 Tuesday")

	for _, want := range []string{
		"明天交报告",
		"2025年06月10日 Tuesday",
		"2025-06-10",          // today appears in the table
		"2025-06-11 Wednesday", // tomorrow row
		"tomorrow",
		"isArchived",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildParseAudioPrompt_EmbedsTable(t *testing.T) {
	prompt := buildParseAudioPrompt("2025-06-10", "2025年06月10日 Tuesday")

	if !strings.Contains(prompt, "2025-06-09") {
		t.Errorf("prompt missing the history row")
	}
	if !strings.Contains(prompt, "day-after-tomorrow") {
		t.Errorf("prompt missing the day-after-tomorrow tag")
	}
}

func TestBuildChatPrompt(t *testing.T) {
	prompt := buildChatPrompt(
		[]ai.ChatMessage{
			{Role: "user", Text: "这个任务怎么拆分？"},
			{Role: "assistant", Text: "可以分三步。"},
			{Role: "user", Text: "第一步是什么？"},
		},
		ai.TaskContext{Title: "写季度总结", Details: "包含数据分析"},
	)

	for _, want := range []string{
		`"写季度总结"`,
		`"包含数据分析"`,
		"用户: 这个任务怎么拆分？",
		"AI: 可以分三步。",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildChatPrompt_DefaultTitle(t *testing.T) {
	prompt := buildChatPrompt(nil, ai.TaskContext{})
	if !strings.Contains(prompt, "未命名任务") {
		t.Errorf("empty title should fall back to a default label")
	}
}

func TestCalendarTable_BadDateFallsBack(t *testing.T) {
	table := calendarTable("not-a-date")
	if strings.Count(table, "\n") != 16 {
		t.Errorf("expected 16 rows, got %d", strings.Count(table, "\n"))
	}
}
