package usecase

import (
	"testing"
)

func TestCleanFencedJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json untouched", `{"items": []}`, `{"items": []}`},
		{"whitespace trimmed", "  {\"a\": 1}\n", `{"a": 1}`},
		{"fenced with language tag", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced without language tag", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"prose before the fence", "Here you go:\n```json\n{\"a\": 1}\n```\nHope it helps!", `{"a": 1}`},
		{"unterminated fence", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanFencedJSON(tt.in)
			if got != tt.want {
				t.Errorf("cleanFencedJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := cleanFencedJSON(got); again != got {
				t.Errorf("not idempotent: cleanFencedJSON(%q) = %q", got, again)
			}
		})
	}
}

func TestParseTaskItems_AliasCoalescing(t *testing.T) {
	raw := `{"items": [{"content": "buy milk", "due_date": "2025-01-02"}]}`

	items, err := parseTaskItems(raw, "2025-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.Text != "buy milk" {
		t.Errorf("text: expected %q, got %q", "buy milk", item.Text)
	}
	if item.DueDate != "2025-01-02" {
		t.Errorf("dueDate: expected 2025-01-02, got %s", item.DueDate)
	}
	if item.StartDate != "2025-01-02" {
		t.Errorf("startDate should fall back to dueDate, got %s", item.StartDate)
	}
	if item.Category != "today" {
		t.Errorf("category should default to today, got %s", item.Category)
	}
	if item.IsArchived {
		t.Errorf("isArchived should default to false")
	}
}

func TestParseTaskItems_ArchivedAliases(t *testing.T) {
	raw := `{"items": [
		{"text": "a", "archived": true},
		{"text": "b", "is_archived": "true"},
		{"text": "c", "isArchived": false}
	]}`

	items, err := parseTaskItems(raw, "2025-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if !items[0].IsArchived || !items[1].IsArchived || items[2].IsArchived {
		t.Errorf("archived flags wrong: %v %v %v", items[0].IsArchived, items[1].IsArchived, items[2].IsArchived)
	}
}

func TestParseTaskItems_BareArray(t *testing.T) {
	raw := `[{"text": "task one", "dueDate": "2025-02-03", "category": "future2"}]`

	items, err := parseTaskItems(raw, "2025-02-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Text != "task one" || items[0].Category != "future2" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestParseTaskItems_MissingText(t *testing.T) {
	raw := `{"items": [{"dueDate": "2025-01-05"}, {"text": "   "}]}`

	items, err := parseTaskItems(raw, "2025-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for i, item := range items {
		if item.Text != placeholderText {
			t.Errorf("item %d: expected placeholder text, got %q", i, item.Text)
		}
	}
}

func TestParseTaskItems_InvalidCategory(t *testing.T) {
	raw := `{"items": [{"text": "x", "category": "someday"}]}`

	items, err := parseTaskItems(raw, "2025-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Category != "today" {
		t.Errorf("invalid category should default to today, got %s", items[0].Category)
	}
}

func TestParseTaskItems_TimeframeAlias(t *testing.T) {
	raw := `{"items": [{"text": "x", "timeframe": "later"}]}`

	items, err := parseTaskItems(raw, "2025-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Category != "later" {
		t.Errorf("expected later, got %s", items[0].Category)
	}
}

func TestParseTaskItems_MalformedNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"not json at all",
		"```json\ngarbage\n```",
		`"just a string"`,
		`42`,
		`{"items": "not an array"}`,
		`{"items": [1, 2, "three"]}`,
		`{"no_items_key": true}`,
	}

	for _, in := range inputs {
		items, err := parseTaskItems(in, "2025-01-01")
		if err == nil && items == nil {
			t.Errorf("input %q: nil items without error", in)
		}
		// whatever the outcome, it must not panic and error inputs
		// must not yield items
		if err != nil && len(items) != 0 {
			t.Errorf("input %q: got items alongside error", in)
		}
	}
}

func TestParsePlan(t *testing.T) {
	raw := "```json\n" + `{"analysis": "先做紧急的", "items": [{"text": "报税", "dueDate": "2025-03-01"}]}` + "\n```"

	out, err := parsePlan(raw, "2025-02-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Analysis != "先做紧急的" {
		t.Errorf("analysis: got %q", out.Analysis)
	}
	if len(out.Items) != 1 || out.Items[0].StartDate != "2025-03-01" {
		t.Errorf("unexpected items: %+v", out.Items)
	}
}

func TestParsePlan_Malformed(t *testing.T) {
	if _, err := parsePlan("nope", "2025-01-01"); err == nil {
		t.Errorf("expected error for malformed plan output")
	}
}
