package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"easynote/internal/ai"
	"easynote/internal/model"
)

// placeholderText labels items whose text field was unusable rather
// than dropping them.
const placeholderText = "未命名任务"

// cleanFencedJSON strips a Markdown code fence that models sometimes
// wrap around their JSON output. Idempotent: cleaning a cleaned string
// is a no-op.
func cleanFencedJSON(raw string) string {
	s := strings.TrimSpace(raw)
	start := strings.Index(s, "```")
	if start < 0 {
		return s
	}
	s = s[start+3:]
	// language tag sits right after the opening fence
	if strings.HasPrefix(s, "json") {
		s = s[4:]
	}
	if end := strings.Index(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

// parseTaskItems converts raw model output into canonical task items.
// It accepts either an object with an "items" array or a bare array,
// coalesces drifting key names per field, and defaults every missing
// field. It returns an error only for unparsable input; call sites
// translate that into their own fallback payload.
func parseTaskItems(raw, todayISO string) ([]ai.TaskItem, error) {
	cleaned := cleanFencedJSON(raw)

	var top any
	if err := json.Unmarshal([]byte(cleaned), &top); err != nil {
		return nil, fmt.Errorf("malformed model output: %w", err)
	}

	var rawItems []any
	switch v := top.(type) {
	case map[string]any:
		arr, ok := v["items"].([]any)
		if !ok {
			// an object without items is an empty result, not an error
			return []ai.TaskItem{}, nil
		}
		rawItems = arr
	case []any:
		rawItems = v
	default:
		return nil, fmt.Errorf("malformed model output: top-level %T", top)
	}

	items := make([]ai.TaskItem, 0, len(rawItems))
	for _, ri := range rawItems {
		obj, ok := ri.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, normalizeItem(obj, todayISO))
	}
	return items, nil
}

// normalizeItem maps one loosely-typed item into the canonical shape.
// Total: never fails, every field gets a value.
func normalizeItem(obj map[string]any, todayISO string) ai.TaskItem {
	text := coalesceString(obj, "text", "content", "title")
	if strings.TrimSpace(text) == "" {
		text = placeholderText
	}

	dueDate := coalesceString(obj, "dueDate", "due_date")
	if dueDate == "" {
		dueDate = todayISO
	}

	startDate := coalesceString(obj, "startDate", "start_date")
	if startDate == "" {
		startDate = dueDate
	}

	category := coalesceString(obj, "category", "timeframe")
	if !model.ValidTimeframe(category) {
		category = string(model.TimeframeToday)
	}

	return ai.TaskItem{
		Text:       text,
		StartDate:  startDate,
		DueDate:    dueDate,
		Category:   category,
		IsArchived: coalesceBool(obj, "isArchived", "archived", "is_archived"),
	}
}

// parsePlan converts raw model output into a plan result.
func parsePlan(raw, todayISO string) (ai.PlanOutput, error) {
	cleaned := cleanFencedJSON(raw)

	var top map[string]any
	if err := json.Unmarshal([]byte(cleaned), &top); err != nil {
		return ai.PlanOutput{}, fmt.Errorf("malformed model output: %w", err)
	}

	out := ai.PlanOutput{Items: []ai.TaskItem{}}
	if analysis, ok := top["analysis"].(string); ok {
		out.Analysis = analysis
	}
	if arr, ok := top["items"].([]any); ok {
		for _, ri := range arr {
			if obj, ok := ri.(map[string]any); ok {
				out.Items = append(out.Items, normalizeItem(obj, todayISO))
			}
		}
	}
	return out, nil
}

// coalesceString returns the first non-empty string value among the
// given keys.
func coalesceString(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// coalesceBool returns the first boolean value among the given keys,
// tolerating string-encoded booleans, defaulting to false.
func coalesceBool(obj map[string]any, keys ...string) bool {
	for _, k := range keys {
		switch v := obj[k].(type) {
		case bool:
			return v
		case string:
			if strings.EqualFold(v, "true") {
				return true
			}
			if strings.EqualFold(v, "false") {
				return false
			}
		}
	}
	return false
}
