package usecase

import (
	"fmt"
	"strings"
	"time"

	"easynote/internal/ai"
	"easynote/pkg/datetable"
)

// calendarTable renders the grounding table for a given ISO date. A bad
// date string falls back to the current day rather than failing the
// whole request over a prompt detail.
func calendarTable(todayISO string) string {
	today, err := time.Parse(datetable.DateFormatISO, todayISO)
	if err != nil {
		today = time.Now()
	}
	return datetable.Render(datetable.Build(today))
}

// buildParseTextPrompt builds the task-extraction instruction for text
// input. Relative date words must be looked up in the embedded calendar
// table, never computed by the model.
func buildParseTextPrompt(text, todayISO, todayDisplay string) string {
	return fmt.Sprintf(`你是一个任务提取助手。今天是 %s（%s）。

日期对照表（解析日期词语时必须查此表，不要自行推算日期）：
%s
用户输入: "%s"

请从输入中提取任务，并解析日期词语为具体日期。

规则：
1. text: 只保留任务内容，移除所有时间词语和逻辑连接词（如"今天开发应用" → "开发应用"）
2. startDate: YYYY-MM-DD 格式的开始日期，没有提到则与 dueDate 相同
3. dueDate: 必须是 YYYY-MM-DD 格式，从上方对照表中查找；没有提到时间则默认今天
4. category: 'today'(今天) / 'future2'(1-2天内) / 'later'(更远) / 'history'(过去)
5. isArchived: 仅当任务描述明确表示已完成（如使用了"了"、"过"、"完成"、"Done"）时设为 true。注意：即使 dueDate 是过去的时间（如"前天"），如果描述是"打算"、"还没做"、"要做"，isArchived 仍应为 false（表示逾期未完成）。

严格返回单个 JSON 对象，对象之外不要有任何文字:
{"items": [{"text": "任务内容", "startDate": "YYYY-MM-DD", "dueDate": "YYYY-MM-DD", "category": "today", "isArchived": false}]}`,
		todayDisplay, todayISO, calendarTable(todayISO), text)
}

// buildParseAudioPrompt builds the task-extraction instruction for
// spoken input.
func buildParseAudioPrompt(todayISO, todayDisplay string) string {
	return fmt.Sprintf(`Current Time: %s (%s). Analyze the spoken input.

Date lookup table (resolve relative date words against this table, do not compute dates yourself):
%s
Task Processor Rules:
1. Extract 'text': Task content only, remove temporal markers and connectives.
2. Extract 'startDate' and 'dueDate': YYYY-MM-DD, looked up in the table above.
3. Determine 'category': 'history'/'today'/'future2'/'later'.
4. Set 'isArchived': true ONLY if the input describes a completed action. Past dates (e.g., "Two days ago I planned to...") do NOT automatically mean isArchived is true if the action itself wasn't finished.

Return a single JSON object, nothing outside it:
{"items": [{"text": "...", "startDate": "YYYY-MM-DD", "dueDate": "YYYY-MM-DD", "category": "today|future2|later|history", "isArchived": false}]}`,
		todayDisplay, todayISO, calendarTable(todayISO))
}

// buildPlanPrompt builds the structured-planning instruction.
func buildPlanPrompt(input, todayISO, todayDisplay string) string {
	return fmt.Sprintf(`Today: %s (%s).

Date lookup table:
%s
User's request: "%s"

You are a productivity assistant. Create a structured task plan.

Return JSON:
{
    "analysis": "Brief analysis in Chinese",
    "items": [{"text": "Task", "startDate": "YYYY-MM-DD", "dueDate": "YYYY-MM-DD", "category": "today|future2|later", "isArchived": false}]
}`,
		todayDisplay, todayISO, calendarTable(todayISO), input)
}

// buildChatPrompt flattens the conversation history into one prompt
// grounded in the current task.
func buildChatPrompt(messages []ai.ChatMessage, taskCtx ai.TaskContext) string {
	title := taskCtx.Title
	if title == "" {
		title = "未命名任务"
	}

	var history strings.Builder
	for _, msg := range messages {
		role := "AI"
		if msg.Role == "user" {
			role = "用户"
		}
		fmt.Fprintf(&history, "%s: %s\n", role, msg.Text)
	}

	return fmt.Sprintf(`你是一个高效的任务管理助手。
当前任务标题: "%s"
当前任务详情: "%s"
请根据以上上下文，简洁、专业地回答用户的提问。保持与用户相同的语言。

当前对话历史：
%s
请回答用户的最新问题。`, title, taskCtx.Details, history.String())
}

// buildFormatNotesPrompt builds the note-beautification instruction.
func buildFormatNotesPrompt(text string) string {
	return fmt.Sprintf(`请美化并结构化以下笔记内容。
核心规则：
1. 保持原语言：输入是中文则输出中文，输入是英文则输出英文。绝对不要进行翻译。
2. 结构化：使用 Markdown（粗体、列表、标题）使其清晰易读。
3. 简洁专业：去除冗余，保持逻辑清晰。

笔记内容：
"%s"
`, text)
}

// transcribePrompt asks for a bare transcript, no task parsing.
const transcribePrompt = "准确地转录这段音频内容。只返回转录出的文本，不要有任何多余的解释或开头。"

// buildDailyInsightPrompt builds the one-line daily review instruction.
func buildDailyInsightPrompt(tasksSummary string) string {
	return fmt.Sprintf(`你是一个高级、毒辣且贴心的效率教练。
以下是用户最近的任务概况：
"%s"

请根据任务的完成情况、截止日期和内容，给出极其精炼的一句话（20字以内）。
风格要求：
1. 不要官话，要像一个懂我的朋友或者严厉的教练。
2. 可以是幽默的嘲讽、温暖的鼓励或精准的提醒。
3. 必须是一句话。

只返回这一句话的内容，不要有引号。`, tasksSummary)
}
