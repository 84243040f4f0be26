package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"easynote/internal/ai"
)

const maxInputLength = 5000

var (
	errEmptyText   = errors.New("text is required")
	errTextTooLong = errors.New("text exceeds the maximum length")
	errEmptyAudio  = errors.New("audio is required")
	errEmptyInput  = errors.New("input is required")
)

// todayInfo returns today's date in ISO and localized display form.
// The display form feeds the prompt; the ISO form feeds normalization.
func todayInfo() (string, string) {
	now := time.Now()
	return now.Format("2006-01-02"), now.Format("2006年01月02日") + " " + now.Weekday().String()
}

type parseTextReq struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
}

func (r parseTextReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	if len(r.Text) > maxInputLength {
		return errTextTooLong
	}
	return nil
}

func (r parseTextReq) toInput(todayISO, todayDisplay string) ai.ParseTextInput {
	return ai.ParseTextInput{
		Text:         r.Text,
		TodayISO:     todayISO,
		TodayDisplay: todayDisplay,
		Provider:     r.Provider,
	}
}

type parseAudioReq struct {
	Audio    string `json:"audio"`
	MimeType string `json:"mimeType"`
	Provider string `json:"provider"`
}

func (r parseAudioReq) validate() error {
	if r.Audio == "" {
		return errEmptyAudio
	}
	return nil
}

func (r parseAudioReq) toInput(todayISO, todayDisplay string) ai.ParseAudioInput {
	mimeType := r.MimeType
	if mimeType == "" {
		mimeType = "audio/webm"
	}
	return ai.ParseAudioInput{
		AudioBase64:  r.Audio,
		MimeType:     mimeType,
		TodayISO:     todayISO,
		TodayDisplay: todayDisplay,
		Provider:     r.Provider,
	}
}

type planReq struct {
	Input    string `json:"input"`
	Provider string `json:"provider"`
}

func (r planReq) validate() error {
	if strings.TrimSpace(r.Input) == "" {
		return errEmptyInput
	}
	if len(r.Input) > maxInputLength {
		return errTextTooLong
	}
	return nil
}

func (r planReq) toInput(todayISO, todayDisplay string) ai.PlanInput {
	return ai.PlanInput{
		Input:        r.Input,
		TodayISO:     todayISO,
		TodayDisplay: todayDisplay,
		Provider:     r.Provider,
	}
}

type chatMessageReq struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type chatContextReq struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

type chatReq struct {
	Messages []chatMessageReq `json:"messages"`
	Context  chatContextReq   `json:"context"`
	Provider string           `json:"provider"`
}

func (r chatReq) validate() error {
	if len(r.Messages) == 0 {
		return errEmptyInput
	}
	return nil
}

func (r chatReq) toInput() ai.ChatInput {
	messages := make([]ai.ChatMessage, 0, len(r.Messages))
	for _, m := range r.Messages {
		messages = append(messages, ai.ChatMessage{Role: m.Role, Text: m.Text})
	}
	return ai.ChatInput{
		Messages: messages,
		Context:  ai.TaskContext{Title: r.Context.Title, Details: r.Context.Details},
		Provider: r.Provider,
	}
}

type formatNotesReq struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
}

func (r formatNotesReq) toInput() ai.FormatNotesInput {
	return ai.FormatNotesInput{Text: r.Text, Provider: r.Provider}
}

type transcribeReq struct {
	Audio    string `json:"audio"`
	MimeType string `json:"mimeType"`
	Provider string `json:"provider"`
}

func (r transcribeReq) validate() error {
	if r.Audio == "" {
		return errEmptyAudio
	}
	return nil
}

func (r transcribeReq) toInput() ai.TranscribeInput {
	mimeType := r.MimeType
	if mimeType == "" {
		mimeType = "audio/webm"
	}
	return ai.TranscribeInput{AudioBase64: r.Audio, MimeType: mimeType, Provider: r.Provider}
}

type dailyInsightReq struct {
	TasksSummary string `json:"tasksSummary"`
	Provider     string `json:"provider"`
}

func (r dailyInsightReq) toInput() ai.DailyInsightInput {
	return ai.DailyInsightInput{TasksSummary: r.TasksSummary, Provider: r.Provider}
}

func (h *handler) processParseTextReq(c *gin.Context) (parseTextReq, error) {
	var req parseTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processParseAudioReq(c *gin.Context) (parseAudioReq, error) {
	var req parseAudioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processFormatNotesReq(c *gin.Context) (formatNotesReq, error) {
	var req formatNotesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processTranscribeReq(c *gin.Context) (transcribeReq, error) {
	var req transcribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processDailyInsightReq(c *gin.Context) (dailyInsightReq, error) {
	var req dailyInsightReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
