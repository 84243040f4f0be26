package http

import (
	"github.com/gin-gonic/gin"

	"easynote/pkg/response"
)

// ParseText godoc
// @Summary     Extract tasks from text
// @Description Parses free-form text into structured task items with resolved dates.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body parseTextReq true "Text to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Provider not configured"
// @Router      /api/ai/parse-text [POST]
func (h *handler) ParseText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseTextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	todayISO, todayDisplay := todayInfo()
	items, err := h.uc.ParseText(ctx, req.toInput(todayISO, todayDisplay))
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(items))
}

// ParseAudio godoc
// @Summary     Extract tasks from audio
// @Description Parses spoken input into structured task items with resolved dates.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body parseAudioReq true "Base64 audio to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Provider not configured"
// @Router      /api/ai/parse-audio [POST]
func (h *handler) ParseAudio(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseAudioReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	todayISO, todayDisplay := todayInfo()
	items, err := h.uc.ParseAudio(ctx, req.toInput(todayISO, todayDisplay))
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseAudio: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(items))
}

// Plan godoc
// @Summary     Generate a task plan
// @Description Turns a free-form planning request into an analysis plus task items.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Planning request"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Provider not configured"
// @Router      /api/ai/plan [POST]
func (h *handler) Plan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	todayISO, todayDisplay := todayInfo()
	out, err := h.uc.Plan(ctx, req.toInput(todayISO, todayDisplay))
	if err != nil {
		h.l.Errorf(ctx, "uc.Plan: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPlanResp(out))
}

// Chat godoc
// @Summary     Chat about a task
// @Description Answers one conversation turn grounded in the given task context.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Conversation history and task context"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Provider not configured"
// @Router      /api/ai/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	reply, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, chatResp{Success: true, Reply: reply})
}

// FormatNotes godoc
// @Summary     Beautify note text
// @Description Reformats note content into structured Markdown, preserving the language.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body formatNotesReq true "Note text"
// @Success     200 {object} formatNotesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Provider not configured"
// @Router      /api/ai/format-notes [POST]
func (h *handler) FormatNotes(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFormatNotesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	text, err := h.uc.FormatNotes(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.FormatNotes: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, formatNotesResp{Success: true, Text: text})
}

// Transcribe godoc
// @Summary     Transcribe audio
// @Description Converts spoken audio to plain text without task parsing.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body transcribeReq true "Base64 audio"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Provider not configured"
// @Router      /api/ai/transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscribeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	text, err := h.uc.Transcribe(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, transcribeResp{Success: true, Text: text})
}

// DailyInsight godoc
// @Summary     Daily insight
// @Description Produces a one-line coach remark about the user's recent tasks.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body dailyInsightReq true "Task summary"
// @Success     200 {object} dailyInsightResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Provider not configured"
// @Router      /api/ai/daily-insight [POST]
func (h *handler) DailyInsight(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDailyInsightReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	insight, err := h.uc.DailyInsight(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DailyInsight: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, dailyInsightResp{Success: true, Insight: insight})
}

// Providers godoc
// @Summary     List AI providers
// @Description Returns every known provider with its availability and model.
// @Tags        AI
// @Produce     json
// @Success     200 {object} providersResp
// @Router      /api/ai/providers [GET]
func (h *handler) Providers(c *gin.Context) {
	response.OK(c, h.newProvidersResp(h.uc.Providers(c.Request.Context())))
}
