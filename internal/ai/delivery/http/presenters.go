package http

import "easynote/internal/ai"

type parseResp struct {
	Success bool          `json:"success"`
	Items   []ai.TaskItem `json:"items"`
}

func (h *handler) newParseResp(items []ai.TaskItem) parseResp {
	if items == nil {
		items = []ai.TaskItem{}
	}
	return parseResp{Success: true, Items: items}
}

type planResp struct {
	Success  bool          `json:"success"`
	Analysis string        `json:"analysis"`
	Items    []ai.TaskItem `json:"items"`
}

func (h *handler) newPlanResp(out ai.PlanOutput) planResp {
	items := out.Items
	if items == nil {
		items = []ai.TaskItem{}
	}
	return planResp{Success: true, Analysis: out.Analysis, Items: items}
}

type chatResp struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}

type formatNotesResp struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

type transcribeResp struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

type dailyInsightResp struct {
	Success bool   `json:"success"`
	Insight string `json:"insight"`
}

type providerResp struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Model         string `json:"model"`
	Available     bool   `json:"available"`
	SupportsAudio bool   `json:"supportsAudio"`
}

type providersResp struct {
	Providers []providerResp `json:"providers"`
	Current   string         `json:"current"`
}

func (h *handler) newProvidersResp(out ai.ProvidersOutput) providersResp {
	providers := make([]providerResp, 0, len(out.Providers))
	for _, p := range out.Providers {
		providers = append(providers, providerResp{
			ID:            p.ID,
			Name:          p.Name,
			Model:         p.Model,
			Available:     p.Available,
			SupportsAudio: p.SupportsAudio,
		})
	}
	return providersResp{Providers: providers, Current: out.Current}
}
