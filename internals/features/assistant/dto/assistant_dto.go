package dto

import (
	"strings"

	"evsu_library_backend/internals/features/assistant/grouping"
)

type ChatRequest struct {
	Query string `json:"query" validate:"required,max=2000"`
}

func (r *ChatRequest) Normalize() { r.Query = strings.TrimSpace(r.Query) }

type ChatResponse struct {
	Response string                  `json:"response"`
	Matches  []string                `json:"matches"`
	Books    []grouping.GroupedEntry `json:"books"`
	HTML     string                  `json:"html"`
}
