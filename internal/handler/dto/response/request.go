package response

import (
	"time"

	"shareit/internal/usecase"
)

type ItemAnswerResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
}

type RequestResponse struct {
	ID          int64                `json:"id"`
	Description string               `json:"description"`
	Created     time.Time            `json:"created"`
	Items       []ItemAnswerResponse `json:"items"`
}

func FromRequestView(view *usecase.RequestView) *RequestResponse {
	items := make([]ItemAnswerResponse, len(view.Items))
	for i, answer := range view.Items {
		items[i] = ItemAnswerResponse{
			ID:          answer.ID,
			Name:        answer.Name,
			Description: answer.Description,
			Available:   answer.Available,
			RequestID:   answer.RequestID,
		}
	}
	return &RequestResponse{
		ID:          view.ID,
		Description: view.Description,
		Created:     view.Created,
		Items:       items,
	}
}

func FromRequestViews(views []usecase.RequestView) []*RequestResponse {
	result := make([]*RequestResponse, len(views))
	for i := range views {
		result[i] = FromRequestView(&views[i])
	}
	return result
}
