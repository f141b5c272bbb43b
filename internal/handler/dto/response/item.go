package response

import (
	"time"

	"shareit/internal/usecase"
)

type BookingShortResponse struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemResponse struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	RequestID   *int64                `json:"requestId,omitempty"`
	LastBooking *BookingShortResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingShortResponse `json:"nextBooking,omitempty"`
	Comments    []CommentResponse     `json:"comments"`
}

func FromItemView(view *usecase.ItemView) *ItemResponse {
	comments := make([]CommentResponse, len(view.Comments))
	for i, c := range view.Comments {
		comments[i] = *FromCommentView(&c)
	}
	return &ItemResponse{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		Available:   view.Available,
		RequestID:   view.RequestID,
		LastBooking: fromShortView(view.LastBooking),
		NextBooking: fromShortView(view.NextBooking),
		Comments:    comments,
	}
}

func FromItemViews(views []usecase.ItemView) []*ItemResponse {
	result := make([]*ItemResponse, len(views))
	for i := range views {
		result[i] = FromItemView(&views[i])
	}
	return result
}

func FromCommentView(view *usecase.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         view.ID,
		Text:       view.Text,
		AuthorName: view.AuthorName,
		Created:    view.Created,
	}
}

func fromShortView(view *usecase.BookingShortView) *BookingShortResponse {
	if view == nil {
		return nil
	}
	return &BookingShortResponse{
		ID:       view.ID,
		BookerID: view.BookerID,
		Start:    view.Start,
		End:      view.End,
	}
}
