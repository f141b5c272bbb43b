package response

import (
	"time"

	"shareit/internal/usecase"
)

type ItemRefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserRefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64           `json:"id"`
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Status string          `json:"status"`
	Item   ItemRefResponse `json:"item"`
	Booker UserRefResponse `json:"booker"`
}

func FromBookingView(view *usecase.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     view.ID,
		Start:  view.Start,
		End:    view.End,
		Status: string(view.Status),
		Item:   ItemRefResponse{ID: view.Item.ID, Name: view.Item.Name},
		Booker: UserRefResponse{ID: view.Booker.ID, Name: view.Booker.Name},
	}
}

func FromBookingViews(views []usecase.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(views))
	for i := range views {
		result[i] = FromBookingView(&views[i])
	}
	return result
}
