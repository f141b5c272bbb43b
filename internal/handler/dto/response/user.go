package response

import "shareit/internal/usecase"

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUserView(view *usecase.UserView) *UserResponse {
	return &UserResponse{ID: view.ID, Name: view.Name, Email: view.Email}
}

func FromUserViews(views []usecase.UserView) []*UserResponse {
	result := make([]*UserResponse, len(views))
	for i := range views {
		result[i] = FromUserView(&views[i])
	}
	return result
}
