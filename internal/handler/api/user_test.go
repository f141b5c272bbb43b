//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/usecase"
	commonhttp "shareit/tests/common/httptest"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockUsers *usecasemock.MockUserUsecase
	handler   *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = usecasemock.NewMockUserUsecase(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockUsers)

	s.router.POST("/users", s.handler.Create)
	s.router.GET("/users/:userId", s.handler.Get)
	s.router.PATCH("/users/:userId", s.handler.Update)
	s.router.DELETE("/users/:userId", s.handler.Delete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreate() {
	s.Run("created", func() {
		view := &usecase.UserView{ID: 1, Name: "a", Email: "a@example.com"}
		s.mockUsers.EXPECT().Create(gomock.Any(), usecase.CreateUserParams{Name: "a", Email: "a@example.com"}).Return(view, nil)

		body := map[string]any{"name": "a", "email": "a@example.com"}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/users", body, 0)

		var resp resdto.UserResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(int64(1), resp.ID)
	})

	s.Run("malformed email fails binding", func() {
		body := map[string]any{"name": "a", "email": "nope"}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/users", body, 0)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("duplicate email conflicts", func() {
		s.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrDuplicateEmail)

		body := map[string]any{"name": "a", "email": "a@example.com"}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/users", body, 0)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "already in use")
	})
}

func (s *UserHandlerTestSuite) TestGet() {
	s.Run("missing user", func() {
		s.mockUsers.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, usecase.ErrUserNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/users/99", nil, 0)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})

	s.Run("non-numeric id", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/users/abc", nil, 0)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid userId")
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	s.mockUsers.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/1", nil, 0)
	s.Equal(http.StatusNoContent, w.Code)
}
