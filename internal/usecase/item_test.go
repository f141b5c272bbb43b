//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/paging"
	"shareit/internal/usecase"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemUsecaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockItems    *usecasemock.MockItemRepository
	mockUsers    *usecasemock.MockUserRepository
	mockBookings *usecasemock.MockBookingRepository
	mockComments *usecasemock.MockCommentRepository
	clock        *clock.MockClock
	uc           usecase.ItemUsecase
}

func (s *ItemUsecaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockItems = usecasemock.NewMockItemRepository(s.mockCtrl)
	s.mockUsers = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.mockBookings = usecasemock.NewMockBookingRepository(s.mockCtrl)
	s.mockComments = usecasemock.NewMockCommentRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(fixedNow)
	s.uc = usecase.NewItemUsecase(s.mockItems, s.mockUsers, s.mockBookings, s.mockComments, s.clock)
}

func (s *ItemUsecaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemUsecaseSuite(t *testing.T) {
	suite.Run(t, new(ItemUsecaseTestSuite))
}

func (s *ItemUsecaseTestSuite) owner() *user.User {
	return user.Reconstruct(1, "owner", "owner@example.com")
}

func (s *ItemUsecaseTestSuite) drill(available bool) *item.Item {
	return item.Reconstruct(10, 1, "drill", "a power drill", available, nil)
}

func (s *ItemUsecaseTestSuite) TestUpdate_OnlyOwnerMayPatch() {
	s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(2)).Return(user.Reconstruct(2, "other", "other@example.com"), nil)
	s.mockItems.EXPECT().FindByID(gomock.Any(), int64(10)).Return(s.drill(true), nil)

	name := "hammer"
	_, err := s.uc.Update(context.Background(), 2, 10, usecase.UpdateItemParams{Name: &name})
	s.ErrorIs(err, usecase.ErrNotItemOwner)
}

func (s *ItemUsecaseTestSuite) TestGet_EnrichmentIsOwnerOnly() {
	shorts := []booking.Short{
		{ID: 1, ItemID: 10, BookerID: 2, Start: fixedNow.Add(-time.Hour), End: fixedNow.Add(-30 * time.Minute)},
		{ID: 2, ItemID: 10, BookerID: 2, Start: fixedNow.Add(time.Hour), End: fixedNow.Add(2 * time.Hour)},
	}

	s.Run("owner sees last and next", func() {
		s.mockItems.EXPECT().FindByID(gomock.Any(), int64(10)).Return(s.drill(true), nil)
		s.mockComments.EXPECT().FindAllByItem(gomock.Any(), int64(10)).Return([]usecase.CommentView{}, nil)
		s.mockBookings.EXPECT().ApprovedShortsByItem(gomock.Any(), int64(10)).Return(shorts, nil)

		view, err := s.uc.Get(context.Background(), 1, 10)
		s.Require().NoError(err)
		s.Require().NotNil(view.LastBooking)
		s.Require().NotNil(view.NextBooking)
		s.Equal(int64(1), view.LastBooking.ID)
		s.Equal(int64(2), view.NextBooking.ID)
	})

	s.Run("stranger sees neither", func() {
		s.mockItems.EXPECT().FindByID(gomock.Any(), int64(10)).Return(s.drill(true), nil)
		s.mockComments.EXPECT().FindAllByItem(gomock.Any(), int64(10)).Return([]usecase.CommentView{}, nil)

		view, err := s.uc.Get(context.Background(), 2, 10)
		s.Require().NoError(err)
		s.Nil(view.LastBooking)
		s.Nil(view.NextBooking)
	})
}

func (s *ItemUsecaseTestSuite) TestListForOwner_ProjectsAndGroupsComments() {
	page, err := paging.New(0, 10)
	s.Require().NoError(err)

	items := []*item.Item{
		item.Reconstruct(10, 1, "drill", "", true, nil),
		item.Reconstruct(11, 1, "saw", "", true, nil),
	}
	shorts := []booking.Short{
		{ID: 3, ItemID: 10, BookerID: 2, Start: fixedNow.Add(time.Hour), End: fixedNow.Add(2 * time.Hour)},
		{ID: 1, ItemID: 10, BookerID: 2, Start: fixedNow.Add(-time.Hour), End: fixedNow.Add(-30 * time.Minute)},
	}
	comments := []usecase.CommentView{
		{ID: 7, ItemID: 11, Text: "sharp", AuthorName: "booker", Created: fixedNow},
	}

	s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(1)).Return(s.owner(), nil)
	s.mockItems.EXPECT().FindAllByOwner(gomock.Any(), int64(1), page).Return(items, nil)
	s.mockBookings.EXPECT().ApprovedShortsByOwnerItems(gomock.Any(), int64(1)).Return(shorts, nil)
	s.mockComments.EXPECT().FindAllByOwnerItems(gomock.Any(), int64(1)).Return(comments, nil)

	views, err := s.uc.ListForOwner(context.Background(), 1, page)
	s.Require().NoError(err)
	s.Require().Len(views, 2)

	s.Equal(int64(1), views[0].LastBooking.ID)
	s.Equal(int64(3), views[0].NextBooking.ID)
	s.Empty(views[0].Comments)

	s.Nil(views[1].LastBooking)
	s.Nil(views[1].NextBooking)
	s.Require().Len(views[1].Comments, 1)
	s.Equal("sharp", views[1].Comments[0].Text)
}

func (s *ItemUsecaseTestSuite) TestSearch_BlankTextShortCircuits() {
	page, err := paging.New(0, 10)
	s.Require().NoError(err)

	views, err := s.uc.Search(context.Background(), "   ", page)
	s.NoError(err)
	s.Empty(views)
}

func (s *ItemUsecaseTestSuite) TestCreateComment_RequiresCompletedBooking() {
	s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(2)).Return(user.Reconstruct(2, "booker", "b@example.com"), nil)
	s.mockItems.EXPECT().FindByID(gomock.Any(), int64(10)).Return(s.drill(true), nil)
	s.mockBookings.EXPECT().ExistsCompleted(gomock.Any(), int64(10), int64(2), fixedNow).Return(false, nil)

	_, err := s.uc.CreateComment(context.Background(), 2, 10, "great drill")
	s.ErrorIs(err, usecase.ErrCommentNotAllowed)
}

func (s *ItemUsecaseTestSuite) TestCreateComment_EligibleAfterCompletedBooking() {
	want := &usecase.CommentView{ID: 1, ItemID: 10, Text: "great drill", AuthorName: "booker", Created: fixedNow}

	s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(2)).Return(user.Reconstruct(2, "booker", "b@example.com"), nil)
	s.mockItems.EXPECT().FindByID(gomock.Any(), int64(10)).Return(s.drill(true), nil)
	s.mockBookings.EXPECT().ExistsCompleted(gomock.Any(), int64(10), int64(2), fixedNow).Return(true, nil)
	s.mockComments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(want, nil)

	got, err := s.uc.CreateComment(context.Background(), 2, 10, "great drill")
	s.Require().NoError(err)
	s.Equal(want, got)
}
