//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"majestic-manor/internal/domain/booking"
	"majestic-manor/internal/domain/room"
	"majestic-manor/internal/infra"
	"majestic-manor/internal/pkg/errs"
	"majestic-manor/internal/usecase/commands"
	"majestic-manor/tests/common/builder"
	commandsmock "majestic-manor/tests/mock/commands"
	portsmock "majestic-manor/tests/mock/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	roomRepo    *portsmock.MockRoomRepository
	invalidator *commandsmock.MockRoomCacheInvalidator
	commands    commands.RoomCommands
}

func (s *RoomCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.roomRepo = portsmock.NewMockRoomRepository(s.ctrl)
	s.invalidator = commandsmock.NewMockRoomCacheInvalidator(s.ctrl)
	s.commands = commands.NewRoomCommands(s.roomRepo, s.invalidator)
}

func (s *RoomCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRoomCommandsSuite(t *testing.T) {
	suite.Run(t, new(RoomCommandsTestSuite))
}

func (s *RoomCommandsTestSuite) TestCreateRoom() {
	input := commands.CreateRoomInput{
		Number:      "101",
		RoomType:    "double",
		PricePaise:  150000,
		Description: "Garden view double",
	}

	s.Run("success: persists the room and invalidates the catalog cache", func() {
		var createdID uuid.UUID
		s.roomRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *room.Room) error {
				s.Equal("101", r.Number())
				s.Equal(room.TypeDouble, r.RoomType())
				s.Equal(int64(150000), r.NightlyPrice().Paise())
				createdID = r.ID()
				return nil
			}).Times(1)
		s.invalidator.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

		id, err := s.commands.CreateRoom(context.Background(), input)

		s.Require().NoError(err)
		s.Equal(createdID, id)
	})

	s.Run("error: duplicate number maps to ErrDuplicateRoomNumber", func() {
		s.roomRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate", errors.New("unique violation"), infra.KindDuplicateKey)).Times(1)

		_, err := s.commands.CreateRoom(context.Background(), input)

		s.ErrorIs(err, errs.ErrDuplicateRoomNumber)
	})

	s.Run("error: invalid room type never reaches the repository", func() {
		bad := input
		bad.RoomType = "penthouse"

		_, err := s.commands.CreateRoom(context.Background(), bad)

		s.ErrorIs(err, room.ErrInvalidRoomType)
	})

	s.Run("error: negative price never reaches the repository", func() {
		bad := input
		bad.PricePaise = -1

		_, err := s.commands.CreateRoom(context.Background(), bad)

		s.ErrorIs(err, booking.ErrNegativeMoney)
	})

	s.Run("error: cache invalidation failure does not fail the write", func() {
		s.roomRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.invalidator.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down")).Times(1)

		_, err := s.commands.CreateRoom(context.Background(), input)

		s.NoError(err)
	})
}

func (s *RoomCommandsTestSuite) TestUpdateRoom() {
	rb := builder.NewRoomBuilder()

	s.Run("success: applies partial updates and invalidates the cache", func() {
		entity := rb.BuildReconstructed()
		newPrice := int64(200000)
		unavailable := false

		s.roomRepo.EXPECT().FindByID(gomock.Any(), rb.ID).Return(entity, nil).Times(1)
		s.roomRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *room.Room) error {
				s.Equal(int64(200000), r.NightlyPrice().Paise())
				s.False(r.Available())
				return nil
			}).Times(1)
		s.invalidator.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

		err := s.commands.UpdateRoom(context.Background(), rb.ID, commands.UpdateRoomInput{
			PricePaise: &newPrice,
			Available:  &unavailable,
		})

		s.NoError(err)
	})

	s.Run("success: untouched fields keep their values", func() {
		entity := rb.BuildReconstructed()
		desc := "Renovated, now with sea view"

		s.roomRepo.EXPECT().FindByID(gomock.Any(), rb.ID).Return(entity, nil).Times(1)
		s.roomRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *room.Room) error {
				s.Equal(desc, r.Description())
				s.Equal(rb.PricePaise, r.NightlyPrice().Paise())
				s.True(r.Available())
				return nil
			}).Times(1)
		s.invalidator.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

		err := s.commands.UpdateRoom(context.Background(), rb.ID, commands.UpdateRoomInput{
			Description: &desc,
		})

		s.NoError(err)
	})

	s.Run("error: unknown room maps to ErrRoomNotFound", func() {
		unknown := uuid.New()
		s.roomRepo.EXPECT().FindByID(gomock.Any(), unknown).
			Return(nil, infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		err := s.commands.UpdateRoom(context.Background(), unknown, commands.UpdateRoomInput{})

		s.ErrorIs(err, errs.ErrRoomNotFound)
	})

	s.Run("error: negative price is rejected before the write", func() {
		entity := rb.BuildReconstructed()
		bad := int64(-500)

		s.roomRepo.EXPECT().FindByID(gomock.Any(), rb.ID).Return(entity, nil).Times(1)

		err := s.commands.UpdateRoom(context.Background(), rb.ID, commands.UpdateRoomInput{
			PricePaise: &bad,
		})

		s.ErrorIs(err, booking.ErrNegativeMoney)
	})
}
