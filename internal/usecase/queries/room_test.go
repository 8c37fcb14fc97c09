//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"majestic-manor/internal/infra"
	"majestic-manor/internal/pkg/clock"
	"majestic-manor/internal/pkg/errs"
	"majestic-manor/internal/usecase/queries"
	"majestic-manor/tests/common/builder"
	queriesmock "majestic-manor/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockRoomReadStore
	clock *clock.MockClock
}

func (s *RoomQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockRoomReadStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC))
}

func (s *RoomQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRoomQueriesSuite(t *testing.T) {
	suite.Run(t, new(RoomQueriesTestSuite))
}

func (s *RoomQueriesTestSuite) newQueries(mode queries.AvailabilityMode) queries.RoomQueries {
	return queries.NewRoomQueries(s.store, mode, s.clock)
}

func (s *RoomQueriesTestSuite) TestListAvailable() {
	views := []*queries.RoomView{builder.NewRoomBuilder().BuildView()}

	s.Run("zero date defaults to today at midnight UTC", func() {
		expected := queries.AvailabilityQuery{
			Date: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		}
		s.store.EXPECT().
			FindAvailable(gomock.Any(), expected, queries.AvailabilityPointInTime).
			Return(views, nil).Times(1)

		got, err := s.newQueries(queries.AvailabilityPointInTime).
			ListAvailable(context.Background(), queries.AvailabilityQuery{})

		s.Require().NoError(err)
		s.Equal(views, got)
	})

	s.Run("explicit date passes through untouched", func() {
		q := queries.AvailabilityQuery{
			Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			Text: "suite",
		}
		s.store.EXPECT().
			FindAvailable(gomock.Any(), q, queries.AvailabilityPointInTime).
			Return(views, nil).Times(1)

		_, err := s.newQueries(queries.AvailabilityPointInTime).
			ListAvailable(context.Background(), q)

		s.NoError(err)
	})

	s.Run("configured mode reaches the store", func() {
		s.store.EXPECT().
			FindAvailable(gomock.Any(), gomock.Any(), queries.AvailabilityOverlap).
			Return(views, nil).Times(1)

		_, err := s.newQueries(queries.AvailabilityOverlap).
			ListAvailable(context.Background(), queries.AvailabilityQuery{})

		s.NoError(err)
	})

	s.Run("error: store failure maps to ErrDatabaseOperationFailed", func() {
		s.store.EXPECT().
			FindAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset")).Times(1)

		_, err := s.newQueries(queries.AvailabilityPointInTime).
			ListAvailable(context.Background(), queries.AvailabilityQuery{})

		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}

func (s *RoomQueriesTestSuite) TestGetByID() {
	rb := builder.NewRoomBuilder()

	s.Run("success: returns the view", func() {
		view := rb.BuildView()
		s.store.EXPECT().FindByID(gomock.Any(), rb.ID).Return(view, nil).Times(1)

		got, err := s.newQueries(queries.AvailabilityPointInTime).
			GetByID(context.Background(), rb.ID)

		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: not found maps to ErrRoomNotFound", func() {
		unknown := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), unknown).
			Return(nil, infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.newQueries(queries.AvailabilityPointInTime).
			GetByID(context.Background(), unknown)

		s.ErrorIs(err, errs.ErrRoomNotFound)
	})
}
