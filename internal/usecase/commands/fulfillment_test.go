//go:build unit

package commands_test

import (
	"context"
	"testing"

	"dining-concierge/internal/domain/reservation"
	"dining-concierge/internal/domain/restaurant"
	"dining-concierge/internal/pkg/errs"
	"dining-concierge/internal/usecase/commands"
	"dining-concierge/tests/common/builder"
	commandsmock "dining-concierge/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FulfillmentCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockQueue    *commandsmock.MockReservationQueue
	mockSearch   *commandsmock.MockRestaurantSearch
	mockStore    *commandsmock.MockRestaurantStore
	mockNotifier *commandsmock.MockNotifier
	commands     commands.FulfillmentCommands
}

func (s *FulfillmentCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueue = commandsmock.NewMockReservationQueue(s.mockCtrl)
	s.mockSearch = commandsmock.NewMockRestaurantSearch(s.mockCtrl)
	s.mockStore = commandsmock.NewMockRestaurantStore(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)

	selector := commands.NewRecommendationSelector(s.mockSearch, s.mockStore)
	s.commands = commands.NewFulfillmentCommands(s.mockQueue, selector, s.mockNotifier)
}

func (s *FulfillmentCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFulfillmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(FulfillmentCommandsTestSuite))
}

func (s *FulfillmentCommandsTestSuite) validBody() []byte {
	req := reservation.Request{
		Cuisine:        "japanese",
		Date:           "2031-01-02",
		Time:           "13:00",
		Location:       "manhattan",
		NumberOfPeople: 2,
		PhoneNumber:    "+15551234567",
	}
	body, err := req.Encode()
	s.Require().NoError(err)
	return body
}

func (s *FulfillmentCommandsTestSuite) expectCandidates(cuisine string, ids ...string) {
	s.mockSearch.EXPECT().SearchByCategory(gomock.Any(), cuisine).Return(ids, nil)
	records := make(map[string]*restaurant.Record, len(ids))
	for _, id := range ids {
		records[id] = builder.NewRestaurantBuilder(id).Build()
	}
	s.mockStore.EXPECT().GetByID(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, id string) (*restaurant.Record, error) {
			return records[id], nil
		})
}

func (s *FulfillmentCommandsTestSuite) TestProcessNext() {
	s.Run("sends one notification and acknowledges the message", func() {
		s.mockQueue.EXPECT().Receive(gomock.Any()).
			Return([]commands.QueueMessage{{Body: s.validBody(), ReceiptToken: "1-0"}}, nil)
		s.expectCandidates("japanese", "r1", "r2", "r3")
		s.mockNotifier.EXPECT().Send(gomock.Any(), "+15551234567", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, text string) error {
				s.Contains(text, "japanese restaurant suggestions for 2 people")
				s.Contains(text, "2031-01-02 at 13:00")
				return nil
			}).Times(1)
		s.mockQueue.EXPECT().Delete(gomock.Any(), "1-0").Return(nil).Times(1)

		processed, err := s.commands.ProcessNext(context.Background())
		s.Require().NoError(err)
		s.True(processed)
	})

	s.Run("empty queue is a quiet no-op", func() {
		s.mockQueue.EXPECT().Receive(gomock.Any()).Return(nil, nil)

		processed, err := s.commands.ProcessNext(context.Background())
		s.Require().NoError(err)
		s.False(processed)
	})

	s.Run("malformed message sends nothing and stays unacked", func() {
		s.mockQueue.EXPECT().Receive(gomock.Any()).
			Return([]commands.QueueMessage{{Body: []byte("{broken"), ReceiptToken: "2-0"}}, nil)
		s.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.mockQueue.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		processed, err := s.commands.ProcessNext(context.Background())
		s.ErrorIs(err, commands.ErrMalformedMessage)
		s.False(processed)
	})

	s.Run("selection failure leaves the message unacked", func() {
		s.mockQueue.EXPECT().Receive(gomock.Any()).
			Return([]commands.QueueMessage{{Body: s.validBody(), ReceiptToken: "3-0"}}, nil)
		s.mockSearch.EXPECT().SearchByCategory(gomock.Any(), "japanese").Return([]string{"r1"}, nil)
		s.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.mockQueue.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		processed, err := s.commands.ProcessNext(context.Background())
		s.ErrorIs(err, commands.ErrInsufficientCandidates)
		s.False(processed)
	})

	s.Run("send failure leaves the message unacked", func() {
		s.mockQueue.EXPECT().Receive(gomock.Any()).
			Return([]commands.QueueMessage{{Body: s.validBody(), ReceiptToken: "4-0"}}, nil)
		s.expectCandidates("japanese", "r1", "r2", "r3")
		s.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.New("gateway timeout"))
		s.mockQueue.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		processed, err := s.commands.ProcessNext(context.Background())
		s.ErrorIs(err, commands.ErrDispatchFailed)
		s.False(processed)
	})

	s.Run("acknowledge failure after send is reported", func() {
		s.mockQueue.EXPECT().Receive(gomock.Any()).
			Return([]commands.QueueMessage{{Body: s.validBody(), ReceiptToken: "5-0"}}, nil)
		s.expectCandidates("japanese", "r1", "r2", "r3")
		s.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockQueue.EXPECT().Delete(gomock.Any(), "5-0").Return(errs.New("connection lost"))

		processed, err := s.commands.ProcessNext(context.Background())
		s.ErrorIs(err, commands.ErrAcknowledgeFailed)
		s.False(processed)
	})

	s.Run("receive failure propagates", func() {
		s.mockQueue.EXPECT().Receive(gomock.Any()).Return(nil, errs.New("stream gone"))

		processed, err := s.commands.ProcessNext(context.Background())
		s.Error(err)
		s.False(processed)
	})
}
