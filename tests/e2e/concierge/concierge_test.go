//go:build e2e

package concierge

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"dining-concierge/internal/domain/dialog"
	resdto "dining-concierge/internal/handler/dto/response"
	"dining-concierge/internal/usecase/commands"
	"dining-concierge/tests/common/builder"
	"dining-concierge/tests/common/httptest"

	"github.com/stretchr/testify/suite"
)

type ConciergeE2ETestSuite struct {
	SharedSuite
}

func TestConciergeE2E(t *testing.T) {
	suite.Run(t, new(ConciergeE2ETestSuite))
}

func (s *ConciergeE2ETestSuite) seedJapaneseRestaurants(count int) {
	for i := 1; i <= count; i++ {
		id := fmt.Sprintf("jp-%d", i)
		SeedRestaurant(s.T(), s.DB, s.Redis, *builder.NewRestaurantBuilder(id).
			WithName("Japanese Place "+id).
			WithCategory("japanese").
			Build())
	}
}

func (s *ConciergeE2ETestSuite) postTurn(reqBody any) resdto.TurnResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/v1/dialog", reqBody, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var body resdto.TurnResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &body)
	return body
}

func (s *ConciergeE2ETestSuite) TestHealthCheck() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ConciergeE2ETestSuite) TestReservationConversation() {
	s.seedJapaneseRestaurants(5)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// an unsupported cuisine is re-elicited with a hint
	body := s.postTurn(builder.NewTurnBuilder().WithSlot(dialog.SlotCuisine, "thai").BuildRequestDTO())
	s.Equal("ElicitSlot", body.DialogAction.Type)
	s.Equal(dialog.SlotCuisine, body.DialogAction.SlotToElicit)
	s.Require().NotNil(body.DialogAction.Message)
	s.Contains(body.DialogAction.Message.Content, "We do not have thai")
	s.Require().Contains(body.DialogAction.Slots, dialog.SlotCuisine)
	s.Nil(body.DialogAction.Slots[dialog.SlotCuisine])

	// valid slots delegate back to the host
	body = s.postTurn(builder.NewTurnBuilder().BuildRequestDTO())
	s.Equal("Delegate", body.DialogAction.Type)

	// the fulfillment turn enqueues and confirms
	body = s.postTurn(builder.NewTurnBuilder().WithSource(dialog.SourceFulfillment).BuildRequestDTO())
	s.Equal("Close", body.DialogAction.Type)
	s.Equal("Fulfilled", body.DialogAction.FulfillmentState)
	s.Require().NotNil(body.DialogAction.Message)
	s.Equal("You're all set. Expect my suggestions shortly! Have a good day.", body.DialogAction.Message.Content)

	// the worker picks the request up and sends exactly one SMS
	processed, err := s.Fulfillment.ProcessNext(ctx)
	s.Require().NoError(err)
	s.True(processed)

	messages := s.Gateway.Messages()
	s.Require().Len(messages, 1)
	s.Equal("+15551234567", messages[0].To)
	s.Contains(messages[0].Body, "japanese restaurant suggestions for 2 people, for 2031-01-02 at 13:00")
	s.Contains(messages[0].Body, "Enjoy your meal!")

	// the queue is drained
	processed, err = s.Fulfillment.ProcessNext(ctx)
	s.Require().NoError(err)
	s.False(processed)
}

func (s *ConciergeE2ETestSuite) TestOtherIntentsClose() {
	body := s.postTurn(builder.NewTurnBuilder().WithIntent(dialog.IntentGreeting).BuildRequestDTO())
	s.Equal("Close", body.DialogAction.Type)
	s.Require().NotNil(body.DialogAction.Message)
	s.Equal("Hi there, how can I help?", body.DialogAction.Message.Content)

	body = s.postTurn(builder.NewTurnBuilder().WithIntent(dialog.IntentThankYou).BuildRequestDTO())
	s.Equal("Close", body.DialogAction.Type)
	s.Require().NotNil(body.DialogAction.Message)
	s.Equal("You are welcome.", body.DialogAction.Message.Content)
}

func (s *ConciergeE2ETestSuite) TestInsufficientCandidatesLeavesMessagePending() {
	s.seedJapaneseRestaurants(2)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body := s.postTurn(builder.NewTurnBuilder().WithSource(dialog.SourceFulfillment).BuildRequestDTO())
	s.Equal("Close", body.DialogAction.Type)

	processed, err := s.Fulfillment.ProcessNext(ctx)
	s.Require().ErrorIs(err, commands.ErrInsufficientCandidates)
	s.False(processed)
	s.Empty(s.Gateway.Messages())

	// the message stays on the stream for redelivery
	length, err := s.Redis.XLen(ctx, s.Config.Queue.Stream).Result()
	s.Require().NoError(err)
	s.Equal(int64(1), length)
}

func (s *ConciergeE2ETestSuite) TestSuggestionsAreDistinct() {
	s.seedJapaneseRestaurants(3)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.postTurn(builder.NewTurnBuilder().WithSource(dialog.SourceFulfillment).BuildRequestDTO())

	processed, err := s.Fulfillment.ProcessNext(ctx)
	s.Require().NoError(err)
	s.True(processed)

	messages := s.Gateway.Messages()
	s.Require().Len(messages, 1)
	// with exactly three candidates every one must appear once
	for i := 1; i <= 3; i++ {
		s.Contains(messages[0].Body, fmt.Sprintf("Japanese Place jp-%d", i))
	}
}
