//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"dining-concierge/internal/domain/dialog"
	"dining-concierge/internal/handler/api"
	resdto "dining-concierge/internal/handler/dto/response"
	"dining-concierge/internal/pkg/errs"
	"dining-concierge/internal/usecase/commands"
	"dining-concierge/tests/common/builder"
	"dining-concierge/tests/common/httptest"
	commandsmock "dining-concierge/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DialogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDialogCommands
	handler      *api.DialogHandler
}

func (s *DialogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDialogCommands(s.mockCtrl)
	s.handler = api.NewDialogHandler(s.mockCommands)

	s.router.POST("/v1/dialog", s.handler.HandleTurn)
}

func (s *DialogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDialogHandlerSuite(t *testing.T) {
	suite.Run(t, new(DialogHandlerTestSuite))
}

const url = "/v1/dialog"

func (s *DialogHandlerTestSuite) TestHandleTurn() {
	s.Run("success: renders an elicit action with explicit null slots", func() {
		slots := dialog.Slots{dialog.SlotCuisine: "japanese"}
		s.mockCommands.EXPECT().HandleTurn(gomock.Any(), gomock.Any()).
			Return(&dialog.TurnResult{
				SessionAttributes: map[string]string{},
				Action:            dialog.ElicitSlot(dialog.IntentDiningSuggestions, slots, dialog.SlotDate, "What day would you like to reserve?"),
			}, nil).Times(1)

		reqBody := builder.NewTurnBuilder().BuildRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusOK, rec.Code)

		var body resdto.TurnResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("ElicitSlot", body.DialogAction.Type)
		s.Equal(dialog.SlotDate, body.DialogAction.SlotToElicit)
		s.Require().NotNil(body.DialogAction.Message)
		s.Equal("PlainText", body.DialogAction.Message.ContentType)
		s.Equal("What day would you like to reserve?", body.DialogAction.Message.Content)

		s.Require().Contains(body.DialogAction.Slots, dialog.SlotCuisine)
		s.Require().NotNil(body.DialogAction.Slots[dialog.SlotCuisine])
		s.Equal("japanese", *body.DialogAction.Slots[dialog.SlotCuisine])
		s.Require().Contains(body.DialogAction.Slots, dialog.SlotDate)
		s.Nil(body.DialogAction.Slots[dialog.SlotDate])
	})

	s.Run("success: renders a close action without slots", func() {
		s.mockCommands.EXPECT().HandleTurn(gomock.Any(), gomock.Any()).
			Return(&dialog.TurnResult{
				SessionAttributes: map[string]string{},
				Action:            dialog.Close("You're all set. Expect my suggestions shortly! Have a good day."),
			}, nil).Times(1)

		reqBody := builder.NewTurnBuilder().WithSource(dialog.SourceFulfillment).BuildRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusOK, rec.Code)

		var body resdto.TurnResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("Close", body.DialogAction.Type)
		s.Equal("Fulfilled", body.DialogAction.FulfillmentState)
		s.Nil(body.DialogAction.Slots)
	})

	s.Run("success: null slot values reach the domain as missing", func() {
		s.mockCommands.EXPECT().HandleTurn(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, event dialog.TurnEvent) (*dialog.TurnResult, error) {
				s.NotContains(event.Slots, dialog.SlotDate)
				return &dialog.TurnResult{Action: dialog.Delegate(event.Slots)}, nil
			}).Times(1)

		reqBody := builder.NewTurnBuilder().BuildRequestDTO()
		reqBody.CurrentIntent.Slots[dialog.SlotDate] = nil
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte("{broken"), "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing userId", mutate: func(m map[string]any) { delete(m, "userId") }},
			{name: "missing invocationSource", mutate: func(m map[string]any) { delete(m, "invocationSource") }},
			{name: "unknown invocationSource", mutate: func(m map[string]any) { m["invocationSource"] = "OtherHook" }},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := map[string]any{
					"userId":           "user-123",
					"invocationSource": dialog.SourceValidation,
					"currentIntent":    map[string]any{"name": dialog.IntentDiningSuggestions},
				}
				tc.mutate(body)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name          string
			commandsError error
			expectCode    int
		}{
			{name: "unsupported intent", commandsError: commands.ErrUnsupportedIntent, expectCode: http.StatusUnprocessableEntity},
			{name: "invalid slots", commandsError: commands.ErrInvalidSlots, expectCode: http.StatusUnprocessableEntity},
			{name: "enqueue failed", commandsError: commands.ErrEnqueueFailed, expectCode: http.StatusBadGateway},
			{name: "unexpected failure", commandsError: errs.New("boom"), expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().HandleTurn(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				reqBody := builder.NewTurnBuilder().BuildRequestDTO()
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}
