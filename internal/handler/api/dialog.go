package api

import (
	"errors"
	"net/http"

	reqdto "dining-concierge/internal/handler/dto/request"
	resdto "dining-concierge/internal/handler/dto/response"
	"dining-concierge/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DialogHandler struct {
	dialogCommands commands.DialogCommands
}

func NewDialogHandler(dialogCommands commands.DialogCommands) *DialogHandler {
	return &DialogHandler{
		dialogCommands: dialogCommands,
	}
}

// HandleTurn runs one conversational turn and answers with exactly one dialog
// action for the host.
func (h *DialogHandler) HandleTurn(c *gin.Context) {
	var req reqdto.TurnEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.dialogCommands.HandleTurn(c.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnsupportedIntent):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unsupported intent",
			})
		case errors.Is(err, commands.ErrInvalidSlots):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid slot values",
			})
		case errors.Is(err, commands.ErrEnqueueFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to enqueue reservation request",
			})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewTurnResponse(result))
}
