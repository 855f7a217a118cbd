package api

import (
	"errors"
	"net/http"

	reqdto "famboard/internal/handler/dto/request"
	"famboard/internal/handler/middleware"
	"famboard/internal/pkg/errs"
	"famboard/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PushHandler struct {
	pushCommands commands.PushCommands
}

func NewPushHandler(pushCommands commands.PushCommands) *PushHandler {
	return &PushHandler{
		pushCommands: pushCommands,
	}
}

// @Summary Register push subscription
// @Description Store the browser's push subscription for the caller
// @Tags push
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubscribePushRequest true "Push subscription"
// @Success 201
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /push/subscriptions [post]
func (h *PushHandler) Subscribe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubscribePushRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.SubscribePushParams{
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	}

	if err := h.pushCommands.Subscribe(c.Request.Context(), userID, params); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusCreated)
}

// @Summary Remove push subscription
// @Description Delete the caller's push subscription for the given endpoint
// @Tags push
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UnsubscribePushRequest true "Endpoint"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /push/subscriptions [delete]
func (h *PushHandler) Unsubscribe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UnsubscribePushRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.pushCommands.Unsubscribe(c.Request.Context(), userID, req.Endpoint); err != nil {
		switch {
		case errors.Is(err, errs.ErrEndpointNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Push subscription not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
