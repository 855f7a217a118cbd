package api

import (
	"errors"
	"net/http"
	"strconv"

	"famboard/internal/domain/present"
	reqdto "famboard/internal/handler/dto/request"
	resdto "famboard/internal/handler/dto/response"
	"famboard/internal/handler/middleware"
	"famboard/internal/pkg/errs"
	"famboard/internal/usecase/commands"
	"famboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PresentHandler struct {
	presentCommands commands.PresentCommands
	presentQueries  queries.PresentQueries
}

func NewPresentHandler(presentCommands commands.PresentCommands, presentQueries queries.PresentQueries) *PresentHandler {
	return &PresentHandler{
		presentCommands: presentCommands,
		presentQueries:  presentQueries,
	}
}

// @Summary Create present
// @Description Add a new wish to the caller's list
// @Tags presents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePresentRequest true "Present request"
// @Success 201 {object} resdto.PresentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /presents [post]
func (h *PresentHandler) CreatePresent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreatePresentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreatePresentParams{
		Name:        req.Name,
		Description: req.GetDescription(),
		Link:        req.GetLink(),
		Price:       req.Price,
		Image:       req.Image,
	}

	view, err := h.presentCommands.Create(c.Request.Context(), userID, params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPresentView(view))
}

// @Summary List others' presents
// @Description List every family member's wishes except the caller's own
// @Tags presents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PresentResponse
// @Failure 401 {object} map[string]string
// @Router /presents [get]
func (h *PresentHandler) ListOthers(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.presentQueries.ListOthers(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PresentResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromPresentView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List own presents
// @Description List the caller's own wishes, without reservation details
// @Tags presents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OwnPresentResponse
// @Failure 401 {object} map[string]string
// @Router /presents/mine [get]
func (h *PresentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.presentQueries.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.OwnPresentResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromOwnPresentView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Change present state
// @Description Reserve, release, or mark a present as given
// @Tags presents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Present ID"
// @Param request body reqdto.TransitionPresentRequest true "Target state"
// @Success 200 {object} resdto.PresentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /presents/{id}/state [patch]
func (h *PresentHandler) TransitionPresent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parsePresentID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid present ID format",
		})
		return
	}

	var req reqdto.TransitionPresentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.presentCommands.Transition(c.Request.Context(), id, userID, present.State(*req.ToState))
	if err != nil {
		h.respondPresentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPresentView(view))
}

// @Summary Toggle bought flag
// @Description Mark a reserved present as bought, or clear the flag
// @Tags presents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Present ID"
// @Param request body reqdto.SetBoughtRequest true "Bought flag"
// @Success 200 {object} resdto.PresentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /presents/{id}/bought [patch]
func (h *PresentHandler) SetBought(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parsePresentID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid present ID format",
		})
		return
	}

	var req reqdto.SetBoughtRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.presentCommands.SetBought(c.Request.Context(), id, userID, *req.Bought)
	if err != nil {
		h.respondPresentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPresentView(view))
}

// @Summary Delete present
// @Description Remove one of the caller's own wishes
// @Tags presents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Present ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /presents/{id} [delete]
func (h *PresentHandler) DeletePresent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parsePresentID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid present ID format",
		})
		return
	}

	if err := h.presentCommands.Delete(c.Request.Context(), id, userID); err != nil {
		h.respondPresentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PresentHandler) respondPresentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrPresentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Present not found",
		})
	case errors.Is(err, errs.ErrOwnPresentAction):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Cannot act on your own present",
		})
	case errors.Is(err, errs.ErrBoughtNotReserver):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Only the reserver can change the bought flag",
		})
	case errors.Is(err, errs.ErrBoughtNotReserved):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Present is not reserved",
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Invalid state transition",
		})
	case errors.Is(err, errs.ErrTransitionConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Present was modified concurrently",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parsePresentID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
