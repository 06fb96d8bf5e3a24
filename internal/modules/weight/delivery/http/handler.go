package http

import (
	"net/http"

	"fitfam.app/familyfit/internal/model"
	weightDto "fitfam.app/familyfit/internal/modules/weight/dto"
	weight "fitfam.app/familyfit/internal/modules/weight/service"
	"fitfam.app/familyfit/pkg/response"
	"fitfam.app/familyfit/pkg/validator"
	"github.com/gin-gonic/gin"
)

type WeightHandler struct {
	service weight.WeightService
}

func NewWeightHandler(service weight.WeightService) *WeightHandler {
	return &WeightHandler{service: service}
}

func (h *WeightHandler) LogWeight(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input weightDto.LogWeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	entry, err := h.service.LogWeight(c.Request.Context(), userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "weight logged successfully",
		"weight":  entry,
	})
}

func (h *WeightHandler) GetHistory(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	entries, err := h.service.GetHistory(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *WeightHandler) GetForDate(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var filter weightDto.WeightFilter
	if err := c.ShouldBindUri(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	entry, err := h.service.GetForDate(c.Request.Context(), userID, filter.Date)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if entry == nil {
		// No entry for that day: empty object, not an error
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *WeightHandler) GetMyProgress(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	progress, err := h.service.GetMyProgress(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// GetAdminWeightReport requires the admin middleware, which stores the full
// user record in the context.
func (h *WeightHandler) GetAdminWeightReport(c *gin.Context) {
	callerVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	caller, ok := callerVal.(*model.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	rows, err := h.service.GetAdminWeightReport(c.Request.Context(), caller)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}
