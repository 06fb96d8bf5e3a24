package http

import (
	"net/http"

	checklistDto "fitfam.app/familyfit/internal/modules/checklist/dto"
	checklist "fitfam.app/familyfit/internal/modules/checklist/service"
	"fitfam.app/familyfit/pkg/response"
	"fitfam.app/familyfit/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ChecklistHandler struct {
	service checklist.ChecklistService
}

func NewChecklistHandler(service checklist.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{service: service}
}

func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var filter checklistDto.ChecklistFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	record, err := h.service.GetChecklist(c.Request.Context(), userID, filter.Date)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *ChecklistHandler) SaveChecklist(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input checklistDto.SaveChecklistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	record, err := h.service.SaveChecklist(c.Request.Context(), userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "daily checklist updated successfully",
		"checklist": record,
	})
}

func (h *ChecklistHandler) CompleteChecklist(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input checklistDto.CompleteChecklistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	record, err := h.service.CompleteChecklist(c.Request.Context(), userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "daily checklist completed successfully",
		"checklist":    record,
		"total_points": record.TotalPoints,
	})
}
