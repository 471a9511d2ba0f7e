package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bibleplan/backend/internal/middleware"
	"bibleplan/backend/internal/model"
	"bibleplan/backend/internal/service"
)

type PlanHandler struct {
	scheduleService *service.ScheduleService
}

type createPlanRequest struct {
	StyleType   string            `json:"styleType"`
	StyleConfig model.StyleConfig `json:"styleConfig"`
}

type markReadRequest struct {
	References []string `json:"references"`
}

func NewPlanHandler(scheduleService *service.ScheduleService) *PlanHandler {
	return &PlanHandler{scheduleService: scheduleService}
}

func (h *PlanHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": gin.H{"code": "unauthorized", "message": "unauthorized"},
		})
		return
	}

	view, apiErr := h.scheduleService.Get(c.Request.Context(), userID)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": view})
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_json", "message": "invalid request body"},
		})
		return
	}
	if req.StyleType == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_style", "message": "styleType is required"},
		})
		return
	}

	userID := middleware.UserID(c)
	view, apiErr := h.scheduleService.Create(c.Request.Context(), userID, req.StyleType, req.StyleConfig)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plan": view})
}

func (h *PlanHandler) MarkRead(c *gin.Context) {
	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_json", "message": "invalid request body"},
		})
		return
	}

	userID := middleware.UserID(c)
	output, apiErr := h.scheduleService.MarkRead(c.Request.Context(), userID, req.References)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"plan":         output.View,
		"appliedCount": output.Applied,
		"skippedCount": output.Skipped,
	})
}

func (h *PlanHandler) Revert(c *gin.Context) {
	userID := middleware.UserID(c)
	view, apiErr := h.scheduleService.Revert(c.Request.Context(), userID)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": view})
}

func (h *PlanHandler) Pause(c *gin.Context) {
	userID := middleware.UserID(c)
	view, apiErr := h.scheduleService.Pause(c.Request.Context(), userID)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": view})
}

func (h *PlanHandler) Resume(c *gin.Context) {
	userID := middleware.UserID(c)
	view, apiErr := h.scheduleService.Resume(c.Request.Context(), userID)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": view})
}

func (h *PlanHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)
	if apiErr := h.scheduleService.Delete(c.Request.Context(), userID); apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
