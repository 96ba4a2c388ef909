package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/app/models/dto"
	"github.com/collegehub/collegehub/internal/app/services"
	"github.com/collegehub/collegehub/internal/middleware"
)

// FeedbackController handles visitor feedback. Submission is public;
// everything else is admin-only.
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// SubmitFeedback accepts a feedback entry from a visitor
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var feedback models.Feedback
	if err := ctx.ShouldBindJSON(&feedback); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid feedback data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.feedbackService.SubmitFeedback(ctx.Request.Context(), &feedback); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(feedback))
}

// GetAllFeedback lists feedback entries, optionally only unresolved ones
func (c *FeedbackController) GetAllFeedback(ctx *gin.Context) {
	var (
		entries []models.Feedback
		err     error
	)
	if ctx.Query("unresolved") == "true" {
		entries, err = c.feedbackService.ListUnresolved(ctx.Request.Context())
	} else {
		entries, err = c.feedbackService.GetAllFeedback(ctx.Request.Context())
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entries))
}

// MarkResolved flags a feedback entry as handled
func (c *FeedbackController) MarkResolved(ctx *gin.Context) {
	if err := c.feedbackService.MarkResolved(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Feedback marked resolved"))
}

// DeleteFeedback removes a feedback entry
func (c *FeedbackController) DeleteFeedback(ctx *gin.Context) {
	if err := c.feedbackService.DeleteFeedback(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Feedback deleted"))
}
