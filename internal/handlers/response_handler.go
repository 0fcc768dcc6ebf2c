package handlers

import (
	"context"
	"net/http"

	"quiz-portal/internal/models"
	"quiz-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	Service *service.ResponseService
}

func NewResponseHandler(s *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{Service: s}
}

// SubmitResponse stores a client-scored submission as-is.
func (h *ResponseHandler) SubmitResponse(c *gin.Context) {
	var resp models.QuizResponse
	if err := c.ShouldBindJSON(&resp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}
	stored, err := h.Service.SubmitResponse(context.Background(), &resp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stored)
}

// ListResponses returns responses sorted by score, optionally filtered by
// subject (case-insensitive).
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	responses, err := h.Service.ListResponses(context.Background(), c.Query("subject"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error fetching quiz responses",
			"error":   err.Error(),
		})
		return
	}
	if responses == nil {
		responses = []models.QuizResponse{}
	}
	c.JSON(http.StatusOK, responses)
}

func (h *ResponseHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.Service.ListSubjects(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error fetching subjects",
			"error":   err.Error(),
		})
		return
	}
	if subjects == nil {
		subjects = []string{}
	}
	c.JSON(http.StatusOK, subjects)
}

type sendResultsRequest struct {
	Subject   string                `json:"subject"`
	Responses []models.QuizResponse `json:"responses"`
}

// SendResults emails scores to every student in the request. The batch is
// all-or-nothing.
func (h *ResponseHandler) SendResults(c *gin.Context) {
	var req sendResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Failed to send emails",
			"error":   err.Error(),
		})
		return
	}
	if err := h.Service.SendResults(context.Background(), req.Subject, req.Responses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to send emails",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Emails sent successfully"})
}
