package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"quiz-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Service *service.QuizService
}

func NewAdminHandler(s *service.QuizService) *AdminHandler {
	return &AdminHandler{Service: s}
}

// CreateQuiz handles the admin upload: metadata form fields plus the
// quiz-definition file under "quizFile".
func (h *AdminHandler) CreateQuiz(c *gin.Context) {
	var meta service.QuizMeta
	if err := c.ShouldBind(&meta); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Failed to create quiz",
			"error":   err.Error(),
		})
		return
	}

	fileHeader, err := c.FormFile("quizFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Failed to create quiz",
			"error":   "quizFile is required",
		})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Failed to create quiz",
			"error":   err.Error(),
		})
		return
	}
	defer file.Close()
	payload, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Failed to create quiz",
			"error":   err.Error(),
		})
		return
	}

	summary, err := h.Service.CreateQuiz(context.Background(), meta, payload)
	if err != nil {
		var verr *service.ValidationError
		status := http.StatusInternalServerError
		if errors.As(err, &verr) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"success": false,
			"message": "Failed to create quiz",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Quiz created successfully",
		"quiz":    summary,
	})
}
