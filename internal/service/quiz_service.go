package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quiz-portal/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// QuizStore is the persistence surface the quiz service needs.
type QuizStore interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	FindActive(ctx context.Context) ([]models.Quiz, error)
	FindByID(ctx context.Context, id int64) (*models.Quiz, error)
	Delete(ctx context.Context, id int64) (*models.Quiz, error)
}

// QuizMeta carries the admin form fields that accompany the uploaded
// quiz-definition file.
type QuizMeta struct {
	Title        string `form:"title" validate:"required"`
	Subject      string `form:"subject" validate:"required"`
	Branch       string `form:"branch" validate:"required"`
	AcademicYear string `form:"academicYear" validate:"required"`
	Duration     int    `form:"duration" validate:"required,gt=0"`
	StartTime    string `form:"startTime"`
	EndTime      string `form:"endTime"`
	CreatedBy    string `form:"-"`
}

// QuestionUpload is one question as it appears in the uploaded file.
type QuestionUpload struct {
	Text    string   `json:"text" validate:"required"`
	Options []string `json:"options" validate:"required,min=2,dive,required"`
	Answer  string   `json:"answer" validate:"required"`
	Points  float64  `json:"points" validate:"gte=0"`
}

// QuizUpload is the expected structure of the quiz-definition file.
type QuizUpload struct {
	Questions []QuestionUpload `json:"questions" validate:"required,min=1,dive"`
}

// QuizSummary is the public shape returned after creation.
type QuizSummary struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	ShareableLink string `json:"shareableLink"`
	Duration      int    `json:"duration"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

type QuizService struct {
	Store   QuizStore
	BaseURL string
}

func NewQuizService(store QuizStore, baseURL string) *QuizService {
	return &QuizService{Store: store, BaseURL: baseURL}
}

// CreateQuiz validates the metadata and the uploaded definition file,
// assigns the public id from the creation timestamp and sequential
// question ids starting at 1, and persists the quiz.
func (s *QuizService) CreateQuiz(ctx context.Context, meta QuizMeta, quizFile []byte) (*QuizSummary, error) {
	if err := validate.Struct(meta); err != nil {
		return nil, validationErrorf("invalid quiz metadata: %v", err)
	}

	var upload QuizUpload
	if err := json.Unmarshal(quizFile, &upload); err != nil {
		return nil, validationErrorf("quiz file is not valid JSON: %v", err)
	}
	if err := validate.Struct(upload); err != nil {
		return nil, validationErrorf("invalid quiz file: %v", err)
	}

	now := time.Now()
	id := now.UnixMilli()

	questions := make([]models.Question, len(upload.Questions))
	for i, q := range upload.Questions {
		questions[i] = models.Question{
			ID:      i + 1,
			Text:    q.Text,
			Options: q.Options,
			Answer:  q.Answer,
			Points:  q.Points,
		}
	}

	createdBy := meta.CreatedBy
	if createdBy == "" {
		createdBy = "admin"
	}

	quiz := &models.Quiz{
		ID:            id,
		Title:         meta.Title,
		Subject:       meta.Subject,
		Branch:        meta.Branch,
		AcademicYear:  meta.AcademicYear,
		Questions:     questions,
		Duration:      meta.Duration,
		CreatedBy:     createdBy,
		ShareableLink: fmt.Sprintf("%s/quiz/%d", s.BaseURL, id),
		Active:        true,
		CreatedAt:     now,
		StartTime:     meta.StartTime,
		EndTime:       meta.EndTime,
	}

	if err := s.Store.Create(ctx, quiz); err != nil {
		return nil, err
	}

	return &QuizSummary{
		ID:            quiz.ID,
		Title:         quiz.Title,
		ShareableLink: quiz.ShareableLink,
		Duration:      quiz.Duration,
		StartTime:     quiz.StartTime,
		EndTime:       quiz.EndTime,
	}, nil
}

// ListQuizzes returns every quiz currently marked active.
func (s *QuizService) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	return s.Store.FindActive(ctx)
}

func (s *QuizService) GetQuiz(ctx context.Context, id int64) (*models.Quiz, error) {
	return s.Store.FindByID(ctx, id)
}

// DeleteQuiz removes the quiz and returns the deleted record.
func (s *QuizService) DeleteQuiz(ctx context.Context, id int64) (*models.Quiz, error) {
	return s.Store.Delete(ctx, id)
}
