package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"quiz-portal/internal/mailer"
	"quiz-portal/internal/models"

	"github.com/google/uuid"
)

// ResponseStore is the persistence surface the response service needs.
// Find returns records ordered by total score descending.
type ResponseStore interface {
	Create(ctx context.Context, resp *models.QuizResponse) error
	Find(ctx context.Context, subject string) ([]models.QuizResponse, error)
	DistinctSubjects(ctx context.Context) ([]string, error)
}

type ResponseService struct {
	Store ResponseStore
	Mail  mailer.Mailer
}

func NewResponseService(store ResponseStore, mail mailer.Mailer) *ResponseService {
	return &ResponseService{Store: store, Mail: mail}
}

// SubmitResponse persists the payload as reported by the client. Scores
// and per-answer correctness are trusted as submitted; there is no
// duplicate-submission check.
func (s *ResponseService) SubmitResponse(ctx context.Context, resp *models.QuizResponse) (*models.QuizResponse, error) {
	resp.ID = uuid.NewString()
	resp.Subject = strings.ToUpper(resp.Subject)
	if err := s.Store.Create(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListResponses returns responses sorted by total score descending,
// optionally filtered by subject. The filter is case-insensitive.
func (s *ResponseService) ListResponses(ctx context.Context, subject string) ([]models.QuizResponse, error) {
	return s.Store.Find(ctx, strings.ToUpper(subject))
}

func (s *ResponseService) ListSubjects(ctx context.Context) ([]string, error) {
	return s.Store.DistinctSubjects(ctx)
}

// SendResults emails each student their score for the given subject. All
// sends run concurrently and the call fails unless every one succeeds.
func (s *ResponseService) SendResults(ctx context.Context, subject string, responses []models.QuizResponse) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := range responses {
		resp := responses[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Mail.Send(resultMessage(subject, resp)); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(errs) > 0 {
		return &DeliveryError{Errs: errs}
	}
	return nil
}

func resultMessage(subject string, resp models.QuizResponse) *mailer.Message {
	examDate := resp.EndTime.Format("02 Jan 2006 15:04")
	return &mailer.Message{
		ToName:    resp.StudentData.Name,
		ToAddress: resp.StudentData.Email,
		Subject:   fmt.Sprintf("Quiz Results for %s", subject),
		TextContent: fmt.Sprintf(
			"Dear %s,\n\nYour quiz results for %s are as follows:\n\nTotal Score: %g\nExam Date: %s\n",
			resp.StudentData.Name, subject, resp.TotalScore, examDate,
		),
		HTMLContent: fmt.Sprintf(
			"<h1>Quiz Result</h1><p>Dear %s,</p><p>Your quiz results for %s are as follows:</p><ul><li>Total Score: %g</li><li>Exam Date: %s</li></ul>",
			resp.StudentData.Name, subject, resp.TotalScore, examDate,
		),
	}
}
