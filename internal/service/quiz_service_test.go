package service

import (
	"context"
	"errors"
	"testing"

	"quiz-portal/internal/models"
)

type fakeQuizStore struct {
	quizzes []models.Quiz
}

func (s *fakeQuizStore) Create(ctx context.Context, quiz *models.Quiz) error {
	s.quizzes = append(s.quizzes, *quiz)
	return nil
}

func (s *fakeQuizStore) FindActive(ctx context.Context) ([]models.Quiz, error) {
	var active []models.Quiz
	for _, q := range s.quizzes {
		if q.Active {
			active = append(active, q)
		}
	}
	return active, nil
}

func (s *fakeQuizStore) FindByID(ctx context.Context, id int64) (*models.Quiz, error) {
	for i := range s.quizzes {
		if s.quizzes[i].ID == id {
			return &s.quizzes[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeQuizStore) Delete(ctx context.Context, id int64) (*models.Quiz, error) {
	for i := range s.quizzes {
		if s.quizzes[i].ID == id {
			deleted := s.quizzes[i]
			s.quizzes = append(s.quizzes[:i], s.quizzes[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, ErrNotFound
}

var validMeta = QuizMeta{
	Title:        "Midterm",
	Subject:      "PHY",
	Branch:       "CSE",
	AcademicYear: "2024-25",
	Duration:     30,
}

const validFile = `{"questions":[
	{"text":"Q1","options":["a","b","c"],"answer":"a","points":5},
	{"text":"Q2","options":["x","y"],"answer":"y","points":10},
	{"text":"Q3","options":["p","q"],"answer":"p","points":2}
]}`

func TestCreateQuizAssignsSequentialQuestionIDs(t *testing.T) {
	store := &fakeQuizStore{}
	svc := NewQuizService(store, "http://localhost:3000")

	summary, err := svc.CreateQuiz(context.Background(), validMeta, []byte(validFile))
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	if len(store.quizzes) != 1 {
		t.Fatalf("expected 1 stored quiz, got %d", len(store.quizzes))
	}

	quiz := store.quizzes[0]
	if len(quiz.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(quiz.Questions))
	}
	for i, q := range quiz.Questions {
		if q.ID != i+1 {
			t.Errorf("question %d: expected id %d, got %d", i, i+1, q.ID)
		}
	}
	if !quiz.Active {
		t.Error("expected new quiz to be active")
	}
	if quiz.ID == 0 {
		t.Error("expected non-zero public id")
	}
	if summary.ID != quiz.ID {
		t.Errorf("summary id %d does not match stored id %d", summary.ID, quiz.ID)
	}
	wantLink := "http://localhost:3000/quiz/"
	if len(summary.ShareableLink) <= len(wantLink) || summary.ShareableLink[:len(wantLink)] != wantLink {
		t.Errorf("unexpected shareable link %q", summary.ShareableLink)
	}
}

func TestCreateQuizValidation(t *testing.T) {
	cases := []struct {
		name string
		meta QuizMeta
		file string
	}{
		{"missing title", QuizMeta{Subject: "PHY", Branch: "CSE", AcademicYear: "2024", Duration: 10}, validFile},
		{"zero duration", QuizMeta{Title: "T", Subject: "PHY", Branch: "CSE", AcademicYear: "2024"}, validFile},
		{"empty questions", validMeta, `{"questions":[]}`},
		{"not json", validMeta, `not a json file`},
		{"question missing answer", validMeta, `{"questions":[{"text":"Q1","options":["a","b"],"points":1}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewQuizService(&fakeQuizStore{}, "http://localhost:3000")
			_, err := svc.CreateQuiz(context.Background(), tc.meta, []byte(tc.file))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestListQuizzesOnlyActive(t *testing.T) {
	store := &fakeQuizStore{quizzes: []models.Quiz{
		{ID: 1, Title: "live", Active: true},
		{ID: 2, Title: "retired", Active: false},
		{ID: 3, Title: "live too", Active: true},
	}}
	svc := NewQuizService(store, "")

	quizzes, err := svc.ListQuizzes(context.Background())
	if err != nil {
		t.Fatalf("ListQuizzes failed: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("expected 2 active quizzes, got %d", len(quizzes))
	}
	for _, q := range quizzes {
		if !q.Active {
			t.Errorf("quiz %d returned despite active=false", q.ID)
		}
	}
}

func TestGetQuizNotFound(t *testing.T) {
	svc := NewQuizService(&fakeQuizStore{}, "")
	_, err := svc.GetQuiz(context.Background(), 12345)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteQuizThenGet(t *testing.T) {
	store := &fakeQuizStore{quizzes: []models.Quiz{{ID: 42, Title: "doomed", Active: true}}}
	svc := NewQuizService(store, "")

	deleted, err := svc.DeleteQuiz(context.Background(), 42)
	if err != nil {
		t.Fatalf("DeleteQuiz failed: %v", err)
	}
	if deleted.Title != "doomed" {
		t.Errorf("expected deleted record back, got %+v", deleted)
	}

	if _, err := svc.GetQuiz(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := svc.DeleteQuiz(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
