package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"quiz-portal/internal/mailer"
	"quiz-portal/internal/models"
)

type fakeResponseStore struct {
	responses []models.QuizResponse
}

func (s *fakeResponseStore) Create(ctx context.Context, resp *models.QuizResponse) error {
	s.responses = append(s.responses, *resp)
	return nil
}

func (s *fakeResponseStore) Find(ctx context.Context, subject string) ([]models.QuizResponse, error) {
	var out []models.QuizResponse
	for _, r := range s.responses {
		if subject == "" || r.Subject == subject {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalScore > out[j].TotalScore })
	return out, nil
}

func (s *fakeResponseStore) DistinctSubjects(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var subjects []string
	for _, r := range s.responses {
		if !seen[r.Subject] {
			seen[r.Subject] = true
			subjects = append(subjects, r.Subject)
		}
	}
	return subjects, nil
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []*mailer.Message
	failFor string
}

func (m *fakeMailer) Send(msg *mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	if msg.ToAddress == m.failFor {
		return fmt.Errorf("smtp 550: bad address %s", msg.ToAddress)
	}
	return nil
}

func TestSubmitResponseAssignsIDAndNormalizesSubject(t *testing.T) {
	store := &fakeResponseStore{}
	svc := NewResponseService(store, &fakeMailer{})

	stored, err := svc.SubmitResponse(context.Background(), &models.QuizResponse{
		QuizID:     100,
		Subject:    "phy",
		TotalScore: 12,
	})
	if err != nil {
		t.Fatalf("SubmitResponse failed: %v", err)
	}
	if stored.ID == "" {
		t.Error("expected generated response id")
	}
	if stored.Subject != "PHY" {
		t.Errorf("expected subject PHY, got %q", stored.Subject)
	}
	if len(store.responses) != 1 {
		t.Fatalf("expected 1 stored response, got %d", len(store.responses))
	}
}

func TestListResponsesSubjectFilterCaseInsensitive(t *testing.T) {
	store := &fakeResponseStore{}
	svc := NewResponseService(store, &fakeMailer{})
	ctx := context.Background()

	for i, subj := range []string{"phy", "PHY", "chem"} {
		if _, err := svc.SubmitResponse(ctx, &models.QuizResponse{
			Subject:    subj,
			TotalScore: float64(i),
		}); err != nil {
			t.Fatalf("seed submit failed: %v", err)
		}
	}

	lower, err := svc.ListResponses(ctx, "phy")
	if err != nil {
		t.Fatalf("ListResponses failed: %v", err)
	}
	upper, err := svc.ListResponses(ctx, "PHY")
	if err != nil {
		t.Fatalf("ListResponses failed: %v", err)
	}
	if len(lower) != 2 || len(upper) != 2 {
		t.Fatalf("expected 2 responses for each case variant, got %d and %d", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i].ID != upper[i].ID {
			t.Errorf("filter variants disagree at index %d", i)
		}
	}
}

func TestListResponsesSortedByScoreDescending(t *testing.T) {
	store := &fakeResponseStore{}
	svc := NewResponseService(store, &fakeMailer{})
	ctx := context.Background()

	for _, score := range []float64{5, 20, 10, 20, 1} {
		if _, err := svc.SubmitResponse(ctx, &models.QuizResponse{Subject: "phy", TotalScore: score}); err != nil {
			t.Fatalf("seed submit failed: %v", err)
		}
	}

	responses, err := svc.ListResponses(ctx, "")
	if err != nil {
		t.Fatalf("ListResponses failed: %v", err)
	}
	for i := 1; i < len(responses); i++ {
		if responses[i-1].TotalScore < responses[i].TotalScore {
			t.Errorf("responses out of order at %d: %g < %g", i, responses[i-1].TotalScore, responses[i].TotalScore)
		}
	}
}

func TestListSubjects(t *testing.T) {
	store := &fakeResponseStore{}
	svc := NewResponseService(store, &fakeMailer{})
	ctx := context.Background()

	for _, subj := range []string{"phy", "phy", "chem", "math"} {
		if _, err := svc.SubmitResponse(ctx, &models.QuizResponse{Subject: subj}); err != nil {
			t.Fatalf("seed submit failed: %v", err)
		}
	}

	subjects, err := svc.ListSubjects(ctx)
	if err != nil {
		t.Fatalf("ListSubjects failed: %v", err)
	}
	if len(subjects) != 3 {
		t.Errorf("expected 3 distinct subjects, got %v", subjects)
	}
}

func sampleResponses() []models.QuizResponse {
	end := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	mk := func(name, email string, score float64) models.QuizResponse {
		return models.QuizResponse{
			StudentData: models.StudentData{Name: name, Email: email},
			TotalScore:  score,
			EndTime:     end,
		}
	}
	return []models.QuizResponse{
		mk("Asha", "asha@example.com", 15),
		mk("Bela", "bela@invalid", 10),
		mk("Chirag", "chirag@example.com", 5),
	}
}

func TestSendResultsAllSucceed(t *testing.T) {
	mail := &fakeMailer{}
	svc := NewResponseService(&fakeResponseStore{}, mail)

	if err := svc.SendResults(context.Background(), "PHY", sampleResponses()); err != nil {
		t.Fatalf("SendResults failed: %v", err)
	}
	if len(mail.sent) != 3 {
		t.Errorf("expected 3 mails sent, got %d", len(mail.sent))
	}
}

func TestSendResultsBatchFailsOnAnyBadRecipient(t *testing.T) {
	mail := &fakeMailer{failFor: "bela@invalid"}
	svc := NewResponseService(&fakeResponseStore{}, mail)

	err := svc.SendResults(context.Background(), "PHY", sampleResponses())
	var derr *DeliveryError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DeliveryError, got %v", err)
	}
	if len(derr.Errs) != 1 {
		t.Errorf("expected 1 underlying send error, got %d", len(derr.Errs))
	}
	// Every send is still attempted; there is no short-circuit.
	if len(mail.sent) != 3 {
		t.Errorf("expected all 3 sends attempted, got %d", len(mail.sent))
	}
}
