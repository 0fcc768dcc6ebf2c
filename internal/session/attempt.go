package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"quiz-portal/internal/models"
)

// Submitter hands a finished attempt to the response service.
type Submitter interface {
	SubmitResponse(ctx context.Context, resp *models.QuizResponse) (*models.QuizResponse, error)
}

// Attempt drives one student through one quiz. It is constructed with the
// student's identity; there is no ambient lookup. All mutation happens in
// Apply, fed either directly or through the Run event loop.
type Attempt struct {
	mu sync.Mutex

	quiz      *models.Quiz
	student   models.StudentData
	submitter Submitter

	state      State
	remaining  int
	answers    map[int]string
	violations int
	startTime  time.Time
	endTime    time.Time
	result     *Result

	events chan Event
}

func NewAttempt(quiz *models.Quiz, student models.StudentData, submitter Submitter) *Attempt {
	return &Attempt{
		quiz:      quiz,
		student:   student,
		submitter: submitter,
		state:     StateNotStarted,
		answers:   make(map[int]string),
		events:    make(chan Event, 64),
	}
}

// Start begins the attempt and arms the countdown at duration*60 seconds.
func (a *Attempt) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateNotStarted {
		return fmt.Errorf("attempt already %s", a.state)
	}
	a.state = StateInProgress
	a.remaining = a.quiz.Duration * 60
	a.startTime = time.Now()
	return nil
}

// Notify queues an event for the reducer. Safe to call from any
// goroutine; events are applied in arrival order.
func (a *Attempt) Notify(ev Event) {
	a.events <- ev
}

// Run drains the event queue, feeding countdown ticks from a wall-clock
// ticker, until the attempt is submitted or the context is cancelled.
func (a *Attempt) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for a.State() != StateSubmitted {
		select {
		case <-ctx.Done():
			return
		case ev := <-a.events:
			a.Apply(ctx, ev)
		case <-ticker.C:
			a.Apply(ctx, Tick{})
		}
	}
}

// Apply is the single reducer for every attempt stimulus. Events arriving
// outside StateInProgress are ignored.
func (a *Attempt) Apply(ctx context.Context, ev Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateInProgress {
		return
	}
	switch e := ev.(type) {
	case AnswerSelected:
		// Last write wins.
		a.answers[e.QuestionID] = e.Option
	case VisibilityLost, FullscreenExited:
		a.violations++
	case Tick:
		a.remaining--
		if a.remaining <= 0 {
			a.submit(ctx, CompletionTimeout)
		}
	case SubmitRequested:
		a.submit(ctx, CompletionManual)
	}
}

// submit scores the attempt against the answer key, builds the response
// payload and hands it off. Caller holds the lock.
func (a *Attempt) submit(ctx context.Context, completionType string) {
	a.state = StateSubmitted
	a.endTime = time.Now()

	answers := make([]models.Answer, len(a.quiz.Questions))
	var score float64
	for i, q := range a.quiz.Questions {
		ans := models.Answer{QueID: q.ID}
		if selected, ok := a.answers[q.ID]; ok {
			s := selected
			ans.SelectedAnswer = &s
			if selected == q.Answer {
				ans.IsCorrect = true
				score += q.Points
			}
		}
		answers[i] = ans
	}

	percentage := 0.0
	if total := a.quiz.TotalPoints(); total > 0 {
		percentage = score / total * 100
	}

	quizMongoID := ""
	if !a.quiz.MongoID.IsZero() {
		quizMongoID = a.quiz.MongoID.Hex()
	}

	resp := &models.QuizResponse{
		QuizID:       a.quiz.ID,
		QuizMongoID:  quizMongoID,
		StudentID:    a.student.ID,
		StudentEmail: a.student.Email,
		Subject:      a.quiz.Subject,
		StudentData:  a.student,
		Answers:      answers,
		TotalScore:   score,
		Violations:   a.violations,
		StartTime:    a.startTime,
		EndTime:      a.endTime,
	}

	a.result = &Result{
		TotalScore:     score,
		Percentage:     percentage,
		CompletionType: completionType,
	}
	if a.submitter != nil {
		if _, err := a.submitter.SubmitResponse(ctx, resp); err != nil {
			// Reported, but the attempt stays submitted. No retry.
			a.result.SubmitErr = err
		}
	}
}

func (a *Attempt) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Attempt) Violations() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.violations
}

func (a *Attempt) Remaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.remaining
}

// Result returns the scored outcome, or nil before submission.
func (a *Attempt) Result() *Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}
