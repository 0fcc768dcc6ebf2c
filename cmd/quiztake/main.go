// Command quiztake runs one quiz attempt from the terminal against a
// running quiz-portal API: it fetches the quiz, walks through the
// questions, and submits the scored response.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"quiz-portal/internal/models"
	"quiz-portal/internal/session"
)

type apiClient struct {
	base string
	http *http.Client
}

func (c *apiClient) fetchQuiz(ctx context.Context, id int64) (*models.Quiz, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/quiz/%d", c.base, id), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching quiz: status %d", res.StatusCode)
	}
	var quiz models.Quiz
	if err := json.NewDecoder(res.Body).Decode(&quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// SubmitResponse posts the finished attempt, satisfying session.Submitter.
func (c *apiClient) SubmitResponse(ctx context.Context, resp *models.QuizResponse) (*models.QuizResponse, error) {
	body, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/response/submit", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("submitting response: status %d", res.StatusCode)
	}
	var stored models.QuizResponse
	if err := json.NewDecoder(res.Body).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func main() {
	api := flag.String("api", "http://localhost:3000", "base URL of the quiz-portal API")
	quizID := flag.Int64("quiz", 0, "public quiz id")
	name := flag.String("name", "", "student name")
	email := flag.String("email", "", "student email")
	branch := flag.String("branch", "", "student branch")
	section := flag.String("section", "", "student section")
	rollNo := flag.Int("roll", 0, "roll number")
	regNo := flag.Int("reg", 0, "registration number")
	year := flag.Int("year", 0, "academic year")
	flag.Parse()

	if *quizID == 0 || *name == "" || *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	client := &apiClient{base: strings.TrimRight(*api, "/"), http: &http.Client{Timeout: 15 * time.Second}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quiz, err := client.fetchQuiz(ctx, *quizID)
	if err != nil {
		log.Fatalf("Failed to fetch quiz: %v", err)
	}

	student := models.StudentData{
		Name:         *name,
		Email:        *email,
		Branch:       *branch,
		Section:      *section,
		RollNo:       *rollNo,
		RegNo:        *regNo,
		AcademicYear: *year,
	}

	attempt := session.NewAttempt(quiz, student, client)
	if err := attempt.Start(); err != nil {
		log.Fatalf("Failed to start attempt: %v", err)
	}
	go attempt.Run(ctx)

	fmt.Printf("%s (%d questions, %d minutes)\n\n", quiz.Title, len(quiz.Questions), quiz.Duration)

	reader := bufio.NewReader(os.Stdin)
	for _, q := range quiz.Questions {
		if attempt.State() != session.StateInProgress {
			break
		}
		fmt.Printf("Q%d. %s\n", q.ID, q.Text)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(q.Options) {
			fmt.Println("(skipped)")
			continue
		}
		attempt.Notify(session.AnswerSelected{QuestionID: q.ID, Option: q.Options[choice-1]})
	}

	attempt.Notify(session.SubmitRequested{})
	for attempt.State() != session.StateSubmitted {
		time.Sleep(50 * time.Millisecond)
	}

	result := attempt.Result()
	if result.SubmitErr != nil {
		fmt.Printf("\nSubmission failed: %v\nYour attempt is closed; contact your administrator.\n", result.SubmitErr)
		return
	}
	fmt.Printf("\nSubmitted (%s). Score: %g (%.1f%%)\n", result.CompletionType, result.TotalScore, result.Percentage)
}
