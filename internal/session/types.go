package session

// State is the lifecycle phase of a quiz attempt.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateSubmitted  State = "submitted"
)

const (
	CompletionManual  = "manual"
	CompletionTimeout = "timeout"
)

// Event is a single stimulus for the attempt reducer. Answer selections,
// countdown ticks, integrity signals and the submit action all flow
// through one ordered queue so their interleaving is unambiguous.
type Event interface {
	isEvent()
}

// AnswerSelected overwrites the stored answer for one question. The
// option is not validated against the question's legal options.
type AnswerSelected struct {
	QuestionID int
	Option     string
}

// Tick marks one elapsed second of the countdown.
type Tick struct{}

// VisibilityLost is raised when the page loses visibility (tab switch).
type VisibilityLost struct{}

// FullscreenExited is raised when the attempt leaves fullscreen.
type FullscreenExited struct{}

// SubmitRequested is the student's explicit submission.
type SubmitRequested struct{}

func (AnswerSelected) isEvent()   {}
func (Tick) isEvent()             {}
func (VisibilityLost) isEvent()   {}
func (FullscreenExited) isEvent() {}
func (SubmitRequested) isEvent()  {}

// Result is the outcome of a submitted attempt. SubmitErr records a
// failed hand-off to the response service; the attempt still ends in
// StateSubmitted with no retry path.
type Result struct {
	TotalScore     float64
	Percentage     float64
	CompletionType string
	SubmitErr      error
}
