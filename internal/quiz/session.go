package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

// Progress is a read-only view of a session for rendering.
type Progress struct {
	Index    int // 0-based index of the current question
	Answered int // questions answered so far; always equals Scores.Total()
	Total    int
	Finished bool
	Scores   ScoreBoard
}

// Session is one user's pass through the quiz. It is owned by a single UI
// instance and is not safe for concurrent use.
type Session struct {
	id        string
	questions []Question
	shuffler  *Shuffler

	index    int
	scores   ScoreBoard
	finished bool
}

// NewSession validates questions and starts a session at the first
// question. A nil shuffler uses the runtime's random generator.
func NewSession(questions []Question, shuffler *Shuffler) (*Session, error) {
	if err := ValidateQuestions(questions); err != nil {
		return nil, fmt.Errorf("validate questions: %w", err)
	}
	return &Session{
		id:        uuid.New().String(),
		questions: questions,
		shuffler:  shuffler,
	}, nil
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Questions returns the number of questions in the session.
func (s *Session) Questions() int {
	return len(s.questions)
}

// Current returns the question awaiting an answer. ok is false once the
// session is finished.
func (s *Session) Current() (q Question, ok bool) {
	if s.finished {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// PresentOptions returns q's options in a fresh random order.
func (s *Session) PresentOptions(q Question) []Option {
	return s.shuffler.Options(q.Options)
}

// Answer records a vote for c on the current question and advances.
// State is untouched when an error is returned.
func (s *Session) Answer(c Category) error {
	if s.finished {
		return ErrFinished
	}
	if !c.Valid() {
		return fmt.Errorf("answer question %d with %v: %w", s.index, c, ErrUnknownCategory)
	}
	if !s.questions[s.index].Offers(c) {
		return fmt.Errorf("answer question %d with %v: %w", s.index, c, ErrForeignOption)
	}

	s.scores.Add(c)
	if s.index+1 == len(s.questions) {
		s.finished = true
	} else {
		s.index++
	}
	return nil
}

// Reset returns the session to its initial state. The session ID is kept.
func (s *Session) Reset() {
	s.index, s.scores, s.finished = 0, ScoreBoard{}, false
}

// Finished reports whether every question has been answered.
func (s *Session) Finished() bool {
	return s.finished
}

// Answered returns the number of questions answered so far.
func (s *Session) Answered() int {
	if s.finished {
		return len(s.questions)
	}
	return s.index
}

// Scores returns a copy of the current tally.
func (s *Session) Scores() ScoreBoard {
	return s.scores
}

// Winner returns the best-matching category of a finished session.
func (s *Session) Winner() (Category, error) {
	if !s.finished {
		return 0, ErrNotFinished
	}
	return s.scores.Leader(), nil
}

// Progress snapshots the session state.
func (s *Session) Progress() Progress {
	return Progress{
		Index:    s.index,
		Answered: s.Answered(),
		Total:    len(s.questions),
		Finished: s.finished,
		Scores:   s.scores,
	}
}
