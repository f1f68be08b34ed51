package quiz

import "errors"

// Invariant violations. None of these is reachable through normal
// interaction; callers treat them as programming errors.
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrForeignOption   = errors.New("category not offered by current question")
	ErrFinished        = errors.New("quiz already finished")
	ErrNotFinished     = errors.New("quiz not finished")
	ErrNoQuestions     = errors.New("no questions")
)
