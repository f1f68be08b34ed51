package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Option is one selectable answer.
type Option struct {
	Text     string
	Category Category
}

// Question is a prompt with its answer options in declaration order.
type Question struct {
	Prompt  string
	Options []Option
}

// Offers reports whether any option of q votes for c.
func (q Question) Offers(c Category) bool {
	for _, o := range q.Options {
		if o.Category == c {
			return true
		}
	}
	return false
}

// DefaultQuestions returns a fresh copy of the built-in question set.
func DefaultQuestions() []Question {
	out := make([]Question, len(defaultQuestions))
	for i, q := range defaultQuestions {
		out[i] = Question{
			Prompt:  q.Prompt,
			Options: append([]Option(nil), q.Options...),
		}
	}
	return out
}

var defaultQuestions = []Question{
	{
		Prompt: "What is your favorite type of activity?",
		Options: []Option{
			{Text: "Chasing toys", Category: Cat},
			{Text: "Playing fetch", Category: Dog},
			{Text: "Exploring forests", Category: Fox},
			{Text: "Nibbling on seeds", Category: Hamster},
			{Text: "Galloping in fields", Category: Horse},
		},
	},
	{
		Prompt: "How would you describe your personality?",
		Options: []Option{
			{Text: "Independent", Category: Cat},
			{Text: "Friendly", Category: Dog},
			{Text: "Curious", Category: Fox},
			{Text: "Energetic", Category: Hamster},
			{Text: "Strong", Category: Horse},
		},
	},
	{
		Prompt: "What’s your ideal environment?",
		Options: []Option{
			{Text: "Cozy indoors", Category: Cat},
			{Text: "Open parks", Category: Dog},
			{Text: "Dense woods", Category: Fox},
			{Text: "Small cages", Category: Hamster},
			{Text: "Wide open plains", Category: Horse},
		},
	},
	{
		Prompt: "How do you handle challenges?",
		Options: []Option{
			{Text: "Solve quietly", Category: Cat},
			{Text: "Ask for help", Category: Dog},
			{Text: "Find a clever way", Category: Fox},
			{Text: "Keep moving", Category: Hamster},
			{Text: "Charge forward", Category: Horse},
		},
	},
	{
		Prompt: "What’s your favorite snack?",
		Options: []Option{
			{Text: "Fish", Category: Cat},
			{Text: "Bones", Category: Dog},
			{Text: "Berries", Category: Fox},
			{Text: "Seeds", Category: Hamster},
			{Text: "Meat", Category: Horse},
		},
	},
}

// ValidateQuestions checks a question set for problems that would make a
// session misbehave. All problems are reported, joined.
func ValidateQuestions(qs []Question) error {
	if len(qs) == 0 {
		return ErrNoQuestions
	}

	var errs []error
	for i, q := range qs {
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Errorf("question %d: empty prompt", i))
		}
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Errorf("question %d: no options", i))
		}
		seen := make(map[string]bool, len(q.Options))
		for j, o := range q.Options {
			if strings.TrimSpace(o.Text) == "" {
				errs = append(errs, fmt.Errorf("question %d option %d: empty text", i, j))
			}
			if seen[o.Text] {
				errs = append(errs, fmt.Errorf("question %d option %d: duplicate text %q", i, j, o.Text))
			}
			seen[o.Text] = true
			if !o.Category.Valid() {
				errs = append(errs, fmt.Errorf("question %d option %d: %w", i, j, ErrUnknownCategory))
			}
		}
	}
	return errors.Join(errs...)
}
