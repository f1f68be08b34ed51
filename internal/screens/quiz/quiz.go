package quiz

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/animalquiz/internal/config"
	qz "github.com/abhisek/animalquiz/internal/quiz"
	"github.com/abhisek/animalquiz/internal/router"
	"github.com/abhisek/animalquiz/internal/screen"
	"github.com/abhisek/animalquiz/internal/screens/result"
	"github.com/abhisek/animalquiz/internal/share"
	"github.com/abhisek/animalquiz/internal/ui/components"
	"github.com/abhisek/animalquiz/internal/ui/layout"
)

// QuizScreen walks the user through the questions one at a time.
type QuizScreen struct {
	session *qz.Session
	cfg     config.Config
	sharer  share.Sharer
	log     *zap.Logger

	// options is the presented (shuffled) order for the current question.
	options []qz.Option
	choices components.Choices
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.Resumer = (*QuizScreen)(nil)

// New creates a QuizScreen driving session. The result screen it opens
// shares cfg, sharer and log.
func New(session *qz.Session, cfg config.Config, sharer share.Sharer, log *zap.Logger) *QuizScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuizScreen{
		session: session,
		cfg:     cfg,
		sharer:  sharer,
		log:     log.With(zap.String("session_id", session.ID())),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.log.Info("quiz started", zap.Int("questions", s.session.Questions()))
	s.present()
	return nil
}

// Resume re-presents the current question. It runs when the result screen
// is popped after a retake.
func (s *QuizScreen) Resume() tea.Cmd {
	s.errMsg = ""
	s.present()
	return nil
}

func (s *QuizScreen) Title() string {
	return "Which animal are you?"
}

func (s *QuizScreen) Status() string {
	p := s.session.Progress()
	if p.Finished {
		return fmt.Sprintf("%d/%d", p.Total, p.Total)
	}
	return fmt.Sprintf("Question %d/%d", p.Index+1, p.Total)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: fmt.Sprintf("1-%d", len(s.options)), Description: "Pick"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok || s.errMsg != "" {
		return s, nil
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	if !s.choices.Done() {
		return s, cmd
	}
	return s.answer(s.options[s.choices.Chosen])
}

// present shuffles the current question's options into a fresh choice list.
func (s *QuizScreen) present() {
	q, ok := s.session.Current()
	if !ok {
		s.options = nil
		s.choices = components.NewChoices(nil)
		return
	}

	s.options = s.session.PresentOptions(q)
	labels := make([]string, len(s.options))
	for i, o := range s.options {
		labels[i] = o.Text
	}
	s.choices = components.NewChoices(labels)
}

// answer records the chosen option and either presents the next question
// or opens the result screen.
func (s *QuizScreen) answer(opt qz.Option) (screen.Screen, tea.Cmd) {
	index := s.session.Progress().Index
	if err := s.session.Answer(opt.Category); err != nil {
		s.log.Error("answer rejected",
			zap.Int("index", index),
			zap.Stringer("category", opt.Category),
			zap.Error(err))
		s.errMsg = err.Error()
		return s, nil
	}

	s.log.Debug("answered",
		zap.Int("index", index),
		zap.String("option", opt.Text),
		zap.Stringer("category", opt.Category))

	s.present()
	if !s.session.Finished() {
		return s, nil
	}

	res, err := result.New(s.session, s.cfg, s.sharer, s.log)
	if err != nil {
		s.log.Error("build result", zap.Error(err))
		s.errMsg = err.Error()
		return s, nil
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: res}
	}
}
