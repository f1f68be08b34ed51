package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/animalquiz/internal/config"
	qz "github.com/abhisek/animalquiz/internal/quiz"
	"github.com/abhisek/animalquiz/internal/router"
	"github.com/abhisek/animalquiz/internal/screen"
	quizscreen "github.com/abhisek/animalquiz/internal/screens/quiz"
	"github.com/abhisek/animalquiz/internal/share"
	"github.com/abhisek/animalquiz/internal/ui/layout"
)

// Options holds the dependencies injected into the TUI.
type Options struct {
	Session *qz.Session
	Config  config.Config
	Sharer  share.Sharer // nil disables sharing
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the quiz screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return AppModel{
		router: router.New(quizscreen.New(opts.Session, opts.Config, opts.Sharer, log)),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.log.Info("quit requested")
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders header, active screen and footer at the current size.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("run: nil session")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		opts.Logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
