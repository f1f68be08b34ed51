package result

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/animalquiz/internal/config"
	qz "github.com/abhisek/animalquiz/internal/quiz"
	"github.com/abhisek/animalquiz/internal/router"
	"github.com/abhisek/animalquiz/internal/screen"
	"github.com/abhisek/animalquiz/internal/share"
	"github.com/abhisek/animalquiz/internal/ui/components"
	"github.com/abhisek/animalquiz/internal/ui/layout"
	"github.com/abhisek/animalquiz/internal/ui/theme"
)

const shareTimeout = 5 * time.Second

// sharedMsg reports the outcome of a share attempt.
type sharedMsg struct {
	Text string
	Err  error
}

var (
	shareKey  = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share"))
	retakeKey = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retake"))
	quitKey   = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
)

// ResultScreen reveals the best-matching animal of a finished session.
type ResultScreen struct {
	session *qz.Session
	cfg     config.Config
	sharer  share.Sharer
	log     *zap.Logger

	winner    qz.Category
	menu      components.Menu
	status    string
	statusErr bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.StatusProvider = (*ResultScreen)(nil)

// New builds the result screen for a finished session. sharer may be nil,
// in which case the Share action is disabled.
func New(session *qz.Session, cfg config.Config, sharer share.Sharer, log *zap.Logger) (*ResultScreen, error) {
	winner, err := session.Winner()
	if err != nil {
		return nil, fmt.Errorf("result: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	r := &ResultScreen{
		session: session,
		cfg:     cfg,
		sharer:  sharer,
		log:     log,
		winner:  winner,
	}
	r.menu = components.NewMenu([]components.MenuItem{
		{Label: "Share", Action: r.share, Disabled: sharer == nil},
		{Label: "Retake Quiz", Action: r.retake},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return r, nil
}

func (r *ResultScreen) Init() tea.Cmd {
	scores := make([]zap.Field, 0, len(qz.Categories())+1)
	scores = append(scores, zap.Stringer("winner", r.winner))
	for _, c := range qz.Categories() {
		scores = append(scores, zap.Int(c.String(), r.session.Scores().Count(c)))
	}
	r.log.Info("quiz finished", scores...)
	return nil
}

func (r *ResultScreen) Title() string {
	return "Your Result"
}

func (r *ResultScreen) Status() string {
	return "Done!"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	bindings := []key.Binding{retakeKey, quitKey}
	if r.sharer != nil {
		bindings = append([]key.Binding{shareKey}, bindings...)
	}
	for _, b := range bindings {
		hints = append(hints, layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc})
	}
	return hints
}

// ShareText is the summary handed to the sharer.
func (r *ResultScreen) ShareText() string {
	return qz.ShareText(r.winner, r.cfg.Site.URL)
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sharedMsg:
		if msg.Err != nil {
			r.log.Warn("share failed", zap.Error(msg.Err))
			r.status = "Could not share: " + msg.Err.Error()
			r.statusErr = true
		} else {
			r.log.Info("shared", zap.String("text", msg.Text))
			r.status = "Copied: " + msg.Text
			r.statusErr = false
		}
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, shareKey):
			if r.sharer == nil {
				return r, nil
			}
			return r, r.share()
		case key.Matches(msg, retakeKey):
			return r, r.retake()
		case key.Matches(msg, quitKey):
			return r, tea.Quit
		}
		// The menu is laid out horizontally.
		switch msg.String() {
		case "left", "h":
			msg = tea.KeyPressMsg{Code: tea.KeyUp}
		case "right", "l", "tab":
			msg = tea.KeyPressMsg{Code: tea.KeyDown}
		}
		var cmd tea.Cmd
		r.menu, cmd = r.menu.Update(msg)
		return r, cmd
	}
	return r, nil
}

// share hands the summary to the sharer off the update loop.
func (r *ResultScreen) share() tea.Cmd {
	text := r.ShareText()
	sharer := r.sharer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), shareTimeout)
		defer cancel()
		return sharedMsg{Text: text, Err: sharer.Share(ctx, text)}
	}
}

// retake resets the session and returns to the quiz screen, which
// re-presents the first question when resumed.
func (r *ResultScreen) retake() tea.Cmd {
	r.log.Info("quiz retaken", zap.Stringer("previous_winner", r.winner))
	r.session.Reset()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (r *ResultScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(qz.Headline(r.winner)))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, renderPortrait(r.winner)))
	sections = append(sections, theme.Subtitle.Width(width).Render(r.cfg.ImageURL(r.winner)))
	sections = append(sections, r.renderTally(width))
	sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(r.ShareText()))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, r.menu.View()))

	if r.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if r.statusErr {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		sections = append(sections, style.Width(width).Align(lipgloss.Center).Render(r.status))
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, strings.Join(sections, "\n\n"))
}

// renderTally draws one bar per category in declaration order.
func (r *ResultScreen) renderTally(width int) string {
	scores := r.session.Scores()
	total := r.session.Questions()
	barWidth := min(width-8, 44)

	labelWidth := 0
	for _, c := range qz.Categories() {
		labelWidth = max(labelWidth, len(c.String()))
	}

	lines := make([]string, 0, len(qz.Categories()))
	for _, c := range qz.Categories() {
		bar := components.NewProgressBar(c.String(), scores.Count(c), total, barWidth)
		bar.LabelWidth = labelWidth
		bar.Fill = theme.CategoryColor(c.String())
		lines = append(lines, bar.View())
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}
