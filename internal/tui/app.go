// Package tui is the chat widget driver: a terminal chat over the turn
// controller. It owns the chat history and session bookkeeping; the core
// only sees one utterance and one session context per turn.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"newssense/agents"
	"newssense/render"
	"newssense/session"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type resultMsg struct {
	text string
	err  error
}

type model struct {
	ctx     context.Context
	ctrl    *agents.Controller
	sess    *session.Context
	history *session.History
	logger  *zap.Logger

	viewport viewport.Model
	input    textarea.Model
	spinner  spinner.Model
	keys     keyMap

	width  int
	height int
	ready  bool
	busy   bool
	notice string
}

// New builds the chat widget model around a controller and session.
func New(ctx context.Context, ctrl *agents.Controller, sess *session.Context, logger *zap.Logger) tea.Model {
	input := textarea.New()
	input.Placeholder = "Ask about trending news, verify a claim, or summarize an article…"
	input.CharLimit = 0
	input.SetHeight(2)
	input.ShowLineNumbers = false
	input.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return &model{
		ctx:     ctx,
		ctrl:    ctrl,
		sess:    sess,
		history: session.NewHistory(),
		logger:  logger,
		input:   input,
		spinner: sp,
		keys:    newKeyMap(),
	}
}

// Run starts the chat widget and blocks until it exits.
func Run(ctx context.Context, ctrl *agents.Controller, sess *session.Context, logger *zap.Logger) error {
	_, err := tea.NewProgram(New(ctx, ctrl, sess, logger), tea.WithAltScreen()).Run()
	return err
}

func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewportHeight := m.height - m.input.Height() - 4
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.input.SetWidth(m.width - 2)
		m.refreshViewport()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Send):
			if m.busy {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			if cmd, handled := m.handleCommand(text); handled {
				return m, cmd
			}
			m.history.Append("user", text)
			m.notice = ""
			m.busy = true
			m.refreshViewport()
			return m, tea.Batch(m.spinner.Tick, m.routeTurn(text))
		}
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case resultMsg:
		m.busy = false
		if msg.err != nil {
			// Application-tier failure: show a generic error, no retry.
			m.history.Append("assistant", errStyle.Render("Sorry, something went wrong. Please try again."))
			m.logger.Error("turn failed", zap.Error(msg.err))
		} else {
			m.history.Append("assistant", msg.text)
		}
		m.refreshViewport()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleCommand intercepts slash commands owned by the UI layer.
func (m *model) handleCommand(text string) (tea.Cmd, bool) {
	switch {
	case text == "/quit" || text == "/exit":
		return tea.Quit, true
	case text == "/reset":
		m.history.Reset()
		m.sess = session.NewContext("", m.sess.PreferredTopics())
		m.notice = "Started a new session."
		m.refreshViewport()
		return nil, true
	case strings.HasPrefix(text, "/topics"):
		raw := strings.TrimSpace(strings.TrimPrefix(text, "/topics"))
		topics := make([]string, 0)
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				topics = append(topics, t)
			}
		}
		m.sess.SetPreferredTopics(topics)
		m.notice = fmt.Sprintf("Preferred topics: %s", strings.Join(topics, ", "))
		m.refreshViewport()
		return nil, true
	}
	return nil, false
}

// routeTurn runs one controller turn off the UI loop. A rendering panic is
// caught here and shown as a generic error, matching the error-tier split.
func (m *model) routeTurn(utterance string) tea.Cmd {
	ctrl, sess := m.ctrl, m.sess
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = resultMsg{err: fmt.Errorf("render turn: %v", r)}
			}
		}()
		result, err := ctrl.Route(m.ctx, utterance, sess)
		if err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{text: render.Text(result)}
	}
}

func (m *model) refreshViewport() {
	if !m.ready {
		return
	}
	var b strings.Builder
	for _, turn := range m.history.Turns() {
		label := assistantStyle.Render("NewsSense")
		if turn.Role == "user" {
			label = userStyle.Render("You")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n%s\n\n", label, footerStyle.Render(turn.Timestamp.Format("3:04 PM")), turn.Text))
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *model) View() string {
	if !m.ready {
		return "loading…"
	}
	header := titleStyle.Render("NewsSense — AI News Agent")
	status := footerStyle.Render("/topics a,b · /reset · /quit")
	if m.busy {
		status = m.spinner.View() + " thinking…"
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s", header, m.viewport.View(), m.input.View(), status)
}
