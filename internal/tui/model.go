// Package tui is the terminal front end: a text input, Enter to search, a
// spinner while the request is outstanding and a styled profile card.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vilaca/profile-detective/internal/domain"
	"github.com/vilaca/profile-detective/internal/profile"
	"github.com/vilaca/profile-detective/internal/search"
)

// lookupDoneMsg carries a finished request back onto the event loop.
type lookupDoneMsg struct {
	outcome search.Outcome
}

// Model is the bubbletea model for the lookup widget.
type Model struct {
	ctx        context.Context
	controller *search.Controller
	location   *time.Location
	submitNow  bool

	input   textinput.Model
	spinner spinner.Model
}

const (
	defaultInputWidth = 40
	minInputWidth     = 10
	// inputChrome is the prompt plus the cursor column.
	inputChrome = 4
)

// Config holds the dependencies of the terminal widget.
type Config struct {
	Context      context.Context // parent of every request; nil means Background
	Controller   *search.Controller
	Location     *time.Location
	InitialQuery string // submitted on start when non-blank
}

// New creates the widget model.
func New(cfg Config) Model {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter Github Username...."
	ti.Prompt = "🔍 "
	ti.CharLimit = 0
	ti.Width = defaultInputWidth
	ti.SetValue(cfg.InitialQuery)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	cfg.Controller.SetQuery(cfg.InitialQuery)

	return Model{
		ctx:        ctx,
		controller: cfg.Controller,
		location:   cfg.Location,
		submitNow:  strings.TrimSpace(cfg.InitialQuery) != "",
		input:      ti,
		spinner:    sp,
	}
}

func (m Model) Init() tea.Cmd {
	if m.submitNow {
		return tea.Batch(textinput.Blink, m.submit())
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}

	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-inputChrome, minInputWidth)
		return m, nil

	case lookupDoneMsg:
		m.controller.Apply(msg.outcome)
		return m, nil

	case spinner.TickMsg:
		if !m.controller.State().IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.controller.SetQuery(m.input.Value())
	return m, cmd
}

// submit begins a lookup and returns the command that performs it. Nothing is
// returned when the controller did not start a request.
func (m Model) submit() tea.Cmd {
	_, pending := m.controller.Begin()
	if pending == nil {
		return nil
	}

	controller, ctx := m.controller, m.ctx
	fetch := func() tea.Msg {
		return lookupDoneMsg{outcome: controller.Fetch(ctx, pending)}
	}
	return tea.Batch(m.spinner.Tick, fetch)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GitHub Profile Detective"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	state := m.controller.State()
	switch state.Status() {
	case domain.StatusLoading:
		b.WriteString(m.spinner.View() + " " + messageStyle.Render("Fetching profile..."))
		b.WriteString("\n")
	case domain.StatusError:
		msg, _ := state.ErrorMessage()
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	case domain.StatusSuccess:
		record, _ := state.Profile()
		b.WriteString(RenderCard(profile.NewCard(record, m.location)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: search • esc: quit"))
	b.WriteString("\n")
	return b.String()
}
