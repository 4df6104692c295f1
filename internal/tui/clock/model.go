// ============================================================================
// iadate - IA Time
// ============================================================================
//
// Package:     clock
// Description: Bubbletea model showing the live IA time
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package clock is a terminal clock that follows a live.Hub and renders the
// current IA tick together with its calendar fields.
package clock

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/iadate/internal/live"
	"github.com/msto63/iadate/pkg/core/version"
	"github.com/msto63/iadate/pkg/iatime"
)

// DatePattern is the pattern used for the date line
const DatePattern = "EEEE, MMMM d, y HH:mm"

// Config holds clock configuration
type Config struct {
	Hub       *live.Hub
	Renderer  *iatime.Renderer
	Describer *iatime.Describer
	// Now is the wall clock used for the countdown. Defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubbletea model for the clock
type Model struct {
	width  int
	height int
	paused bool
	closed bool
	text   bool

	spinner spinner.Model

	sub      *live.Subscription
	current  live.Update
	received bool
	updates  int
	wall     time.Time

	renderer  *iatime.Renderer
	describer *iatime.Describer
	now       func() time.Time
}

// updateMsg carries a tick update from the hub
type updateMsg live.Update

// closedMsg is sent when the hub closes the subscription
type closedMsg struct{}

// tickMsg refreshes the countdown once per second
type tickMsg time.Time

// New creates a clock model subscribed to cfg.Hub
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	m := Model{
		spinner:   sp,
		renderer:  cfg.Renderer,
		describer: cfg.Describer,
		now:       cfg.Now,
		text:      true,
	}
	if m.renderer == nil {
		m.renderer = iatime.DefaultRenderer()
	}
	if m.describer == nil {
		m.describer = iatime.NewDescriber()
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.wall = m.now()
	if cfg.Hub != nil {
		m.sub = cfg.Hub.Subscribe()
	}
	return m
}

// Subscription returns the hub subscription held by the model, if any
func (m Model) Subscription() *live.Subscription {
	return m.sub
}

// Init starts listening for updates and the countdown ticker
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForUpdate(m.sub),
		tickCmd(),
	)
}

func waitForUpdate(sub *live.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-sub.C
		if !ok {
			return closedMsg{}
		}
		return updateMsg(u)
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case updateMsg:
		m.updates++
		if !m.paused {
			m.current = live.Update(msg)
			m.received = true
		}
		return m, waitForUpdate(m.sub)

	case closedMsg:
		m.closed = true
		return m, nil

	case tickMsg:
		m.wall = m.now()
		return m, tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "p":
			m.paused = !m.paused
		case "f":
			m.text = !m.text
		}
	}
	return m, nil
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFace())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)

	var status string
	switch {
	case m.closed:
		status = StatusClosedStyle.Render(IconClosed + "stopped")
	case m.paused:
		status = StatusPausedStyle.Render(IconPaused + "paused")
	default:
		status = StatusLiveStyle.Render(IconLive + "live")
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		status,
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render("v"+version.IATime),
	)
	if m.width > 4 {
		return TitlePanelStyle.Width(m.width - 4).Render(header)
	}
	return TitlePanelStyle.Render(header)
}

func (m Model) renderFace() string {
	if !m.received {
		return FacePanelStyle.Render(m.spinner.View() + " waiting for the first tick...")
	}

	inst := iatime.FromTicks(m.current.Ticks)
	format := iatime.FormatNumber
	if m.text {
		format = iatime.FormatText
	}

	var lines []string
	lines = append(lines, TicksStyle.Render(fmt.Sprintf("%d", m.current.Ticks)))

	if date, err := m.renderer.Format(inst, DatePattern); err == nil {
		lines = append(lines, DateStyle.Render(date+" GMT"))
	} else {
		lines = append(lines, ErrorStyle.Render(err.Error()))
	}
	lines = append(lines, "")

	fields := []struct {
		label string
		field iatime.Field
	}{
		{"hour", iatime.FieldHour},
		{"day", iatime.FieldDay},
		{"week/month", iatime.FieldWeekOfMonth},
		{"week/year", iatime.FieldWeekOfYear},
		{"month", iatime.FieldMonth},
		{"year", iatime.FieldYear},
	}
	for _, f := range fields {
		v, err := m.renderer.Get(inst, f.field, format)
		if err != nil {
			v = err.Error()
		}
		lines = append(lines, RenderRow(f.label, v))
	}

	lines = append(lines, "")
	lines = append(lines, RenderRow("since origin", iatime.FormatSpan(m.current.Ticks, iatime.Automatic)))
	lines = append(lines, RenderRow("next tick", fmt.Sprintf("%ds", m.secondsToNextTick())))
	if rel, err := m.describer.RelativeDescription(m.wall, iatime.TimeFromTicks(m.current.Ticks+1), format); err == nil {
		lines = append(lines, RenderRow("tick due", rel))
	}

	return FacePanelStyle.Render(strings.Join(lines, "\n"))
}

// secondsToNextTick is the number of wall seconds until the next tick starts
func (m Model) secondsToNextTick() int64 {
	rem := m.wall.Unix() - iatime.UnixOffset
	rem %= iatime.SecondsPerTick
	if rem < 0 {
		rem += iatime.SecondsPerTick
	}
	return iatime.SecondsPerTick - rem
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("p", "pause"),
		RenderKeyHint("f", "text/number"),
		RenderKeyHint("q", "quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// Run starts the clock in the alternate screen and unsubscribes on exit
func Run(cfg Config) error {
	m := New(cfg)
	if cfg.Hub != nil && m.sub != nil {
		defer cfg.Hub.Unsubscribe(m.sub.ID)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
