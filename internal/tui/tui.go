// Package tui is the terminal front end: a bubbletea program that shows the
// engine's output in a scrolling log next to a status panel.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tatianab/humanity/internal/engine"
	"github.com/tatianab/humanity/internal/models"
)

type sessionState int

const (
	stateBusy sessionState = iota
	statePlaying
	stateWaiting
	stateOver
	stateError
)

type model struct {
	state   sessionState
	ctx     context.Context
	cancel  context.CancelFunc
	engine  *engine.Engine
	display *Display
	logger  *zap.Logger

	textInput textinput.Model
	viewport  viewport.Model
	lines     []string
	width     int
	height    int

	room     models.Room
	item     string
	sanity   int
	snapshot models.Snapshot
	status   engine.Status
	err      error
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

// SanityColor picks the indicator colour for a sanity value.
func SanityColor(sanity int) lipgloss.Color {
	switch {
	case sanity >= 75:
		return lipgloss.Color("#5FD75F")
	case sanity >= 50:
		return lipgloss.Color("#FFD75F")
	case sanity >= 25:
		return lipgloss.Color("#FF8700")
	default:
		return lipgloss.Color("#D70000")
	}
}

const sanityBarWidth = 20

// sanityBar renders sanity as a filled bar.
func sanityBar(sanity int) string {
	filled := max(0, min(sanityBarWidth, sanity*sanityBarWidth/models.MaxSanity))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", sanityBarWidth-filled)
	return lipgloss.NewStyle().Foreground(SanityColor(sanity)).Render(bar) + fmt.Sprintf(" %d%%", sanity)
}

func newModel(ctx context.Context, eng *engine.Engine, d *Display, logger *zap.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	ctx, cancel := context.WithCancel(ctx)
	return model{
		state:     stateBusy,
		ctx:       ctx,
		cancel:    cancel,
		engine:    eng,
		display:   d,
		logger:    logger,
		textInput: ti,
		viewport:  viewport.New(80, 20),
		sanity:    models.MaxSanity,
		snapshot:  eng.Snapshot(),
	}
}

// turnDoneMsg is sent by the engine goroutine after Start or Handle returns.
// The snapshot is taken there so the model never reads live engine state.
type turnDoneMsg struct {
	status   engine.Status
	snapshot models.Snapshot
	err      error
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.display.next(), m.start())
}

func (m model) start() tea.Cmd {
	eng, d, ctx := m.engine, m.display, m.ctx
	return func() tea.Msg {
		err := eng.Start(ctx)
		d.send(turnDoneMsg{status: eng.Status(), snapshot: eng.Snapshot(), err: err})
		return nil
	}
}

func (m model) processTurn(input string) tea.Cmd {
	eng, d, ctx := m.engine, m.display, m.ctx
	return func() tea.Msg {
		status, err := eng.Handle(ctx, input)
		d.send(turnDoneMsg{status: status, snapshot: eng.Snapshot(), err: err})
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancel()
			return m, tea.Quit

		case tea.KeyEnter:
			switch m.state {
			case stateWaiting:
				m.state = stateBusy
				m.display.acknowledge()
				return m, nil
			case stateOver, stateError:
				m.cancel()
				return m, tea.Quit
			case statePlaying:
				input := m.textInput.Value()
				m.textInput.Reset()
				m.appendLine(userStyle.Render("> " + input))
				m.state = stateBusy
				return m, m.processTurn(input)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.70)
		m.viewport.Height = msg.Height - 6
		m.refresh()

	case clearMsg:
		m.lines = m.lines[:0]
		m.refresh()
		return m, m.display.next()

	case lineMsg:
		m.appendLine(gameStyle.Render(string(msg)))
		return m, m.display.next()

	case roomMsg:
		m.room = models.Room(msg)
		m.item = ""
		return m, m.display.next()

	case itemMsg:
		m.item = string(msg)
		return m, m.display.next()

	case sanityMsg:
		m.sanity = int(msg)
		return m, m.display.next()

	case awaitMsg:
		m.state = stateWaiting
		return m, m.display.next()

	case turnDoneMsg:
		m.snapshot = msg.snapshot
		m.status = msg.status
		switch {
		case msg.err != nil && !errors.Is(msg.err, engine.ErrSessionOver):
			m.logger.Error("turn failed", zap.Error(msg.err))
			m.err = msg.err
			m.state = stateError
		case msg.status.Over():
			m.logger.Info("session over", zap.Stringer("status", msg.status))
			m.state = stateOver
		default:
			m.state = statePlaying
		}
		return m, m.display.next()
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.refresh()
	m.viewport.GotoBottom()
}

func (m *model) refresh() {
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(strings.Join(m.lines, "\n")))
}

func (m model) View() string {
	if m.state == stateError {
		return fmt.Sprintf("\n  Error: %v\n\nPress Enter to quit.\n", m.err)
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderState(),
	)

	var prompt, help string
	switch m.state {
	case stateWaiting:
		prompt = helpStyle.Render("[Press Enter to continue]")
	case stateOver:
		prompt = helpStyle.Render(fmt.Sprintf("[%s] Press Enter to exit", m.status))
	case stateBusy:
		prompt = ""
	default:
		prompt = m.textInput.View()
		help = helpStyle.Render("Type HELP for commands. Esc quits.")
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+prompt,
		"\n"+help,
	) + "\n"
}

func (m model) renderState() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("LOCATION") + "\n")
	b.WriteString(strings.ToUpper(m.room.String()) + "\n")
	if m.item != "" {
		b.WriteString("examining: " + m.item + "\n")
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("SANITY") + "\n")
	b.WriteString(sanityBar(m.sanity) + "\n\n")

	b.WriteString(titleStyle.Render("INVENTORY") + "\n")
	inv := inventory(m.snapshot.Inventory)
	if len(inv) == 0 {
		b.WriteString("(empty)\n")
	}
	for _, item := range inv {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("FRAGMENTS") + "\n")
	frags := m.snapshot.Fragments
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{models.FragmentReason.String(), frags.Reason},
		{models.FragmentEmotion.String(), frags.Emotion},
		{models.FragmentMorality.String(), frags.Morality},
	} {
		mark := "[ ]"
		if f.ok {
			mark = "[x]"
		}
		b.WriteString(mark + " " + f.name + "\n")
	}

	stateWidth := int(float64(m.width) * 0.27)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(b.String())
}

func inventory(inv models.Inventory) []string {
	var items []string
	for _, it := range []struct {
		name string
		ok   bool
	}{
		{"key", inv.Key},
		{"diary key", inv.DiaryKey},
		{"music box key", inv.MusicBoxKey},
		{"ring", inv.Ring},
		{"device", inv.Device},
	} {
		if it.ok {
			items = append(items, it.name)
		}
	}
	return items
}

// Run plays one session of eng on the terminal. d must be the Presenter the
// engine was built with.
func Run(ctx context.Context, eng *engine.Engine, d *Display, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := newModel(ctx, eng, d, logger)
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
