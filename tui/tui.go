// Package tui is the interactive surface: a city input, a trigger bound to
// Enter and the temperature, emoji and description regions.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cityweather/display"
	"cityweather/manager"
)

var (
	labelStyle       = lipgloss.NewStyle().Italic(true)
	hintStyle        = lipgloss.NewStyle().Faint(true)
	temperatureStyle = lipgloss.NewStyle().Bold(true)
	frameStyle       = lipgloss.NewStyle().Padding(1, 4).Align(lipgloss.Center)
)

type resultMsg struct {
	state display.State
}

type Model struct {
	ctx     context.Context
	cancel  context.CancelFunc
	weather manager.Weather
	input   textinput.Model
	state   display.State
	busy    bool
}

// New builds the model with city pre-filled in the input.
func New(ctx context.Context, weather manager.Weather, city string) Model {
	ctx, cancel := context.WithCancel(ctx)

	input := textinput.New()
	input.Placeholder = "London"
	input.CharLimit = 85
	input.Width = 30
	input.SetValue(city)
	input.Focus()

	return Model{
		ctx:     ctx,
		cancel:  cancel,
		weather: weather,
		input:   input,
	}
}

// Run blocks until the user quits.
func Run(ctx context.Context, weather manager.Weather, city string) error {
	model := New(ctx, weather, city)
	defer model.cancel()

	_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()

	return err
}

func (m Model) State() display.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancel()
			return m, tea.Quit
		case tea.KeyEnter:
			// one lookup at a time
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.lookup(m.input.Value())
		}
	case resultMsg:
		m.busy = false
		m.state = msg.state
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m Model) lookup(city string) tea.Cmd {
	ctx, weather := m.ctx, m.weather

	return func() tea.Msg {
		return resultMsg{state: display.FromLookup(weather.Get(ctx, city))}
	}
}

func (m Model) View() string {
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		labelStyle.Render("Enter a City name:"),
		m.input.View(),
		hintStyle.Render("[enter] Get weather  [esc] quit"),
		"",
		temperatureStyle.Render(m.state.Temperature),
		m.state.Emoji,
		m.state.Description,
	)) + "\n"
}
