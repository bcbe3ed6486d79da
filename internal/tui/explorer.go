// Package tui is an interactive observer explorer: move a probe point
// through a scenario with the keyboard and read the field live.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/magsim/internal/field"
	"github.com/san-kum/magsim/internal/magmath"
	"github.com/san-kum/magsim/internal/render"
	"github.com/san-kum/magsim/internal/source"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
)

const historyLen = 60

type model struct {
	scenario string
	sources  []source.Source
	ft       field.FieldType
	ftName   string

	probe magmath.Vec3
	step  float64

	value   magmath.Vec3
	evalErr error
	history []float64

	width  int
	height int
}

// NewExplorer builds the bubbletea model for a scenario's source set.
func NewExplorer(scenarioName string, sources []source.Source, ft field.FieldType) tea.Model {
	m := model{
		scenario: scenarioName,
		sources:  sources,
		ft:       ft,
		ftName:   ft.String(),
		step:     0.05,
		history:  make([]float64, 0, historyLen),
		width:    80,
		height:   24,
	}
	m.evaluate()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m *model) evaluate() {
	out, err := source.Superpose(m.ft, m.sources, []magmath.Vec3{m.probe})
	if err != nil {
		m.evalErr = err
		return
	}
	m.evalErr = nil
	m.value = out[0]
	m.history = append(m.history, m.value.Norm())
	if len(m.history) > historyLen {
		m.history = m.history[1:]
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.probe.X -= m.step
		case "right", "l":
			m.probe.X += m.step
		case "down", "j":
			m.probe.Y -= m.step
		case "up", "k":
			m.probe.Y += m.step
		case "pgdown", "J":
			m.probe.Z -= m.step
		case "pgup", "K":
			m.probe.Z += m.step
		case "+", "=":
			m.step *= 2
		case "-":
			m.step /= 2
		case "0":
			m.probe = magmath.Vec3{}
		case "f":
			m.cycleField()
		default:
			return m, nil
		}
		m.evaluate()
		return m, nil
	}
	return m, nil
}

func (m *model) cycleField() {
	order := []field.FieldType{field.FieldB, field.FieldH, field.FieldM, field.FieldJ}
	for i, ft := range order {
		if ft == m.ft {
			m.ft = order[(i+1)%len(order)]
			break
		}
	}
	m.ftName = m.ft.String()
	m.history = m.history[:0]
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(cyan.Render("magsim explorer") + dim.Render("  "+m.scenario) + "\n\n")

	s.WriteString(dim.Render("probe  ") + white.Render(
		fmt.Sprintf("(%9.4g, %9.4g, %9.4g) m", m.probe.X, m.probe.Y, m.probe.Z)))
	s.WriteString(dim.Render("   step ") + white.Render(fmt.Sprintf("%g m", m.step)) + "\n\n")

	unit := render.FieldUnit(m.ftName)
	if m.evalErr != nil {
		s.WriteString(red.Render("error: "+m.evalErr.Error()) + "\n")
	} else {
		body := fmt.Sprintf("%s = (%12.6g, %12.6g, %12.6g) %s\n|%s| = %.6g %s",
			m.ftName, m.value.X, m.value.Y, m.value.Z, unit,
			m.ftName, m.value.Norm(), unit)
		s.WriteString(panel.Render(green.Render(body)) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(6), asciigraph.Width(min(m.width-12, 60)),
			asciigraph.Caption(fmt.Sprintf("|%s| history", m.ftName)))
		s.WriteString("\n" + panel.Render(chart) + "\n")
	}

	s.WriteString("\n" + dim.Render("sources") + "\n")
	for _, src := range m.sources {
		s.WriteString(dim.Render("  · ") + white.Render(src.Describe()) + "\n")
	}

	s.WriteString("\n" + yellow.Render("←→↑↓/hjkl") + dim.Render(" move xy  ") +
		yellow.Render("K/J") + dim.Render(" move z  ") +
		yellow.Render("+/-") + dim.Render(" step  ") +
		yellow.Render("f") + dim.Render(" field  ") +
		yellow.Render("0") + dim.Render(" origin  ") +
		yellow.Render("q") + dim.Render(" quit"))
	return s.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Run starts the explorer in the alternate screen.
func Run(scenarioName string, sources []source.Source, ft field.FieldType) error {
	p := tea.NewProgram(NewExplorer(scenarioName, sources, ft), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
