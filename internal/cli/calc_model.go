package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idamarten/turnus/internal/cli/formatter"
	"github.com/idamarten/turnus/internal/domain"
)

const (
	calcFieldDate = iota
	calcFieldStart
	calcFieldEnd
	calcFieldCount
)

// calcModel is an interactive what-if calculator: type a date and a time
// span, see the pay breakdown update live under the stored wage settings.
type calcModel struct {
	app    *App
	inputs []textinput.Model
	focus  int

	breakdown *domain.PayBreakdown
	calcErr   error
	quitting  bool
}

func newCalcModel(app *App) calcModel {
	mk := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 12
		return in
	}

	inputs := []textinput.Model{
		mk("2025-06-16", 10),
		mk("09:00", 5),
		mk("17:00", 5),
	}
	inputs[calcFieldDate].SetValue(time.Now().UTC().Format(dateLayout))
	inputs[calcFieldDate].Focus()

	m := calcModel{app: app, inputs: inputs}
	m.recalculate()
	return m
}

func (m calcModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m calcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyTab, tea.KeyEnter, tea.KeyDown:
			m.setFocus((m.focus + 1) % calcFieldCount)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.focus + calcFieldCount - 1) % calcFieldCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recalculate()
	return m, cmd
}

func (m *calcModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *calcModel) recalculate() {
	m.breakdown = nil
	m.calcErr = nil

	date, err := parseDate(m.inputs[calcFieldDate].Value())
	if err != nil {
		m.calcErr = err
		return
	}
	start, err := domain.ParseTimeOfDay(m.inputs[calcFieldStart].Value())
	if err != nil {
		m.calcErr = err
		return
	}
	end, err := domain.ParseTimeOfDay(m.inputs[calcFieldEnd].Value())
	if err != nil {
		m.calcErr = err
		return
	}
	shift, err := domain.NewShift(date, start, end)
	if err != nil {
		m.calcErr = err
		return
	}

	breakdown, err := m.app.Pay.Calculate(context.Background(), shift)
	if err != nil {
		m.calcErr = err
		return
	}
	m.breakdown = &breakdown
}

func (m calcModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Shift calculator") + "\n\n")

	labels := []string{"Date ", "Start", "End  "}
	for i, in := range m.inputs {
		b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Bold(labels[i]), in.View()))
	}
	b.WriteString("\n")

	switch {
	case m.calcErr != nil:
		b.WriteString("  " + formatter.StyleYellow.Render(m.calcErr.Error()) + "\n")
	case m.breakdown != nil:
		b.WriteString(formatter.FormatBreakdown(*m.breakdown))
	}

	b.WriteString("\n" + formatter.Dim("tab: next field  esc: quit") + "\n")
	return b.String()
}

func newCalcCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Interactive pay calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("calc requires an interactive terminal")
			}
			_, err := tea.NewProgram(newCalcModel(app)).Run()
			return err
		},
	}
	return cmd
}
