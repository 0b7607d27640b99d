package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/manifest"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/milestone"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/render"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.textInput.Value()); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes := " Yes "
	no := " No "
	if m.value {
		yes = selectedStyle.Render(" Yes ")
	} else {
		no = selectedStyle.Render(" No ")
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

// --- prompt helpers ---

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	m := inputModel{
		textInput: ti,
		title:     title,
		validate:  validate,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return strings.TrimSpace(rm.textInput.Value()), nil
}

func promptConfirm(title string, initial bool) (bool, error) {
	result, err := tea.NewProgram(confirmModel{title: title, value: initial}).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

// interactiveAddBars collects bars from the user until they decline to add
// another. existingIDs prevents reusing IDs already on the board.
func interactiveAddBars(existingIDs map[string]bool) ([]manifest.Bar, error) {
	seenIDs := make(map[string]bool, len(existingIDs))
	for id := range existingIDs {
		seenIDs[id] = true
	}

	var bars []manifest.Bar
	for {
		bar, err := promptBar(seenIDs)
		if err != nil {
			return nil, err
		}
		seenIDs[bar.ID] = true
		bars = append(bars, bar)

		more, err := promptConfirm("Add another bar?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			return bars, nil
		}
	}
}

func promptBar(seenIDs map[string]bool) (manifest.Bar, error) {
	id, err := promptInput("Bar ID", "q3", barIDValidator(seenIDs))
	if err != nil {
		return manifest.Bar{}, err
	}
	title, err := promptInput("Title (optional)", "Q3 milestones", nil)
	if err != nil {
		return manifest.Bar{}, err
	}

	bar := manifest.Bar{ID: id, Title: title}
	for {
		s, err := promptStatus()
		if err != nil {
			return manifest.Bar{}, err
		}
		bar.Statuses = append(bar.Statuses, s)
		fmt.Println(hintStyle.Render("  → " + statusSummary(bar.Statuses)))

		more, err := promptConfirm("Add another status?", true)
		if err != nil {
			return manifest.Bar{}, err
		}
		if !more {
			return bar, nil
		}
	}
}

func promptStatus() (milestone.Status, error) {
	label, err := promptInput("Status label (optional)", "Completed", nil)
	if err != nil {
		return milestone.Status{}, err
	}
	color, err := promptInput("Color", "green", colorValidator)
	if err != nil {
		return milestone.Status{}, err
	}
	countStr, err := promptInput("Count", "0", countValidator)
	if err != nil {
		return milestone.Status{}, err
	}
	count, _ := strconv.Atoi(countStr)
	return milestone.Status{Count: count, Color: color, Label: label}, nil
}

// statusSummary describes the statuses collected so far as percentages.
func statusSummary(statuses []milestone.Status) string {
	if milestone.Total(statuses) == 0 {
		return "no counts yet"
	}
	return segmentSummary(statuses, milestone.ComputeGradient(statuses))
}

// barIDValidator returns a validation function for new bar IDs.
func barIDValidator(seenIDs map[string]bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return fmt.Errorf("bar ID is required")
		}
		if err := manifest.ValidateID(s); err != nil {
			return err
		}
		if seenIDs[s] {
			return fmt.Errorf("bar ID %q is already added", s)
		}
		return nil
	}
}

func colorValidator(s string) error {
	if !render.IsCSSColor(strings.TrimSpace(s)) {
		return fmt.Errorf("not a color: use a name, #hex, rgb() or hsl()")
	}
	return nil
}

func countValidator(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("count must be a whole number")
	}
	if n < 0 {
		return fmt.Errorf("count must not be negative")
	}
	return nil
}

// buildBoard assembles a Board and serializes it to YAML.
func buildBoard(name string, bars []manifest.Bar) ([]byte, error) {
	b := manifest.Board{
		Version: 1,
		Name:    name,
		Bars:    bars,
	}
	if err := manifest.Validate(&b); err != nil {
		return nil, err
	}
	return yaml.Marshal(&b)
}
