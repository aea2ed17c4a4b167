package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/friis-dev/hopp/internal/models"
)

// keyMap defines the keybindings for the switcher.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "checkout"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("cyan"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("yellow"))

	currentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("green"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type sessionState int

const (
	navigating sessionState = iota
	confirmed
	cancelled
)

// Switcher is the branch selection table. It owns the cursor over the ranked
// records and turns key events into navigation, confirm or cancel; the
// record slice itself is only borrowed and never modified.
type Switcher struct {
	records []models.BranchRecord
	cursor  rowCursor
	state   sessionState
	width   int
	height  int
}

func NewSwitcher(records []models.BranchRecord) *Switcher {
	return &Switcher{records: records}
}

func (s *Switcher) Init() tea.Cmd {
	return nil
}

func (s *Switcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Down):
			s.cursor = s.cursor.Down(len(s.records))

		case key.Matches(msg, keys.Up):
			s.cursor = s.cursor.Up()

		case key.Matches(msg, keys.Enter):
			if len(s.records) == 0 {
				s.state = cancelled
			} else {
				s.state = confirmed
			}
			return s, tea.Quit

		case key.Matches(msg, keys.Quit):
			s.state = cancelled
			return s, tea.Quit
		}

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

func (s *Switcher) View() string {
	var out strings.Builder

	out.WriteString(titleStyle.Render("Recent branches") + "\n\n")

	if len(s.records) == 0 {
		out.WriteString(summaryStyle.Render("No local branches to show") + "\n\n")
		out.WriteString(s.helpView())
		return out.String()
	}

	nameWidth := len("Name")
	for _, rec := range s.records {
		if n := len(rec.DisplayName()); n > nameWidth {
			nameWidth = n
		}
	}

	out.WriteString("   " + headerStyle.Render(fmt.Sprintf("%-*s  %s", nameWidth, "Name", "Last Commit")) + "\n")

	for i, rec := range s.records {
		header := fmt.Sprintf("%-*s  %s", nameWidth, rec.DisplayName(), rec.CommitInfo())
		summary := fmt.Sprintf("%-*s  %s", nameWidth, "", rec.Summary)

		switch {
		case i == s.cursor.RecordIndex():
			out.WriteString(selectedStyle.Render("▸  "+header) + "\n")
			out.WriteString(selectedStyle.Render("   "+summary) + "\n")
		case rec.IsCurrentBranch:
			out.WriteString(currentStyle.Render("   "+header) + "\n")
			out.WriteString("   " + summaryStyle.Render(summary) + "\n")
		default:
			out.WriteString("   " + header + "\n")
			out.WriteString("   " + summaryStyle.Render(summary) + "\n")
		}
		out.WriteString("\n")
	}

	out.WriteString(s.helpView())
	return out.String()
}

func (s *Switcher) helpView() string {
	var entries []string
	for _, b := range []key.Binding{keys.Up, keys.Down, keys.Enter, keys.Quit} {
		h := b.Help()
		entries = append(entries, h.Key+": "+h.Desc)
	}
	return helpStyle.Render(strings.Join(entries, " • "))
}

// SelectedRecord returns the record the user confirmed, or nil when the
// selection was cancelled or there was nothing to select.
func (s *Switcher) SelectedRecord() *models.BranchRecord {
	if s.state != confirmed || len(s.records) == 0 {
		return nil
	}
	rec := s.records[s.cursor.RecordIndex()]
	return &rec
}
