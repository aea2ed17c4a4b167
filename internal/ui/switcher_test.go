package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friis-dev/hopp/internal/models"
)

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

// rankedRecords mirrors what the switcher receives: already sorted most
// recent first.
func rankedRecords() []models.BranchRecord {
	return []models.BranchRecord{
		{
			Name:        "feature/payments",
			RefName:     "refs/heads/feature/payments",
			CommitSHA:   strings.Repeat("a", 40),
			TimeSeconds: 300,
			Summary:     "add payment flow",
			AuthorName:  "Alice",
		},
		{
			Name:            "main",
			RefName:         "refs/heads/main",
			CommitSHA:       strings.Repeat("b", 40),
			TimeSeconds:     200,
			Summary:         "release prep",
			AuthorName:      "Bob",
			IsCurrentBranch: true,
		},
		{
			Name:        "bugfix/crash",
			RefName:     "refs/heads/bugfix/crash",
			CommitSHA:   strings.Repeat("c", 40),
			TimeSeconds: 100,
			Summary:     "fix nil deref",
			AuthorName:  "Carol",
		},
	}
}

func press(s *Switcher, msg tea.KeyMsg) tea.Cmd {
	_, cmd := s.Update(msg)
	return cmd
}

func TestSwitcherNavigationClamps(t *testing.T) {
	s := NewSwitcher(rankedRecords())

	assert.Equal(t, rowCursor(0), s.cursor)

	press(s, keyDown)
	press(s, keyDown)
	assert.Equal(t, 2, s.cursor.RecordIndex())

	press(s, keyDown)
	assert.Equal(t, 2, s.cursor.RecordIndex())

	press(s, keyUp)
	press(s, keyUp)
	press(s, keyUp)
	assert.Equal(t, 0, s.cursor.RecordIndex())
}

func TestSwitcherEnterConfirmsSelection(t *testing.T) {
	s := NewSwitcher(rankedRecords())

	press(s, keyDown)
	cmd := press(s, keyEnter)

	require.NotNil(t, cmd)
	_, quit := cmd().(tea.QuitMsg)
	assert.True(t, quit)

	rec := s.SelectedRecord()
	require.NotNil(t, rec)
	assert.Equal(t, "main", rec.Name)
}

func TestSwitcherConfirmFirstRecord(t *testing.T) {
	// Cursor starts at row 0, so confirming immediately selects the most
	// recently committed branch.
	s := NewSwitcher(rankedRecords())

	press(s, keyEnter)

	rec := s.SelectedRecord()
	require.NotNil(t, rec)
	assert.Equal(t, "feature/payments", rec.Name)
	assert.Equal(t, int64(300), rec.TimeSeconds)
}

func TestSwitcherQuitCancels(t *testing.T) {
	s := NewSwitcher(rankedRecords())

	press(s, keyDown)
	cmd := press(s, keyQuit)

	require.NotNil(t, cmd)
	_, quit := cmd().(tea.QuitMsg)
	assert.True(t, quit)
	assert.Nil(t, s.SelectedRecord())
}

func TestSwitcherIgnoresOtherKeys(t *testing.T) {
	s := NewSwitcher(rankedRecords())

	cmd := press(s, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Nil(t, cmd)
	assert.Equal(t, rowCursor(0), s.cursor)
	assert.Equal(t, navigating, s.state)
}

func TestSwitcherEmptyRecordSet(t *testing.T) {
	s := NewSwitcher(nil)

	press(s, keyDown)
	press(s, keyUp)
	cmd := press(s, keyEnter)

	require.NotNil(t, cmd)
	assert.Nil(t, s.SelectedRecord())
}

func TestSwitcherViewMarksCurrentBranch(t *testing.T) {
	s := NewSwitcher(rankedRecords())

	view := s.View()

	assert.Contains(t, view, "Recent branches")
	assert.Contains(t, view, "* main")
	assert.Contains(t, view, "feature/payments")
	assert.Contains(t, view, "add payment flow")
	assert.Contains(t, view, "▸")
}

func TestSwitcherViewEmpty(t *testing.T) {
	s := NewSwitcher(nil)
	assert.Contains(t, s.View(), "No local branches to show")
}
