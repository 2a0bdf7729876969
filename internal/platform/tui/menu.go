package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/huuugs/block/internal/storage"
)

// guestLabel is the menu entry for playing without a profile.
const guestLabel = "Guest"

// ProfileMenuModel asks who is playing before a game starts.
type ProfileMenuModel struct {
	items          []string // profile names, then guestLabel
	cursor         int
	width          int
	height         int
	keys           KeyMap
	scoresKey      key.Binding
	quitting       bool
	chosen         bool
	openScoreboard bool
}

// NewProfileMenuModel lists the given profiles. The cursor starts on
// current when it is one of them.
func NewProfileMenuModel(profiles []storage.Profile, current string, width, height int) ProfileMenuModel {
	items := make([]string, 0, len(profiles)+1)
	cursor := len(profiles)
	for i, p := range profiles {
		if p.Name == current {
			cursor = i
		}
		items = append(items, p.Name)
	}
	items = append(items, guestLabel)

	return ProfileMenuModel{
		items:  items,
		cursor: cursor,
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
		scoresKey: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
	}
}

// Init initializes the menu model.
func (m ProfileMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m ProfileMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m ProfileMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Pause):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Confirm):
		m.chosen = true
		return m, tea.Quit

	case key.Matches(msg, m.scoresKey):
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m ProfileMenuModel) View() string {
	if m.quitting || m.chosen || m.openScoreboard {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B L O C K   E A T E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Who is playing?", m.width))
	b.WriteString("\n\n")

	for i, name := range m.items {
		line := "  " + name + "  "
		if i == m.cursor {
			line = activeStyle.Render(fmt.Sprintf("> %s <", name))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Choose  |  Enter: Play  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// MenuResult holds the result of running the profile menu.
type MenuResult struct {
	Profile         string // empty for guest
	WantsScoreboard bool
	Quit            bool
}

// Result reports what the user chose.
func (m ProfileMenuModel) Result() MenuResult {
	switch {
	case m.openScoreboard:
		return MenuResult{WantsScoreboard: true}
	case !m.chosen:
		return MenuResult{Quit: true}
	}
	name := m.items[m.cursor]
	if m.cursor == len(m.items)-1 {
		name = ""
	}
	return MenuResult{Profile: name}
}

// RunProfileMenu shows the profile menu and returns the choice.
func RunProfileMenu(profiles []storage.Profile, current string, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewProfileMenuModel(profiles, current, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}
	m, ok := final.(ProfileMenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.Result(), nil
}
