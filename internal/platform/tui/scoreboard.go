package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/huuugs/block/internal/modes"
	"github.com/huuugs/block/internal/registry"
	"github.com/huuugs/block/internal/storage"
)

const (
	minWidthForStats = 84  // narrower windows drop the stats panel
	statsPanelWidth  = 22
	maxScores        = 100 // rows loaded per mode
)

// ScoreSource is the part of the store the scoreboard reads.
type ScoreSource interface {
	TopScores(modeID string, limit int) ([]storage.ScoreEntry, error)
	GetModeStats(modeID string) (*storage.ModeStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMode, k.NextMode, k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PrevMode, k.NextMode}, {k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		NextMode: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev mode")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "back")),
	}
}

// boardStyles groups the scoreboard's lipgloss styles.
var boardStyles = struct {
	title, tab, activeTab, frame, muted, label lipgloss.Style
}{
	title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
	tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
	activeTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("28")).Padding(0, 1),
	frame:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	label:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// ScoreboardModel shows the best scores of each game mode.
type ScoreboardModel struct {
	modes    []registry.Info
	cursor   int
	source   ScoreSource
	scores   []storage.ScoreEntry
	stats    *storage.ModeStats
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard starting at modeID, or the
// first mode when modeID is empty or unknown.
func NewScoreboardModel(source ScoreSource, modeID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, id := range modes.Order {
		if id == modeID {
			m.cursor = i
		}
		m.modes = append(m.modes, registry.Info{ID: id, Title: modes.Registry.Title(id)})
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForStats
}

// newTable sizes the score table for the window. Spare width goes to
// the player column.
func (m ScoreboardModel) newTable() table.Model {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Player", Width: 12},
		{Title: "Lv", Width: 3},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}
	spare := m.width - 8
	if m.wide() {
		spare -= statsPanelWidth + 6
	}
	for _, c := range cols {
		spare -= c.Width + 2
	}
	if spare > 0 {
		cols[2].Width += min(spare, 8)
	}

	st := table.DefaultStyles()
	st.Header = st.Header.BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("28")).Bold(false)

	return table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
		table.WithStyles(st),
	)
}

// load reads scores and stats for the selected mode.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.err = nil, nil, nil
	if id := m.Selected(); m.source != nil && id != "" {
		m.scores, m.err = m.source.TopScores(id, maxScores)
		if m.err == nil {
			m.stats, m.err = m.source.GetModeStats(id)
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			playerName(s.Profile),
			strconv.Itoa(s.Level),
			clock(s.DurationSecs),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func playerName(profile string) string {
	if profile == "" {
		return "guest"
	}
	return profile
}

func clock(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.shift(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.shift(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// shift moves the mode cursor by delta, wrapping around.
func (m *ScoreboardModel) shift(delta int) {
	n := len(m.modes)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.load()
}

// Selected returns the ID of the mode being shown.
func (m ScoreboardModel) Selected() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.cursor].ID
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	body := boardStyles.frame.Render(m.tableView())
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", boardStyles.frame.Render(m.statsView()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		boardStyles.title.Render(centerText("HIGH SCORES", m.width)),
		centerText(m.tabsView(), m.width),
		"",
		centerText(body, m.width),
		"",
		m.help.View(m.keys),
	)
}

// tabsView lists the modes, or only the selected one when they do not
// fit the window.
func (m ScoreboardModel) tabsView() string {
	tabs := make([]string, len(m.modes))
	for i, md := range m.modes {
		if i == m.cursor {
			tabs[i] = boardStyles.activeTab.Render(md.Title)
		} else {
			tabs[i] = boardStyles.tab.Render(md.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.modes) > 0 {
		line = boardStyles.activeTab.Render("< " + m.modes[m.cursor].Title + " >")
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	switch {
	case m.err != nil:
		return boardStyles.muted.Padding(2, 4).Render("Cannot read scores: " + m.err.Error())
	case len(m.scores) == 0:
		return boardStyles.muted.Padding(2, 4).Render("No scores recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

// statsView is the mode summary panel shown on wide windows.
func (m ScoreboardModel) statsView() string {
	st := m.stats
	if st == nil || st.GamesCount == 0 {
		return boardStyles.muted.Width(statsPanelWidth).Render("No games yet")
	}

	rows := [][2]string{
		{"Games", strconv.Itoa(st.GamesCount)},
		{"Best", strconv.Itoa(st.HighScore)},
		{"Average", fmt.Sprintf("%.0f", st.AvgScore)},
		{"Wins", strconv.Itoa(st.Wins)},
	}
	if !st.LastPlayed.IsZero() {
		rows = append(rows, [2]string{"Last", st.LastPlayed.Format("Jan 02")})
	}

	var b strings.Builder
	b.WriteString(boardStyles.title.Render("Stats"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(boardStyles.label.Render(fmt.Sprintf("%-8s", r[0])))
		b.WriteString(" ")
		b.WriteString(r[1])
	}
	return lipgloss.NewStyle().Width(statsPanelWidth).Render(b.String())
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(source ScoreSource, modeID string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, modeID, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
