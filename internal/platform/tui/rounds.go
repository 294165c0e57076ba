package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// RoundsKeyMap defines the key bindings for the journal table.
type RoundsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RoundsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RoundsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultRoundsKeyMap returns default key bindings.
func DefaultRoundsKeyMap() RoundsKeyMap {
	return RoundsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RoundsModel shows journal rounds in a table with a summary line.
type RoundsModel struct {
	rounds   []storage.Round
	stats    *storage.RoundStats
	table    table.Model
	help     help.Model
	keys     RoundsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRoundsModel creates the journal view for already loaded rounds.
func NewRoundsModel(rounds []storage.Round, stats *storage.RoundStats, width, height int) RoundsModel {
	m := RoundsModel{
		rounds: rounds,
		stats:  stats,
		help:   help.New(),
		keys:   DefaultRoundsKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

var roundColumns = []table.Column{
	{Title: "#", Width: 6},
	{Title: "Score", Width: 7},
	{Title: "Best", Width: 6},
	{Title: "Ticks", Width: 8},
	{Title: "Cause", Width: 7},
	{Title: "Backend", Width: 9},
	{Title: "Player", Width: 12},
	{Title: "Ended", Width: 14},
}

func (m *RoundsModel) createTable() table.Model {
	columns := make([]table.Column, len(roundColumns))
	copy(columns, roundColumns)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(RoundRows(m.rounds)),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Room for title, summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// RoundRows formats journal rounds as table rows.
func RoundRows(rounds []storage.Round) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.HighScore),
			fmt.Sprintf("%d", r.Ticks),
			r.Cause,
			r.Backend,
			player,
			r.EndedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Summary formats the journal statistics as one line.
func Summary(stats *storage.RoundStats) string {
	if stats == nil || stats.Rounds == 0 {
		return "No rounds recorded yet."
	}
	return fmt.Sprintf("%d rounds, best %d, average %.1f, last played %s",
		stats.Rounds, stats.BestScore, stats.AvgScore,
		stats.LastPlayed.Local().Format("Jan 02 15:04"))
}

// Init initializes the model.
func (m RoundsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal view.
func (m RoundsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m RoundsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("FLAPPY ROUNDS"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("Play with --journal to record rounds.")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	b.WriteString(Summary(m.stats))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunRounds shows the journal until the user quits.
func RunRounds(rounds []storage.Round, stats *storage.RoundStats, width, height int) error {
	p := tea.NewProgram(
		NewRoundsModel(rounds, stats, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
