package tui

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

// helpRows is the number of terminal rows kept for the help line.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a terminal game session.
type Options struct {
	Config   config.Config
	Seed     int64
	Assets   fs.FS // Sprite descriptors; nil means the built-in set
	Width    int   // Initial terminal size in cells
	Height   int
	Logger   *log.Logger
	Recorder engine.Recorder // Optional
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	driver   *engine.Driver
	queue    *engine.Queue
	renderer *ScreenRenderer
	assets   *render.Assets
	keys     KeyMap
	help     help.Model
	opts     Options
}

// NewModel loads the assets and builds a fresh game in the menu.
// The caller must call Close once the program has exited.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Assets == nil {
		opts.Assets = BuiltinAssets()
	}

	assets, err := render.LoadAssets(NewLoader(opts.Assets), opts.Config.Assets, Extensions, opts.Logger)
	if err != nil {
		return Model{}, err
	}

	cfg := opts.Config
	renderer := NewScreenRenderer(cfg.Screen.Width, cfg.Screen.Height, opts.Width, opts.Height-helpRows)
	queue := &engine.Queue{}

	engineOpts := []engine.Option{engine.WithLogger(opts.Logger)}
	if opts.Recorder != nil {
		engineOpts = append(engineOpts, engine.WithRecorder(opts.Recorder))
	}
	game := flappy.New(cfg, opts.Seed)
	driver := engine.New(game, queue, render.NewDispatcher(renderer, assets), engineOpts...)

	h := help.New()
	h.Width = opts.Width

	return Model{
		driver:   driver,
		queue:    queue,
		renderer: renderer,
		assets:   assets,
		keys:     DefaultKeyMap(),
		help:     h,
		opts:     opts,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Config.Timing.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Queued until the next tick drains it.
		if ev, ok := m.keys.Event(msg); ok {
			m.queue.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, msg.Height-helpRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.driver.Tick() {
			return m, tea.Quit
		}
		return m, tickCmd(m.opts.Config.Timing.Tick)
	}

	return m, nil
}

// View renders the last presented frame and the help line.
func (m Model) View() string {
	if m.driver.Done() {
		return ""
	}
	return m.renderer.Frame() + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the session's game.
func (m Model) Game() *flappy.Game {
	return m.driver.Game()
}

// Close releases the session's assets.
func (m Model) Close() {
	if m.assets != nil {
		m.assets.Release()
	}
}

// Run plays one game in the current terminal until the player quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		st := m.Game().State()
		model.opts.Logger.Info("session over", "high_score", st.HighScore, "rounds", st.Rounds)
	}
	return nil
}
