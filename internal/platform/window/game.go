// Package window runs the game in a desktop window through ebiten.
package window

import (
	"fmt"
	"io/fs"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

// Title is the window title.
const Title = "Flappy Bird"

// Options configures a window game.
type Options struct {
	Config   config.Config
	Seed     int64
	Assets   fs.FS // PNG and TTF files; nil means the built-in set
	Logger   *log.Logger
	Recorder engine.Recorder // Optional
}

// Game adapts the engine to ebiten.Game. Update runs one loop iteration
// without drawing; Draw then renders the state Update left behind.
type Game struct {
	cfg        config.Config
	driver     *engine.Driver
	queue      *engine.Queue
	renderer   *Renderer
	dispatcher *render.Dispatcher
	keys       []ebiten.Key
}

// NewGame wires a fresh game to already loaded assets.
func NewGame(opts Options, assets *render.Assets) *Game {
	renderer := &Renderer{}
	queue := &engine.Queue{}

	engineOpts := []engine.Option{engine.WithLogger(opts.Logger)}
	if opts.Recorder != nil {
		engineOpts = append(engineOpts, engine.WithRecorder(opts.Recorder))
	}

	return &Game{
		cfg:        opts.Config,
		driver:     engine.New(flappy.New(opts.Config, opts.Seed), queue, nil, engineOpts...),
		queue:      queue,
		renderer:   renderer,
		dispatcher: render.NewDispatcher(renderer, assets),
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if ev, ok := keyEvent(k); ok {
			g.queue.Push(ev)
		}
	}
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(core.QuitEvent())
	}

	if !g.driver.Tick() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.dispatcher.Draw(g.driver.Game())
	g.renderer.SetTarget(nil)
}

// Layout implements ebiten.Game. The world keeps its configured size and
// ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Flappy returns the running game.
func (g *Game) Flappy() *flappy.Game {
	return g.driver.Game()
}

// keyEvent translates an ebiten key to a game input event.
func keyEvent(k ebiten.Key) (core.Event, bool) {
	switch k {
	case ebiten.KeySpace:
		return core.KeyDown(core.KeySpace), true
	case ebiten.KeyH:
		return core.KeyDown(core.KeyH), true
	case ebiten.KeyM:
		return core.KeyDown(core.KeyM), true
	case ebiten.KeyP:
		return core.KeyDown(core.KeyP), true
	case ebiten.KeyQ:
		return core.KeyDown(core.KeyQ), true
	}
	return core.Event{}, false
}

// ticksPerSecond converts the loop delay to ebiten's update rate.
func ticksPerSecond(delay time.Duration) int {
	if delay <= 0 {
		return ebiten.SyncWithFPS
	}
	return max(1, int(math.Round(float64(time.Second)/float64(delay))))
}

// Run opens the window and plays until the player quits or closes it.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	loader := BuiltinLoader()
	if opts.Assets != nil {
		loader = NewLoader(opts.Assets)
	}
	assets, err := render.LoadAssets(loader, opts.Config.Assets, Extensions, opts.Logger)
	if err != nil {
		return err
	}
	defer assets.Release()

	ebiten.SetWindowSize(opts.Config.Screen.Width, opts.Config.Screen.Height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(ticksPerSecond(opts.Config.Timing.Tick))

	game := NewGame(opts, assets)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	st := game.Flappy().State()
	opts.Logger.Info("session over", "high_score", st.HighScore, "rounds", st.Rounds)
	return nil
}
