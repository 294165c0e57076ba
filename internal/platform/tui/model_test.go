package tui

import (
	"io"
	"strings"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config: config.Default(),
		Seed:   1,
		Width:  80,
		Height: 31,
		Logger: log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return mm, cmd
}

func TestKeysWaitForTheNextTick(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd != nil {
		t.Error("key press returned a command")
	}
	if m.Game().Mode() != flappy.ModeMenu {
		t.Fatalf("mode = %v before tick, want %v", m.Game().Mode(), flappy.ModeMenu)
	}

	m, cmd = update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick did not re-arm the tick loop")
	}
	if m.Game().Mode() != flappy.ModePlaying {
		t.Errorf("mode = %v after tick, want %v", m.Game().Mode(), flappy.ModePlaying)
	}
	if view := m.View(); !strings.Contains(view, "Score: 0") {
		t.Errorf("View() missing score:\n%s", view)
	}
}

func TestMenuViewShowsPrompts(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg{})

	view := m.View()
	for _, want := range []string{"Flappy Bird", "Press SPACE to Play", "Press H to View High Scores", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestCloseKeyQuitsProgram(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("no command after quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("command returned %T, want tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestResizeChangesFrame(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 11})
	m, _ = update(t, m, TickMsg{})

	frame := m.renderer.Frame()
	if got := len(strings.Split(frame, "\n")); got != 10 {
		t.Errorf("frame has %d lines, want 10 (one row kept for help)", got)
	}
}

type roundSink struct{ rounds []engine.Round }

func (r *roundSink) RecordRound(round engine.Round) { r.rounds = append(r.rounds, round) }

func TestRecorderReceivesRounds(t *testing.T) {
	sink := &roundSink{}
	m, err := NewModel(Options{
		Config:   config.Default(),
		Seed:     1,
		Width:    80,
		Height:   31,
		Logger:   log.New(io.Discard),
		Recorder: sink,
	})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	defer m.Close()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	for i := 0; i < 500 && m.Game().Mode() != flappy.ModeGameOver; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if len(sink.rounds) != 1 {
		t.Fatalf("recorded %d rounds, want 1", len(sink.rounds))
	}
}

func TestNewModelFailsOnMissingAssets(t *testing.T) {
	fsys := fstest.MapFS{
		"bird.sprite.yaml": {Data: []byte("glyph: \"@\"\n")},
	}
	_, err := NewModel(Options{Config: config.Default(), Assets: fsys, Logger: log.New(io.Discard)})
	if err == nil {
		t.Fatal("NewModel() succeeded with missing assets")
	}
}

func TestCloseReleasesAssets(t *testing.T) {
	m, err := NewModel(Options{Config: config.Default(), Width: 80, Height: 31, Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	bird := m.assets.Bird.(*Sprite)
	m.Close()
	if !bird.Released() {
		t.Error("Close did not release the bird sprite")
	}
}
