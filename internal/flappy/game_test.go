package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newPlayingGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.Default(), seed)
	if !g.Apply(core.ActionFlap) {
		t.Fatal("flap in the menu should start the game")
	}
	if g.Mode() != ModePlaying {
		t.Fatalf("mode = %v, expected playing", g.Mode())
	}
	return g
}

func TestNewGame(t *testing.T) {
	g := New(config.Default(), 1)

	if g.Mode() != ModeMenu {
		t.Errorf("initial mode = %v, expected menu", g.Mode())
	}
	b := g.Bird()
	if b.X != 200 || b.Y != 300 || b.Velocity != 0 {
		t.Errorf("initial bird = %+v, expected {200 300 0}", b)
	}
	if len(g.Pipes()) != 3 {
		t.Errorf("expected 3 pipes, got %d", len(g.Pipes()))
	}
	if s := g.State(); s.Score != 0 || s.HighScore != 0 || s.Rounds != 0 {
		t.Errorf("initial state = %+v", s)
	}
}

func TestMenuFlapStartsWithoutImpulse(t *testing.T) {
	g := newPlayingGame(t, 1)

	if g.Bird().Velocity != 0 {
		t.Errorf("the starting flap must not push the bird, velocity = %v", g.Bird().Velocity)
	}
	if g.State().Rounds != 1 {
		t.Errorf("Rounds = %d, expected 1", g.State().Rounds)
	}
}

func TestFlapWhilePlaying(t *testing.T) {
	g := newPlayingGame(t, 1)

	if !g.Apply(core.ActionFlap) {
		t.Error("flap while playing should be handled")
	}
	if g.Bird().Velocity != -5 {
		t.Errorf("velocity = %v, expected -5", g.Bird().Velocity)
	}

	g.Step()
	b := g.Bird()
	if b.Velocity != -4.5 || b.Y != 295.5 {
		t.Errorf("after one tick bird = %+v, expected Y=295.5 Velocity=-4.5", b)
	}
}

func TestFlapIgnoredOutsidePlay(t *testing.T) {
	g := New(config.Default(), 1)
	g.Apply(core.ActionHighScore)

	if g.Apply(core.ActionFlap) {
		t.Error("flap on the high score screen should be ignored")
	}
	if g.Mode() != ModeHighScore || g.Bird().Velocity != 0 {
		t.Errorf("mode = %v, velocity = %v", g.Mode(), g.Bird().Velocity)
	}
}

func TestStepOnlyWhilePlaying(t *testing.T) {
	g := New(config.Default(), 1)
	before := g.Bird()
	pipeX := g.Pipes()[0].X

	for i := 0; i < 10; i++ {
		g.Step()
	}

	if g.Bird() != before {
		t.Errorf("bird moved in the menu: %+v", g.Bird())
	}
	if g.Pipes()[0].X != pipeX {
		t.Error("pipes moved in the menu")
	}
	if g.State().Ticks != 0 {
		t.Errorf("Ticks = %d, expected 0", g.State().Ticks)
	}
}

func TestFloorEndsRound(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.bird.Y = 560 // bottom edge exactly on the floor: still alive

	res := g.Step()
	if res.Ended != EndFloor {
		t.Fatalf("Ended = %v, expected floor", res.Ended)
	}
	if g.Mode() != ModeGameOver {
		t.Errorf("mode = %v, expected game over", g.Mode())
	}

	// The world freezes on the game over screen.
	b := g.Bird()
	g.Step()
	if g.Bird() != b {
		t.Error("bird should not move after game over")
	}
}

func TestFlushWithFloorSurvives(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.bird.Y = 560
	g.bird.Velocity = -0.5 // gravity cancels it out: bottom edge stays at 600

	if res := g.Step(); res.Ended != EndNone {
		t.Errorf("bird flush with the floor should survive, got %v", res.Ended)
	}
}

func TestPipeEndsRound(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.pipes.pipes[0] = Pipe{X: 190, Y: 400, OriginalY: 400, YDirection: 1}

	res := g.Step()
	if res.Ended != EndPipe {
		t.Fatalf("Ended = %v, expected pipe", res.Ended)
	}
	if g.Mode() != ModeGameOver {
		t.Errorf("mode = %v, expected game over", g.Mode())
	}
}

func TestScoringRaisesHighScore(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.pipes.pipes[0] = Pipe{X: 201, Y: 250, OriginalY: 250, YDirection: 1}

	res := g.Step()
	if res.Scored != 1 {
		t.Fatalf("Scored = %d, expected 1", res.Scored)
	}
	s := g.State()
	if s.Score != 1 || s.HighScore != 1 {
		t.Errorf("state = %+v, expected score 1 and high score 1", s)
	}
}

func TestReplayResetsWorldButKeepsHighScore(t *testing.T) {
	g := newPlayingGame(t, 3)
	g.pipes.pipes[0] = Pipe{X: 201, Y: 250, OriginalY: 250, YDirection: 1}
	g.Step()
	g.bird.Y = 590
	g.Step()
	if g.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, expected game over", g.Mode())
	}

	g.Apply(core.ActionReplay)
	if g.Mode() != ModeMenu {
		t.Fatalf("replay should go to the menu, got %v", g.Mode())
	}
	g.Apply(core.ActionFlap)

	s := g.State()
	if s.Score != 0 {
		t.Errorf("Score = %d, expected reset to 0", s.Score)
	}
	if s.HighScore != 1 {
		t.Errorf("HighScore = %d, expected 1", s.HighScore)
	}
	if s.Rounds != 2 {
		t.Errorf("Rounds = %d, expected 2", s.Rounds)
	}
	if b := g.Bird(); b.Y != 300 || b.Velocity != 0 {
		t.Errorf("bird not reset: %+v", b)
	}
	if x := g.Pipes()[0].X; x != 800 {
		t.Errorf("pipes not laid out again, pipe[0].X = %d", x)
	}
}

func TestCarryOverWithoutReset(t *testing.T) {
	cfg := config.Default()
	cfg.ResetOnPlay = false
	g := New(cfg, 3)
	g.Apply(core.ActionFlap)
	g.pipes.pipes[0] = Pipe{X: 201, Y: 250, OriginalY: 250, YDirection: 1}
	g.Step()
	g.bird.Y = 590
	g.Step()

	g.Apply(core.ActionReplay)
	g.Apply(core.ActionFlap)

	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected the stale 1 to carry over", g.State().Score)
	}
	if g.Bird().Y < 590 {
		t.Errorf("bird should stay where the round ended, Y = %v", g.Bird().Y)
	}
}

func TestGameInvariantsUnderRandomPlay(t *testing.T) {
	g := New(config.Default(), 2024)
	rng := rand.New(rand.NewSource(7))

	prevScore := 0
	for tick := 0; tick < 50000; tick++ {
		switch g.Mode() {
		case ModeMenu:
			g.Apply(core.ActionFlap)
			prevScore = 0
		case ModeGameOver:
			g.Apply(core.ActionReplay)
			continue
		case ModePlaying:
			// Flap when falling below the middle of the screen.
			if g.Bird().Y > 320 && rng.Intn(3) == 0 {
				g.Apply(core.ActionFlap)
			}
		}

		g.Step()

		s := g.State()
		if s.HighScore < s.Score {
			t.Fatalf("tick %d: high score %d below score %d", tick, s.HighScore, s.Score)
		}
		if s.Mode == ModePlaying && s.Score < prevScore {
			t.Fatalf("tick %d: score went down from %d to %d", tick, prevScore, s.Score)
		}
		if g.Bird().Y < 0 {
			t.Fatalf("tick %d: bird above the screen: %v", tick, g.Bird().Y)
		}
		prevScore = s.Score
	}
}

func TestSameSeedSameWorld(t *testing.T) {
	a := New(config.Default(), 555)
	b := New(config.Default(), 555)
	a.Apply(core.ActionFlap)
	b.Apply(core.ActionFlap)

	for i := 0; i < 300; i++ {
		if i%20 == 0 {
			a.Apply(core.ActionFlap)
			b.Apply(core.ActionFlap)
		}
		a.Step()
		b.Step()
	}

	if a.State() != b.State() || a.Bird() != b.Bird() {
		t.Errorf("runs diverged: %+v / %+v", a.State(), b.State())
	}
	for i := range a.Pipes() {
		if a.Pipes()[i] != b.Pipes()[i] {
			t.Errorf("pipe[%d] diverged", i)
		}
	}
}
