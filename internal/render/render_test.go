package render

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

type fakeHandle struct {
	path     string
	released int
}

func (h *fakeHandle) Release() { h.released++ }

type fakeLoader struct {
	fail   string
	loaded []*fakeHandle
}

func (l *fakeLoader) load(path string) (*fakeHandle, error) {
	if path == l.fail {
		return nil, ErrMissingAsset
	}
	h := &fakeHandle{path: path}
	l.loaded = append(l.loaded, h)
	return h, nil
}

func (l *fakeLoader) LoadImage(path string) (Texture, error) {
	h, err := l.load(path)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (l *fakeLoader) LoadFont(path string, _ float64) (Font, error) {
	h, err := l.load(path)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// opRenderer records draw calls. Text is 10 pixels per rune and 20 tall.
type opRenderer struct {
	ops []string
}

func (r *opRenderer) Clear()   { r.ops = append(r.ops, "clear") }
func (r *opRenderer) Present() { r.ops = append(r.ops, "present") }

func (r *opRenderer) DrawRect(tex Texture, dst core.Rect) {
	r.ops = append(r.ops, fmt.Sprintf("rect %s %d,%d %dx%d", tex.(*fakeHandle).path, dst.X, dst.Y, dst.W, dst.H))
}

func (r *opRenderer) DrawText(_ Font, text string, x, y int) {
	r.ops = append(r.ops, fmt.Sprintf("text %q %d,%d", text, x, y))
}

func (r *opRenderer) MeasureText(_ Font, text string) (int, int) {
	return 10 * len(text), 20
}

func (r *opRenderer) has(op string) bool {
	for _, o := range r.ops {
		if o == op {
			return true
		}
	}
	return false
}

var testExt = Extensions{Image: ".png", Font: ".ttf"}

func quiet() *log.Logger { return log.New(io.Discard) }

func TestLoadAssets(t *testing.T) {
	l := &fakeLoader{}
	a, err := LoadAssets(l, config.Default().Assets, testExt, quiet())
	if err != nil {
		t.Fatalf("LoadAssets() failed: %v", err)
	}
	if len(l.loaded) != 7 {
		t.Fatalf("expected 7 handles, got %d", len(l.loaded))
	}
	if a.Bird.(*fakeHandle).path != "bird.png" || a.Font.(*fakeHandle).path != "font.ttf" {
		t.Errorf("unexpected paths: %v, %v", a.Bird, a.Font)
	}

	a.Release()
	a.Release()
	for _, h := range l.loaded {
		if h.released != 1 {
			t.Errorf("%s released %d times, expected once", h.path, h.released)
		}
	}
}

func TestLoadAssetsFailureReleasesAcquired(t *testing.T) {
	for _, fail := range []string{"bird.png", "background.png", "high_score_background.png", "font.ttf"} {
		t.Run(fail, func(t *testing.T) {
			l := &fakeLoader{fail: fail}
			a, err := LoadAssets(l, config.Default().Assets, testExt, quiet())
			if err == nil {
				t.Fatal("expected an error")
			}
			if a != nil {
				t.Error("no assets should be returned on failure")
			}
			if !strings.Contains(err.Error(), fail) {
				t.Errorf("error %q should name %s", err, fail)
			}
			for _, h := range l.loaded {
				if h.released != 1 {
					t.Errorf("%s should have been released", h.path)
				}
			}
		})
	}
}

func newDispatch(t *testing.T) (*Dispatcher, *opRenderer) {
	t.Helper()
	a, err := LoadAssets(&fakeLoader{}, config.Default().Assets, testExt, quiet())
	if err != nil {
		t.Fatal(err)
	}
	r := &opRenderer{}
	return NewDispatcher(r, a), r
}

func TestDrawMenu(t *testing.T) {
	d, r := newDispatch(t)
	d.Draw(flappy.New(config.Default(), 1))

	if r.ops[0] != "clear" || r.ops[len(r.ops)-1] != "present" {
		t.Errorf("frame should start with clear and end with present: %v", r.ops)
	}
	want := []string{
		"rect menu_background.png 0,0 800x600",
		`text "Flappy Bird" 345,150`,
		`text "Press SPACE to Play" 305,300`,
		`text "Press H to View High Scores" 265,320`,
	}
	for _, op := range want {
		if !r.has(op) {
			t.Errorf("missing %s in %v", op, r.ops)
		}
	}
}

func TestDrawPlaying(t *testing.T) {
	d, r := newDispatch(t)
	g := flappy.New(config.Default(), 1)
	g.Apply(core.ActionFlap)
	d.Draw(g)

	if !r.has("rect background.png 0,0 800x600") {
		t.Errorf("missing background: %v", r.ops)
	}
	if !r.has("rect bird.png 200,300 40x40") {
		t.Errorf("missing bird: %v", r.ops)
	}
	if !r.has(`text "Score: 0" 10,10`) {
		t.Errorf("missing score: %v", r.ops)
	}

	p := g.Pipes()[0]
	top := fmt.Sprintf("rect top_pipe.png %d,0 80x%d", p.X, p.Y)
	bottom := fmt.Sprintf("rect bottom_pipe.png %d,%d 80x%d", p.X, p.Y+200, 600-(p.Y+200))
	if !r.has(top) || !r.has(bottom) {
		t.Errorf("missing pipe 0 (%s / %s): %v", top, bottom, r.ops)
	}
}

func TestDrawGameOverAndHighScore(t *testing.T) {
	d, r := newDispatch(t)
	g := flappy.New(config.Default(), 1)
	g.Apply(core.ActionFlap)
	for g.Mode() == flappy.ModePlaying {
		g.Step()
	}
	d.Draw(g)

	if !r.has("rect menu_background.png 0,0 800x600") {
		t.Errorf("game over should reuse the menu background: %v", r.ops)
	}
	if !r.has(fmt.Sprintf("text %q %d,%d", GameOverText, 400-len(GameOverText)*5, 290)) {
		t.Errorf("missing game over text: %v", r.ops)
	}

	g.Apply(core.ActionReplay)
	g.Apply(core.ActionHighScore)
	r.ops = nil
	d.Draw(g)

	if !r.has("rect high_score_background.png 0,0 800x600") {
		t.Errorf("missing high score background: %v", r.ops)
	}
	if !r.has(`text "High Score: 0" 335,290`) {
		t.Errorf("missing high score text: %v", r.ops)
	}
	if !r.has(fmt.Sprintf("text %q %d,%d", BackToMenuText, 400-len(BackToMenuText)*5, 360)) {
		t.Errorf("missing back to menu text: %v", r.ops)
	}
}
