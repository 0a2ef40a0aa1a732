package term

import (
	"strings"
	"testing"

	"conway-ca/internal/life"

	"github.com/gdamore/tcell/v2"
)

const (
	testWidth  = 100
	testHeight = 32
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen, *life.Simulation) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(testWidth, testHeight)
	sim := life.New(life.DefaultConfig())
	return New(screen, sim, 30), screen, sim
}

func readRow(screen tcell.SimulationScreen, x, y, n int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for i := 0; i < n; i++ {
		c := cells[y*w+x+i]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func TestLayoutHit(t *testing.T) {
	l := Layout(testWidth, testHeight, 25, 25)
	cells := []struct{ x, y, row, col int }{
		{2, 4, 0, 0},
		{3, 4, 0, 0},
		{4, 4, 0, 1},
		{51, 28, 24, 24},
	}
	for _, tc := range cells {
		a, ok := l.Hit(tc.x, tc.y)
		if !ok || a != life.ToggleCell(tc.row, tc.col) {
			t.Fatalf("click (%d,%d) -> %v ok=%v, want cell (%d,%d)", tc.x, tc.y, a, ok, tc.row, tc.col)
		}
	}

	buttons := []struct {
		x, y int
		want life.ActionKind
	}{
		{25, 2, life.ActionTogglePlay},
		{38, 2, life.ActionClear},
		{60, 8, life.ActionSpeedUp},
		{60, 10, life.ActionSpeedDown},
	}
	for _, tc := range buttons {
		a, ok := l.Hit(tc.x, tc.y)
		if !ok || a.Kind != tc.want {
			t.Fatalf("click (%d,%d) -> %v ok=%v, want %v", tc.x, tc.y, a, ok, tc.want)
		}
	}

	for _, p := range [][2]int{{52, 4}, {2, 29}, {60, 9}, {36, 2}, {0, 0}} {
		if a, ok := l.Hit(p[0], p[1]); ok {
			t.Fatalf("click (%d,%d) unexpectedly mapped to %v", p[0], p[1], a)
		}
	}
}

func TestMouseClickTogglesCellOncePerPress(t *testing.T) {
	term, _, sim := newTestTerminal(t)

	term.Handle(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone))
	if !sim.Grid().Alive(1, 2) {
		t.Fatal("press on the board should toggle the cell under the pointer")
	}
	term.Handle(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone))
	if !sim.Grid().Alive(1, 2) {
		t.Fatal("holding the button must not toggle again")
	}

	term.Handle(tcell.NewEventMouse(6, 5, tcell.ButtonNone, tcell.ModNone))
	term.Handle(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone))
	if sim.Grid().Alive(1, 2) {
		t.Fatal("second press should toggle the cell back")
	}
}

func TestKeysDispatch(t *testing.T) {
	term, _, sim := newTestTerminal(t)

	if term.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) || !sim.Playing() {
		t.Fatal("space should start play")
	}
	term.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if sim.Speed() != 6 {
		t.Fatalf("up arrow should raise speed to 6, got %d", sim.Speed())
	}
	term.Handle(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	if sim.Speed() != 5 {
		t.Fatalf("minus should lower speed to 5, got %d", sim.Speed())
	}
	term.Handle(tcell.NewEventKey(tcell.KeyRune, 'C', tcell.ModNone))
	if sim.Playing() {
		t.Fatal("clear should pause play")
	}
	if !term.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !term.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestDrawRendersBoardAndPanels(t *testing.T) {
	term, screen, sim := newTestTerminal(t)
	sim.ToggleCell(0, 0)
	term.Draw()

	if got := readRow(screen, 2, 4, 2); got != "██" {
		t.Fatalf("live cell rendered as %q", got)
	}
	if got := readRow(screen, 4, 4, 1); got != "·" {
		t.Fatalf("dead cell rendered as %q", got)
	}
	if got := readRow(screen, 55, 4, 13); got != "Generation: 0" {
		t.Fatalf("info line reads %q", got)
	}
	if got := readRow(screen, 55, 5, 13); got != "Live Cells: 1" {
		t.Fatalf("live count reads %q", got)
	}
	if got := readRow(screen, 25, 2, 11); !strings.Contains(got, "Play") {
		t.Fatalf("play button reads %q", got)
	}

	sim.TogglePlay()
	term.Draw()
	if got := readRow(screen, 25, 2, 11); !strings.Contains(got, "Pause") {
		t.Fatalf("play button should read Pause while playing, got %q", got)
	}
}

func TestTickStepsOnlyWhenPlaying(t *testing.T) {
	term, _, sim := newTestTerminal(t)
	term.Tick()
	if sim.Generation() != 0 {
		t.Fatal("paused simulation must not step")
	}

	playing, _, psim := newTestTerminal(t)
	psim.TogglePlay()
	playing.Tick()
	if psim.Generation() != 1 {
		t.Fatalf("first due tick should step once, got generation %d", psim.Generation())
	}
}

func TestResumeStepsOnceThenWaits(t *testing.T) {
	term, _, sim := newTestTerminal(t)
	sim.TogglePlay()
	term.Tick()
	sim.TogglePlay()
	term.Tick()
	term.Tick()
	if sim.Generation() != 1 {
		t.Fatalf("paused ticks must not step, got generation %d", sim.Generation())
	}

	sim.TogglePlay()
	term.Tick()
	term.Tick()
	if sim.Generation() != 2 {
		t.Fatalf("resume should step once and then wait an interval, got generation %d", sim.Generation())
	}
}
