package app

import (
	"bytes"
	"log"
	"pulka/internal/component"
	"pulka/internal/defs"
	"pulka/internal/entity"
	"pulka/internal/event"
	"pulka/internal/input"
	"pulka/internal/utils"
	"strings"
	"testing"
	"time"
)

func newTestGame(t *testing.T, variant string, provider input.Provider) *Game {
	t.Helper()
	lib, err := defs.DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary: %v", err)
	}
	schedule, err := lib.Schedule(variant)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	g, err := NewGame(schedule, provider, utils.NewPRNGService(1))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// winLevel ставит игрока в финиш и делает один кадр
func winLevel(t *testing.T, g *Game) {
	t.Helper()
	if !g.StartLevel() {
		t.Fatalf("StartLevel refused in phase %v", g.Phase())
	}
	g.World.Player.X, g.World.Player.Y = 700, 300
	if got := g.Update(0); got != component.Won {
		t.Fatalf("level %d: outcome %v, want won", g.Level(), got)
	}
}

func loseLevel(t *testing.T, g *Game) {
	t.Helper()
	if !g.StartLevel() {
		t.Fatalf("StartLevel refused in phase %v", g.Phase())
	}
	g.World.Projectiles = append(g.World.Projectiles, entity.NewProjectile(60, 50))
	if got := g.Update(0); got != component.Lost {
		t.Fatalf("outcome %v, want lost", got)
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, "desktop", nil)
	if g.Phase() != AwaitingStart || g.Level() != 1 || g.SpawnInterval() != time.Second {
		t.Errorf("phase=%v level=%d interval=%v", g.Phase(), g.Level(), g.SpawnInterval())
	}
	if g.LevelCount() != 5 {
		t.Errorf("level count = %d, want 5", g.LevelCount())
	}
}

func TestNewGameRejectsEmptySchedule(t *testing.T) {
	if _, err := NewGame(defs.Schedule{}, nil, nil); err == nil {
		t.Fatal("expected error for empty schedule")
	}
}

func TestUpdateDoesNothingOutsideRunning(t *testing.T) {
	g := newTestGame(t, "desktop", nil)
	g.World.Player.X = 700
	g.World.Player.Y = 300

	for i := 0; i < 10; i++ {
		if got := g.Update(time.Duration(i) * 5 * time.Second); got != component.Continue {
			t.Fatalf("outcome %v while awaiting start", got)
		}
	}
	if len(g.World.Projectiles) != 0 || g.Phase() != AwaitingStart {
		t.Errorf("simulation advanced while awaiting start")
	}
}

func TestStartLevelOnlyFromAwaitingStart(t *testing.T) {
	g := newTestGame(t, "desktop", nil)
	if !g.StartLevel() {
		t.Fatal("first StartLevel should succeed")
	}
	if g.StartLevel() {
		t.Error("second StartLevel should be refused while running")
	}
	if g.Phase() != Running {
		t.Errorf("phase = %v, want running", g.Phase())
	}
}

func TestLevelProgressionAndDifficulty(t *testing.T) {
	g := newTestGame(t, "desktop", nil)
	want := []time.Duration{500, 300, 250, 230}

	for i, ms := range want {
		winLevel(t, g)
		if g.Phase() != AwaitingStart {
			t.Fatalf("after win %d phase = %v", i+1, g.Phase())
		}
		if g.Level() != i+2 {
			t.Errorf("level = %d, want %d", g.Level(), i+2)
		}
		if g.SpawnInterval() != ms*time.Millisecond {
			t.Errorf("level %d interval = %v, want %v", g.Level(), g.SpawnInterval(), ms*time.Millisecond)
		}
		if g.World.Player != entity.NewPlayer() || len(g.World.Projectiles) != 0 {
			t.Errorf("world not reset for level %d", g.Level())
		}
	}
}

func TestWinningLastLevelCompletesGame(t *testing.T) {
	g := newTestGame(t, "desktop", nil)
	for i := 0; i < 5; i++ {
		winLevel(t, g)
	}
	if g.Phase() != Complete {
		t.Fatalf("phase = %v, want complete", g.Phase())
	}
	if g.Level() != 6 {
		t.Errorf("level = %d, want 6", g.Level())
	}
	if g.StartLevel() {
		t.Error("StartLevel must not start a 6th level")
	}
	if got := g.Update(time.Hour); got != component.Continue {
		t.Errorf("complete game advanced: %v", got)
	}
}

func TestLostStaysUntilRestart(t *testing.T) {
	g := newTestGame(t, "desktop", nil)
	loseLevel(t, g)
	if g.Phase() != Lost {
		t.Fatalf("phase = %v, want lost", g.Phase())
	}
	frozen := len(g.World.Projectiles)
	g.Update(10 * time.Second)
	if g.StartLevel() || g.Phase() != Lost || len(g.World.Projectiles) != frozen {
		t.Error("lost game must stay frozen until restart")
	}
}

func TestRestartFromLostAtLevel3(t *testing.T) {
	tests := []struct {
		variant string
		want    time.Duration
	}{
		{"desktop", 1000 * time.Millisecond},
		{"mobile", 500 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			g := newTestGame(t, tt.variant, nil)
			winLevel(t, g)
			winLevel(t, g)
			if g.Level() != 3 {
				t.Fatalf("level = %d, want 3", g.Level())
			}
			loseLevel(t, g)

			g.RestartGame()

			if g.Level() != 1 || g.SpawnInterval() != tt.want || g.Phase() != AwaitingStart {
				t.Errorf("level=%d interval=%v phase=%v", g.Level(), g.SpawnInterval(), g.Phase())
			}
			if g.World.Player != entity.NewPlayer() || len(g.World.Projectiles) != 0 || g.World.LastSpawn != 0 {
				t.Error("world not reset")
			}
		})
	}
}

func TestRestartFromComplete(t *testing.T) {
	g := newTestGame(t, "desktop", nil)
	for i := 0; i < 5; i++ {
		winLevel(t, g)
	}
	g.RestartGame()
	if g.Phase() != AwaitingStart || g.Level() != 1 {
		t.Errorf("phase=%v level=%d", g.Phase(), g.Level())
	}
}

func TestInputProviderDrivesPlayer(t *testing.T) {
	kb := input.NewKeyboard()
	g := newTestGame(t, "desktop", kb)
	g.StartLevel()

	kb.KeyDown(input.KeyArrowRight)
	kb.KeyDown(input.KeyArrowDown)
	g.Update(0)

	if g.World.Player.X != 55 || g.World.Player.Y != 55 {
		t.Errorf("player at (%v, %v), want (55, 55)", g.World.Player.X, g.World.Player.Y)
	}
}

func TestResizeAppliedOnNextStep(t *testing.T) {
	g := newTestGame(t, "desktop", nil)
	g.StartLevel()
	g.World.Player.X = 600
	g.Resize(400, 300)
	if g.World.Player.X != 600 {
		t.Fatal("resize must not move the player immediately")
	}
	g.Update(0)
	if want := 400 - g.World.Player.Width; g.World.Player.X != want {
		t.Errorf("x = %v, want %v", g.World.Player.X, want)
	}
}

func TestEventsAndLogging(t *testing.T) {
	g := newTestGame(t, "desktop", nil)

	var buf bytes.Buffer
	g.AttachLogger(log.New(&buf, "", 0))

	var types []event.EventType
	g.EventDispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		types = append(types, e.Type)
	}), event.AllLevelEvents...)

	winLevel(t, g)
	loseLevel(t, g)
	g.RestartGame()

	want := []event.EventType{event.LevelStarted, event.LevelWon, event.LevelStarted, event.LevelLost, event.GameRestarted}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}

	out := buf.String()
	for _, line := range []string{"level 1 started", "level 1 won", "level 2 lost", "game restarted at level 1"} {
		if !strings.Contains(out, line) {
			t.Errorf("log missing %q:\n%s", line, out)
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, "desktop", nil)
	g.World.Projectiles = append(g.World.Projectiles, entity.NewProjectile(10, 20))

	var s Snapshot
	g.Snapshot(&s)

	if s.Phase != AwaitingStart || s.Level != 1 || s.LevelCount != 5 {
		t.Errorf("unexpected header %+v", s)
	}
	if s.Player != (component.Rect{X: 50, Y: 50, W: 20.8, H: 36}) {
		t.Errorf("player = %+v", s.Player)
	}
	if len(s.Projectiles) != 1 || s.Projectiles[0] != (component.Rect{X: 10, Y: 20, W: 20, H: 5}) {
		t.Errorf("projectiles = %+v", s.Projectiles)
	}
	if s.Goal.X != 700 {
		t.Errorf("goal = %+v", s.Goal)
	}

	// снимок — копия, изменение не затрагивает мир
	s.Projectiles[0].X = 999
	if g.World.Projectiles[0].X != 10 {
		t.Error("snapshot aliases world projectiles")
	}
}
