package surimi

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/surimi-survivors/internal/combat"
	"github.com/vovakirdan/surimi-survivors/internal/config"
	"github.com/vovakirdan/surimi-survivors/internal/core"
	"github.com/vovakirdan/surimi-survivors/internal/spatial"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// clearField removes the initial wave and holds off the spawner.
func clearField(g *Game) {
	g.enemies = g.enemies[:0]
	g.spawnTimer = math.MaxInt32
}

func TestGameDeterminism(t *testing.T) {
	cfg := testConfig(12345)

	// Circle around while firing
	inputSequence := make([]core.InputFrame, 600)
	dirs := []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUp}
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame(dirs[(i/60)%len(dirs)])
		if i%3 == 0 {
			inputSequence[i].Set(core.ActionFire)
		}
	}

	run := func() *Game {
		g := New()
		g.Reset(cfg)
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g
	}

	g1 := run()
	g2 := run()

	if g1.State() != g2.State() {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", g1.State(), g2.State())
	}
	if len(g1.enemies) != len(g2.enemies) {
		t.Fatalf("Determinism failed: enemy counts differ. Run1=%d, Run2=%d", len(g1.enemies), len(g2.enemies))
	}
	for i := range g1.enemies {
		if g1.enemies[i].Pos != g2.enemies[i].Pos {
			t.Errorf("Determinism failed: enemy %d at %v vs %v", i, g1.enemies[i].Pos, g2.enemies[i].Pos)
		}
	}
}

func TestGameReset(t *testing.T) {
	cfg := testConfig(42)

	g := New()
	g.Reset(cfg)

	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame(core.ActionRight, core.ActionFire))
	}

	g.Reset(cfg)

	if g.score != 0 || g.kills != 0 {
		t.Errorf("Reset should clear score and kills, got %d/%d", g.score, g.kills)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.gameOver || g.paused {
		t.Error("Reset should clear gameOver and paused flags")
	}
	if len(g.projectiles) != 0 {
		t.Errorf("Reset should clear projectiles, got %d", len(g.projectiles))
	}
	if len(g.enemies) != g.cfg.Enemies.InitialBatch {
		t.Errorf("Reset should spawn %d enemies, got %d", g.cfg.Enemies.InitialBatch, len(g.enemies))
	}
	if g.player.Health != combat.MaxHealth {
		t.Errorf("Reset should restore health, got %v", g.player.Health)
	}
}

func TestInitialSpawnsAreOffScreen(t *testing.T) {
	cfg := testConfig(7)
	g := New()
	g.Reset(cfg)

	d := combat.SpawnDistance(cfg.ScreenSize())
	center := g.player.Center()
	for i, e := range g.enemies {
		if !e.Pos.IsFinite() {
			t.Fatalf("enemy %d has non-finite position %v", i, e.Pos)
		}
		got := e.Rect().Center().Sub(center).Len()
		if math.Abs(got-d) > 1e-9 {
			t.Errorf("enemy %d distance = %v, expected %v", i, got, d)
		}
	}
}

func TestPlayerMovement(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	clearField(g)

	start := g.player.Pos
	g.Step(core.NewInputFrame(core.ActionRight))

	if g.player.Pos.X != start.X+g.cfg.Player.Speed || g.player.Pos.Y != start.Y {
		t.Errorf("moving right: Pos = %v, expected X %v", g.player.Pos, start.X+g.cfg.Player.Speed)
	}

	g.Step(core.NewInputFrame(core.ActionLeft, core.ActionUp))
	want := core.V(-1, -1).Normalize()
	if math.Abs(g.player.Facing.X-want.X) > 1e-9 || math.Abs(g.player.Facing.Y-want.Y) > 1e-9 {
		t.Errorf("Facing = %v, expected %v", g.player.Facing, want)
	}
}

func TestFireCooldown(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	clearField(g)

	fire := core.NewInputFrame(core.ActionFire)
	g.Step(fire)
	if len(g.projectiles) != 1 {
		t.Fatalf("expected 1 projectile after firing, got %d", len(g.projectiles))
	}

	g.Step(fire)
	if len(g.projectiles) != 1 {
		t.Errorf("cooldown should block the second shot, got %d projectiles", len(g.projectiles))
	}

	for i := 0; i < g.cfg.Player.FireCooldown; i++ {
		g.Step(fire)
	}
	if len(g.projectiles) < 2 {
		t.Errorf("expected a second shot after the cooldown, got %d projectiles", len(g.projectiles))
	}
}

func TestProjectileKillsEnemy(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))
	clearField(g)

	// One-hit shark straight ahead of the crab
	size := core.V(4, 2)
	e := g.newEnemy(g.player.Center().Add(core.V(6, 0)).Sub(size.Scale(0.5)), size)
	e.Health = g.cfg.Projectiles.Damage
	g.enemies = append(g.enemies, e)

	g.Step(core.NewInputFrame(core.ActionFire))
	kills := 0
	for i := 0; i < 20 && g.kills == 0; i++ {
		kills += g.Step(core.NewInputFrame()).Kills
	}

	if g.kills != 1 || kills != 1 {
		t.Fatalf("kills = %d (step total %d), expected 1", g.kills, kills)
	}
	if len(g.enemies) != 0 {
		t.Errorf("dead enemy should be pruned, %d remain", len(g.enemies))
	}
	if len(g.projectiles) != 0 {
		t.Errorf("projectile should despawn on hit, %d remain", len(g.projectiles))
	}
	if g.score < g.cfg.Scoring.KillPoints {
		t.Errorf("score = %d, expected at least %d", g.score, g.cfg.Scoring.KillPoints)
	}
}

func TestHitsMatchAcrossIndexes(t *testing.T) {
	tests := []struct {
		name  string
		index spatial.Index
	}{
		{"linear", spatial.NewLinear()},
		{"grid", spatial.NewGrid(8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			g.Reset(testConfig(5))
			clearField(g)
			g.index = tt.index
			g.cfg.Projectiles.Damage = 5
			g.cfg.Projectiles.Knockback = 10

			e := g.newEnemy(core.V(4, 0), core.V(2, 2))
			e.Health = combat.MaxHealth
			g.enemies = append(g.enemies, e)

			// The first shot knocks the shark onto the second one.
			g.projectiles = []combat.Projectile{
				{Pos: core.V(4, 0), Size: core.V(1, 1), Vel: core.V(1, 0)},
				{Pos: core.V(14.5, 0.5), Size: core.V(1, 1), Vel: core.V(1, 0)},
			}

			g.resolveHits()

			if g.enemies[0].Health != 90 {
				t.Errorf("Health = %v, expected 90", g.enemies[0].Health)
			}
			for i, p := range g.projectiles {
				if !p.Spent {
					t.Errorf("projectile %d should be spent", i)
				}
			}
		})
	}
}

func TestContactDamageEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	clearField(g)

	e := g.newEnemy(g.player.Pos, g.player.Size)
	e.Damage = 2 * combat.MaxHealth
	g.enemies = append(g.enemies, e)

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver {
		t.Fatal("contact damage above max health should end the game")
	}
	if g.player.Health != 0 {
		t.Errorf("Health = %v, expected clamp to 0", g.player.Health)
	}

	ticks := g.tickCount
	g.Step(core.NewInputFrame(core.ActionRight))
	if g.tickCount != ticks {
		t.Error("Step after game over should not advance the simulation")
	}
}

func TestPauseToggle(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	g.Step(core.NewInputFrame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}
	g.Step(core.NewInputFrame(core.ActionRight))
	if g.tickCount != 0 {
		t.Errorf("paused game should not tick, got %d", g.tickCount)
	}

	g.Step(core.NewInputFrame(core.ActionPause))
	if g.State().Paused || g.tickCount != 1 {
		t.Errorf("second pause should resume, paused=%v ticks=%d", g.State().Paused, g.tickCount)
	}
}

func TestWaveSpawner(t *testing.T) {
	g := New()
	g.Reset(testConfig(9))

	before := len(g.enemies)
	spawned := 0
	for i := g.spawnTimer; i > 0; i-- {
		spawned += g.Step(core.NewInputFrame()).Spawned
	}
	if spawned != 1 || len(g.enemies) != before+1 {
		t.Errorf("spawned = %d, enemies %d -> %d, expected one spawn", spawned, before, len(g.enemies))
	}
}

func TestMaxAliveCap(t *testing.T) {
	g := New()
	g.Reset(testConfig(9))

	g.cfg.Enemies.MaxAlive = len(g.enemies)
	if g.spawnEnemy() {
		t.Error("spawnEnemy should refuse past the alive cap")
	}

	g.enemies[0].Alive = false
	if !g.spawnEnemy() {
		t.Error("dead enemies should not count toward the cap")
	}
}

func TestClassicMode(t *testing.T) {
	g := NewClassic()
	g.Reset(testConfig(1))

	if g.ID() != ClassicID {
		t.Errorf("ID() = %q, expected %q", g.ID(), ClassicID)
	}
	if len(g.enemies) != len(g.cfg.Classic.Enemies) {
		t.Errorf("enemies = %d, expected %d", len(g.enemies), len(g.cfg.Classic.Enemies))
	}
	if len(g.walls) != len(g.cfg.Classic.Walls) {
		t.Errorf("walls = %d, expected %d", len(g.walls), len(g.cfg.Classic.Walls))
	}

	for i := 0; i < 200; i++ {
		if r := g.Step(core.NewInputFrame()); r.Spawned != 0 {
			t.Fatalf("classic mode spawned %d enemies at tick %d", r.Spawned, i)
		}
	}

	for i := range g.enemies {
		g.enemies[i].Alive = false
	}
	g.Step(core.NewInputFrame())
	if !g.gameOver || !g.cleared {
		t.Errorf("clearing the layout should end the run, gameOver=%v cleared=%v", g.gameOver, g.cleared)
	}
}

func TestWallsBlockPlayer(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	clearField(g)

	wallX := g.player.Rect().Right() + 0.5
	g.walls = append(g.walls, combat.Wall{Pos: core.V(wallX, -5), Size: core.V(2, 10), Solid: true})

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(core.ActionRight))
	}
	if right := g.player.Rect().Right(); right > wallX {
		t.Errorf("player right edge = %v, should stop at wall %v", right, wallX)
	}

	// Decorative walls do not block
	g.walls[0].Solid = false
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(core.ActionRight))
	}
	if g.player.Rect().Right() <= wallX {
		t.Error("non-solid wall should not block the player")
	}
}

func TestRender(t *testing.T) {
	cfg := testConfig(1)
	g := New()
	g.Reset(cfg)
	clearField(g)

	s := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(s)

	// The crab is drawn centered on screen
	x, y := (Camera{Focus: g.player.Center(), W: cfg.ScreenW, H: cfg.ScreenH}).ToScreen(g.player.Pos)
	if got := s.Get(x+1, y); got != '@' {
		t.Errorf("player glyph at (%d, %d) = %q, expected '@'", x+1, y, got)
	}

	// Full health bar below the crab
	if got := s.Get(x+1, y+int(g.player.Size.Y)); got != HealthFull {
		t.Errorf("health bar glyph = %q, expected %q", got, HealthFull)
	}

	g.paused = true
	g.Render(s)
	found := false
	for row := 0; row < s.Height(); row++ {
		if strings.Contains(s.Row(row), "PAUSED") {
			found = true
		}
	}
	if !found {
		t.Error("paused game should render the PAUSED message")
	}
}

func TestFormatPlayTime(t *testing.T) {
	tests := []struct {
		ticks, rate int
		expected    string
	}{
		{0, 60, "0:00:00"},
		{59, 60, "0:00:00"},
		{60, 60, "0:00:01"},
		{60 * 61, 60, "0:01:01"},
		{60 * 3725, 60, "1:02:05"},
		{120, 0, "0:00:02"}, // falls back to the default rate
	}

	for _, tc := range tests {
		if got := FormatPlayTime(tc.ticks, tc.rate); got != tc.expected {
			t.Errorf("FormatPlayTime(%d, %d) = %q, expected %q", tc.ticks, tc.rate, got, tc.expected)
		}
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	defer SetDifficultyPreset("")

	SetDifficultyPreset("fixed")
	g := New()
	g.Reset(testConfig(1))
	if g.difficulty.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}

	SetDifficultyPreset("bogus")
	if difficultyPreset != "" {
		t.Errorf("unknown preset should clear, got %q", difficultyPreset)
	}

	// Per-instance override wins over the package default
	g = New()
	g.SetDifficulty("fixed")
	g.Reset(testConfig(1))
	if g.difficulty.IsEnabled() {
		t.Error("SetDifficulty(fixed) should disable progression")
	}
}

func TestResetWarnsOnBadConfig(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	defer SetConfigPath("")

	g := New()
	g.Reset(testConfig(1))

	if !strings.Contains(buf.String(), "using defaults") {
		t.Errorf("expected a warning about the fallback, got %q", buf.String())
	}
	if want := config.DefaultSurimiConfig().Player.Speed; g.cfg.Player.Speed != want {
		t.Errorf("Player.Speed = %v, expected default %v", g.cfg.Player.Speed, want)
	}
}
