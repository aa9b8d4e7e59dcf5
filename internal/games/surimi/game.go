// Package surimi implements Surimi Survivors, a top-down survival shooter.
// The player is a crab loose in an open sea: sharks spawn off-screen and
// close in, the crab fires at them, and the run ends when its health is gone.
package surimi

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/surimi-survivors/internal/assets"
	"github.com/vovakirdan/surimi-survivors/internal/combat"
	"github.com/vovakirdan/surimi-survivors/internal/config"
	"github.com/vovakirdan/surimi-survivors/internal/core"
	"github.com/vovakirdan/surimi-survivors/internal/registry"
	"github.com/vovakirdan/surimi-survivors/internal/spatial"
)

// Mode selects the rules a run is played with.
type Mode int

const (
	// ModeSurvival spawns endless waves with difficulty progression.
	ModeSurvival Mode = iota
	// ModeClassic plays the fixed layout from the config with no respawn.
	ModeClassic
)

// Registered game IDs.
const (
	SurvivalID = "surimi"
	ClassicID  = "surimi_classic"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	sprites          *assets.Sheet
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the default difficulty preset for new games.
// Unknown names use the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetSprites sets the sprite sheet used by every game created afterwards.
// Call before games are created; instances keep the sheet they were made with.
func SetSprites(sh *assets.Sheet) {
	sprites = sh
}

// Game implements the Surimi Survivors game logic.
type Game struct {
	mode       Mode
	runtime    core.RuntimeConfig
	cfg        config.SurimiConfig
	difficulty *config.DifficultyManager
	overlap    combat.OverlapFunc
	policy     combat.DespawnPolicy
	index      spatial.Index
	candidates []int
	rng        *rand.Rand
	wander     *Wander
	sheet      *assets.Sheet
	preset     config.DifficultyPreset

	player      combat.Player
	enemies     []combat.Enemy
	projectiles []combat.Projectile
	walls       []combat.Wall

	score      int
	kills      int
	tickCount  int
	cooldown   int // Ticks until the player may fire again
	spawnTimer int // Ticks until the next wave spawn
	gameOver   bool
	cleared    bool // Classic layout fully destroyed
	paused     bool
}

// New creates a survival-mode game instance.
func New() *Game {
	return &Game{mode: ModeSurvival, preset: difficultyPreset, sheet: sprites}
}

// NewClassic creates a classic-mode game instance.
func NewClassic() *Game {
	return &Game{mode: ModeClassic, preset: difficultyPreset, sheet: sprites}
}

// SetDifficulty overrides the difficulty preset for this instance.
// Takes effect on the next Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return ClassicID
	}
	return SurvivalID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Surimi Survivors (Classic)"
	}
	return "Surimi Survivors"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}

	cfg, err := config.LoadSurimi(configPath)
	if err != nil {
		log.Warn("config unavailable, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultSurimiConfig()
	}
	config.ApplyPreset(&cfg, g.preset)
	g.applyConfig(cfg)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.wander = NewWander(runtime.Seed, cfg.Enemies.Wander)
	if g.sheet == nil {
		g.sheet = assets.Default()
	}

	size := core.V(cfg.Player.Width, cfg.Player.Height)
	g.player = combat.NewPlayer(size.Scale(-0.5), size, cfg.Player.Speed)
	g.enemies = g.enemies[:0]
	g.projectiles = g.projectiles[:0]
	g.walls = g.walls[:0]

	g.score = 0
	g.kills = 0
	g.tickCount = 0
	g.cooldown = 0
	g.gameOver = false
	g.cleared = false
	g.paused = false

	switch g.mode {
	case ModeClassic:
		g.loadClassicLayout()
	default:
		for i := 0; i < cfg.Enemies.InitialBatch; i++ {
			g.spawnEnemy()
		}
		g.spawnTimer = g.spawnInterval()
	}
}

// applyConfig derives the per-run rules from cfg.
func (g *Game) applyConfig(cfg config.SurimiConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	overlap, err := combat.ParseOverlap(cfg.Combat.Overlap)
	if err != nil {
		overlap = combat.Exact
	}
	g.overlap = overlap

	g.policy = combat.DespawnPolicy{
		MaxAge:       cfg.Projectiles.MaxAge,
		MaxRange:     cfg.Projectiles.MaxRange,
		DespawnOnHit: cfg.Projectiles.DespawnOnHit,
	}

	if cfg.Combat.CellSize > 0 {
		g.index = spatial.NewGrid(cfg.Combat.CellSize)
	} else {
		g.index = spatial.NewLinear()
	}
}

// loadClassicLayout places the fixed enemies and walls relative to the player.
func (g *Game) loadClassicLayout() {
	origin := g.player.Pos
	for _, r := range g.cfg.Classic.Enemies {
		g.enemies = append(g.enemies, g.newEnemy(origin.Add(core.V(r.X, r.Y)), core.V(r.Width, r.Height)))
	}
	for _, w := range g.cfg.Classic.Walls {
		g.walls = append(g.walls, combat.Wall{
			Pos:   origin.Add(core.V(w.X, w.Y)),
			Size:  core.V(w.Width, w.Height),
			Solid: w.Solid,
		})
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.movePlayer(in.Direction())
	if in.Has(core.ActionFire) {
		g.fire()
	}
	if g.cooldown > 0 {
		g.cooldown--
	}

	spawned := g.spawnWave()
	g.steerEnemies()
	combat.AdvanceAll(g.projectiles)

	kills := g.resolveHits()
	g.kills += kills

	dmg := combat.ContactDamage(g.player.Rect(), g.enemies, g.overlap)
	combat.ApplyDamage(&g.player.Health, dmg, combat.MaxHealth)

	g.enemies = combat.PruneDead(g.enemies)
	g.projectiles = combat.Prune(g.projectiles, g.policy)

	g.score = g.kills*g.cfg.Scoring.KillPoints + g.seconds()*g.cfg.Scoring.PointsPerSecond

	if combat.IsGameOver(g.player.Health) {
		g.gameOver = true
	}
	if g.mode == ModeClassic && len(g.cfg.Classic.Enemies) > 0 && len(g.enemies) == 0 {
		g.cleared = true
		g.gameOver = true
	}

	return core.StepResult{State: g.State(), Kills: kills, Spawned: spawned}
}

// movePlayer applies input movement and keeps the player out of solid walls.
func (g *Game) movePlayer(dir core.Vec2) {
	g.player.Move(dir)
	g.player.Pos = combat.BlockWalls(g.player.Rect(), g.walls)
}

// fire launches a projectile when the cooldown allows it.
func (g *Game) fire() {
	if g.cooldown > 0 {
		return
	}
	size := core.V(g.cfg.Projectiles.Width, g.cfg.Projectiles.Height)
	g.projectiles = append(g.projectiles, combat.Fire(g.player, size, g.cfg.Projectiles.Speed))
	g.cooldown = g.cfg.Player.FireCooldown
}

// resolveHits tests every live projectile against the enemies near it.
// Returns the number of enemies killed this tick.
func (g *Game) resolveHits() int {
	g.index.Clear()
	for i := range g.enemies {
		if g.enemies[i].Alive {
			g.index.Insert(i, g.enemies[i].Rect())
		}
	}

	counter := &combat.KillCounter{}
	damage := combat.Damage(g.cfg.Projectiles.Damage)
	for i := range g.projectiles {
		p := &g.projectiles[i]
		src := p.Rect()
		g.candidates = g.index.Query(src, g.candidates[:0])
		if len(g.candidates) == 0 {
			continue
		}
		counter.Next = combat.Chain(damage, combat.Knockback(p.Vel.Normalize(), g.cfg.Projectiles.Knockback))
		if combat.ResolveCandidates(src, g.enemies, g.candidates, g.overlap, counter) == 0 {
			continue
		}
		p.Spent = true
		if g.cfg.Projectiles.Knockback != 0 {
			g.reindex(g.candidates)
		}
	}
	return counter.Kills
}

// reindex registers the current rectangles of ids that knockback may have
// moved. Stale entries stay behind and only widen later queries.
func (g *Game) reindex(ids []int) {
	for _, id := range ids {
		if g.enemies[id].Alive {
			g.index.Insert(id, g.enemies[id].Rect())
		}
	}
}

// seconds returns whole seconds survived.
func (g *Game) seconds() int {
	return g.tickCount / g.runtime.TickRate
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Kills:    g.kills,
		Ticks:    g.tickCount,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register both modes with the registry
func init() {
	registry.Register(SurvivalID, func() registry.Game {
		return New()
	})
	registry.Register(ClassicID, func() registry.Game {
		return NewClassic()
	})
}
