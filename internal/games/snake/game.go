// Package snake implements the snake simulation and progression engine:
// the grid model, obstacle patterns, the reachability-aware food spawner,
// the movement and collision resolver, and the progression policies.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// State is the session phase.
type State int

const (
	StateIdle State = iota
	StateReady
	StateRunning
	StatePaused
	StateGameOver
)

// String returns the state tag.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Collision names what ended a session.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
	CollisionObstacle
)

// String returns a short description.
func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// Directions.
var (
	DirRight = core.Pt(1, 0)
	DirLeft  = core.Pt(-1, 0)
	DirDown  = core.Pt(0, 1)
	DirUp    = core.Pt(0, -1)
)

func isUnit(d core.Point) bool {
	return core.Abs(d.X)+core.Abs(d.Y) == 1
}

// isOpposite checks if two directions are opposite.
func isOpposite(a, b core.Point) bool {
	return a.X == -b.X && a.Y == -b.Y
}

// Result is what a finished session reports to the Recorder.
type Result struct {
	SessionID string
	Player    string
	Mode      string
	Duration  time.Duration
	Points    int
	Level     int
	Foods     int
}

// Recorder receives every finished session exactly once.
type Recorder interface {
	Record(r Result) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(r Result) error

// Record calls f(r).
func (f RecorderFunc) Record(r Result) error { return f(r) }

// TickResult describes what one tick changed.
type TickResult struct {
	Moved        bool
	Ate          bool
	LevelUp      bool
	SpeedChanged bool
	GameOver     bool
	Collision    Collision
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithLogger sets the logger used for progression events and recording
// failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithRecorder sets the receiver of finished sessions.
func WithRecorder(r Recorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithSeed seeds the food spawner.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// Game is one snake engine. It is not safe for concurrent use; the owner
// serializes commands and ticks.
type Game struct {
	cfg      config.SnakeConfig
	opts     config.Options
	grid     Grid
	policy   registry.Progression
	spawner  *Spawner
	recorder Recorder
	log      *log.Logger
	now      func() time.Time
	seed     int64

	state     State
	sessionID string

	// Snake state, tail first, head last
	snake   []core.Point
	body    CellSet
	dir     core.Point
	pending core.Point // Latest accepted request, committed at the next tick

	obstacles ObstacleSet
	food      core.Point
	hasFood   bool

	score int
	foods int
	stage registry.Stage
	ticks uint64
	cause Collision

	startedAt   time.Time
	endedAt     time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	recorded    bool
}

// New creates an idle engine. opts is normalized and validated here, once.
func New(cfg config.SnakeConfig, opts config.Options, options ...Option) (*Game, error) {
	opts, err := opts.Normalize(cfg.Leaderboard.NameMax)
	if err != nil {
		return nil, err
	}
	if opts.Pattern != "" {
		if _, ok := LookupPattern(opts.Pattern); !ok {
			return nil, fmt.Errorf("snake: unknown pattern %q", opts.Pattern)
		}
	}
	policy, err := registry.Create(opts.Mode, cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	g := &Game{
		cfg:    cfg,
		opts:   opts,
		grid:   NewGrid(cfg.Grid.Cols, cfg.Grid.Rows),
		policy: policy,
		log:    log.New(io.Discard),
		now:    time.Now,
		seed:   time.Now().UnixNano(),
		state:  StateIdle,
	}
	for _, o := range options {
		o(g)
	}
	g.spawner = NewSpawner(g.grid, rand.New(rand.NewSource(g.seed)), cfg.Food.ScanLimit)
	g.stage = policy.Stage(0)
	return g, nil
}

// Start drives the session lifecycle forward. From Idle or GameOver it
// creates a new session in Ready, under playerName when non-empty. From
// Ready it begins Running. Otherwise it does nothing.
func (g *Game) Start(playerName string) {
	switch g.state {
	case StateIdle, StateGameOver:
		if playerName != "" {
			g.opts.PlayerName = config.SanitizeName(playerName, g.cfg.Leaderboard.NameMax)
		}
		g.newSession()
		g.state = StateReady
	case StateReady:
		g.startedAt = g.now()
		g.state = StateRunning
		g.log.Debug("session running", "session", g.sessionID, "player", g.opts.PlayerName, "mode", g.policy.ID())
	}
}

// newSession builds a fresh GameState: a one-cell snake at the grid center
// heading right, level 1 obstacles and the first food.
func (g *Game) newSession() {
	g.sessionID = uuid.NewString()
	g.score = 0
	g.foods = 0
	g.ticks = 0
	g.cause = CollisionNone
	g.recorded = false
	g.pausedTotal = 0
	g.startedAt = time.Time{}
	g.endedAt = time.Time{}

	start := g.grid.Center()
	g.snake = []core.Point{start}
	g.body = NewCellSet(start)
	g.dir = DirRight
	g.pending = DirRight

	g.stage = g.policy.Stage(0)
	g.obstacles = g.buildObstacles(g.stage.Pattern)
	g.spawnFood()
}

// RequestDirection stores (dx, dy) as the pending direction. Requests that
// are not unit vectors, or that reverse the committed direction, are
// dropped. It reports whether the request was accepted.
func (g *Game) RequestDirection(dx, dy int) bool {
	switch g.state {
	case StateReady, StateRunning, StatePaused:
	default:
		return false
	}

	d := core.Pt(dx, dy)
	if !isUnit(d) || isOpposite(d, g.dir) {
		return false
	}
	g.pending = d
	return true
}

// TogglePause switches between Running and Paused. It does nothing in any
// other state.
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.pausedAt = g.now()
		g.state = StatePaused
	case StatePaused:
		g.pausedTotal += g.now().Sub(g.pausedAt)
		g.state = StateRunning
	}
}

// Reset discards the session and returns to Idle.
func (g *Game) Reset() {
	g.state = StateIdle
	g.sessionID = ""
	g.snake = nil
	g.body = NewCellSet()
	g.obstacles = ObstacleSet{}
	g.hasFood = false
	g.score = 0
	g.foods = 0
	g.ticks = 0
	g.cause = CollisionNone
	g.stage = g.policy.Stage(0)
}

// Tick advances the snake one cell. It is a no-op unless Running.
func (g *Game) Tick() TickResult {
	var res TickResult
	if g.state != StateRunning {
		return res
	}
	g.ticks++

	g.dir = g.pending
	head := g.snake[len(g.snake)-1]
	next := head.Add(g.dir)

	switch {
	case !g.grid.InBounds(next):
		g.finish(CollisionWall, &res)
		return res
	case g.body.Has(next):
		g.finish(CollisionSelf, &res)
		return res
	case g.obstacles.Has(next):
		g.finish(CollisionObstacle, &res)
		return res
	}

	g.snake = append(g.snake, next)
	g.body.Put(next)
	res.Moved = true

	if g.hasFood && next == g.food {
		g.score += g.cfg.Food.Reward
		g.foods++
		g.hasFood = false
		res.Ate = true
		g.advance(&res)
	} else {
		g.body.Remove(g.snake[0])
		g.snake = g.snake[1:]
	}

	if !g.hasFood {
		g.spawnFood()
	}
	return res
}

// advance applies the progression law after a food is eaten. Obstacles are
// regenerated before the next food is spawned, so food never lands on them.
func (g *Game) advance(res *TickResult) {
	next := g.policy.Stage(g.foods)
	prev := g.stage
	g.stage = next

	if next.Speed != prev.Speed {
		res.SpeedChanged = true
		g.log.Debug("speed changed", "from", prev.Speed, "to", next.Speed, "foods", g.foods)
	}
	if next.Level == prev.Level {
		return
	}

	res.LevelUp = true
	if next.HardReset {
		head := g.snake[len(g.snake)-1]
		g.snake = []core.Point{head}
		g.body = NewCellSet(head)
	}

	obs := g.buildObstacles(next.Pattern)
	var carve []core.Point
	for _, p := range g.snake {
		if obs.Has(p) {
			carve = append(carve, p)
		}
	}
	if ahead := g.snake[len(g.snake)-1].Add(g.dir); obs.Has(ahead) {
		carve = append(carve, ahead)
	}
	if len(carve) > 0 {
		obs = obs.Without(carve...)
	}
	g.obstacles = obs

	g.log.Debug("level up",
		"level", next.Level,
		"pattern", next.Pattern,
		"theme", next.Theme,
		"hard_reset", next.HardReset,
		"carved", len(carve),
	)
}

func (g *Game) buildObstacles(pattern string) ObstacleSet {
	obs, err := GeneratePattern(g.grid, pattern)
	if err != nil {
		g.log.Warn("falling back to free pattern", "error", err)
		obs, _ = GeneratePattern(g.grid, PatternFree)
	}
	return obs
}

func (g *Game) spawnFood() {
	head := g.snake[len(g.snake)-1]
	g.food, g.hasFood = g.spawner.Spawn(head, g.body, g.obstacles)
}

// finish freezes the session and reports it to the recorder once.
func (g *Game) finish(cause Collision, res *TickResult) {
	g.state = StateGameOver
	g.cause = cause
	g.endedAt = g.now()
	res.GameOver = true
	res.Collision = cause

	if g.recorded {
		return
	}
	g.recorded = true

	r := g.Result()
	g.log.Debug("game over", "cause", cause, "points", r.Points, "duration", r.Duration, "level", r.Level)
	if g.recorder == nil {
		return
	}
	if err := g.recorder.Record(r); err != nil {
		g.log.Warn("could not record session", "session", r.SessionID, "error", err)
	}
}

// Result returns the report for the current session.
func (g *Game) Result() Result {
	return Result{
		SessionID: g.sessionID,
		Player:    g.opts.PlayerName,
		Mode:      g.policy.ID(),
		Duration:  g.Elapsed(),
		Points:    g.score,
		Level:     g.stage.Level,
		Foods:     g.foods,
	}
}

// Elapsed returns the time spent Running in this session. Paused time is
// not counted.
func (g *Game) Elapsed() time.Duration {
	if g.startedAt.IsZero() {
		return 0
	}
	end := g.now()
	switch g.state {
	case StateGameOver:
		end = g.endedAt
	case StatePaused:
		end = g.pausedAt
	}
	d := end.Sub(g.startedAt) - g.pausedTotal
	if d < 0 {
		return 0
	}
	return d
}

// Interval returns the tick period at the current speed.
func (g *Game) Interval() time.Duration {
	return time.Second / time.Duration(max(1, g.stage.Speed))
}

// State returns the current session phase.
func (g *Game) State() State { return g.state }

// Grid returns the board dimensions.
func (g *Game) Grid() Grid { return g.grid }

// Options returns the validated session options.
func (g *Game) Options() config.Options { return g.opts }

// Mode returns the progression mode ID.
func (g *Game) Mode() string { return g.policy.ID() }
