package game

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/sched"
)

// Controller owns a Bubble Pop session: state, phase machine and timers.
// All methods must be called from the scheduler's dispatch loop.
type Controller struct {
	cfg     config.BubbleConfig
	sched   sched.Scheduler
	surface Surface
	logger  *log.Logger
	rng     *rand.Rand
	spawner *Spawner
	sim     *Simulator

	score   int
	lives   int
	bubbles []*Bubble // Spawn order
	phase   Phase
	lastID  BubbleID

	// generation identifies the current session. Callbacks carry the
	// generation they were scheduled in and bail out when it changed.
	generation   uint64
	spawnHandle  sched.Handle
	updateHandle sched.Handle
}

// Option configures a Controller.
type Option func(*Controller)

// WithSurface sets the drawing surface. Defaults to NopSurface.
func WithSurface(s Surface) Option {
	return func(c *Controller) {
		if s != nil {
			c.surface = s
		}
	}
}

// WithLogger sets the logger. Defaults to discarding output.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRand sets the random source used for spawning.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.rng = r
		}
	}
}

// New creates a Controller. The session is not started until Start is called.
func New(cfg config.BubbleConfig, s sched.Scheduler, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if s == nil {
		return nil, fmt.Errorf("game: scheduler is required")
	}

	c := &Controller{
		cfg:     cfg,
		sched:   s,
		surface: NopSurface{},
		logger:  log.New(io.Discard),
		lives:   cfg.InitialLives,
		phase:   PhaseRunning,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c.spawner = NewSpawner(cfg, c.rng)
	c.sim = NewSimulator(cfg.StepPerTick)
	return c, nil
}

// Start begins a fresh session. It is the same as Restart.
func (c *Controller) Start() {
	c.Restart()
}

// Restart discards the current session and begins a new one.
// On return the state is {0, InitialLives, no bubbles, Running}; the first
// bubble spawns on the next dispatched callback.
func (c *Controller) Restart() {
	c.Stop()

	c.score = 0
	c.lives = c.cfg.InitialLives
	c.bubbles = nil
	c.phase = PhaseRunning
	c.surface.Clear()

	gen := c.generation
	c.spawnHandle = c.sched.Schedule(0, func() { c.spawnTick(gen) })
	c.updateHandle = c.sched.Schedule(c.cfg.UpdateInterval(), func() { c.updateTick(gen) })

	c.logger.Debug("session started", "generation", gen, "lives", c.lives)
}

// Stop cancels both timers. Score, lives and bubbles are kept.
func (c *Controller) Stop() {
	c.generation++
	if c.spawnHandle != 0 {
		c.sched.Cancel(c.spawnHandle)
		c.spawnHandle = 0
	}
	if c.updateHandle != 0 {
		c.sched.Cancel(c.updateHandle)
		c.updateHandle = 0
	}
}

func (c *Controller) spawnTick(gen uint64) {
	if gen != c.generation || c.phase != PhaseRunning {
		return
	}

	c.lastID++
	b := c.spawner.Spawn(c.lastID)
	c.bubbles = append(c.bubbles, &b)
	c.surface.Create(b)

	c.spawnHandle = c.sched.Schedule(c.cfg.SpawnInterval(), func() { c.spawnTick(gen) })
}

func (c *Controller) updateTick(gen uint64) {
	if gen != c.generation || c.phase != PhaseRunning {
		return
	}

	c.sim.Tick(c)

	// Game over inside the tick already cancelled the timers
	if gen == c.generation && c.phase == PhaseRunning {
		c.updateHandle = c.sched.Schedule(c.cfg.UpdateInterval(), func() { c.updateTick(gen) })
	}
}

// OnBubbleEscaped removes an escaped bubble and takes a life.
// Ignored after game over or when b is no longer live.
func (c *Controller) OnBubbleEscaped(b Bubble) {
	if c.phase == PhaseGameOver || !c.remove(b.ID) {
		return
	}

	c.lives--
	c.logger.Debug("bubble escaped", "id", b.ID, "lives", c.lives)

	if c.lives <= 0 {
		c.phase = PhaseGameOver
		c.Stop()
		c.surface.GameOver(c.score)
		c.logger.Info("game over", "score", c.score)
	}
}

// OnBubblePopped removes a popped bubble and awards points.
// Ignored after game over or when b is no longer live.
func (c *Controller) OnBubblePopped(b Bubble) {
	if c.phase == PhaseGameOver || !c.remove(b.ID) {
		return
	}

	c.score += c.cfg.RewardPerPop
	c.logger.Debug("bubble popped", "id", b.ID, "score", c.score)
}

// Press handles a pointer press at canvas coordinates (x, y) and returns the
// popped bubble, if any. At most one bubble pops per press.
func (c *Controller) Press(x, y float64) (Bubble, bool) {
	if c.phase != PhaseRunning {
		return Bubble{}, false
	}

	hit, ok := HitTest(c.bubbles, x, y)
	if !ok {
		return Bubble{}, false
	}
	popped := *hit
	c.OnBubblePopped(popped)
	return popped, true
}

// remove deletes the bubble with the given id and notifies the surface.
func (c *Controller) remove(id BubbleID) bool {
	i := slices.IndexFunc(c.bubbles, func(b *Bubble) bool { return b.ID == id })
	if i < 0 {
		return false
	}
	c.bubbles = slices.Delete(c.bubbles, i, i+1)
	c.surface.Delete(id)
	return true
}

// Score returns the current score.
func (c *Controller) Score() int { return c.score }

// Lives returns the remaining lives.
func (c *Controller) Lives() int { return c.lives }

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Config returns the session configuration.
func (c *Controller) Config() config.BubbleConfig { return c.cfg }

// Bubbles returns a copy of the live bubbles in spawn order.
func (c *Controller) Bubbles() []Bubble {
	out := make([]Bubble, len(c.bubbles))
	for i, b := range c.bubbles {
		out[i] = *b
	}
	return out
}

// Snapshot returns a copy of the whole state.
func (c *Controller) Snapshot() State {
	return State{
		Score:   c.score,
		Lives:   c.lives,
		Bubbles: c.Bubbles(),
		Phase:   c.phase,
	}
}
