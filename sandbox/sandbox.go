// Package sandbox drives a scene one tick at a time: it moves the player from
// input, tests it against every obstacle and optionally pushes it back out.
// It has no rendering or input dependencies; the game package feeds it.
package sandbox

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/meghashyamc/sat2d/event"
	"github.com/meghashyamc/sat2d/geometry"
	"github.com/meghashyamc/sat2d/logger"
	"github.com/meghashyamc/sat2d/scene"
)

const TicksPerSecond = 60

// Input is the player's intent for one tick.
type Input struct {
	Up, Down, Left, Right bool
	RotateCW, RotateCCW   bool
	ToggleResolve         bool
	Reset                 bool
}

type Options struct {
	MoveStep       float64
	RotateStep     float64
	MTVLogInterval time.Duration
}

type Sandbox struct {
	scene    *scene.Scene
	built    *scene.Built
	opts     Options
	resolve  bool
	results  []scene.Result
	ticks    int
	mtvTimer *Timer
	logger   logger.Logger
}

func New(sc *scene.Scene, opts Options, log logger.Logger) (*Sandbox, error) {
	built, err := sc.Build()
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	s := &Sandbox{
		scene:    sc,
		built:    built,
		opts:     opts,
		mtvTimer: NewTimer(opts.MTVLogInterval),
		logger:   log,
	}
	s.results = built.Collisions()

	s.logger.Info("sandbox initialized",
		"player", built.Player.Name,
		"obstacles", len(built.Obstacles),
		"moveStep", opts.MoveStep,
		"rotateStep", opts.RotateStep,
	)
	return s, nil
}

// Step advances the sandbox by one tick.
func (s *Sandbox) Step(in Input) error {
	s.ticks++
	s.mtvTimer.Update()

	if in.Reset {
		if err := s.Reset(); err != nil {
			return err
		}
	}
	if in.ToggleResolve {
		s.resolve = !s.resolve
		s.logger.Debug("resolve toggled", "event", event.KeyDown.Type, "resolve", s.resolve)
	}

	s.movePlayer(in)

	s.results = s.built.Collisions()
	if s.resolve {
		s.pushOut()
	}

	s.logCollisions()
	return nil
}

func (s *Sandbox) movePlayer(in Input) {
	player := s.built.Player.Shape
	step := s.opts.MoveStep

	if in.Up {
		geometry.MoveUp(player, step)
	}
	if in.Down {
		geometry.MoveDown(player, step)
	}
	if in.Left {
		geometry.MoveLeft(player, step)
	}
	if in.Right {
		geometry.MoveRight(player, step)
	}

	if in.RotateCW == in.RotateCCW {
		return
	}
	dir := s.opts.RotateStep
	if in.RotateCCW {
		dir = -dir
	}
	x, y := center(player)
	player.Rotate(x, y, dir)
}

// pushOut moves the player by the MTV of every obstacle it overlaps, in scene
// order. The MTVs are the ones computed before any push.
func (s *Sandbox) pushOut() {
	for _, r := range s.results {
		if r.Colliding {
			s.built.Player.Shape.Move(r.MTV.Magnitude(), r.MTV.Angle())
		}
	}
}

func (s *Sandbox) logCollisions() {
	if !s.mtvTimer.IsReady() {
		return
	}
	s.mtvTimer.Reset()

	for _, r := range s.results {
		switch {
		case errors.Is(r.Err, geometry.ErrNoAxes):
			// two circles; nothing to report every interval
		case r.Err != nil:
			s.logger.Warn("collision query failed", "event", event.Update.Type, "obstacle", r.Name, "err", r.Err)
		case r.Colliding:
			s.logger.Debug("collision",
				"event", event.Update.Type,
				"tick", s.ticks,
				"obstacle", r.Name,
				"mtvX", r.MTV.X,
				"mtvY", r.MTV.Y,
			)
		}
	}
}

// Reset rebuilds every shape from the scene.
func (s *Sandbox) Reset() error {
	built, err := s.scene.Build()
	if err != nil {
		return fmt.Errorf("rebuilding scene: %w", err)
	}
	s.built = built
	s.results = built.Collisions()
	s.logger.Debug("sandbox reset", "event", event.KeyDown.Type)
	return nil
}

func (s *Sandbox) Player() scene.NamedShape {
	return s.built.Player
}

func (s *Sandbox) Obstacles() []scene.NamedShape {
	return s.built.Obstacles
}

// Results are the collision results of the last tick, one per obstacle.
func (s *Sandbox) Results() []scene.Result {
	return s.results
}

func (s *Sandbox) Resolving() bool {
	return s.resolve
}

func (s *Sandbox) Ticks() int {
	return s.ticks
}

// LastMTV returns the MTV of the first obstacle the player overlaps.
func (s *Sandbox) LastMTV() (geometry.Vector, string, bool) {
	for _, r := range s.results {
		if r.Colliding {
			return r.MTV, r.Name, true
		}
	}
	return geometry.Vector{}, "", false
}

func center(shape geometry.Shape) (float64, float64) {
	if p, ok := shape.(*geometry.Polygon); ok {
		return p.Center()
	}
	b := shape.Bounds()
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Heading is the direction of v in degrees, for display.
func Heading(v geometry.Vector) float64 {
	return v.Angle() * 180 / math.Pi
}
