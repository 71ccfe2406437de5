package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/meghashyamc/sat2d/assets"
	"github.com/meghashyamc/sat2d/config"
	"github.com/meghashyamc/sat2d/event"
	"github.com/meghashyamc/sat2d/geometry"
	"github.com/meghashyamc/sat2d/logger"
	"github.com/meghashyamc/sat2d/sandbox"
	"github.com/meghashyamc/sat2d/scene"
)

var (
	colorIdle      = color.RGBA{220, 220, 220, 255}
	colorPlayer    = color.RGBA{80, 200, 255, 255}
	colorColliding = color.RGBA{255, 60, 60, 255}
	colorMTV       = color.RGBA{255, 210, 0, 255}
)

type Game struct {
	cfg     *config.Config
	sandbox *sandbox.Sandbox
	logger  logger.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	log := logger.NewWithLevel(cfg.GetLogLevel())

	sc, err := scene.Load(cfg.GetSceneFile())
	if err != nil {
		log.Error("failed to load scene", "file", cfg.GetSceneFile(), "err", err)
		return nil, err
	}

	sb, err := sandbox.New(sc, sandbox.Options{
		MoveStep:       cfg.GetMoveStep(),
		RotateStep:     cfg.GetRotateStep(),
		MTVLogInterval: cfg.GetMTVLogInterval(),
	}, log)
	if err != nil {
		log.Error("failed to build scene", "file", cfg.GetSceneFile(), "err", err)
		return nil, err
	}

	return &Game{
		cfg:     cfg,
		sandbox: sb,
		logger:  log,
	}, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting sandbox")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(sandbox.TicksPerSecond)
}

func (g *Game) Update() error {
	in, quit := readInput()
	if quit {
		g.logger.Info("quitting", "event", event.KeyDown.Type, "ticks", g.sandbox.Ticks())
		return ebiten.Termination
	}

	return g.sandbox.Step(in)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	results := g.sandbox.Results()
	for i, obstacle := range g.sandbox.Obstacles() {
		clr := colorIdle
		if i < len(results) && results[i].Colliding {
			clr = colorColliding
		}
		drawShape(screen, obstacle.Shape, clr)
	}

	player := g.sandbox.Player().Shape
	drawShape(screen, player, colorPlayer)

	mtv, name, colliding := g.sandbox.LastMTV()
	if colliding {
		drawMTV(screen, player, mtv, colorMTV)
	}

	g.drawHUD(screen, mtv, name, colliding)
}

func (g *Game) drawHUD(screen *ebiten.Image, mtv geometry.Vector, name string, colliding bool) {
	status := "no collision"
	if colliding {
		status = fmt.Sprintf("%s: MTV (%.2f, %.2f) |%.2f| %.0f°",
			name, mtv.X, mtv.Y, mtv.Magnitude(), sandbox.Heading(mtv))
	}
	for _, r := range g.sandbox.Results() {
		if r.Err != nil {
			status += fmt.Sprintf("  [%s: undetectable: %s]", r.Name, r.Err)
		}
	}
	drawText(screen, status, 20, 30, color.White)

	mode := "resolve: off"
	if g.sandbox.Resolving() {
		mode = "resolve: on"
	}
	drawText(screen, mode, 20, 55, color.White)

	instructionText := "WASD/arrows move, Q/E rotate, Space resolve, R reset, Esc quit"
	drawText(screen, instructionText, 20, float64(g.cfg.GetWindowHeight())-30, color.White)
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, assets.HUDFont, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight()
}
