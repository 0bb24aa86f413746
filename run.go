package flycam

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

// RunConfig configures the window and frame loop created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS is the fixed update rate. Zero means DefaultTPS.
	TPS int
	// ShowHUD draws the FPS/camera overlay.
	ShowHUD bool
	// Sensitivity converts cursor pixels into radians. Zero means
	// DefaultSensitivity.
	Sensitivity float32
	// Quit ends the loop when pressed. Zero means KeyEscape.
	Quit KeyCode
	// CaptureCursor starts with the cursor captured for mouse look. A left
	// click toggles capture at any time.
	CaptureCursor bool
}

// game adapts a Scene to ebiten.Game. Each tick: poll input, step the
// scene, clear the released-key overlay; draw reads the scene afterwards.
type game struct {
	scene    *Scene
	input    *InputState
	poller   *EbitenInput
	renderer *Renderer
	hud      *HUD
	quit     KeyCode
	dt       float32

	width, height int
}

func (g *game) Update() error {
	g.poller.Poll(g.input)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.poller.ToggleCapture()
	}
	if g.input.KeyDown(g.quit) || g.input.KeyJustReleased(g.quit) {
		return ebiten.Termination
	}

	err := g.scene.Step(g.input, Frame{Width: g.width, Height: g.height, DT: g.dt})
	g.input.ResetJustReleased()
	if err != nil {
		return err
	}
	if g.hud != nil {
		g.hud.Update(g.scene, float64(g.dt))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.width == 0 || g.height == 0 {
		return
	}
	g.renderer.Draw(screen, g.scene)
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return 1, 1
	}
	g.scene.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene until the quit key is pressed or the
// window is closed. It blocks and must be called from the main goroutine.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}
	if cfg.Sensitivity == 0 {
		cfg.Sensitivity = DefaultSensitivity
	}
	if cfg.Quit == KeyUnknown {
		cfg.Quit = KeyEscape
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}

	g := &game{
		scene:    scene,
		input:    NewInputState(),
		poller:   NewEbitenInput(cfg.Sensitivity),
		renderer: NewRenderer(),
		quit:     cfg.Quit,
		dt:       1 / float32(cfg.TPS),
	}
	if cfg.ShowHUD {
		g.hud = NewHUD()
	}
	scene.SetFPSSource(ebiten.ActualFPS)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	if cfg.CaptureCursor {
		g.poller.ToggleCapture()
	}

	scene.log.WithField("instances", len(scene.Instances())).Info("starting frame loop")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}
