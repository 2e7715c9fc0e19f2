package scenes

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/automoto/snakeframe/assets"
	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/display"
	"github.com/automoto/snakeframe/render"
	"github.com/automoto/snakeframe/systems"
	factory2 "github.com/automoto/snakeframe/systems/factory"
	"github.com/automoto/snakeframe/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs the arena. The board is drawn by a render.Manager into an
// off-screen image at its own capped rate and presented every ebiten frame.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	window       *display.Window
	once         sync.Once

	visible *display.ImageSurface
	buffer  *display.ImageSurface
	frames  *render.FrameQueue
	manager *render.Manager

	menu      *ui.MenuUI
	menuScale float64
}

var presentOp = &ebiten.DrawImageOptions{}

// NewGameScene creates the arena scene drawing into window.
func NewGameScene(sc SceneChanger, window *display.Window) *GameScene {
	return &GameScene{sceneChanger: sc, window: window}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	vp := systems.GetOrCreateViewport(gs.ecs)
	vp.Scale = gs.manager.Scale()
	vp.Size = gs.manager.Size().DisplayWidth

	gs.ecs.Update()

	if systems.ActionJustPressed(gs.ecs, cfg.ActionFullscreen) {
		gs.toggleFullscreen()
	}
	if systems.IsPaused(gs.ecs) {
		round := systems.GetOrCreateRound(gs.ecs)
		menu := gs.menuUI()
		menu.SetStatus(fmt.Sprintf("Score %d  Best %d  Esc to resume", round.Score, round.Best))
		menu.Update()
	}
	if systems.TakeRestart(gs.ecs) {
		gs.restart()
	}

	vp.Frames, vp.Skipped, vp.Resizes = gs.manager.Stats()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.frames.RunFrame(time.Now())

	if img := gs.visible.Image(); img != nil {
		sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		presentOp.GeoM.Reset()
		presentOp.GeoM.Translate(float64((sw-iw)/2), float64((sh-ih)/2))
		screen.DrawImage(img, presentOp)
	}

	if systems.IsPaused(gs.ecs) {
		gs.menuUI().Draw(screen)
	}
}

// Dispose stops the render loop and releases the steering listeners.
func (gs *GameScene) Dispose() {
	if gs.ecs == nil {
		return
	}
	gs.manager.Destroy()
	systems.DestroyControls(gs.ecs)
}

func (gs *GameScene) configure() {
	systems.PreloadAllSFX()

	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdatePause)
	gs.ecs.AddSystem(systems.UpdateControls)

	// Game systems wrapped with pause check
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSnake))
	gs.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateToast))

	// Add renderers
	gs.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawToast)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	factory2.CreateLevel(gs.ecs, assets.MustLoadArena())
	factory2.CreateControl(gs.ecs)

	round := systems.GetOrCreateRound(gs.ecs)
	round.OnCollision = func(e *ecs.ECS) {
		if systems.ShowToast(e, cfg.Toast.Text, time.Now()) {
			systems.QueueSFX(e, cfg.SoundBump)
		}
	}
	systems.ResetRound(gs.ecs)

	gs.visible = display.NewImageSurface()
	gs.buffer = display.NewImageSurface()
	gs.frames = render.NewFrameQueue()
	gs.manager = render.NewManager(render.Options{
		Visible:       gs.visible,
		Buffer:        gs.buffer,
		Container:     gs.window,
		Observer:      gs.window,
		Scheduler:     gs.frames,
		Clock:         render.SystemClock{},
		Draw:          gs.drawBoard,
		FrameInterval: cfg.Render.FrameInterval,
	})
	gs.manager.Start()
}

// drawBoard runs the ECS renderers against the manager's off-screen surface.
func (gs *GameScene) drawBoard(dc *render.DrawContext) {
	target := display.Target(dc)
	if target == nil {
		return
	}
	vp := systems.GetOrCreateViewport(gs.ecs)
	vp.Size = dc.Size
	vp.Scale = dc.Transform.ScaleX
	gs.ecs.Draw(target)
}

// restart starts a fresh round, resumes play and shows the new board without
// waiting for the next loop frame.
func (gs *GameScene) restart() {
	systems.ResetRound(gs.ecs)
	systems.SetPaused(gs.ecs, false)
	gs.manager.Render(gs.drawBoard)
}

func (gs *GameScene) toggleFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
	if !cfg.Debug.NoSave {
		systems.SaveCurrentSettings()
	}
}

// menuUI returns the pause menu, rebuilding it when the device scale changed.
func (gs *GameScene) menuUI() *ui.MenuUI {
	scale := gs.window.DeviceScaleFactor()
	if gs.menu != nil && gs.menuScale == scale {
		return gs.menu
	}
	gs.menuScale = scale
	gs.menu = ui.NewMenuUI(scale,
		gs.clicked(func() { systems.SetPaused(gs.ecs, false) }),
		gs.clicked(func() { systems.RequestRestart(gs.ecs) }),
		gs.clicked(gs.toggleFullscreen),
	)
	return gs.menu
}

// clicked wraps a menu action with the select sound.
func (gs *GameScene) clicked(action func()) func() {
	return func() {
		systems.QueueSFX(gs.ecs, cfg.SoundMenuSelect)
		action()
	}
}
