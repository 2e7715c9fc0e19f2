package main

import (
	"flag"
	"log"
	"slices"
	"strings"

	"github.com/automoto/snakeframe/assets"
	"github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/display"
	"github.com/automoto/snakeframe/fonts"
	"github.com/automoto/snakeframe/scenes"
	"github.com/automoto/snakeframe/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	window *display.Window
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	if d, ok := g.scene.(scenes.Disposer); ok {
		d.Dispose()
	}
	g.scene = scene.(scenes.Scene)
}

func NewGame() *Game {
	g := &Game{window: display.NewWindow()}
	g.window.PixelRatio = config.Render.PixelRatio
	g.scene = scenes.NewGameScene(g, g.window)
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if !config.Debug.NoSave {
			systems.SaveCurrentSettings()
		}
		if d, ok := g.scene.(scenes.Disposer); ok {
			d.Dispose()
		}
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.window.Layout(width, height)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	stats := flag.Bool("stats", false, "show render loop statistics")
	noSave := flag.Bool("nosave", false, "do not read or write saved settings")
	arena := flag.String("arena", "", "embedded arena to play, one of "+strings.Join(assets.ArenaNames(), ", "))
	flag.Parse()

	if *arena != "" {
		if !slices.Contains(assets.ArenaNames(), *arena) {
			log.Fatalf("Unknown arena %q", *arena)
		}
		config.Arena.MapPath = "levels/" + *arena + ".tmx"
	}

	// Flag values are needed before settings are read
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "nosave" {
			config.Debug.NoSave = *noSave
		}
	})

	fullscreen := false
	if !config.Debug.NoSave {
		// Initialize persistence and load saved settings
		if err := systems.InitPersistence(); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettings(saved)
			fullscreen = saved.Fullscreen
		}
	}

	// The config file overrides saved settings, flags override both
	if *configPath != "" {
		fc, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if err := fc.Apply(); err != nil {
			log.Fatalf("Invalid config %s: %v", *configPath, err)
		}
		if fc.Audio.SFXVolume != nil {
			systems.SetSFXVolume(config.Audio.DefaultSFXVol)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "stats" {
			config.Debug.ShowStats = *stats
		}
	})

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowTitle("snakeframe")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetFullscreen(fullscreen)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
