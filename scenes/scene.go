package scenes

import "github.com/hajimehoshi/ebiten/v2"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is one screen of the game.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Disposer is implemented by scenes holding resources that outlive a transition.
type Disposer interface {
	Dispose()
}
