package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui pause menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnResume     func()
	OnRestart    func()
	OnFullscreen func()

	// Widget references for updates
	statusLabel      *widget.Label
	fullscreenButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the pause menu. scale multiplies every font size so the
// menu keeps its size on high density screens.
func NewMenuUI(scale float64, onResume, onRestart, onFullscreen func()) *MenuUI {
	mui := &MenuUI{
		OnResume:     onResume,
		OnRestart:    onRestart,
		OnFullscreen: onFullscreen,
	}

	mui.loadFonts(scale)
	mui.buildUI(scale)

	return mui
}

func (mui *MenuUI) loadFonts(scale float64) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	if scale <= 0 {
		scale = 1
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   22 * scale,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14 * scale,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10 * scale,
	}
}

func (mui *MenuUI) buildUI(scale float64) {
	// Root container with AnchorLayout over the paused board
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(int(12*scale))),
			widget.RowLayoutOpts.Spacing(int(6*scale)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("Game Menu", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	minW, minH := int(140*scale), int(28*scale)

	contentContainer.AddChild(mui.newButton("Resume", minW, minH, func() {
		if mui.OnResume != nil {
			mui.OnResume()
		}
	}))
	contentContainer.AddChild(mui.newButton("Restart Game", minW, minH, func() {
		if mui.OnRestart != nil {
			mui.OnRestart()
		}
	}))
	mui.fullscreenButton = mui.newButton(fullscreenLabel(ebiten.IsFullscreen()), minW, minH, func() {
		if mui.OnFullscreen != nil {
			mui.OnFullscreen()
		}
	})
	contentContainer.AddChild(mui.fullscreenButton)

	mui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("Arrows or swipe to steer, Esc to resume", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	contentContainer.AddChild(mui.statusLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) newButton(label string, minW, minH int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minW, minH)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func fullscreenLabel(fullscreen bool) string {
	if fullscreen {
		return "Windowed"
	}
	return "Fullscreen"
}

// SetStatus replaces the hint line under the buttons.
func (mui *MenuUI) SetStatus(msg string) {
	mui.statusLabel.Label = msg
}

// Update processes ebitenui input and refreshes the fullscreen label.
func (mui *MenuUI) Update() {
	mui.UI.Update()
	mui.fullscreenButton.SetText(fullscreenLabel(ebiten.IsFullscreen()))
}

// Draw renders the menu onto screen.
func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}
