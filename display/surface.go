// Package display backs render surfaces with ebiten images and exposes the
// ebiten window as a render container.
package display

import (
	"github.com/automoto/snakeframe/render"
	"github.com/hajimehoshi/ebiten/v2"
)

var blitOp = &ebiten.DrawImageOptions{}

// ImageSurface is a render.Surface backed by an *ebiten.Image.
type ImageSurface struct {
	img  *ebiten.Image
	size render.Size
}

// NewImageSurface returns an unsized surface. The image is allocated by SetSize.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{}
}

// SetSize reallocates the backing image when the backing size changes.
func (s *ImageSurface) SetSize(size render.Size) {
	s.size = size
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == size.BackingWidth && b.Dy() == size.BackingHeight {
			return
		}
		s.img.Deallocate()
		s.img = nil
	}
	if size.BackingWidth <= 0 || size.BackingHeight <= 0 {
		return
	}
	s.img = ebiten.NewImage(size.BackingWidth, size.BackingHeight)
}

func (s *ImageSurface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

func (s *ImageSurface) Blit(src render.Surface) {
	from, ok := src.(*ImageSurface)
	if !ok || s.img == nil || from.img == nil {
		return
	}
	blitOp.GeoM.Reset()
	s.img.DrawImage(from.img, blitOp)
}

// Image returns the backing image, or nil before the first SetSize.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// Size returns the last size set.
func (s *ImageSurface) Size() render.Size {
	return s.size
}

// Target returns the ebiten image a DrawContext draws into, or nil if the
// context's surface is not image backed.
func Target(dc *render.DrawContext) *ebiten.Image {
	if s, ok := dc.Target.(*ImageSurface); ok {
		return s.img
	}
	return nil
}
