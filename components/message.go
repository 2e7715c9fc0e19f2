package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ToastData is a singleton tracking the transient on-screen notice
type ToastData struct {
	Text      string
	Alpha     float32
	Fade      *gween.Sequence // nil when no toast is showing
	LastShown time.Time
}

var Toast = donburi.NewComponentType[ToastData]()
