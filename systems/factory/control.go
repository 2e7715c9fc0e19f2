package factory

import (
	"github.com/automoto/snakeframe/archetypes"
	"github.com/automoto/snakeframe/components"
	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/input"
	"github.com/automoto/snakeframe/shared/direction"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateControl builds the steering pipeline: a key tracker and a swipe
// recognizer listening on one event target, both proposing headings through a
// reversal-filtering validator.
func CreateControl(ecs *ecs.ECS) *donburi.Entry {
	control := archetypes.Control.Spawn(ecs)

	target := input.NewTarget()
	heading := input.NewHeading(direction.None)
	validator := input.NewValidator(heading)
	validator.OnReject = func(candidate, lastValid direction.Direction) {
		components.Control.Get(control).Rejected++
	}

	swipe := input.NewSwipeRecognizer(target, func(d direction.Direction) {
		validator.SetDirection(d)
	})
	swipe.MinDistance = cfg.Controls.MinSwipeDistance

	components.Control.SetValue(control, components.ControlData{
		Target:    target,
		Keys:      input.NewKeyTracker(target),
		Swipe:     swipe,
		Heading:   heading,
		Validator: validator,
	})

	return control
}
