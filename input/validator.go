package input

import "github.com/automoto/snakeframe/shared/direction"

// DirectionSource is anything with a settable current direction.
type DirectionSource interface {
	Direction() direction.Direction
	SetDirection(d direction.Direction)
	Destroy()
}

// changeReporter is implemented by sources that can tell whether their direction changed.
type changeReporter interface {
	DirectionChanged() bool
}

// Validator filters direction assignments that would reverse the last accepted
// direction before they reach the wrapped source.
type Validator struct {
	source    DirectionSource
	lastValid direction.Direction
	destroyed bool

	// OnReject, when set, is called with every dropped candidate and the direction
	// it would have reversed. Rejections are otherwise silent.
	OnReject func(candidate, lastValid direction.Direction)
}

// NewValidator wraps source.
func NewValidator(source DirectionSource) *Validator {
	return &Validator{source: source}
}

// SetDirection forwards d to the source unless it reverses the last valid direction.
// It reports whether d was accepted. After Destroy nothing is accepted.
func (v *Validator) SetDirection(d direction.Direction) bool {
	if v.destroyed {
		return false
	}
	if !v.isValidChange(d) {
		if v.OnReject != nil {
			v.OnReject(d, v.lastValid)
		}
		return false
	}
	v.lastValid = d
	v.source.SetDirection(d)
	return true
}

func (v *Validator) isValidChange(d direction.Direction) bool {
	return !d.IsReversalOf(v.lastValid)
}

// Direction proxies to the wrapped source.
func (v *Validator) Direction() direction.Direction {
	return v.source.Direction()
}

// DirectionChanged proxies to the wrapped source when it reports changes.
func (v *Validator) DirectionChanged() bool {
	if cr, ok := v.source.(changeReporter); ok {
		return cr.DirectionChanged()
	}
	return false
}

// LastValid returns the last accepted direction.
func (v *Validator) LastValid() direction.Direction {
	return v.lastValid
}

// Reset forgets the last accepted direction, e.g. on restart.
func (v *Validator) Reset() {
	if v.destroyed {
		return
	}
	v.lastValid = direction.None
}

// Destroy destroys the wrapped source. Safe to call more than once.
func (v *Validator) Destroy() {
	if v.destroyed {
		return
	}
	v.destroyed = true
	v.source.Destroy()
}

// Heading is a plain DirectionSource holding the direction the game moves in.
type Heading struct {
	current  direction.Direction
	previous direction.Direction
}

// NewHeading returns a heading starting at d.
func NewHeading(d direction.Direction) *Heading {
	return &Heading{current: d, previous: d}
}

func (h *Heading) Direction() direction.Direction { return h.current }

func (h *Heading) SetDirection(d direction.Direction) {
	h.previous = h.current
	h.current = d
}

func (h *Heading) DirectionChanged() bool { return h.current != h.previous }

func (h *Heading) Destroy() {}
