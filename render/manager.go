package render

import (
	"time"
)

// DefaultFrameInterval caps the loop at roughly 60 frames per second.
const DefaultFrameInterval = 16 * time.Millisecond

// State is the lifecycle state of a Manager.
type State int

const (
	StateUnmounted State = iota // Not created yet, or destroyed (terminal)
	StateMounted                // Created, surfaces not yet sized
	StateLooping                // Sized and running the frame loop
)

func (s State) String() string {
	switch s {
	case StateMounted:
		return "mounted"
	case StateLooping:
		return "looping"
	}
	return "unmounted"
}

// Options configures a Manager. Visible, Buffer and Scheduler are required for
// the manager to draw anything; missing collaborators make the affected
// operations no-ops.
type Options struct {
	Visible   Surface
	Buffer    Surface
	Container Container
	Observer  ResizeObserver
	Scheduler FrameScheduler
	Clock     Clock
	// Draw is called once per accepted frame of the loop.
	Draw DrawFunc
	// FrameInterval is the minimum time between loop frames. Zero means DefaultFrameInterval.
	FrameInterval time.Duration
}

// Manager keeps a visible and an off-screen surface sized to their container and
// renders into them at a capped rate.
type Manager struct {
	visible   Surface
	buffer    Surface
	container Container
	observer  ResizeObserver
	scheduler FrameScheduler
	clock     Clock
	draw      DrawFunc
	interval  time.Duration

	state     State
	size      Size
	scale     float64
	transform Transform
	lastFrame time.Time

	loopHandle    FrameHandle
	resizeHandle  FrameHandle
	resizePending bool
	disconnect    func()

	frames  uint64
	skipped uint64
	resizes uint64
}

// NewManager creates a mounted manager. Call Start to size the surfaces and begin looping.
func NewManager(opts Options) *Manager {
	m := &Manager{
		visible:   opts.Visible,
		buffer:    opts.Buffer,
		container: opts.Container,
		observer:  opts.Observer,
		scheduler: opts.Scheduler,
		clock:     opts.Clock,
		draw:      opts.Draw,
		interval:  opts.FrameInterval,
		state:     StateMounted,
		scale:     1,
		transform: Identity,
	}
	if m.clock == nil {
		m.clock = SystemClock{}
	}
	if m.interval <= 0 {
		m.interval = DefaultFrameInterval
	}
	return m
}

// Start performs the initial sizing, starts observing the container and schedules
// the loop. It only has an effect in StateMounted.
func (m *Manager) Start() {
	if m.state != StateMounted {
		return
	}
	m.Resize()
	if m.observer != nil {
		m.disconnect = m.observer.Observe(m.onResize)
	}
	m.lastFrame = m.clock.Now()
	m.state = StateLooping
	m.scheduleLoop()
}

func (m *Manager) onResize() {
	if m.state == StateUnmounted || m.resizePending || m.scheduler == nil {
		return
	}
	m.resizePending = true
	m.resizeHandle = m.scheduler.RequestFrame(func(time.Time) {
		m.resizePending = false
		m.resizeHandle = 0
		m.Resize()
	})
}

// Resize recomputes the surface sizes from the container and device pixel ratio.
func (m *Manager) Resize() {
	if m.state == StateUnmounted || m.container == nil || m.visible == nil || m.buffer == nil {
		return
	}
	w, h := m.container.Size()
	size, scale := FitSquare(w, h, m.container.DeviceScaleFactor())

	m.visible.SetSize(size)
	m.buffer.SetSize(size)
	m.size = size
	m.scale = scale
	m.transform.Reset()
	m.transform.Scale(scale, scale)
	m.resizes++
}

func (m *Manager) scheduleLoop() {
	if m.scheduler == nil {
		return
	}
	m.loopHandle = m.scheduler.RequestFrame(m.tick)
}

func (m *Manager) tick(now time.Time) {
	m.loopHandle = 0
	if m.state != StateLooping {
		return
	}
	if now.Sub(m.lastFrame) >= m.interval {
		m.renderFrame(m.draw)
		m.lastFrame = now
	} else {
		m.skipped++
	}
	// The draw callback may have destroyed the manager.
	if m.state == StateLooping {
		m.scheduleLoop()
	}
}

// Render draws one frame immediately with draw, outside the loop's cadence.
func (m *Manager) Render(draw DrawFunc) {
	if m.state == StateUnmounted {
		return
	}
	m.renderFrame(draw)
}

func (m *Manager) renderFrame(draw DrawFunc) {
	if m.visible == nil || m.buffer == nil {
		return
	}
	m.buffer.Clear()
	if draw != nil {
		draw(&DrawContext{
			Target:    m.buffer,
			Transform: m.transform,
			Size:      m.size.DisplayWidth,
			Scale:     m.scale,
		})
	}
	m.visible.Clear()
	m.visible.Blit(m.buffer)
	m.frames++
}

// SetDraw replaces the loop's draw callback.
func (m *Manager) SetDraw(draw DrawFunc) {
	m.draw = draw
}

// Destroy cancels the pending loop and resize requests and disconnects the
// resize observer. Safe to call more than once.
func (m *Manager) Destroy() {
	if m.state == StateUnmounted {
		return
	}
	m.state = StateUnmounted
	if m.scheduler != nil {
		if m.loopHandle != 0 {
			m.scheduler.CancelFrame(m.loopHandle)
			m.loopHandle = 0
		}
		if m.resizeHandle != 0 {
			m.scheduler.CancelFrame(m.resizeHandle)
			m.resizeHandle = 0
		}
	}
	m.resizePending = false
	if m.disconnect != nil {
		m.disconnect()
		m.disconnect = nil
	}
}

// State returns the lifecycle state.
func (m *Manager) State() State { return m.state }

// Size returns the current surface size.
func (m *Manager) Size() Size { return m.size }

// Scale returns the device pixel ratio used for the current size.
func (m *Manager) Scale() float64 { return m.scale }

// Transform returns the logical-to-backing transform.
func (m *Manager) Transform() Transform { return m.transform }

// Stats reports rendered frames, loop callbacks skipped by the rate cap, and resizes.
func (m *Manager) Stats() (frames, skipped, resizes uint64) {
	return m.frames, m.skipped, m.resizes
}
