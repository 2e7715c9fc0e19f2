package terminal

import (
	"testing"
	"time"

	"github.com/automoto/snakeframe/input"
	"github.com/gdamore/tcell/v2"
)

type recorded struct {
	typ input.EventType
	key string
	p   input.Point
}

func newTestHost(t *testing.T, cols, rows int) (*Host, *[]recorded) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	target := input.NewTarget()
	var events []recorded
	for _, typ := range []input.EventType{input.KeyDown, input.KeyUp} {
		target.AddListener(typ, func(ev *input.Event) {
			events = append(events, recorded{typ: ev.Type, key: ev.Key})
		})
	}
	for _, typ := range []input.EventType{input.TouchStart, input.TouchMove, input.TouchEnd} {
		target.AddListener(typ, func(ev *input.Event) {
			p, _ := ev.FirstTouch()
			events = append(events, recorded{typ: ev.Type, p: p})
		})
	}
	return NewHost(screen, target), &events
}

func TestHostSize(t *testing.T) {
	h, _ := newTestHost(t, 81, 25)
	h.StatusRows = 1
	w, hh := h.Size()
	if w != 40 || hh != 24 {
		t.Errorf("Size() = %v,%v, want 40,24", w, hh)
	}
	if s := h.DeviceScaleFactor(); s != 1 {
		t.Errorf("DeviceScaleFactor() = %v, want 1", s)
	}
}

func TestHostArrowIsStickyUntilStale(t *testing.T) {
	h, events := newTestHost(t, 80, 24)
	h.StickyFor = 100 * time.Millisecond
	start := time.Unix(0, 0)

	h.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), start)
	h.Tick(start.Add(50 * time.Millisecond))
	if h.Held() != input.KeyArrowUp {
		t.Fatalf("Held() = %q before the key went stale", h.Held())
	}

	// A repeat refreshes the deadline
	h.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), start.Add(80*time.Millisecond))
	h.Tick(start.Add(150 * time.Millisecond))
	if h.Held() != input.KeyArrowUp {
		t.Fatalf("Held() = %q after a repeat", h.Held())
	}

	h.Tick(start.Add(180 * time.Millisecond))
	if h.Held() != "" {
		t.Fatalf("Held() = %q after the key went stale", h.Held())
	}

	want := []recorded{
		{typ: input.KeyDown, key: input.KeyArrowUp},
		{typ: input.KeyDown, key: input.KeyArrowUp},
		{typ: input.KeyUp, key: input.KeyArrowUp},
	}
	if len(*events) != len(want) {
		t.Fatalf("events = %v, want %v", *events, want)
	}
	for i := range want {
		if (*events)[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, (*events)[i], want[i])
		}
	}
}

func TestHostNewArrowReleasesPrevious(t *testing.T) {
	h, events := newTestHost(t, 80, 24)
	now := time.Unix(0, 0)

	h.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now)
	h.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), now)

	want := []recorded{
		{typ: input.KeyDown, key: input.KeyArrowUp},
		{typ: input.KeyUp, key: input.KeyArrowUp},
		{typ: input.KeyDown, key: input.KeyArrowLeft},
	}
	if len(*events) != len(want) {
		t.Fatalf("events = %v, want %v", *events, want)
	}
	for i := range want {
		if (*events)[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, (*events)[i], want[i])
		}
	}
}

func TestHostQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
		{"arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHost(t, 80, 24)
			if got := !h.HandleEvent(tt.ev, time.Now()); got != tt.quit {
				t.Errorf("quit = %v, want %v", got, tt.quit)
			}
		})
	}
}

func TestHostMouseDragIsTouch(t *testing.T) {
	h, events := newTestHost(t, 80, 24)
	now := time.Now()

	h.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone), now)
	h.HandleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone), now)
	h.HandleEvent(tcell.NewEventMouse(20, 5, tcell.Button1, tcell.ModNone), now)
	h.HandleEvent(tcell.NewEventMouse(30, 6, tcell.ButtonNone, tcell.ModNone), now)

	want := []recorded{
		{typ: input.TouchStart, p: input.Point{X: 5, Y: 5}},
		{typ: input.TouchMove, p: input.Point{X: 10, Y: 5}},
		{typ: input.TouchEnd, p: input.Point{X: 15, Y: 6}},
	}
	if len(*events) != len(want) {
		t.Fatalf("events = %v, want %v", *events, want)
	}
	for i := range want {
		if (*events)[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, (*events)[i], want[i])
		}
	}
}

func TestHostResizeNotifiesObservers(t *testing.T) {
	h, _ := newTestHost(t, 80, 24)
	calls := 0
	disconnect := h.Observe(func() { calls++ })

	h.HandleEvent(tcell.NewEventResize(100, 30), time.Now())
	h.HandleEvent(tcell.NewEventResize(100, 30), time.Now())
	if calls != 1 {
		t.Errorf("observer called %d times, want 1", calls)
	}
	if w, hh := h.Size(); w != 50 || hh != 30 {
		t.Errorf("Size() = %v,%v after resize, want 50,30", w, hh)
	}

	disconnect()
	h.HandleEvent(tcell.NewEventResize(60, 20), time.Now())
	if calls != 1 {
		t.Errorf("observer called after disconnect")
	}
}
