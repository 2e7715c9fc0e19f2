// Command inputprobe shows the steering pipeline in a terminal: held arrows,
// the tracker's derived direction, the validated heading and the last swipe.
// Drag with the left mouse button to swipe. Esc or q quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/input"
	"github.com/automoto/snakeframe/render"
	"github.com/automoto/snakeframe/shared/direction"
	"github.com/automoto/snakeframe/terminal"
	"github.com/gdamore/tcell/v2"
)

var (
	styleFrame   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHeading = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleReject  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

type probe struct {
	screen tcell.Screen
	host   *terminal.Host
	frames *render.FrameQueue

	visible *terminal.CellSurface
	manager *render.Manager

	keys      *input.KeyTracker
	swipe     *input.SwipeRecognizer
	validator *input.Validator

	interval time.Duration

	lastSwipe  direction.Direction
	swipes     int
	rejected   int
	lastReject string
}

func newProbe(screen tcell.Screen, interval time.Duration, minSwipe float64) *probe {
	p := &probe{
		screen:   screen,
		frames:   render.NewFrameQueue(),
		visible:  terminal.NewCellSurface(),
		interval: interval,
	}

	target := input.NewTarget()
	p.host = terminal.NewHost(screen, target)
	p.host.StatusRows = 1

	p.keys = input.NewKeyTracker(target)
	p.validator = input.NewValidator(input.NewHeading(direction.None))
	p.validator.OnReject = func(candidate, lastValid direction.Direction) {
		p.rejected++
		p.lastReject = fmt.Sprintf("%s after %s", candidate, lastValid)
	}
	p.swipe = input.NewSwipeRecognizer(target, func(d direction.Direction) {
		p.lastSwipe = d
		p.swipes++
		p.validator.SetDirection(d)
	})
	p.swipe.MinDistance = minSwipe

	p.manager = render.NewManager(render.Options{
		Visible:       p.visible,
		Buffer:        terminal.NewCellSurface(),
		Container:     p.host,
		Observer:      p.host,
		Scheduler:     p.frames,
		Clock:         render.SystemClock{},
		Draw:          p.draw,
		FrameInterval: interval,
	})
	return p
}

func (p *probe) run() {
	// Tick faster than the frame interval so the manager's throttle decides
	ticker := time.NewTicker(max(p.interval/4, time.Millisecond))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(p.screen, eventChan, done)

	p.manager.Start()
	defer p.destroy()

	for {
		select {
		case ev := <-eventChan:
			if !p.host.HandleEvent(ev, time.Now()) {
				return
			}
			p.steer()

		case now := <-ticker.C:
			p.host.Tick(now)
			p.steer()
			if p.frames.Pending() == 0 {
				continue
			}
			p.frames.RunFrame(now)
			p.present()
		}
	}
}

// pollEvents forwards screen events to events until the screen is finalized
// or done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// steer proposes a changed keyboard direction to the validator.
func (p *probe) steer() {
	if !p.keys.DirectionChanged() {
		return
	}
	if d := p.keys.Direction(); d != direction.None {
		p.validator.SetDirection(d)
	}
	// Consume the change so it is proposed once
	p.keys.SetDirection(p.keys.Direction())
}

func (p *probe) present() {
	p.screen.Clear()
	w, _ := p.visible.Bounds()
	col, row := p.host.Origin(w)
	p.visible.Flush(p.screen, col, row)

	frames, skipped, resizes := p.manager.Stats()
	status := fmt.Sprintf(" frames %d  skipped %d  resizes %d  state %s  (esc/q quits)",
		frames, skipped, resizes, p.manager.State())
	_, rows := p.screen.Size()
	for i, r := range status {
		p.screen.SetContent(i, rows-1, r, nil, styleFrame)
	}
	p.screen.Show()
}

func (p *probe) draw(dc *render.DrawContext) {
	s := terminal.Target(dc)
	if s == nil {
		return
	}
	side := int(dc.Size)
	if side < 3 {
		return
	}

	s.Fill(0, 0, side, 1, '▀', styleFrame)
	s.Fill(0, side-1, side, 1, '▄', styleFrame)
	s.Fill(0, 0, 1, side, '█', styleFrame)
	s.Fill(side-1, 0, 1, side, '█', styleFrame)

	heading := p.validator.Direction()
	cx, cy := side/2, side/2
	dx, dy := heading.Delta()
	reach := side / 2
	for i := 1; i < reach-1; i++ {
		s.Set(cx+dx*i, cy+dy*i, '█', styleHeading)
	}
	s.Set(cx, cy, '●', styleHeading)

	lines := []string{
		"held   " + strings.Join(p.keys.HeldKeys(), " "),
		"keys   " + p.keys.Direction().String(),
		"head   " + heading.String(),
		fmt.Sprintf("swipe  %s (%d)", p.lastSwipe, p.swipes),
	}
	for i, line := range lines {
		s.Text(2, 2+i, line, styleText)
	}
	if p.rejected > 0 {
		s.Text(2, 2+len(lines), fmt.Sprintf("drop   %s (%d)", p.lastReject, p.rejected), styleReject)
	}
}

func (p *probe) destroy() {
	p.manager.Destroy()
	p.keys.Destroy()
	p.swipe.Destroy()
	p.validator.Destroy()
}

func main() {
	interval := flag.Duration("interval", cfg.Render.FrameInterval, "minimum time between frames")
	minSwipe := flag.Float64("swipe", 4, "minimum swipe distance in cells")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	p := newProbe(screen, *interval, *minSwipe)
	p.run()

	screen.Fini()
	log.Printf("%d swipes, %d rejected", p.swipes, p.rejected)
}
