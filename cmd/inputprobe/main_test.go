package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPollEventsStopsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(finished)
	}()

	// The second event cannot be delivered while the buffer is full
	for range 2 {
		if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)); err != nil {
			t.Fatalf("PostEvent() error = %v", err)
		}
	}
	deadline := time.Now().Add(time.Second)
	for len(events) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("first event was not forwarded")
		}
		time.Sleep(time.Millisecond)
	}

	close(done)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("pollEvents kept blocking after done was closed")
	}
}
