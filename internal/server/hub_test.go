package server

import (
	"context"
	"testing"
	"time"

	"github.com/khelpoint/khelpoint/internal/store"
)

func TestHubFanOut(t *testing.T) {
	h := newHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.run(ctx)

	c1 := &client{id: "a", matchID: "m1", send: make(chan store.LiveScore, 1)}
	c2 := &client{id: "b", matchID: "m1", send: make(chan store.LiveScore, 1)}
	other := &client{id: "c", matchID: "m2", send: make(chan store.LiveScore, 1)}
	h.register <- c1
	h.register <- c2
	h.register <- other

	waitForWatchers(t, h, "m1", 2)

	h.Broadcast("m1", store.LiveScore{TotalRuns: 12})

	for _, c := range []*client{c1, c2} {
		select {
		case ls := <-c.send:
			if ls.TotalRuns != 12 {
				t.Errorf("client %s: expected 12, got %d", c.id, ls.TotalRuns)
			}
		case <-time.After(time.Second):
			t.Fatalf("client %s: expected an update, got none", c.id)
		}
	}

	select {
	case ls := <-other.send:
		t.Errorf("client on another match got an update: %v", ls)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	h := newHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.run(ctx)

	c := &client{id: "a", matchID: "m1", send: make(chan store.LiveScore, 1)}
	h.register <- c
	waitForWatchers(t, h, "m1", 1)

	h.unregister <- c
	waitForWatchers(t, h, "m1", 0)

	select {
	case _, ok := <-c.send:
		if ok {
			t.Error("expected a closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func waitForWatchers(t *testing.T, h *hub, matchID string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.watcherCount(matchID) == n {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("expected %d watchers on %s, got %d", n, matchID, h.watcherCount(matchID))
}
