// Package livesync keeps a page's view of one match's live score fresh.
//
// The synchronizer prefers the store's realtime channel and degrades to
// fixed-interval polling when the subscription cannot be established or
// dies. The degrade is one-way: once polling, a synchronizer never returns
// to push updates for the life of the page view.
package livesync

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/khelpoint/khelpoint/internal/store"
)

// DefaultPollInterval is the fallback re-fetch cadence.
const DefaultPollInterval = 3 * time.Second

// State is the synchronizer's lifecycle position.
type State int

const (
	// Uninitialized means Run has not been called.
	Uninitialized State = iota

	// Loading means the match and live score are being fetched.
	Loading

	// Synced means updates arrive over the realtime channel.
	Synced

	// Polling means the realtime channel failed and the live score is
	// re-fetched on a fixed interval.
	Polling
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Synced:
		return "synced"
	case Polling:
		return "polling"
	}
	return "uninitialized"
}

// View receives every fresh live score the synchronizer applies.
type View interface {
	Update(match store.Match, ls store.LiveScore)
}

// ViewFunc adapts a function to the View interface.
type ViewFunc func(match store.Match, ls store.LiveScore)

func (f ViewFunc) Update(match store.Match, ls store.LiveScore) { f(match, ls) }

// Synchronizer drives one page view's live score. Not safe for reuse; make
// a new one per page view.
type Synchronizer struct {
	store        store.Store
	view         View
	pollInterval time.Duration
	now          func() time.Time

	mu          sync.Mutex
	state       State
	seq         uint64
	lastApplied uint64
}

// New builds a Synchronizer over the given store and view. A pollInterval
// of zero means DefaultPollInterval.
func New(s store.Store, v View, pollInterval time.Duration) *Synchronizer {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Synchronizer{
		store:        s,
		view:         v,
		pollInterval: pollInterval,
		now:          time.Now,
	}
}

// State returns the synchronizer's current lifecycle position.
func (y *Synchronizer) State() State {
	y.mu.Lock()
	defer y.mu.Unlock()
	return y.state
}

// Run fetches the match and its live score, renders once, then keeps the
// view fresh until ctx is cancelled. A match with no live score document yet
// gets a zero-valued one created for its sport.
//
// Run blocks for the life of the page view. Cancelling ctx is the teardown
// path: it unsubscribes from the realtime channel and stops the poll timer.
func (y *Synchronizer) Run(ctx context.Context, matchID string) error {
	y.setState(Loading)

	match, err := y.store.GetMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("livesync: error loading match %s: %w", matchID, err)
	}

	ls, err := y.store.GetLiveScore(ctx, matchID)
	if store.IsNotFound(err) {
		ls = store.NewLiveScore(match.Sport, match.Team1ID, match.Team2ID, y.now())
		if err := store.UpsertLiveScore(ctx, y.store, matchID, ls); err != nil {
			return fmt.Errorf("livesync: error initializing live score for match %s: %w", matchID, err)
		}
		if ls, err = y.store.GetLiveScore(ctx, matchID); err != nil {
			return fmt.Errorf("livesync: error re-reading live score for match %s: %w", matchID, err)
		}
	} else if err != nil {
		return fmt.Errorf("livesync: error loading live score for match %s: %w", matchID, err)
	}

	y.apply(y.nextSeq(), match, ls)
	y.setState(Synced)

	updates, stop, err := y.store.WatchLiveScore(ctx, matchID)
	if err != nil {
		log.Printf("livesync: realtime subscription for match %s failed, falling back to polling: %v", matchID, err)
		y.poll(ctx, match, matchID)
		return nil
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fresh, ok := <-updates:
			if !ok {
				// Channel died mid-stream; same degrade as a failed
				// subscribe.
				log.Printf("livesync: realtime channel for match %s closed, falling back to polling", matchID)
				y.poll(ctx, match, matchID)
				return nil
			}
			y.apply(y.nextSeq(), match, fresh)
		}
	}
}

// poll re-fetches the live score on a fixed interval until ctx is
// cancelled. There is no exit back to push updates.
func (y *Synchronizer) poll(ctx context.Context, match store.Match, matchID string) {
	y.setState(Polling)
	ticker := time.NewTicker(y.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			seq := y.nextSeq()
			go func() {
				ls, err := y.store.GetLiveScore(ctx, matchID)
				if err != nil {
					if ctx.Err() == nil {
						log.Printf("livesync: poll fetch for match %s failed: %v", matchID, err)
					}
					return
				}
				y.apply(seq, match, ls)
			}()
		}
	}
}

func (y *Synchronizer) nextSeq() uint64 {
	y.mu.Lock()
	defer y.mu.Unlock()
	y.seq++
	return y.seq
}

// apply renders a fetched document unless a newer fetch already rendered.
// Out-of-order completions are discarded rather than overwriting fresher
// state with stale data.
func (y *Synchronizer) apply(seq uint64, match store.Match, ls store.LiveScore) {
	y.mu.Lock()
	if seq <= y.lastApplied {
		y.mu.Unlock()
		return
	}
	y.lastApplied = seq
	y.mu.Unlock()
	y.view.Update(match, ls)
}

func (y *Synchronizer) setState(s State) {
	y.mu.Lock()
	y.state = s
	y.mu.Unlock()
}
