package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tmorvan/cadence/internal/engine"
	"github.com/tmorvan/cadence/internal/errmsg"
)

const (
	intentTimeout  = 5 * time.Second
	queryTimeout   = 10 * time.Second
	refreshTimeout = 10 * time.Second
)

// ErrorEvent is emitted when an engine operation fails. Failures are
// local-only: the view degrades to stale-until-next-push, nothing is
// fatal to the session.
type ErrorEvent struct {
	Op  errmsg.Op
	Err error
}

type detailResult struct {
	id     string
	detail *engine.DetailedTrackInfo
	err    error
}

type refreshResult struct {
	state *engine.ApplicationState
	err   error
}

// Session owns the Store and keeps it consistent with the engine. All
// push payloads and fetch results are applied by a single event-loop
// goroutine, each handler running to completion before the next; the
// only writes from outside the loop are the dispatcher's optimistic
// patches, which go through the Store's mutex.
type Session struct {
	client engine.Client
	store  *Store
	log    *slog.Logger

	subsMu sync.RWMutex
	subs   []*Subscription

	engineSub *engine.Subscription
	detailCh  chan detailResult
	refreshCh chan refreshResult

	// focusID is the id of the most recently requested detail fetch.
	// Owned by Start and the event loop; never touched elsewhere.
	focusID string

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a session over the given engine client.
func New(client engine.Client, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		client:    client,
		store:     NewStore(),
		log:       log,
		detailCh:  make(chan detailResult),
		refreshCh: make(chan refreshResult),
		done:      make(chan struct{}),
	}
}

// Store returns the local state store for snapshot reads.
func (s *Session) Store() *Store {
	return s.store
}

// Subscribe creates a new event subscription.
func (s *Session) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Start performs the one-shot full-state fetch and starts the event
// loop. A failed initial fetch is not fatal: the view stays on the
// default snapshot until the first push or reconnect refresh heals it.
func (s *Session) Start(ctx context.Context) {
	if st, err := s.client.ApplicationState(ctx); err != nil {
		s.log.Error("initial state fetch failed", "error", err)
		s.notifyError(errmsg.OpFetchState, err)
	} else {
		s.applyApplicationState(st)
	}

	s.engineSub = s.client.Subscribe()
	s.wg.Add(1)
	go s.run()
}

// Stop tears down the event loop and all subscriptions exactly once.
// In-flight detail fetches are not cancelled at the transport level;
// their results are simply never applied.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.wg.Wait()

		s.subsMu.Lock()
		for _, sub := range s.subs {
			sub.close()
		}
		s.subs = nil
		s.subsMu.Unlock()
	})
}

func (s *Session) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case <-s.engineSub.Done:
			return
		case p := <-s.engineSub.State:
			s.applyPlayerState(p)
		case p := <-s.engineSub.Queue:
			s.applyQueue(p)
		case p := <-s.engineSub.Time:
			s.applyTime(p.CurrentTimeSeconds)
		case <-s.engineSub.Disconnected:
			s.notifyConn(false)
		case <-s.engineSub.Reconnected:
			s.notifyConn(true)
			s.requestRefresh()
		case r := <-s.refreshCh:
			if r.err != nil {
				s.log.Warn("state refresh failed", "error", r.err)
				s.notifyError(errmsg.OpFetchState, r.err)
				continue
			}
			s.applyApplicationState(r.state)
		case r := <-s.detailCh:
			s.applyDetailResult(r)
		}
	}
}

// requestRefresh refetches the full application state off the loop
// goroutine, feeding the result back in as a loop message.
func (s *Session) requestRefresh() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		st, err := s.client.ApplicationState(ctx)
		select {
		case s.refreshCh <- refreshResult{state: st, err: err}:
		case <-s.done:
		}
	}()
}

func (s *Session) notifyPlayer(prev, cur PlayerState) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendPlayer(PlayerChange{Previous: prev, Current: cur})
	}
}

func (s *Session) notifyPosition(seconds float64) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendPosition(seconds)
	}
}

func (s *Session) notifyQueue(tracks []QueueTrack, summary QueueSummary) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendQueue(QueueChange{Tracks: tracks, Summary: summary})
	}
}

func (s *Session) notifyDetail(d *DetailedTrackInfo) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendDetail(DetailChange{Detail: d})
	}
}

func (s *Session) notifyConn(connected bool) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendConn(ConnChange{Connected: connected})
	}
}

func (s *Session) notifyError(op errmsg.Op, err error) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendError(ErrorEvent{Op: op, Err: err})
	}
}
