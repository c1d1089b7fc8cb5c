package engine

import (
	"context"
	"sync"
)

// Verify Mock implements Client at compile time.
var _ Client = (*Mock)(nil)

// Mock is a test double for Client. Tests publish pushes through the
// subscriptions it hands out and inspect the intents it received.
type Mock struct {
	mu          sync.Mutex
	appState    *ApplicationState
	appStateErr error
	details     map[string]*DetailedTrackInfo
	detailsErr  error
	detailGate  chan struct{}
	intents     []string
	intentErr   error
	detailCalls []string
	subs        []*Subscription
	closed      bool
}

// NewMock creates a mock engine client with an empty application state.
func NewMock() *Mock {
	return &Mock{
		appState: &ApplicationState{},
		details:  make(map[string]*DetailedTrackInfo),
	}
}

// SetApplicationState sets the answer to the startup query.
func (m *Mock) SetApplicationState(s *ApplicationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appState = s
}

// SetApplicationStateErr makes the startup query fail.
func (m *Mock) SetApplicationStateErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appStateErr = err
}

// SetDetails registers the details returned for a track id.
func (m *Mock) SetDetails(id string, d *DetailedTrackInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.details[id] = d
}

// SetDetailsErr makes every TrackDetails call fail.
func (m *Mock) SetDetailsErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detailsErr = err
}

// SetIntentErr makes every intent call fail with err.
func (m *Mock) SetIntentErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intentErr = err
}

// HoldDetails makes TrackDetails block until ReleaseDetails is called.
// The call is still recorded before blocking.
func (m *Mock) HoldDetails() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detailGate = make(chan struct{})
}

// ReleaseDetails unblocks all held TrackDetails calls.
func (m *Mock) ReleaseDetails() {
	m.mu.Lock()
	gate := m.detailGate
	m.detailGate = nil
	m.mu.Unlock()
	if gate != nil {
		close(gate)
	}
}

// Intents returns the intent names received so far, in order.
func (m *Mock) Intents() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.intents))
	copy(out, m.intents)
	return out
}

// DetailCalls returns the track ids TrackDetails was called with.
func (m *Mock) DetailCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.detailCalls))
	copy(out, m.detailCalls)
	return out
}

// Publish delivers a state push to every subscription.
func (m *Mock) Publish(p PlayerStatePayload) {
	for _, sub := range m.snapshotSubs() {
		sub.PublishState(p)
	}
}

// PublishQueue delivers a queue push to every subscription.
func (m *Mock) PublishQueue(p QueuePayload) {
	for _, sub := range m.snapshotSubs() {
		sub.PublishQueue(p)
	}
}

// PublishTime delivers a time push to every subscription.
func (m *Mock) PublishTime(p TimePayload) {
	for _, sub := range m.snapshotSubs() {
		sub.PublishTime(p)
	}
}

// PublishDisconnected delivers a disconnect signal to every subscription.
func (m *Mock) PublishDisconnected() {
	for _, sub := range m.snapshotSubs() {
		sub.PublishDisconnected()
	}
}

// PublishReconnected delivers a reconnect signal to every subscription.
func (m *Mock) PublishReconnected() {
	for _, sub := range m.snapshotSubs() {
		sub.PublishReconnected()
	}
}

func (m *Mock) snapshotSubs() []*Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Subscription, len(m.subs))
	copy(out, m.subs)
	return out
}

func (m *Mock) intent(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intents = append(m.intents, name)
	return m.intentErr
}

func (m *Mock) PlayPause(context.Context) error     { return m.intent("play_pause") }
func (m *Mock) SkipNext(context.Context) error      { return m.intent("skip_next") }
func (m *Mock) SkipPrevious(context.Context) error  { return m.intent("skip_previous") }
func (m *Mock) ToggleShuffle(context.Context) error { return m.intent("toggle_shuffle") }
func (m *Mock) ToggleRepeatMode(context.Context) error {
	return m.intent("toggle_repeat_mode")
}
func (m *Mock) Seek(context.Context, float64) error { return m.intent("seek") }
func (m *Mock) SetVolume(context.Context, int) error {
	return m.intent("set_volume")
}
func (m *Mock) ToggleMute(context.Context) error { return m.intent("toggle_mute") }
func (m *Mock) PlayTrackFromQueue(context.Context, string) error {
	return m.intent("play_track_from_queue")
}

func (m *Mock) ApplicationState(context.Context) (*ApplicationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appStateErr != nil {
		return nil, m.appStateErr
	}
	return m.appState, nil
}

func (m *Mock) TrackDetails(ctx context.Context, trackID string) (*DetailedTrackInfo, error) {
	m.mu.Lock()
	m.detailCalls = append(m.detailCalls, trackID)
	gate := m.detailGate
	err := m.detailsErr
	d, ok := m.details[trackID]
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (m *Mock) Subscribe() *Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub := NewSubscription()
	m.subs = append(m.subs, sub)
	return sub
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	for _, sub := range m.subs {
		sub.CloseSub()
	}
	m.subs = nil
	return nil
}
