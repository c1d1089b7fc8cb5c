package engine

const pushBufferSize = 16

// Subscription carries the engine's push channels. Each channel owns a
// disjoint part of client state; no ordering is guaranteed across them.
//
// Sends are non-blocking: a slow consumer loses intermediate payloads,
// never the connection. Last-write-wins makes that safe — every payload
// is self-consistent at emission time.
type Subscription struct {
	State <-chan PlayerStatePayload
	Queue <-chan QueuePayload
	Time  <-chan TimePayload

	// Disconnected fires when the transport loses its connection.
	Disconnected <-chan struct{}

	// Reconnected fires after the transport re-established a dropped
	// connection. Consumers should refetch the full application state;
	// pushes emitted while disconnected are gone.
	Reconnected <-chan struct{}

	Done <-chan struct{}

	stateCh      chan PlayerStatePayload
	queueCh      chan QueuePayload
	timeCh       chan TimePayload
	disconnectCh chan struct{}
	reconnectCh  chan struct{}
	doneCh       chan struct{}
}

// NewSubscription creates a subscription with buffered push channels.
// Transports publish into it; everyone else only reads.
func NewSubscription() *Subscription {
	s := &Subscription{
		stateCh:      make(chan PlayerStatePayload, pushBufferSize),
		queueCh:      make(chan QueuePayload, pushBufferSize),
		timeCh:       make(chan TimePayload, pushBufferSize),
		disconnectCh: make(chan struct{}, 1),
		reconnectCh:  make(chan struct{}, 1),
		doneCh:       make(chan struct{}),
	}
	s.State = s.stateCh
	s.Queue = s.queueCh
	s.Time = s.timeCh
	s.Disconnected = s.disconnectCh
	s.Reconnected = s.reconnectCh
	s.Done = s.doneCh
	return s
}

// CloseSub signals the consumer that no further pushes will arrive.
func (s *Subscription) CloseSub() {
	close(s.doneCh)
}

// PublishState delivers a state push (non-blocking).
func (s *Subscription) PublishState(p PlayerStatePayload) {
	select {
	case s.stateCh <- p:
	default:
		// Drop if buffer full
	}
}

// PublishQueue delivers a queue push (non-blocking).
func (s *Subscription) PublishQueue(p QueuePayload) {
	select {
	case s.queueCh <- p:
	default:
	}
}

// PublishTime delivers a time push (non-blocking).
func (s *Subscription) PublishTime(p TimePayload) {
	select {
	case s.timeCh <- p:
	default:
	}
}

// PublishDisconnected signals that the connection dropped.
func (s *Subscription) PublishDisconnected() {
	select {
	case s.disconnectCh <- struct{}{}:
	default:
	}
}

// PublishReconnected signals that the connection was re-established.
func (s *Subscription) PublishReconnected() {
	select {
	case s.reconnectCh <- struct{}{}:
	default:
	}
}
