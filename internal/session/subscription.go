package session

const eventBufferSize = 16

// PlayerChange is emitted when the player slice changes, whether from
// an authoritative push or an optimistic patch.
type PlayerChange struct {
	Previous PlayerState
	Current  PlayerState
}

// PositionChange is emitted on time pushes and optimistic seeks. It is
// separate from PlayerChange so renderers can redraw only the progress
// line on the high-frequency path.
type PositionChange struct {
	Seconds float64
}

// QueueChange is emitted when the queue slice is replaced.
type QueueChange struct {
	Tracks  []QueueTrack
	Summary QueueSummary
}

// DetailChange is emitted when the focused-track detail resolves or
// clears. Detail is nil when the cache was cleared.
type DetailChange struct {
	Detail *DetailedTrackInfo
}

// ConnChange is emitted when the engine connection drops or recovers.
type ConnChange struct {
	Connected bool
}

// Subscription provides event channels for one observer of the session.
type Subscription struct {
	PlayerChanged   <-chan PlayerChange
	PositionChanged <-chan PositionChange
	QueueChanged    <-chan QueueChange
	DetailChanged   <-chan DetailChange
	ConnChanged     <-chan ConnChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	playerCh   chan PlayerChange
	positionCh chan PositionChange
	queueCh    chan QueueChange
	detailCh   chan DetailChange
	connCh     chan ConnChange
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

// newSubscription creates a subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		playerCh:   make(chan PlayerChange, eventBufferSize),
		positionCh: make(chan PositionChange, eventBufferSize),
		queueCh:    make(chan QueueChange, eventBufferSize),
		detailCh:   make(chan DetailChange, eventBufferSize),
		connCh:     make(chan ConnChange, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.PlayerChanged = s.playerCh
	s.PositionChanged = s.positionCh
	s.QueueChanged = s.queueCh
	s.DetailChanged = s.detailCh
	s.ConnChanged = s.connCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendPlayer sends a player change event (non-blocking).
func (s *Subscription) sendPlayer(e PlayerChange) {
	select {
	case s.playerCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendPosition sends a position change event (non-blocking).
func (s *Subscription) sendPosition(seconds float64) {
	select {
	case s.positionCh <- PositionChange{Seconds: seconds}:
	default:
	}
}

// sendQueue sends a queue change event (non-blocking).
func (s *Subscription) sendQueue(e QueueChange) {
	select {
	case s.queueCh <- e:
	default:
	}
}

// sendDetail sends a detail change event (non-blocking).
func (s *Subscription) sendDetail(e DetailChange) {
	select {
	case s.detailCh <- e:
	default:
	}
}

// sendConn sends a connection change event (non-blocking).
func (s *Subscription) sendConn(e ConnChange) {
	select {
	case s.connCh <- e:
	default:
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
