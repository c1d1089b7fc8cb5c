package session

import "testing"

func TestSubscriptionNonBlockingSend(t *testing.T) {
	sub := newSubscription()

	// Fill the buffer and keep sending. None of these may block.
	for i := 0; i < eventBufferSize*2; i++ {
		sub.sendPosition(float64(i))
	}

	if got := len(sub.positionCh); got != eventBufferSize {
		t.Errorf("len(positionCh) = %d, want %d", got, eventBufferSize)
	}

	// The oldest events survive; overflow is dropped at the tail.
	first := <-sub.PositionChanged
	if first.Seconds != 0 {
		t.Errorf("first event = %v, want 0", first.Seconds)
	}
}

func TestSubscriptionCloseSignalsDone(t *testing.T) {
	sub := newSubscription()
	select {
	case <-sub.Done:
		t.Fatal("Done signaled before close")
	default:
	}

	sub.close()

	select {
	case <-sub.Done:
	default:
		t.Fatal("Done not signaled after close")
	}
}

func TestSubscriptionCarriesAllEventKinds(t *testing.T) {
	sub := newSubscription()

	sub.sendPlayer(PlayerChange{Current: PlayerState{Volume: 40}})
	sub.sendQueue(QueueChange{Tracks: []QueueTrack{{ID: "a"}}})
	sub.sendDetail(DetailChange{Detail: &DetailedTrackInfo{Title: "T"}})
	sub.sendConn(ConnChange{Connected: true})
	sub.sendError(ErrorEvent{})

	if e := <-sub.PlayerChanged; e.Current.Volume != 40 {
		t.Errorf("PlayerChanged = %+v", e)
	}
	if e := <-sub.QueueChanged; len(e.Tracks) != 1 || e.Tracks[0].ID != "a" {
		t.Errorf("QueueChanged = %+v", e)
	}
	if e := <-sub.DetailChanged; e.Detail == nil || e.Detail.Title != "T" {
		t.Errorf("DetailChanged = %+v", e)
	}
	if e := <-sub.ConnChanged; !e.Connected {
		t.Errorf("ConnChanged = %+v", e)
	}
	select {
	case <-sub.Error:
	default:
		t.Error("Error event not delivered")
	}
}
