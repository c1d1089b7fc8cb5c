package session

import (
	"context"

	"github.com/tmorvan/cadence/internal/errmsg"
)

// requestDetails issues a detail fetch for the newly focused track.
// Called only from Start and the event loop.
//
// focusID dedups repeat requests for an unchanged focus (a state push
// echoing the track the startup fetch already reported must not fetch
// twice) and is the reference the stale-response guard checks against
// when a result arrives.
func (s *Session) requestDetails(id string) {
	if id == s.focusID {
		return
	}
	s.focusID = id

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()
		d, err := s.client.TrackDetails(ctx, id)
		select {
		case s.detailCh <- detailResult{id: id, detail: d, err: err}:
		case <-s.done:
		}
	}()
}

// applyDetailResult applies a resolved fetch, unless the focus moved on
// while it was in flight — then the result is silently discarded. That
// is the expected outcome of the at-most-one-fetch-per-focus policy,
// not an error.
func (s *Session) applyDetailResult(r detailResult) {
	if r.id != s.focusID {
		return
	}
	if r.err != nil {
		s.log.Warn("track detail fetch failed", "track", r.id, "error", r.err)
		s.store.ClearDetail()
		s.notifyDetail(nil)
		s.notifyError(errmsg.OpFetchDetails, r.err)
		return
	}
	s.store.SetDetail(detailFromPayload(r.detail))
	s.notifyDetail(s.store.Detail())
}
