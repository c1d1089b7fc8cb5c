package queuepanel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmorvan/cadence/internal/icons"
	"github.com/tmorvan/cadence/internal/session"
)

func testQueue() []session.QueueTrack {
	return []session.QueueTrack{
		{ID: "a", Title: "Black Cow", Artist: "Steely Dan", DurationLabel: "5:10"},
		{ID: "b", Title: "Aja", Artist: "Steely Dan", DurationLabel: "7:57", IsPlaying: true},
		{ID: "c", Title: "Deacon Blues", Artist: "Steely Dan", DurationLabel: "7:26", IsNextUp: true},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCursorMovement(t *testing.T) {
	m := New()
	m.SetSize(60, 20)
	m.SetQueue(testQueue(), session.QueueSummary{})
	m.SetFocused(true)

	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	// Clamped at the end.
	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want clamped at 2", m.cursor)
	}

	m, _ = m.Update(keyMsg("g"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after g, want 0", m.cursor)
	}

	m, _ = m.Update(keyMsg("G"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d after G, want 2", m.cursor)
	}
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := New()
	m.SetSize(60, 20)
	m.SetQueue(testQueue(), session.QueueSummary{})

	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, unfocused panel should not move", m.cursor)
	}
}

func TestEnterEmitsPlayTrack(t *testing.T) {
	m := New()
	m.SetSize(60, 20)
	m.SetQueue(testQueue(), session.QueueSummary{})
	m.SetFocused(true)

	m, _ = m.Update(keyMsg("j"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should emit a command")
	}
	msg, ok := cmd().(PlayTrackMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want PlayTrackMsg", cmd())
	}
	if msg.TrackID != "b" {
		t.Errorf("TrackID = %q, want b", msg.TrackID)
	}
}

func TestSetQueueClampsCursor(t *testing.T) {
	m := New()
	m.SetSize(60, 20)
	m.SetQueue(testQueue(), session.QueueSummary{})
	m.SetFocused(true)
	m, _ = m.Update(keyMsg("G"))

	// The queue shrinks underneath the cursor.
	m.SetQueue(testQueue()[:1], session.QueueSummary{})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after shrink, want 0", m.cursor)
	}
}

func TestViewMarkers(t *testing.T) {
	icons.Init("none")
	defer icons.Init("unicode")

	m := New()
	m.SetSize(60, 10)
	m.SetQueue(testQueue(), session.QueueSummary{QueuedText: "Queued: 20:33"})

	out := m.View()
	if !strings.Contains(out, "Queue (2/3)") {
		t.Errorf("header missing playing position:\n%s", out)
	}
	if !strings.Contains(out, "Queued: 20:33") {
		t.Errorf("header missing summary:\n%s", out)
	}
	if !strings.Contains(out, "Aja") || !strings.Contains(out, "Deacon Blues") {
		t.Errorf("track titles missing:\n%s", out)
	}
	if !strings.Contains(out, "7:57") {
		t.Errorf("duration label missing:\n%s", out)
	}
}

func TestViewEmptyQueue(t *testing.T) {
	m := New()
	m.SetSize(60, 8)
	out := m.View()
	if !strings.Contains(out, "Queue (0)") {
		t.Errorf("empty queue header:\n%s", out)
	}
}
