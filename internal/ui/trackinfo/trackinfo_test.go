package trackinfo

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmorvan/cadence/internal/session"
)

func testDetail() *session.DetailedTrackInfo {
	return &session.DetailedTrackInfo{
		Title:           "Deacon Blues",
		Artist:          "Steely Dan",
		Album:           "Aja",
		Year:            "1977",
		Genre:           "Jazz Rock",
		FormatDetails:   "FLAC 24/96",
		DurationSeconds: 446,
		Lyrics:          "This is the day\nOf the expanding man",
	}
}

func TestViewStates(t *testing.T) {
	m := New()
	m.SetSize(40, 20)

	if out := m.View(); !strings.Contains(out, "No track selected") {
		t.Errorf("empty state:\n%s", out)
	}

	m.SetLoading()
	if out := m.View(); !strings.Contains(out, "Loading details") {
		t.Errorf("loading state:\n%s", out)
	}

	m.SetDetail(testDetail())
	out := m.View()
	for _, want := range []string{"Deacon Blues", "Steely Dan", "Aja", "1977", "FLAC 24/96", "7:26", "Lyrics", "expanding man"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail view missing %q:\n%s", want, out)
		}
	}
}

func TestOptionalFieldsOmitted(t *testing.T) {
	m := New()
	m.SetSize(40, 20)
	m.SetDetail(&session.DetailedTrackInfo{Title: "Peg", Artist: "Steely Dan"})

	out := m.View()
	for _, absent := range []string{"Year", "Genre", "Composer", "Format", "Lyrics"} {
		if strings.Contains(out, absent) {
			t.Errorf("view should omit empty %q:\n%s", absent, out)
		}
	}
}

func TestScroll(t *testing.T) {
	m := New()
	m.SetSize(40, 8)
	d := testDetail()
	d.Lyrics = strings.Repeat("line\n", 30)
	m.SetDetail(d)
	m.SetFocused(true)

	key := func(s string) tea.KeyMsg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))
	if m.scroll != 2 {
		t.Errorf("scroll = %d, want 2", m.scroll)
	}

	m, _ = m.Update(key("g"))
	if m.scroll != 0 {
		t.Errorf("scroll = %d after g, want 0", m.scroll)
	}

	m, _ = m.Update(key("k"))
	if m.scroll != 0 {
		t.Errorf("scroll = %d, must not go negative", m.scroll)
	}
}

func TestNewDetailResetsScroll(t *testing.T) {
	m := New()
	m.SetSize(40, 8)
	m.SetDetail(testDetail())
	m.SetFocused(true)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})

	m.SetDetail(testDetail())
	if m.scroll != 0 {
		t.Errorf("scroll = %d after new detail, want 0", m.scroll)
	}
}
