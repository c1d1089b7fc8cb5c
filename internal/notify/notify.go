// Package notify provides desktop notifications via D-Bus.
package notify

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Announcer emits a now-playing notification whenever the active track
// changes. Successive announcements replace each other so track skips
// don't pile up in the notification tray.
type Announcer struct {
	notifier Notifier
	lastID   string
	noteID   uint32
}

// NewAnnouncer wraps a notifier for track-change announcements.
func NewAnnouncer(n Notifier) *Announcer {
	return &Announcer{notifier: n}
}

// TrackChanged announces the track if its id differs from the last
// announced one. An empty id (nothing playing) resets without
// notifying.
func (a *Announcer) TrackChanged(trackID, title, artist string) {
	if trackID == a.lastID {
		return
	}
	a.lastID = trackID
	if trackID == "" {
		return
	}

	id, err := a.notifier.Notify(Notification{
		Title:      title,
		Body:       artist,
		Timeout:    5000,
		ReplacesID: a.noteID,
		Urgency:    UrgencyLow,
	})
	if err == nil && id != 0 {
		a.noteID = id
	}
}
