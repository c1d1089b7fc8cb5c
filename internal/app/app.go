package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmorvan/cadence/internal/notify"
	"github.com/tmorvan/cadence/internal/session"
	"github.com/tmorvan/cadence/internal/settings"
	"github.com/tmorvan/cadence/internal/ui/queuepanel"
	"github.com/tmorvan/cadence/internal/ui/styles"
	"github.com/tmorvan/cadence/internal/ui/trackinfo"
)

const (
	volumeStep = 5
	seekStep   = 5 // seconds
)

// focusedPanel identifies which panel receives navigation keys.
type focusedPanel int

const (
	focusQueue focusedPanel = iota
	focusDetail
)

// Model is the top-level bubbletea model.
type Model struct {
	sess      *session.Session
	sub       *session.Subscription
	announcer *notify.Announcer
	settings  *settings.Manager

	player    session.PlayerState
	queue     queuepanel.Model
	detail    trackinfo.Model
	connected bool
	lastSync  time.Time

	statusErr string
	spin      spinner.Model
	focus     focusedPanel

	width  int
	height int
}

// Options carries the wired dependencies for the model.
type Options struct {
	Session  *session.Session
	Settings *settings.Manager
	Notifier notify.Notifier
}

// New builds the model. The session must already be started.
func New(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.T().S().Muted

	m := Model{
		sess:      opts.Session,
		sub:       opts.Session.Subscribe(),
		settings:  opts.Settings,
		player:    opts.Session.Store().Player(),
		queue:     queuepanel.New(),
		detail:    trackinfo.New(),
		connected: true,
		lastSync:  time.Now(),
		spin:      sp,
	}
	if opts.Notifier != nil {
		m.announcer = notify.NewAnnouncer(opts.Notifier)
	}

	tracks, summary := opts.Session.Store().Queue()
	m.queue.SetQueue(tracks, summary)
	m.queue.SetFocused(true)
	m.detail.SetDetail(opts.Session.Store().Detail())

	return m
}

// Init starts the event pump and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.WatchSessionEvents(), m.spin.Tick)
}
