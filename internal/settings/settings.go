// Package settings persists the few pieces of local preference state
// that should survive restarts: the last volume and mute flag, and the
// icon style override. The engine owns playback state; this is only the
// client's own knobs.
package settings

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "cadence"
	dbFileName   = "cadence.db"
	saveDebounce = 500 * time.Millisecond
)

// VolumeState is the saved volume preference.
type VolumeState struct {
	Volume int
	Muted  bool
}

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *VolumeState
}

// Open opens the settings database under the XDG data directory,
// creating it if needed.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	return openDB(dbPath)
}

func openDB(path string) (*Manager, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Close flushes any pending debounced save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		_ = saveVolume(m.db, *pending)
	}

	return m.db.Close()
}

// Volume returns the saved volume state, defaulting to full volume
// unmuted when nothing has been saved yet.
func (m *Manager) Volume() (VolumeState, error) {
	var v VolumeState
	row := m.db.QueryRow(`SELECT volume, muted FROM volume_state WHERE id = 1`)
	err := row.Scan(&v.Volume, &v.Muted)
	if err == sql.ErrNoRows {
		return VolumeState{Volume: 100, Muted: false}, nil
	}
	if err != nil {
		return VolumeState{}, err
	}
	return v, nil
}

// SaveVolume records the volume state, debounced. Sliders fire many
// times a second; only the settled value reaches disk.
func (m *Manager) SaveVolume(volume int, muted bool) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &VolumeState{Volume: volume, Muted: muted}

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveVolume(m.db, *pending)
		}
	})
}

func saveVolume(db *sql.DB, v VolumeState) error {
	_, err := db.Exec(`
		INSERT INTO volume_state (id, volume, muted)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			muted = excluded.muted
	`, v.Volume, v.Muted)
	return err
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
