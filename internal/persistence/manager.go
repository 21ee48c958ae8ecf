// Package persistence snapshots the basis series to one JSON document
// per calendar day so a restart can resume the day where it left off.
//
// Layout on disk:
//
//	<dir>/<YYYY-MM-DD>/basis_data.json
//
// The day's file is overwritten in place on every save.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/infinityCounter2/basis-stream/internal/metrics"
	"github.com/infinityCounter2/basis-stream/internal/models"
	"github.com/infinityCounter2/basis-stream/internal/session"
	"github.com/mailru/easyjson"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	FileName     = "basis_data.json"
	dayDirLayout = "2006-01-02"
)

// Source provides the data to persist. It must return only the series
// of the current day; *logic.Engine satisfies it by rolling over first.
type Source interface {
	Snapshot() models.Snapshot
}

type Params struct {
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// Dir is the root data directory.
	//
	// Defaults to "data".
	Dir string
	// Interval between periodic saves.
	//
	// Defaults to 60s.
	Interval time.Duration
	// RetentionDays is how many calendar days of snapshots to keep.
	//
	// Defaults to 7.
	RetentionDays int
	// Session gates periodic saves. Defaults to session.DefaultWindows.
	Session session.Clock
	Logger  *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type Manager struct {
	p Params
}

func NewManager(p Params) *Manager {
	if p.Fs == nil {
		p.Fs = afero.NewOsFs()
	}
	if p.Dir == "" {
		p.Dir = "data"
	}
	if p.Interval <= 0 {
		p.Interval = 60 * time.Second
	}
	if p.RetentionDays <= 0 {
		p.RetentionDays = 7
	}
	if p.Session == nil {
		p.Session = session.Windows(session.DefaultWindows)
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	p.Logger = p.Logger.Named("persistence")

	return &Manager{p: p}
}

// Path returns the snapshot file for the date of t.
func (m *Manager) Path(t time.Time) string {
	return filepath.Join(m.p.Dir, t.Format(dayDirLayout), FileName)
}

// Save writes snap as the snapshot for the date of t and returns the
// file path. The file is written to a temporary name and renamed so a
// crash mid-write never leaves a truncated snapshot behind.
func (m *Manager) Save(snap models.Snapshot, t time.Time) (string, error) {
	path := m.Path(t)
	if err := m.p.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	payload, err := easyjson.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(m.p.Fs, tmp, payload, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	if err := m.p.Fs.Rename(tmp, path); err != nil {
		_ = m.p.Fs.Remove(tmp)
		return "", fmt.Errorf("replace snapshot: %w", err)
	}

	return path, nil
}

// Load reads the snapshot for the date of t. found is false, with a nil
// error, when no snapshot exists for that date yet.
func (m *Manager) Load(t time.Time) (snap models.Snapshot, found bool, err error) {
	path := m.Path(t)
	payload, err := afero.ReadFile(m.p.Fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	if err := easyjson.Unmarshal(payload, &snap); err != nil {
		return nil, false, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return snap, true, nil
}

// Cleanup removes day directories older than the retention window.
// Entries that are not day directories are left alone. Every removal is
// attempted; the first failure is returned.
func (m *Manager) Cleanup(now time.Time) error {
	entries, err := afero.ReadDir(m.p.Fs, m.p.Dir)
	if err != nil {
		return fmt.Errorf("list snapshot dirs: %w", err)
	}

	y, mo, d := now.Date()
	cutoff := time.Date(y, mo, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -m.p.RetentionDays)

	var days []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		day, err := time.ParseInLocation(dayDirLayout, e.Name(), now.Location())
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			days = append(days, e.Name())
		}
	}
	sort.Strings(days)

	var firstErr error
	for _, name := range days {
		full := filepath.Join(m.p.Dir, name)
		if err := m.p.Fs.RemoveAll(full); err != nil {
			m.p.Logger.Warn("Failed to remove old snapshot dir", zap.String("path", full), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("remove %s: %w", full, err)
			}
			continue
		}
		m.p.Logger.Info("Removed old snapshot dir", zap.String("path", full))
	}
	return firstErr
}

// SaveNow snapshots src and writes it for the current day, then prunes
// old snapshots. Cleanup failures are logged and do not fail the save.
func (m *Manager) SaveNow(src Source) (string, error) {
	now := m.p.Now()
	start := time.Now()

	// The snapshot is a copy taken under the store's read lock; the disk
	// write below happens without holding it.
	snap := src.Snapshot()
	path, err := m.Save(snap, now)
	if err != nil {
		metrics.SnapshotSaves.WithLabelValues("error").Inc()
		return "", err
	}
	metrics.SnapshotSaves.WithLabelValues("ok").Inc()
	metrics.SnapshotSaveLatency.Observe(time.Since(start).Seconds())

	m.p.Logger.Debug("Saved basis snapshot",
		zap.String("path", path),
		zap.Int("points", snap.Count()),
	)

	if err := m.Cleanup(now); err != nil {
		m.p.Logger.Warn("Snapshot cleanup incomplete", zap.Error(err))
	}
	return path, nil
}

// Run saves src every interval while the session clock reports the
// market open, until ctx is done. A last save is made on the way out if
// still in session.
func (m *Manager) Run(ctx context.Context, src Source) {
	ticker := time.NewTicker(m.p.Interval)
	defer ticker.Stop()

	m.p.Logger.Info("Starting snapshot loop",
		zap.String("dir", m.p.Dir),
		zap.Duration("interval", m.p.Interval),
		zap.Int("retention_days", m.p.RetentionDays),
	)

	for {
		select {
		case <-ctx.Done():
			m.saveInSession(src)
			m.p.Logger.Info("Snapshot loop stopped")
			return
		case <-ticker.C:
			m.saveInSession(src)
		}
	}
}

func (m *Manager) saveInSession(src Source) {
	if !m.p.Session.InSession(m.p.Now()) {
		return
	}
	if _, err := m.SaveNow(src); err != nil {
		// The in-memory series stay authoritative; the next tick retries.
		m.p.Logger.Error("Failed to save basis snapshot", zap.Error(err))
	}
}
