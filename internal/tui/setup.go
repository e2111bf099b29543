package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/javiermolinar/weekly/internal/config"
	"github.com/javiermolinar/weekly/internal/db"
	"github.com/javiermolinar/weekly/internal/todo"
)

// SetupFile is a file weekly creates on first run.
type SetupFile struct {
	Kind string // "config" or "database"
	Path string
}

// Setup lists what is missing before the week can load.
type Setup struct {
	Files []SetupFile
}

// Needed reports whether the setup modal must be shown.
func (s Setup) Needed() bool {
	return len(s.Files) > 0
}

func (s Setup) missing(kind string) (string, bool) {
	for _, f := range s.Files {
		if f.Kind == kind {
			return f.Path, true
		}
	}
	return "", false
}

// DetectSetup checks configPath and the configured database for existence.
func DetectSetup(cfg *config.Config, configPath string) (Setup, error) {
	var s Setup
	for _, f := range []SetupFile{
		{Kind: "config", Path: configPath},
		{Kind: "database", Path: cfg.Storage.DBPath},
	} {
		exists, err := fileExists(f.Path)
		if err != nil {
			return Setup{}, fmt.Errorf("checking %s path: %w", f.Kind, err)
		}
		if !exists {
			s.Files = append(s.Files, f)
		}
	}
	return s, nil
}

func fileExists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// OpenRepo opens the SQLite store at dbPath, creating its directory.
func OpenRepo(dbPath string) (todo.Repository, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

// runSetup writes the default config and opens the database.
func (m Model) runSetup() (Model, error) {
	if path, ok := m.setup.missing("config"); ok {
		if err := m.config.SaveTo(path); err != nil {
			return m, fmt.Errorf("saving config: %w", err)
		}
	}
	if m.repo == nil {
		repo, err := OpenRepo(m.config.Storage.DBPath)
		if err != nil {
			return m, err
		}
		m.repo = repo
	}
	m.setup = Setup{}
	return m, nil
}
