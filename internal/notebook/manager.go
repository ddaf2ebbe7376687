// Package notebook handles creation and lookup of experiment folders.
package notebook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/iuga/starlog/internal/config"
	"github.com/iuga/starlog/internal/models"
)

// Manager handles notebook operations.
type Manager struct{}

// NewManager creates a new notebook manager.
func NewManager() *Manager {
	return &Manager{}
}

// CreateOptions contains options for creating a notebook.
type CreateOptions struct {
	Path       string
	Name       string
	ExpVersion string
}

// NotebookWithEntry pairs a loaded notebook with its index entry data.
type NotebookWithEntry struct {
	Notebook *models.Notebook
	Path     string
}

// CreateNotebook creates the folder, writes its notebook.yaml and registers
// it in the global index.
func (m *Manager) CreateNotebook(opts CreateOptions) (*models.Notebook, error) {
	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, err
	}

	if config.NotebookExists(path) {
		return nil, fmt.Errorf("already a starlog notebook: %s", path)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create notebook folder: %w", err)
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(path)
	}
	expVersion := opts.ExpVersion
	if expVersion == "" {
		expVersion = models.NewSettings().Defaults.Version
	}

	notebook := models.NewNotebook(uuid.New().String(), name, expVersion)
	if err := config.SaveNotebook(path, notebook); err != nil {
		return nil, err
	}

	if err := config.RegisterNotebook(notebook.NotebookID, notebook.Name, path); err != nil {
		return nil, err
	}

	return notebook, nil
}

// ListNotebooks returns all registered notebooks with their folder paths.
// Index entries whose notebook.yaml can no longer be loaded are skipped.
func (m *Manager) ListNotebooks() ([]NotebookWithEntry, error) {
	index, err := config.LoadNotebooksIndex()
	if err != nil {
		return nil, err
	}

	var results []NotebookWithEntry
	for _, entry := range index.Notebooks {
		notebook, err := config.LoadNotebook(entry.Path)
		if err != nil || notebook == nil {
			continue
		}
		results = append(results, NotebookWithEntry{
			Notebook: notebook,
			Path:     entry.Path,
		})
	}

	return results, nil
}

// EnsureRegistered loads a folder's notebook.yaml and makes sure it appears
// in the global index. If the index was deleted or the folder moved, any
// folder-scoped command re-registers it automatically.
func (m *Manager) EnsureRegistered(folder string) (*models.Notebook, error) {
	path, err := filepath.Abs(folder)
	if err != nil {
		return nil, err
	}

	notebook, err := config.LoadNotebook(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load notebook: %w", err)
	}
	if notebook == nil {
		return nil, nil
	}

	if err := config.RegisterNotebook(notebook.NotebookID, notebook.Name, path); err != nil {
		return nil, fmt.Errorf("failed to register notebook: %w", err)
	}
	return notebook, nil
}
