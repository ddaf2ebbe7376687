// Package models contains shared data structures used across the application.
package models

import "time"

// Notebook represents one experiment folder's metadata.
// This corresponds to the notebook.yaml file inside the folder.
type Notebook struct {
	Version    int       `yaml:"version"`
	NotebookID string    `yaml:"notebook_id"`
	Name       string    `yaml:"name"`
	ExpVersion string    `yaml:"exp_version"` // default experiment version for log calls
	CreatedAt  time.Time `yaml:"created_at"`
}

// NotebookEntry represents an entry in the global notebooks.yaml index.
type NotebookEntry struct {
	NotebookID string `yaml:"notebook_id"`
	Name       string `yaml:"name"`
	Path       string `yaml:"path"`
}

// NotebooksIndex represents the global notebooks.yaml file.
type NotebooksIndex struct {
	Version   int             `yaml:"version"`
	Notebooks []NotebookEntry `yaml:"notebooks"`
}

// NewNotebook creates a notebook with default values.
func NewNotebook(id, name, expVersion string) *Notebook {
	return &Notebook{
		Version:    1,
		NotebookID: id,
		Name:       name,
		ExpVersion: expVersion,
		CreatedAt:  time.Now().UTC(),
	}
}

// NewNotebooksIndex creates a new empty notebooks index.
func NewNotebooksIndex() *NotebooksIndex {
	return &NotebooksIndex{
		Version:   1,
		Notebooks: []NotebookEntry{},
	}
}

// Add appends a notebook to the index.
func (idx *NotebooksIndex) Add(entry NotebookEntry) {
	idx.Notebooks = append(idx.Notebooks, entry)
}

// Remove removes a notebook from the index by ID.
func (idx *NotebooksIndex) Remove(notebookID string) bool {
	for i, n := range idx.Notebooks {
		if n.NotebookID == notebookID {
			idx.Notebooks = append(idx.Notebooks[:i], idx.Notebooks[i+1:]...)
			return true
		}
	}
	return false
}

// Find finds a notebook by ID in the index.
func (idx *NotebooksIndex) Find(notebookID string) *NotebookEntry {
	for i := range idx.Notebooks {
		if idx.Notebooks[i].NotebookID == notebookID {
			return &idx.Notebooks[i]
		}
	}
	return nil
}

// FindByPath finds a notebook by folder path in the index.
func (idx *NotebooksIndex) FindByPath(path string) *NotebookEntry {
	for i := range idx.Notebooks {
		if idx.Notebooks[i].Path == path {
			return &idx.Notebooks[i]
		}
	}
	return nil
}
