package config

import (
	"github.com/iuga/starlog/internal/models"
)

// LoadNotebooksIndex loads the notebook index from ~/.starlog/notebooks.yaml.
// If the file doesn't exist, returns an empty index.
func LoadNotebooksIndex() (*models.NotebooksIndex, error) {
	path, err := GlobalNotebooksFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewNotebooksIndex)
}

// SaveNotebooksIndex saves the notebook index to ~/.starlog/notebooks.yaml.
func SaveNotebooksIndex(index *models.NotebooksIndex) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := GlobalNotebooksFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, index)
}

// LoadNotebook loads a folder's notebook.yaml.
// Returns nil without error when the folder has no notebook file.
func LoadNotebook(folder string) (*models.Notebook, error) {
	path := NotebookFile(folder)

	if !FileExists(path) {
		return nil, nil
	}

	var notebook models.Notebook
	if err := LoadYAML(path, &notebook); err != nil {
		return nil, err
	}
	return &notebook, nil
}

// SaveNotebook saves a notebook to its folder's notebook.yaml.
func SaveNotebook(folder string, notebook *models.Notebook) error {
	return SaveYAML(NotebookFile(folder), notebook)
}

// RegisterNotebook adds a notebook to the global index, updating the stored
// name and path when the ID is already registered.
func RegisterNotebook(notebookID, name, path string) error {
	index, err := LoadNotebooksIndex()
	if err != nil {
		return err
	}

	if existing := index.Find(notebookID); existing != nil {
		existing.Name = name
		existing.Path = path
		return SaveNotebooksIndex(index)
	}

	index.Add(models.NotebookEntry{
		NotebookID: notebookID,
		Name:       name,
		Path:       path,
	})

	return SaveNotebooksIndex(index)
}

// UnregisterNotebook removes a notebook from the global index.
func UnregisterNotebook(notebookID string) error {
	index, err := LoadNotebooksIndex()
	if err != nil {
		return err
	}

	if !index.Remove(notebookID) {
		return nil // Not found, nothing to do
	}

	return SaveNotebooksIndex(index)
}
