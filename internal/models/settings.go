package models

// DefaultsConfig holds the defaults applied when a log call omits
// identifiers or the folder.
type DefaultsConfig struct {
	Folder  string `yaml:"folder"`
	Version string `yaml:"version"`
}

// Settings represents global application settings.
// This corresponds to ~/.starlog/settings.yaml.
type Settings struct {
	Version  int            `yaml:"version"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Defaults: DefaultsConfig{
			Folder:  "./starlog",
			Version: "1.0",
		},
	}
}
