package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Inference describes how to launch the external inference program.
// An empty Command means "use the Python interpreter inside the cached
// virtualenv"; the pipeline resolves that at invocation time.
type Inference struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// Settings is the tool's own configuration, loaded from settings.yaml when
// present and filled with defaults otherwise. It controls file locations and
// the credential profile name, not the run's credentials themselves (those
// come from the .env file).
type Settings struct {
	EnvFile   string    `yaml:"env_file"`
	LogFile   string    `yaml:"log_file"`
	Profile   string    `yaml:"profile"`
	VenvDir   string    `yaml:"venv_dir"`
	TempDir   string    `yaml:"temp_dir"`
	Inference Inference `yaml:"inference"`
}

// DefaultSettings returns the settings used when no settings.yaml exists.
func DefaultSettings() Settings {
	return Settings{
		EnvFile: ".env",
		LogFile: "setup.log",
		Profile: "bedrock",
		VenvDir: ".venv",
		TempDir: os.TempDir(),
		Inference: Inference{
			Args: []string{"bedrock.py"},
		},
	}
}

// LoadSettings reads settings.yaml from the given path. A missing file is
// not an error; defaults apply. A present but malformed file is an error so
// a typo never silently reverts the operator to defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}

	// Re-fill anything the file left empty.
	def := DefaultSettings()
	if s.EnvFile == "" {
		s.EnvFile = def.EnvFile
	}
	if s.LogFile == "" {
		s.LogFile = def.LogFile
	}
	if s.Profile == "" {
		s.Profile = def.Profile
	}
	if s.VenvDir == "" {
		s.VenvDir = def.VenvDir
	}
	if s.TempDir == "" {
		s.TempDir = def.TempDir
	}
	if s.Inference.Command == "" && len(s.Inference.Args) == 0 {
		s.Inference = def.Inference
	}
	return s, nil
}

// ResolveRelative anchors the env file path to the given directory when it
// is not already absolute, mirroring "the invocation directory" semantics.
func (s *Settings) ResolveRelative(dir string) {
	if dir == "" {
		return
	}
	if !filepath.IsAbs(s.EnvFile) {
		s.EnvFile = filepath.Join(dir, s.EnvFile)
	}
}
