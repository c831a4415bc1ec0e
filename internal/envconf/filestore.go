// SPDX-License-Identifier: MPL-2.0

package envconf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// FileName is the name of the state file inside the working directory.
const FileName = "factory.toml"

// Keys owned by this package inside the state file.
const (
	keySpecies     = "species"
	keySetupStamp  = "setup_stamp"
	keyActivateEnv = "activate_env"
	keyInstaller   = "installer"
)

// Compile-time interface check
var _ Store = (*FileStore)(nil)

// FileStore persists Records to a TOML file in the working directory.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the working directory root.
func NewFileStore(root string) *FileStore {
	return &FileStore{path: filepath.Join(root, FileName)}
}

// Path returns the location of the state file.
func (s *FileStore) Path() string { return s.path }

// Read loads the state file. A missing file yields an empty Record.
func (s *FileStore) Read() (Record, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return Record{}, nil
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return Record{}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	settings := v.AllSettings()
	rec := Record{
		Species:     cast.ToString(settings[keySpecies]),
		SetupStamp:  cast.ToInt64(settings[keySetupStamp]),
		ActivateEnv: cast.ToString(settings[keyActivateEnv]),
		Installer:   cast.ToString(settings[keyInstaller]),
		Extra:       make(map[string]any),
	}
	for key, value := range settings {
		switch key {
		case keySpecies, keySetupStamp, keyActivateEnv, keyInstaller:
		default:
			rec.Extra[key] = value
		}
	}
	return rec, nil
}

// Write persists the record atomically (temp file + rename), merging the
// record's own fields over any Extra keys. Unset fields are written as
// absent, not as empty values, so a later Read round-trips to the same
// zero-valued Record.
func (s *FileStore) Write(rec Record) error {
	merged := make(map[string]any, len(rec.Extra)+4)
	for key, value := range rec.Extra {
		merged[key] = value
	}
	if rec.Species != "" {
		merged[keySpecies] = rec.Species
	}
	if rec.SetupStamp != 0 {
		merged[keySetupStamp] = rec.SetupStamp
	}
	if rec.ActivateEnv != "" {
		merged[keyActivateEnv] = rec.ActivateEnv
	}
	if rec.Installer != "" {
		merged[keyInstaller] = rec.Installer
	}

	data, err := toml.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()        //nolint:errcheck // already failing
		os.Remove(tmpName) //nolint:errcheck // best effort cleanup
		return fmt.Errorf("failed to write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck // best effort cleanup
		return fmt.Errorf("failed to close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName) //nolint:errcheck // best effort cleanup
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
