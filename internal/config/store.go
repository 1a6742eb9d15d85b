package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	merrors "github.com/strickvl/matcha/internal/errors"
)

// Store is the loaded global configuration record bound to its backing file.
// Reads never touch disk after Open; every mutation writes the whole record
// back to the same path.
type Store struct {
	path   string
	record GlobalParameters
}

// Open loads the global configuration record at path, creating the file with
// a fresh identifier if it does not exist. An empty path means the default
// per-user location.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, translatePermission(path, err)
		}
		return create(path)
	}

	return load(path)
}

// create writes a brand new record with a fresh identifier.
func create(path string) (*Store, error) {
	s := &Store{
		path: path,
		record: GlobalParameters{
			UserID:          uuid.NewString(),
			AnalyticsOptOut: false,
		},
	}
	if err := s.flush(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads and parses an existing record.
func load(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, merrors.NewPermissionError(path, err)
		}
		return nil, merrors.NewMalformedConfigError(path, err)
	}

	var record GlobalParameters
	if err := v.Unmarshal(&record); err != nil {
		return nil, merrors.NewMalformedConfigError(path, err)
	}

	return &Store{path: path, record: record}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// UserID returns the stable anonymous identifier.
func (s *Store) UserID() string {
	return s.record.UserID
}

// AnalyticsOptOut reports whether the user opted out of usage analytics.
func (s *Store) AnalyticsOptOut() bool {
	return s.record.AnalyticsOptOut
}

// SetAnalyticsOptOut updates the opt-out flag and immediately persists the
// whole record.
func (s *Store) SetAnalyticsOptOut(value bool) error {
	s.record.AnalyticsOptOut = value
	return s.flush()
}

// flush serializes the record to the backing file, creating parent
// directories as needed.
func (s *Store) flush() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return translatePermission(dir, err)
	}

	data, err := yaml.Marshal(&s.record)
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return translatePermission(s.path, err)
	}
	return nil
}

// translatePermission converts permission failures into the dedicated
// user-facing error; anything else propagates as-is.
func translatePermission(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return merrors.NewPermissionError(path, err)
	}
	return err
}
