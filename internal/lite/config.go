// Package lite implements the single-tenant deployment variant: no
// accounts, no database — just a YAML file listing local/remote JSON
// repositories that are fetched and searched on every request.
package lite

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrRepositoryExists   = errors.New("repository already exists")
	ErrRepositoryNotFound = errors.New("repository not found")
)

// Config is the YAML document on disk.
type Config struct {
	Repositories []string `yaml:"local_files"`
}

// FileStore reads and writes the repository list. Writes are serialized;
// the file is the single source of truth and re-read on every operation.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store over the YAML file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the config file.
func (s *FileStore) Load() (Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("configuration file not found: %s", s.path)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (s *FileStore) save(cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// List returns the configured repository locations.
func (s *FileStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	return cfg.Repositories, nil
}

// Add appends a repository location to the config file.
func (s *FileStore) Add(location string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	for _, r := range cfg.Repositories {
		if r == location {
			return ErrRepositoryExists
		}
	}
	cfg.Repositories = append(cfg.Repositories, location)
	return s.save(cfg)
}

// Remove deletes a repository location from the config file.
func (s *FileStore) Remove(location string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	for i, r := range cfg.Repositories {
		if r == location {
			cfg.Repositories = append(cfg.Repositories[:i], cfg.Repositories[i+1:]...)
			return s.save(cfg)
		}
	}
	return ErrRepositoryNotFound
}
