package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kith-cli/internal/logger"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

var log = logger.Named("config")

// FileName is the configuration file kept in the data directory.
const FileName = "config.toml"

// ConfigStore keeps settings in a TOML file. Dotted keys address nested
// tables: "reminders.enabled" is enabled under [reminders].
type ConfigStore struct {
	mu   sync.RWMutex
	path string
	doc  map[string]any
}

// NewConfigStore opens dir/config.toml, creating dir if needed. An empty
// dir means ~/.kith. A missing file is an empty configuration.
func NewConfigStore(dir string) (*ConfigStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".kith")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{path: filepath.Join(dir, FileName), doc: map[string]any{}}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.path
}

func (s *ConfigStore) Lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node := s.doc
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		table, ok := node[part].(map[string]any)
		if !ok {
			return nil, false
		}
		node = table
	}
	v, ok := node[parts[len(parts)-1]]
	return v, ok
}

// Int reads TOML integers, which decode as int64.
func (s *ConfigStore) Int(key string) (int, bool) {
	v, _ := s.Lookup(key)
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func (s *ConfigStore) Bool(key string) (bool, bool) {
	v, _ := s.Lookup(key)
	b, ok := v.(bool)
	return b, ok
}

// Set writes the whole file with value under key. On error the file and
// the in-memory values are unchanged.
func (s *ConfigStore) Set(key string, value any) error {
	parts := strings.Split(key, ".")
	for _, part := range parts {
		if part == "" {
			return fmt.Errorf("invalid config key %q", key)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneTable(s.doc)
	node := next
	for i, part := range parts[:len(parts)-1] {
		child, exists := node[part]
		if !exists {
			table := map[string]any{}
			node[part] = table
			node = table
			continue
		}
		table, ok := child.(map[string]any)
		if !ok {
			return fmt.Errorf("config key %q: %s is not a table", key, strings.Join(parts[:i+1], "."))
		}
		node = table
	}
	node[parts[len(parts)-1]] = value

	if err := s.write(next); err != nil {
		return err
	}
	s.doc = next
	return nil
}

// write replaces the file through a temporary sibling so readers and the
// watcher never see a partial file.
func (s *ConfigStore) write(doc map[string]any) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("writing config: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("writing config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Reload re-reads the file. A file that fails to parse leaves the current
// values in place.
func (s *ConfigStore) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	doc := map[string]any{}
	if len(data) > 0 {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing %s: %w", s.path, err)
		}
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

// Watch reloads the file whenever it changes on disk and calls onChange
// after each successful reload. It blocks until ctx is done.
//
// The directory is watched rather than the file so replacements by rename,
// including our own writes, are seen.
func (s *ConfigStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !s.changedBy(event) {
				continue
			}
			if err := s.Reload(); err != nil {
				log.Warn("reload failed: %v", err)
				continue
			}
			log.Debug("reloaded %s", s.path)
			if onChange != nil {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher: %v", err)
		}
	}
}

// changedBy reports whether event touched the config file's contents.
func (s *ConfigStore) changedBy(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(s.path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func cloneTable(t map[string]any) map[string]any {
	out := make(map[string]any, len(t))
	for k, v := range t {
		if sub, ok := v.(map[string]any); ok {
			v = cloneTable(sub)
		}
		out[k] = v
	}
	return out
}
