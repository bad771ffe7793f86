package credstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const fileName = "credentials.json"

// FileStore persists credentials as a single JSON document under dir,
// written atomically via a temp file and rename so a crash mid-write leaves
// either the old document or the new one, never a torn file.
type FileStore struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// NewFileStore returns a FileStore rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string, log zerolog.Logger) *FileStore {
	return &FileStore{
		path: filepath.Join(dir, fileName),
		log:  log,
	}
}

func (s *FileStore) Set(_ context.Context, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	data[key] = value
	s.save(data)
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.load()[key]
	return value, ok
}

func (s *FileStore) Remove(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	if _, ok := data[key]; !ok {
		return
	}
	delete(data, key)
	s.save(data)
}

func (s *FileStore) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn().Err(err).Str("path", s.path).Msg("credstore: clear failed")
	}
}

func (s *FileStore) load() map[string]string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("credstore: read failed")
		}
		return map[string]string{}
	}

	data := map[string]string{}
	if err := json.Unmarshal(raw, &data); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("credstore: corrupt document, treating as empty")
		return map[string]string{}
	}
	return data
}

func (s *FileStore) save(data map[string]string) {
	raw, err := json.Marshal(data)
	if err != nil {
		s.log.Warn().Err(err).Msg("credstore: encode failed")
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("credstore: mkdir failed")
		return
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		s.log.Warn().Err(err).Str("path", tmp).Msg("credstore: write failed")
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("credstore: rename failed")
	}
}
