package kv

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
)

// ErrHeld is returned by Hold when the key is already held by this store.
var ErrHeld = errors.New("key already held")

// FileStore stores each key in <dir>/<key>.json.
type FileStore struct {
	dir string

	mu   sync.Mutex
	held map[string]*os.File
}

// NewFileStore returns a FileStore rooted at dir. The directory is created on
// first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, held: make(map[string]*os.File)}
}

// Dir returns the directory the store writes into.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) valuePath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) lockPath(key string) string {
	return filepath.Join(s.dir, key+".lock")
}

// Get reads the value for key.
func (s *FileStore) Get(key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.dir); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	var data []byte
	err := s.withLock(key, func() error {
		var err error
		data, err = os.ReadFile(s.valuePath(key))
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set writes value for key atomically via a temp file and rename.
func (s *FileStore) Set(key string, value []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	return s.withLock(key, func() error {
		path := s.valuePath(key)

		if existing, err := os.ReadFile(path); err == nil {
			if bytes.Equal(existing, value) {
				return nil
			}
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("read %s: %w", key, err)
		}

		tmpFile, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp")
		if err != nil {
			return fmt.Errorf("create temp file: %w", err)
		}
		name := tmpFile.Name()
		_, err = tmpFile.Write(value)
		if err1 := tmpFile.Close(); err1 != nil && err == nil {
			err = err1
		}
		if err != nil {
			os.Remove(name)
			return fmt.Errorf("write temp file: %w", err)
		}

		if err := os.Rename(name, path); err != nil {
			os.Remove(name)
			return fmt.Errorf("rename temp file: %w", err)
		}
		return nil
	})
}

// Delete removes the value for key.
func (s *FileStore) Delete(key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	if _, err := os.Stat(s.dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return s.withLock(key, func() error {
		err := os.Remove(s.valuePath(key))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", key, err)
		}
		return nil
	})
}

// Hold takes the key's lock and keeps it until release is called. Get, Set
// and Delete on this store skip locking while the key is held, so a
// load-modify-save sequence runs without another process writing in between.
func (s *FileStore) Hold(key string) (release func() error, err error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.held[key] != nil {
		return nil, fmt.Errorf("%w: %s", ErrHeld, key)
	}

	lockFile, err := s.lock(key)
	if err != nil {
		return nil, err
	}
	s.held[key] = lockFile

	var once sync.Once
	return func() error {
		var err error
		once.Do(func() {
			s.mu.Lock()
			delete(s.held, key)
			s.mu.Unlock()
			err = unlock(lockFile)
		})
		return err
	}, nil
}

// withLock executes fn while holding an exclusive lock on the key's lock file.
func (s *FileStore) withLock(key string, fn func() error) error {
	s.mu.Lock()
	held := s.held[key] != nil
	s.mu.Unlock()
	if held {
		return fn()
	}

	lockFile, err := s.lock(key)
	if err != nil {
		return err
	}
	defer unlock(lockFile)

	return fn()
}

func (s *FileStore) lock(key string) (*os.File, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	lockFile, err := os.OpenFile(s.lockPath(key), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		lockFile.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return lockFile, nil
}

func unlock(lockFile *os.File) error {
	err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)
	if closeErr := lockFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
