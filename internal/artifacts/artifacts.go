// Package artifacts manages the placeholder files served by the download
// endpoints until real client and server packages are published.
package artifacts

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
)

var ErrUnknownArtifact = errors.New("unknown artifact")

const (
	Client = "access-shield-client"
	Server = "access-shield-server"
)

// Artifact is a downloadable file with fixed placeholder content.
type Artifact struct {
	Name        string
	Filename    string
	ContentType string
	Placeholder []byte
}

var known = map[string]Artifact{
	Client: {
		Name:        Client,
		Filename:    "AccessShield-Client-v1.0.0.exe",
		ContentType: "application/octet-stream",
		Placeholder: []byte("Access Shield Client Package - Demo Version"),
	},
	Server: {
		Name:        Server,
		Filename:    "AccessShield-Server-v1.0.0.zip",
		ContentType: "application/zip",
		Placeholder: []byte("Access Shield Server Package - Demo Version"),
	},
}

// Lookup returns the artifact registered under name.
func Lookup(name string) (Artifact, error) {
	a, ok := known[name]
	if !ok {
		return Artifact{}, fmt.Errorf("%w: %s", ErrUnknownArtifact, name)
	}
	return a, nil
}

// Store keeps artifacts in a single directory.
type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path is where the artifact lives on disk.
func (s *Store) Path(a Artifact) string {
	return filepath.Join(s.dir, a.Filename)
}

// Ensure returns the artifact and its path, writing the placeholder bytes
// first if the file does not exist yet. An existing file is never touched.
func (s *Store) Ensure(name string) (Artifact, string, error) {
	a, err := Lookup(name)
	if err != nil {
		return Artifact{}, "", err
	}
	path := s.Path(a)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(path); err == nil {
		return a, path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return Artifact{}, "", err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return Artifact{}, "", fmt.Errorf("failed to create delivery directory: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(a.Placeholder)); err != nil {
		return Artifact{}, "", fmt.Errorf("failed to create %s: %w", a.Filename, err)
	}

	return a, path, nil
}
