package artifacts

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestEnsure_CreatesPlaceholder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "client_delivery", "packages")
	store := NewStore(dir)

	a, path, err := store.Ensure(Client)
	if err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if a.Filename != "AccessShield-Client-v1.0.0.exe" {
		t.Errorf("unexpected filename %s", a.Filename)
	}
	if path != filepath.Join(dir, "AccessShield-Client-v1.0.0.exe") {
		t.Errorf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read placeholder: %v", err)
	}
	if string(data) != "Access Shield Client Package - Demo Version" {
		t.Errorf("unexpected placeholder content %q", data)
	}
}

func TestEnsure_ReusesExistingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	_, path, err := store.Ensure(Server)
	if err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if err := os.WriteFile(path, []byte("real package"), 0644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	_, again, err := store.Ensure(Server)
	if err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	data, _ := os.ReadFile(again)
	if string(data) != "real package" {
		t.Errorf("expected existing file to be reused, got %q", data)
	}
}

func TestEnsure_ConcurrentFirstRequests(t *testing.T) {
	store := NewStore(t.TempDir())

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := store.Ensure(Client); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Ensure() error = %v", err)
	}

	a, _ := Lookup(Client)
	data, err := os.ReadFile(store.Path(a))
	if err != nil {
		t.Fatalf("read placeholder: %v", err)
	}
	if string(data) != string(a.Placeholder) {
		t.Errorf("unexpected content %q", data)
	}
}

func TestEnsure_Unknown(t *testing.T) {
	_, _, err := NewStore(t.TempDir()).Ensure("desktop")
	if !errors.Is(err, ErrUnknownArtifact) {
		t.Fatalf("expected ErrUnknownArtifact, got %v", err)
	}
}
