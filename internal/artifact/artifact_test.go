package artifact

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/dubbing"
)

func TestScope_CreateUnique(t *testing.T) {
	scope := NewScope(t.TempDir())
	defer scope.Close()

	first, err := scope.Create("audio", ".wav")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := scope.Create("audio", ".wav")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if first == second {
		t.Error("two artifacts share a path")
	}
	if _, err := os.Stat(first); err != nil {
		t.Errorf("artifact path not claimed on disk: %v", err)
	}
}

func TestScope_CloseRemovesAll(t *testing.T) {
	dir := t.TempDir()
	scope := NewScope(dir)

	a, err := scope.Create("a", ".tmp")
	if err != nil {
		t.Fatal(err)
	}
	b, err := scope.WriteFile("b", ".tmp", []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}

	scope.Close()

	for _, p := range []string{a, b} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("artifact %s survived Close", filepath.Base(p))
		}
	}
}

// A failure after the first artifact must still release it, and cleanup must
// not be disturbed by the second artifact never having been created.
func TestScope_CleanupAfterPartialFailure(t *testing.T) {
	dir := t.TempDir()

	var first string
	err := func() (err error) {
		scope := NewScope(dir)
		defer scope.Close()

		first, err = scope.Create("extracted", ".wav")
		if err != nil {
			return err
		}
		return errors.New("extraction failed")
	}()

	if err == nil {
		t.Fatal("expected simulated failure")
	}
	if _, statErr := os.Stat(first); !os.IsNotExist(statErr) {
		t.Error("first artifact leaked after failure")
	}
}

func TestScope_CloseTwice(t *testing.T) {
	scope := NewScope(t.TempDir())
	if _, err := scope.Create("x", ".tmp"); err != nil {
		t.Fatal(err)
	}

	scope.Close()
	scope.Close() // must not panic or error
}

func TestRemove_MissingIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-created.tmp")

	if err := Remove(path); err != nil {
		t.Errorf("removing a missing artifact should be a no-op, got %v", err)
	}
	// Twice, for double-cleanup idempotence.
	if err := Remove(path); err != nil {
		t.Errorf("second removal should also be a no-op, got %v", err)
	}
}

func TestScope_TrackExternalArtifact(t *testing.T) {
	dir := t.TempDir()
	external := filepath.Join(dir, "chunk_000.mp3")
	if err := os.WriteFile(external, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	scope := NewScope(dir)
	scope.Track(external)
	scope.Close()

	if _, err := os.Stat(external); !os.IsNotExist(err) {
		t.Error("tracked artifact survived Close")
	}
}

func TestScope_WorkdirUniquePerScope(t *testing.T) {
	base := t.TempDir()

	a := NewScope(base)
	b := NewScope(base)
	defer a.Close()
	defer b.Close()

	dirA, err := a.Workdir()
	if err != nil {
		t.Fatal(err)
	}
	dirB, err := b.Workdir()
	if err != nil {
		t.Fatal(err)
	}

	if dirA == dirB {
		t.Error("two scopes share a working directory")
	}

	// Repeated calls return the same directory.
	again, err := a.Workdir()
	if err != nil {
		t.Fatal(err)
	}
	if again != dirA {
		t.Error("Workdir is not stable within a scope")
	}

	a.Close()
	if _, err := os.Stat(dirA); !os.IsNotExist(err) {
		t.Error("scope directory survived Close")
	}
}

func TestScope_CreateInMissingDir(t *testing.T) {
	scope := NewScope(filepath.Join(t.TempDir(), "does-not-exist"))
	defer scope.Close()

	_, err := scope.Create("x", ".tmp")
	if err == nil {
		t.Fatal("expected error creating artifact in missing directory")
	}
	if !errors.Is(err, dubbing.ErrArtifactIO) {
		t.Errorf("error = %v, want ErrArtifactIO", err)
	}
}
