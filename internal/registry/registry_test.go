package registry

import (
	"testing"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
)

func stubFactory(puzzle.Scene, puzzle.Options) puzzle.Puzzle { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-stub", "Stub", stubFactory)

	if !Exists("test-stub") {
		t.Fatal("Exists(test-stub) = false, want true")
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-stub" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("Title = %q, want %q", info.Title, "Stub")
			}
		}
	}
	if !found {
		t.Error("List() does not contain test-stub")
	}

	if _, err := Create("test-stub", nil, puzzle.DefaultOptions()); err != nil {
		t.Errorf("Create() error = %v", err)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-puzzle", nil, puzzle.DefaultOptions()); err == nil {
		t.Error("Create(no-such-puzzle) error = nil, want error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", stubFactory)

	defer func() {
		if recover() == nil {
			t.Error("second Register did not panic")
		}
	}()
	Register("test-dup", "Dup", stubFactory)
}
