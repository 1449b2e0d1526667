package storage

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestNewMemoryStorageReturnsDefaultBoxCount(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()

	got, err := store.GetBoxCount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DefaultBoxCount() {
		t.Fatalf("expected default box count %d, got %d", DefaultBoxCount(), got)
	}
}

func TestSetBoxCountUpdatesState(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	if err := store.SetBoxCount(8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetBoxCount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
}

func TestSetBoxCountRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	for _, count := range []int{0, -1, -100} {
		count := count
		t.Run(fmt.Sprintf("count_%d", count), func(t *testing.T) {
			store := NewMemoryStorage()
			if err := store.SetBoxCount(count); !errors.Is(err, ErrInvalidBoxCount) {
				t.Fatalf("expected ErrInvalidBoxCount for %d, got %v", count, err)
			}
		})
	}
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewMemoryStorage()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(count int) {
			defer wg.Done()
			if err := store.SetBoxCount(count + 1); err != nil {
				t.Errorf("SetBoxCount failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if _, err := store.GetBoxCount(); err != nil {
				t.Errorf("GetBoxCount failed: %v", err)
			}
		}()
	}

	wg.Wait()

	// final read should succeed
	if _, err := store.GetBoxCount(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
