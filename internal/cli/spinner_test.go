package cli

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestSpinnerStop(t *testing.T) {
	s := newSpinner(context.Background(), nil, "Rendering...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
	s.Stop() // idempotent

	if s.Cancelled() {
		t.Error("Stop should not count as cancellation")
	}
}

func TestSpinnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, os.Stderr, "Rendering...")
	s.Start()

	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerInactiveWithoutTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "spin")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	s := newSpinner(context.Background(), f, "Rendering...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	info, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("spinner wrote %d bytes to a non-terminal", info.Size())
	}
}
