package daemon_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kfir19/MyLibrary/internal/daemon"
	"github.com/kfir19/MyLibrary/internal/models"
)

type fakeLister struct {
	mu    sync.Mutex
	calls int
	errOn map[int]error
	books []models.Book
}

func (f *fakeLister) ListOverdue(ctx context.Context, asOf time.Time) ([]models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err, ok := f.errOn[f.calls]; ok {
		return nil, err
	}
	return f.books, nil
}

func (f *fakeLister) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func waitForCalls(t *testing.T, f *fakeLister, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for f.callCount() < want {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d scans, got %d", want, f.callCount())
		case <-time.After(time.Millisecond):
		}
	}
}

func TestOverdueScanner_FiresImmediatelyThenPeriodically(t *testing.T) {
	due := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	f := &fakeLister{books: []models.Book{{Title: "Dune", DueDate: &due}}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := &daemon.OverdueScanner{Catalog: f, Period: 5 * time.Millisecond}
	s.Start(ctx)

	waitForCalls(t, f, 3)
}

func TestOverdueScanner_ContinuesAfterFailure(t *testing.T) {
	f := &fakeLister{errOn: map[int]error{1: errors.New("store down")}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := &daemon.OverdueScanner{Catalog: f, Period: 5 * time.Millisecond}
	s.Start(ctx)

	// first firing fails; the schedule must survive it
	waitForCalls(t, f, 2)
}

func TestOverdueScanner_StopsOnCancel(t *testing.T) {
	f := &fakeLister{}

	ctx, cancel := context.WithCancel(context.Background())

	s := &daemon.OverdueScanner{Catalog: f, Period: 5 * time.Millisecond}
	s.Start(ctx)

	waitForCalls(t, f, 2)
	cancel()

	time.Sleep(20 * time.Millisecond)
	after := f.callCount()
	time.Sleep(30 * time.Millisecond)

	if got := f.callCount(); got != after {
		t.Errorf("scanner kept firing after cancel: %d -> %d", after, got)
	}
}
