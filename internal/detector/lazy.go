package detector

import (
	"context"
	"sync"
)

// Lazy defers and memoizes detector construction. The first Get performs
// the open; callers arriving while an open is in flight block on it and
// share the outcome. A failed open is not memoized, so the next Get
// attempts initialization again.
type Lazy struct {
	open func(ctx context.Context) (Detector, error)

	mu  sync.Mutex
	det Detector
}

// NewLazy wraps the given constructor. open is invoked at most once per
// successful initialization, under Lazy's lock.
func NewLazy(open func(ctx context.Context) (Detector, error)) *Lazy {
	return &Lazy{open: open}
}

// Get returns the shared detector, initializing it on first use. Errors
// are returned as *InitError.
func (l *Lazy) Get(ctx context.Context) (Detector, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.det != nil {
		return l.det, nil
	}

	det, err := l.open(ctx)
	if err != nil {
		return nil, &InitError{Err: err}
	}
	l.det = det
	return det, nil
}

// Close shuts down the underlying detector if one was created. A later Get
// re-initializes.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.det == nil {
		return nil
	}
	err := l.det.Close()
	l.det = nil
	return err
}
