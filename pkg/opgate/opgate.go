// Package opgate guards mutating operations against duplicate
// submission: while one call for a logical key is in flight, a second
// one is rejected until the first settles.
package opgate

import (
	"errors"
	"sync"
)

var ErrInFlight = errors.New("operation already in flight")

type Gate struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func New() *Gate {
	return &Gate{inflight: make(map[string]struct{})}
}

// Begin claims key; callers must End it once the operation settles,
// success or failure.
func (g *Gate) Begin(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[key]; busy {
		return ErrInFlight
	}
	g.inflight[key] = struct{}{}
	return nil
}

func (g *Gate) End(key string) {
	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()
}

// Do runs fn under the gate.
func (g *Gate) Do(key string, fn func() error) error {
	if err := g.Begin(key); err != nil {
		return err
	}
	defer g.End(key)
	return fn()
}
