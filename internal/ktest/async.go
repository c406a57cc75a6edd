package ktest

import (
	"sync"
)

// Group runs the goroutines of a test, typically the two ends of a pairing.
// A panic in one of them is re-raised by Wait on the test goroutine.
type Group struct {
	wg sync.WaitGroup

	mu       sync.Mutex
	panicked any
}

func Scope() *Group { return new(Group) }

func (g *Group) Go(cb func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			if v := recover(); v != nil {
				g.mu.Lock()
				if g.panicked == nil {
					g.panicked = v
				}
				g.mu.Unlock()
			}
		}()
		cb()
	}()
}

func (g *Group) Wait() {
	g.wg.Wait()
	g.mu.Lock()
	v := g.panicked
	g.mu.Unlock()
	if v != nil {
		panic(v)
	}
}
