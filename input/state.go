// Package input keeps the held state of logical keys and buttons.
//
// Device callbacks write into a State at any time; the simulation reads it
// once per tick through Capture, which returns an immutable Snapshot.
package input

import (
	"sync"

	cfg "github.com/automoto/domain-expansion/config"
)

// State is the live held-state map.
type State struct {
	mu   sync.RWMutex
	held map[cfg.InputID]bool
}

func NewState() *State {
	return &State{held: make(map[cfg.InputID]bool)}
}

// Set records whether id is held.
func (s *State) Set(id cfg.InputID, held bool) {
	s.mu.Lock()
	if held {
		s.held[id] = true
	} else {
		delete(s.held, id)
	}
	s.mu.Unlock()
}

// Release clears every held identifier, e.g. when the window loses focus.
func (s *State) Release() {
	s.mu.Lock()
	clear(s.held)
	s.mu.Unlock()
}

// Capture copies the current held state.
func (s *State) Capture() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(Snapshot, len(s.held))
	for id := range s.held {
		snap[id] = true
	}
	return snap
}

// Snapshot is the held state seen by one tick.
type Snapshot map[cfg.InputID]bool

// Of builds a snapshot with the given identifiers held.
func Of(ids ...cfg.InputID) Snapshot {
	snap := make(Snapshot, len(ids))
	for _, id := range ids {
		snap[id] = true
	}
	return snap
}

func (s Snapshot) Held(id cfg.InputID) bool {
	return s[id]
}

// JustPressed reports a press edge between prev and s.
func (s Snapshot) JustPressed(prev Snapshot, id cfg.InputID) bool {
	return s[id] && !prev[id]
}
