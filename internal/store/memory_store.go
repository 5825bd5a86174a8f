package store

import (
	"sync"

	"mlb-scores-service/internal/scoreboard"
)

// Snapshot is one poll cycle's worth of schedule data. Nothing persists
// beyond a cycle; each tick replaces the whole snapshot.
type Snapshot struct {
	Date  string
	Games []scoreboard.Game
	Index scoreboard.TeamGameIndex
}

// MemoryStore keeps a thread-safe snapshot of the latest schedule in memory.
type MemoryStore struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snap: Snapshot{Index: scoreboard.TeamGameIndex{}},
	}
}

// Snapshot returns a copy of the current schedule snapshot.
func (s *MemoryStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]scoreboard.Game, len(s.snap.Games))
	copy(games, s.snap.Games)

	index := make(scoreboard.TeamGameIndex, len(s.snap.Index))
	for team, gameIDs := range s.snap.Index {
		ids := make([]int64, len(gameIDs))
		copy(ids, gameIDs)
		index[team] = ids
	}

	return Snapshot{Date: s.snap.Date, Games: games, Index: index}
}

// GetGame retrieves a game by ID from the current snapshot.
func (s *MemoryStore) GetGame(id int64) (scoreboard.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.snap.Games {
		if g.ID == id {
			return g, true
		}
	}
	return scoreboard.Game{}, false
}

// SetSnapshot replaces the stored schedule with a new snapshot.
func (s *MemoryStore) SetSnapshot(snap Snapshot) {
	if snap.Index == nil {
		snap.Index = scoreboard.TeamGameIndex{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}
