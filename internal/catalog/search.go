package catalog

import (
	"fmt"
	"strings"
)

// Match is one result of a catalog-wide session search.
type Match struct {
	Venue   *Venue
	Hall    *Hall
	Session *Session
}

// FindSessions scans every venue, hall and session in registration order and
// returns the sessions named name that have at least minAdjacentFree adjacent
// free seats in one row. minAdjacentFree == 0 disables the seat filter.
// Names are compared after trimming surrounding spaces, as they are stored.
//
// ErrSessionNameNotFound means no session anywhere carries the name;
// ErrNoQualifyingSession means some do but none has a large enough free block.
func (c *Catalog) FindSessions(name string, minAdjacentFree int) ([]Match, error) {
	name = strings.TrimSpace(name)
	if minAdjacentFree < 0 {
		return nil, fmt.Errorf("%w: %d adjacent seats", ErrInvalidSeatCount, minAdjacentFree)
	}

	var (
		matches []Match
		named   bool
	)
	for _, v := range c.Venues() {
		for _, h := range v.Halls() {
			h.mu.RLock()
			for _, s := range h.sessions {
				if s.name != name {
					continue
				}
				named = true
				if s.grid.HasFreeRun(minAdjacentFree) {
					matches = append(matches, Match{Venue: v, Hall: h, Session: s})
				}
			}
			h.mu.RUnlock()
		}
	}

	if !named {
		return nil, fmt.Errorf("%w: %q", ErrSessionNameNotFound, name)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q with %d adjacent free seats", ErrNoQualifyingSession, name, minAdjacentFree)
	}
	return matches, nil
}
