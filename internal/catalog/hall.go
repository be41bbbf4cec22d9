package catalog

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Hall struct {
	venue    *Venue
	index    int
	template *SeatGrid // read-only after creation
	policy   Policy

	// mu guards sessions and every session's grid and orders.
	mu       sync.RWMutex
	sessions []*Session
}

func (h *Hall) Venue() *Venue { return h.venue }
func (h *Hall) Index() int    { return h.index }
func (h *Hall) Rows() int     { return h.template.Rows() }
func (h *Hall) Columns() int  { return h.template.Columns() }
func (h *Hall) Capacity() int { return h.template.Rows() * h.template.Columns() }

// AddSession schedules a session in the hall. Existing sessions are scanned in
// insertion order and the first one whose interval conflicts is reported in a
// *ConflictError; the hall is left unchanged in that case.
func (h *Hall) AddSession(name string, iv Interval) (*Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: session name is empty", ErrInvalidName)
	}
	if !iv.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, iv)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, existing := range h.sessions {
		if ConflictsWith(iv, existing.interval) {
			return nil, &ConflictError{Existing: existing.info()}
		}
	}

	s := &Session{
		id:        uuid.New(),
		hall:      h,
		number:    len(h.sessions) + 1,
		name:      name,
		interval:  iv,
		createdAt: time.Now(),
		grid:      h.template.Clone(),
		ordered:   make(map[Seat]struct{}),
	}
	h.sessions = append(h.sessions, s)
	return s, nil
}

// Sessions returns the sessions in insertion order.
func (h *Hall) Sessions() []*Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]*Session(nil), h.sessions...)
}

// Session returns the session with the given 1-based number.
func (h *Hall) Session(number int) (*Session, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if number < 1 || number > len(h.sessions) {
		return nil, fmt.Errorf("%w: session %d in hall %d of venue %q", ErrSessionNotFound, number, h.index, h.venue.name)
	}
	return h.sessions[number-1], nil
}

// SessionsByName lists every session in the hall carrying name, in insertion
// order. Picking one of several candidates is left to the caller.
func (h *Hall) SessionsByName(name string) []*Session {
	name = strings.TrimSpace(name)
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []*Session
	for _, s := range h.sessions {
		if s.name == name {
			out = append(out, s)
		}
	}
	return out
}
