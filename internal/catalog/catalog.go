// Package catalog holds the in-memory venue hierarchy: venues own halls, halls
// own sessions, and every session owns its own seat grid and orders.
//
// Each hall is the unit of mutual exclusion. Scheduling into a hall and
// booking any of its sessions take the hall's write lock; queries take its
// read lock, so readers never observe a half-applied reservation.
package catalog

import (
	"fmt"
	"strings"
	"sync"
)

// Policy holds the operator-facing limits applied on top of the structural
// invariants. A non-positive field disables that limit.
type Policy struct {
	MaxRows          int
	MaxColumns       int
	MaxSeatsPerOrder int
}

func DefaultPolicy() Policy {
	return Policy{MaxRows: 15, MaxColumns: 30, MaxSeatsPerOrder: 5}
}

func (p Policy) checkDimensions(rows, columns int) error {
	if rows <= 0 || columns <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, columns)
	}
	if p.MaxRows > 0 && rows > p.MaxRows {
		return fmt.Errorf("%w: %d rows exceeds limit of %d", ErrInvalidDimensions, rows, p.MaxRows)
	}
	if p.MaxColumns > 0 && columns > p.MaxColumns {
		return fmt.Errorf("%w: %d columns exceeds limit of %d", ErrInvalidDimensions, columns, p.MaxColumns)
	}
	return nil
}

func (p Policy) checkSeatCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: at least one seat is required", ErrInvalidSeatCount)
	}
	if p.MaxSeatsPerOrder > 0 && n > p.MaxSeatsPerOrder {
		return fmt.Errorf("%w: %d seats exceeds limit of %d", ErrInvalidSeatCount, n, p.MaxSeatsPerOrder)
	}
	return nil
}

// Catalog is the root of the hierarchy. Create one per process with New and
// pass it to whatever needs it.
type Catalog struct {
	policy Policy

	mu     sync.RWMutex
	venues []*Venue
	byName map[string]*Venue
}

func New(policy Policy) *Catalog {
	return &Catalog{
		policy: policy,
		byName: make(map[string]*Venue),
	}
}

func (c *Catalog) Policy() Policy {
	return c.policy
}

// AddVenue registers a venue under a unique name.
func (c *Catalog) AddVenue(name string) (*Venue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: venue name is empty", ErrInvalidName)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrVenueExists, name)
	}

	v := &Venue{name: name, policy: c.policy}
	c.venues = append(c.venues, v)
	c.byName[name] = v
	return v, nil
}

func (c *Catalog) Venue(name string) (*Venue, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.byName[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVenueNotFound, name)
	}
	return v, nil
}

// Venues returns the venues in registration order.
func (c *Catalog) Venues() []*Venue {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*Venue(nil), c.venues...)
}

// Hall resolves a hall by venue name and 1-based hall index.
func (c *Catalog) Hall(venue string, index int) (*Hall, error) {
	v, err := c.Venue(venue)
	if err != nil {
		return nil, err
	}
	return v.Hall(index)
}

// Session resolves a session by venue name, hall index and session number.
func (c *Catalog) Session(venue string, hall, number int) (*Session, error) {
	h, err := c.Hall(venue, hall)
	if err != nil {
		return nil, err
	}
	return h.Session(number)
}

// Reset drops every venue.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.venues = nil
	c.byName = make(map[string]*Venue)
}
