package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Order is a completed reservation of one or more seats for a customer.
type Order struct {
	ID        uuid.UUID
	Customer  string
	Seats     []Seat
	Count     int
	CreatedAt time.Time
}

// SessionInfo identifies a session for display and error reporting.
type SessionInfo struct {
	ID       uuid.UUID
	Venue    string
	Hall     int
	Number   int
	Name     string
	Interval Interval
}

// Session is one scheduled showing. Its grid and orders are guarded by the
// owning hall's lock.
type Session struct {
	id        uuid.UUID
	hall      *Hall
	number    int
	name      string
	interval  Interval
	createdAt time.Time

	grid    *SeatGrid
	orders  []Order
	ordered map[Seat]struct{}
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) Hall() *Hall          { return s.hall }
func (s *Session) Number() int          { return s.number }
func (s *Session) Name() string         { return s.name }
func (s *Session) Interval() Interval   { return s.interval }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) Info() SessionInfo    { return s.info() }

func (s *Session) info() SessionInfo {
	return SessionInfo{
		ID:       s.id,
		Venue:    s.hall.venue.name,
		Hall:     s.hall.index,
		Number:   s.number,
		Name:     s.name,
		Interval: s.interval,
	}
}

// Reserve marks a single seat reserved without recording an order. The seat
// stays held until RecordOrder claims it.
func (s *Session) Reserve(seat Seat) error {
	s.hall.mu.Lock()
	defer s.hall.mu.Unlock()
	return s.grid.Reserve(seat)
}

func (s *Session) IsFree(seat Seat) (bool, error) {
	s.hall.mu.RLock()
	defer s.hall.mu.RUnlock()
	return s.grid.IsFree(seat)
}

// Book reserves seats in the order given and appends one Order covering all of
// them. Seats are checked one by one before anything is written, so on failure
// the returned *SeatError names the first seat the caller has to replace and
// the grid is unchanged.
func (s *Session) Book(customer string, seats []Seat) (Order, error) {
	customer, err := checkCustomer(customer)
	if err != nil {
		return Order{}, err
	}
	if err := s.hall.policy.checkSeatCount(len(seats)); err != nil {
		return Order{}, err
	}

	s.hall.mu.Lock()
	defer s.hall.mu.Unlock()

	picked := make(map[Seat]struct{}, len(seats))
	for _, seat := range seats {
		if err := s.grid.check(seat); err != nil {
			return Order{}, err
		}
		if _, dup := picked[seat]; dup {
			return Order{}, &SeatError{Seat: seat, Err: ErrSeatAlreadyReserved}
		}
		picked[seat] = struct{}{}
	}

	for _, seat := range seats {
		s.grid.reserved[seat.Row-1][seat.Column-1] = true
	}
	return s.appendOrder(customer, seats), nil
}

// RecordOrder turns seats previously held with Reserve into an order. Every
// seat must be reserved and not yet part of another order.
func (s *Session) RecordOrder(customer string, seats []Seat) (Order, error) {
	customer, err := checkCustomer(customer)
	if err != nil {
		return Order{}, err
	}
	if err := s.hall.policy.checkSeatCount(len(seats)); err != nil {
		return Order{}, err
	}

	s.hall.mu.Lock()
	defer s.hall.mu.Unlock()

	picked := make(map[Seat]struct{}, len(seats))
	for _, seat := range seats {
		free, err := s.grid.IsFree(seat)
		if err != nil {
			return Order{}, err
		}
		_, claimed := s.ordered[seat]
		_, dup := picked[seat]
		if free || claimed || dup {
			return Order{}, &SeatError{Seat: seat, Err: ErrSeatNotHeld}
		}
		picked[seat] = struct{}{}
	}

	return s.appendOrder(customer, seats), nil
}

func checkCustomer(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: customer name is empty", ErrInvalidName)
	}
	return name, nil
}

// appendOrder requires the hall write lock.
func (s *Session) appendOrder(customer string, seats []Seat) Order {
	o := Order{
		ID:        uuid.New(),
		Customer:  customer,
		Seats:     append([]Seat(nil), seats...),
		Count:     len(seats),
		CreatedAt: time.Now(),
	}
	for _, seat := range seats {
		s.ordered[seat] = struct{}{}
	}
	s.orders = append(s.orders, o)
	return copyOrder(o)
}

func copyOrder(o Order) Order {
	o.Seats = append([]Seat(nil), o.Seats...)
	return o
}

// Orders returns copies of the session's orders in creation order.
func (s *Session) Orders() []Order {
	s.hall.mu.RLock()
	defer s.hall.mu.RUnlock()

	out := make([]Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = copyOrder(o)
	}
	return out
}

// Held lists seats reserved through Reserve that no order claims yet.
func (s *Session) Held() []Seat {
	s.hall.mu.RLock()
	defer s.hall.mu.RUnlock()

	var out []Seat
	for r, row := range s.grid.reserved {
		for c, taken := range row {
			seat := Seat{Row: r + 1, Column: c + 1}
			if _, claimed := s.ordered[seat]; taken && !claimed {
				out = append(out, seat)
			}
		}
	}
	return out
}

// Grid returns a consistent copy of the session's seat grid.
func (s *Session) Grid() *SeatGrid {
	s.hall.mu.RLock()
	defer s.hall.mu.RUnlock()
	return s.grid.Clone()
}

func (s *Session) HasFreeRun(n int) bool {
	s.hall.mu.RLock()
	defer s.hall.mu.RUnlock()
	return s.grid.HasFreeRun(n)
}

func (s *Session) String() string {
	return fmt.Sprintf("%s %s", s.name, s.interval)
}
