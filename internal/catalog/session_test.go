package catalog

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOrdersCoverGrid checks that every reserved seat belongs to exactly one
// order and every order seat is reserved.
func assertOrdersCoverGrid(t *testing.T, s *Session) {
	t.Helper()

	owners := make(map[Seat]int)
	for _, o := range s.Orders() {
		assert.Equal(t, len(o.Seats), o.Count, "order count must equal seat list length")
		for _, seat := range o.Seats {
			owners[seat]++
		}
	}

	cells := s.Grid().Cells()
	for r, row := range cells {
		for c, taken := range row {
			seat := Seat{Row: r + 1, Column: c + 1}
			if taken {
				assert.Equal(t, 1, owners[seat], "reserved seat %v", seat)
			} else {
				assert.Zero(t, owners[seat], "free seat %v", seat)
			}
		}
	}
}

func TestBook(t *testing.T) {
	h := newHall(t, 4, 4)
	s, err := h.AddSession("X", iv("12:00", "13:00"))
	require.NoError(t, err)

	seats := []Seat{{1, 3}, {1, 1}, {2, 2}}
	order, err := s.Book("Alice", seats)
	require.NoError(t, err)
	assert.Equal(t, "Alice", order.Customer)
	assert.Equal(t, seats, order.Seats, "seats keep caller order")
	assert.Equal(t, 3, order.Count)
	assert.NotEmpty(t, order.ID)

	for _, seat := range seats {
		free, err := s.IsFree(seat)
		require.NoError(t, err)
		assert.False(t, free)
	}
	assertOrdersCoverGrid(t, s)
}

func TestBook_FailureLeavesNoTrace(t *testing.T) {
	h := newHall(t, 4, 4)
	s, err := h.AddSession("X", iv("12:00", "13:00"))
	require.NoError(t, err)
	_, err = s.Book("Alice", []Seat{{1, 1}})
	require.NoError(t, err)
	before := s.Grid().Cells()

	tests := []struct {
		name  string
		seats []Seat
		want  error
		bad   Seat
	}{
		{"already reserved", []Seat{{2, 1}, {1, 1}}, ErrSeatAlreadyReserved, Seat{1, 1}},
		{"out of range", []Seat{{2, 1}, {5, 1}}, ErrOutOfRange, Seat{5, 1}},
		{"duplicate in request", []Seat{{2, 1}, {2, 1}}, ErrSeatAlreadyReserved, Seat{2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Book("Bob", tt.seats)
			require.ErrorIs(t, err, tt.want)

			var seatErr *SeatError
			require.True(t, errors.As(err, &seatErr))
			assert.Equal(t, tt.bad, seatErr.Seat)

			assert.Equal(t, before, s.Grid().Cells())
			assert.Len(t, s.Orders(), 1)
		})
	}
	assertOrdersCoverGrid(t, s)
}

func TestBook_SeatCountPolicy(t *testing.T) {
	h := newHall(t, 4, 10)
	s, err := h.AddSession("X", iv("12:00", "13:00"))
	require.NoError(t, err)

	_, err = s.Book("Alice", nil)
	assert.ErrorIs(t, err, ErrInvalidSeatCount)

	six := []Seat{{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}}
	_, err = s.Book("Alice", six)
	assert.ErrorIs(t, err, ErrInvalidSeatCount)

	_, err = s.Book("Alice", six[:5])
	assert.NoError(t, err)
}

func TestSessionsHaveIndependentGrids(t *testing.T) {
	h := newHall(t, 3, 3)
	first, err := h.AddSession("X", iv("12:00", "13:00"))
	require.NoError(t, err)
	second, err := h.AddSession("X", iv("13:00", "14:00"))
	require.NoError(t, err)

	_, err = first.Book("Alice", []Seat{{1, 1}, {2, 2}})
	require.NoError(t, err)

	free, err := second.IsFree(Seat{Row: 1, Column: 1})
	require.NoError(t, err)
	assert.True(t, free)
	assert.Equal(t, 9, second.Grid().FreeCount())

	_, err = second.Book("Bob", []Seat{{1, 1}})
	assert.NoError(t, err)
	assert.Equal(t, 7, first.Grid().FreeCount())
}

func TestReserveThenRecordOrder(t *testing.T) {
	h := newHall(t, 2, 4)
	s, err := h.AddSession("X", iv("12:00", "13:00"))
	require.NoError(t, err)

	require.NoError(t, s.Reserve(Seat{1, 1}))
	require.NoError(t, s.Reserve(Seat{1, 2}))
	assert.ErrorIs(t, s.Reserve(Seat{1, 1}), ErrSeatAlreadyReserved)
	assert.ErrorIs(t, s.Reserve(Seat{3, 1}), ErrOutOfRange)
	assert.Equal(t, []Seat{{1, 1}, {1, 2}}, s.Held())

	_, err = s.RecordOrder("Alice", []Seat{{1, 1}, {1, 3}})
	assert.ErrorIs(t, err, ErrSeatNotHeld, "unreserved seat cannot be ordered")
	_, err = s.RecordOrder("Alice", []Seat{{1, 1}, {1, 1}})
	assert.ErrorIs(t, err, ErrSeatNotHeld, "seat listed twice")
	_, err = s.RecordOrder("Alice", []Seat{{0, 1}})
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Empty(t, s.Orders())

	order, err := s.RecordOrder("Alice", []Seat{{1, 1}, {1, 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, order.Count)
	assert.Empty(t, s.Held())

	_, err = s.RecordOrder("Bob", []Seat{{1, 2}})
	assert.ErrorIs(t, err, ErrSeatNotHeld, "seat already claimed by an order")
	assertOrdersCoverGrid(t, s)
}

func TestOrdersReturnsCopies(t *testing.T) {
	h := newHall(t, 2, 2)
	s, err := h.AddSession("X", iv("12:00", "13:00"))
	require.NoError(t, err)
	_, err = s.Book("Alice", []Seat{{1, 1}})
	require.NoError(t, err)

	orders := s.Orders()
	orders[0].Seats[0] = Seat{2, 2}
	assert.Equal(t, Seat{1, 1}, s.Orders()[0].Seats[0])
}

func TestBook_ConcurrentSameSeatHasOneWinner(t *testing.T) {
	h := newHall(t, 5, 5)
	s, err := h.AddSession("X", iv("12:00", "13:00"))
	require.NoError(t, err)

	const workers = 32
	var (
		wg       sync.WaitGroup
		winners  atomic.Int32
		rejected atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Book(fmt.Sprintf("customer-%d", i), []Seat{{3, 3}, {3, 4}})
			switch {
			case err == nil:
				winners.Add(1)
			case errors.Is(err, ErrSeatAlreadyReserved):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, winners.Load())
	assert.EqualValues(t, workers-1, rejected.Load())
	assert.Len(t, s.Orders(), 1)
	assertOrdersCoverGrid(t, s)
}

func TestAddSession_ConcurrentConflictsHaveOneWinner(t *testing.T) {
	h := newHall(t, 2, 2)

	const workers = 16
	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// every candidate overlaps 12:00-12:30
			start := Clock(11, 30+i)
			_, err := h.AddSession("X", Interval{Start: start, End: Clock(13, 0)})
			if err == nil {
				winners.Add(1)
				return
			}
			assert.ErrorIs(t, err, ErrSchedulingConflict)
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, winners.Load())
	assert.Len(t, h.Sessions(), 1)
}

func TestReadsDuringBookingsSeeWholeOrders(t *testing.T) {
	h := newHall(t, 10, 4)
	s, err := h.AddSession("X", iv("12:00", "13:00"))
	require.NoError(t, err)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			// each order reserves a whole row, so the free count stays a multiple of 4
			if free := s.Grid().FreeCount(); free%4 != 0 {
				t.Errorf("observed half-applied order: %d free seats", free)
				return
			}
		}
	}()

	for r := 1; r <= 10; r++ {
		_, err := s.Book("row", []Seat{{r, 1}, {r, 2}, {r, 3}, {r, 4}})
		require.NoError(t, err)
	}
	close(done)
	wg.Wait()
}

func TestBook_BlankCustomer(t *testing.T) {
	h := newHall(t, 2, 2)
	s, err := h.AddSession("X", iv("12:00", "13:00"))
	require.NoError(t, err)

	_, err = s.Book("   ", []Seat{{1, 1}})
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, 4, s.Grid().FreeCount())
	assert.Empty(t, s.Orders())

	require.NoError(t, s.Reserve(Seat{Row: 2, Column: 2}))
	_, err = s.RecordOrder("", []Seat{{2, 2}})
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, []Seat{{2, 2}}, s.Held())

	order, err := s.Book("  Alice ", []Seat{{1, 1}})
	require.NoError(t, err)
	assert.Equal(t, "Alice", order.Customer)
}
