package catalog

import "fmt"

// Seat is a 1-based (row, column) coordinate.
type Seat struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (s Seat) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Column)
}

// SeatGrid is a rows x columns matrix of free/reserved cells. It is not safe
// for concurrent use; the owning hall serializes access.
type SeatGrid struct {
	rows     int
	columns  int
	reserved [][]bool
}

func NewSeatGrid(rows, columns int) (*SeatGrid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, columns)
	}

	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, columns)
	}

	return &SeatGrid{rows: rows, columns: columns, reserved: cells}, nil
}

func (g *SeatGrid) Rows() int    { return g.rows }
func (g *SeatGrid) Columns() int { return g.columns }

// Clone returns a deep copy sharing no cells with g.
func (g *SeatGrid) Clone() *SeatGrid {
	cells := make([][]bool, g.rows)
	for i, row := range g.reserved {
		cells[i] = append([]bool(nil), row...)
	}
	return &SeatGrid{rows: g.rows, columns: g.columns, reserved: cells}
}

func (g *SeatGrid) inBounds(s Seat) bool {
	return s.Row >= 1 && s.Row <= g.rows && s.Column >= 1 && s.Column <= g.columns
}

func (g *SeatGrid) check(s Seat) error {
	if !g.inBounds(s) {
		return &SeatError{Seat: s, Err: ErrOutOfRange}
	}
	if g.reserved[s.Row-1][s.Column-1] {
		return &SeatError{Seat: s, Err: ErrSeatAlreadyReserved}
	}
	return nil
}

// Reserve marks a free seat reserved. A failed call leaves the grid untouched.
func (g *SeatGrid) Reserve(s Seat) error {
	if err := g.check(s); err != nil {
		return err
	}
	g.reserved[s.Row-1][s.Column-1] = true
	return nil
}

func (g *SeatGrid) IsFree(s Seat) (bool, error) {
	if !g.inBounds(s) {
		return false, &SeatError{Seat: s, Err: ErrOutOfRange}
	}
	return !g.reserved[s.Row-1][s.Column-1], nil
}

// LongestFreeRun returns the longest run of adjacent free seats in a row.
func (g *SeatGrid) LongestFreeRun(row int) int {
	if row < 1 || row > g.rows {
		return 0
	}
	return longestFreeRun(g.reserved[row-1])
}

// HasFreeRun reports whether any row holds n adjacent free seats. n <= 0 is
// always satisfied.
func (g *SeatGrid) HasFreeRun(n int) bool {
	if n <= 0 {
		return true
	}
	if n > g.columns {
		return false
	}
	for _, row := range g.reserved {
		if hasFreeRun(row, n) {
			return true
		}
	}
	return false
}

func hasFreeRun(row []bool, n int) bool {
	run := 0
	for _, taken := range row {
		if taken {
			run = 0
			continue
		}
		run++
		if run >= n {
			return true
		}
	}
	return false
}

func longestFreeRun(row []bool) int {
	best, run := 0, 0
	for _, taken := range row {
		if taken {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}
	return best
}

// FreeCount is the number of unreserved seats.
func (g *SeatGrid) FreeCount() int {
	free := 0
	for _, row := range g.reserved {
		for _, taken := range row {
			if !taken {
				free++
			}
		}
	}
	return free
}

// Cells returns a copy of the reservation matrix, true meaning reserved.
func (g *SeatGrid) Cells() [][]bool {
	return g.Clone().reserved
}
