package catalog

import (
	"fmt"
	"sync"
)

type Venue struct {
	name   string
	policy Policy

	mu    sync.RWMutex
	halls []*Hall
}

func (v *Venue) Name() string {
	return v.name
}

// AddHall appends a hall with an empty schedule. Its index is the number of
// halls already present plus one.
func (v *Venue) AddHall(rows, columns int) (*Hall, error) {
	if err := v.policy.checkDimensions(rows, columns); err != nil {
		return nil, err
	}

	template, err := NewSeatGrid(rows, columns)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	h := &Hall{
		venue:    v,
		index:    len(v.halls) + 1,
		template: template,
		policy:   v.policy,
	}
	v.halls = append(v.halls, h)
	return h, nil
}

// Hall returns the hall at a 1-based index.
func (v *Venue) Hall(index int) (*Hall, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if index < 1 || index > len(v.halls) {
		return nil, fmt.Errorf("%w: hall %d in venue %q", ErrHallNotFound, index, v.name)
	}
	return v.halls[index-1], nil
}

func (v *Venue) Halls() []*Hall {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]*Hall(nil), v.halls...)
}

func (v *Venue) HallCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.halls)
}
