package usecase

import (
	"context"
	"errors"
	"sync"

	"cinema-ticketing/internal/catalog"
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"

	"go.uber.org/zap"
)

var errJournalDown = errors.New("journal down")

type published struct {
	key string
	v   any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{key: key, v: v})
	return p.err
}

// fakeJournal records every write and fails them all when err is set.
type fakeJournal struct {
	mu       sync.Mutex
	err      error
	venues   []*entity.Venue
	halls    []*entity.Hall
	sessions []*entity.Session
	orders   []*entity.Order
}

func (j *fakeJournal) repository() *repository.Repository {
	return &repository.Repository{
		Venue:   journalVenue{j},
		Hall:    journalHall{j},
		Session: journalSession{j},
		Order:   journalOrder{j},
	}
}

type journalVenue struct{ j *fakeJournal }

func (r journalVenue) Create(_ context.Context, v *entity.Venue) error {
	r.j.mu.Lock()
	defer r.j.mu.Unlock()
	r.j.venues = append(r.j.venues, v)
	return r.j.err
}

type journalHall struct{ j *fakeJournal }

func (r journalHall) Create(_ context.Context, h *entity.Hall) error {
	r.j.mu.Lock()
	defer r.j.mu.Unlock()
	r.j.halls = append(r.j.halls, h)
	return r.j.err
}

type journalSession struct{ j *fakeJournal }

func (r journalSession) Create(_ context.Context, s *entity.Session) error {
	r.j.mu.Lock()
	defer r.j.mu.Unlock()
	r.j.sessions = append(r.j.sessions, s)
	return r.j.err
}

type journalOrder struct{ j *fakeJournal }

func (r journalOrder) Create(_ context.Context, o *entity.Order) error {
	r.j.mu.Lock()
	defer r.j.mu.Unlock()
	r.j.orders = append(r.j.orders, o)
	return r.j.err
}

type fixture struct {
	cat     *catalog.Catalog
	journal *fakeJournal
	pub     *fakePublisher
	svc     *Service
}

func newFixture() *fixture {
	f := &fixture{
		cat:     catalog.New(catalog.DefaultPolicy()),
		journal: &fakeJournal{},
		pub:     &fakePublisher{},
	}
	f.svc = NewService(f.cat, f.journal.repository(), f.pub, zap.NewNop())
	return f
}
