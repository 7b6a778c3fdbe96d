package usecase

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"

	"outlet-seating/internal/data/entity"
	"outlet-seating/internal/data/repository"
)

var errStore = errors.New("store unavailable")

// memStore keeps live records in maps the way the postgres repositories
// expose them: FindByID hides soft-deleted rows and returns copies.
type memStore struct {
	nextID       int64
	outlets      map[int64]entity.Outlet
	seatingTypes map[int64]entity.SeatingType
	seatTypes    map[int64]entity.SeatType
	tables       map[int64]entity.Table
	failSearch   bool
}

func newMemStore() *memStore {
	return &memStore{
		outlets:      map[int64]entity.Outlet{},
		seatingTypes: map[int64]entity.SeatingType{},
		seatTypes:    map[int64]entity.SeatType{},
		tables:       map[int64]entity.Table{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) repository() *repository.Repository {
	return &repository.Repository{
		Outlet:      outletRepo{m},
		SeatingType: seatingTypeRepo{m},
		SeatType:    seatTypeRepo{m},
		Table:       tableRepo{m},
	}
}

type outletRepo struct{ m *memStore }

func (r outletRepo) Create(ctx context.Context, o *entity.Outlet) error {
	o.ID = r.m.id()
	r.m.outlets[o.ID] = *o
	return nil
}

func (r outletRepo) FindByID(ctx context.Context, id int64) (*entity.Outlet, error) {
	o, ok := r.m.outlets[id]
	if !ok || o.IsDeleted() {
		return nil, nil
	}
	return &o, nil
}

func (r outletRepo) FindAll(ctx context.Context, limit, offset int, cityFilter *string) ([]*entity.Outlet, error) {
	var out []*entity.Outlet
	for _, o := range r.m.outlets {
		o := o
		if o.IsDeleted() {
			continue
		}
		if cityFilter != nil && !strings.Contains(strings.ToLower(o.City), strings.ToLower(*cityFilter)) {
			continue
		}
		out = append(out, &o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	return out[offset:min(len(out), offset+limit)], nil
}

func (r outletRepo) CountAll(ctx context.Context, cityFilter *string) (int64, error) {
	all, _ := r.FindAll(ctx, len(r.m.outlets), 0, cityFilter)
	return int64(len(all)), nil
}

func (r outletRepo) Update(ctx context.Context, o *entity.Outlet) error {
	if cur, ok := r.m.outlets[o.ID]; !ok || cur.IsDeleted() {
		return repository.ErrNotFound
	}
	r.m.outlets[o.ID] = *o
	return nil
}

func (r outletRepo) SoftDelete(ctx context.Context, o *entity.Outlet) error {
	return r.Update(ctx, o)
}

type seatingTypeRepo struct{ m *memStore }

func (r seatingTypeRepo) Create(ctx context.Context, st *entity.SeatingType) error {
	st.ID = r.m.id()
	r.m.seatingTypes[st.ID] = *st
	return nil
}

func (r seatingTypeRepo) FindByID(ctx context.Context, id int64) (*entity.SeatingType, error) {
	st, ok := r.m.seatingTypes[id]
	if !ok || st.IsDeleted() {
		return nil, nil
	}
	return &st, nil
}

func (r seatingTypeRepo) FindByOutletID(ctx context.Context, outletID int64) ([]*entity.SeatingType, error) {
	var out []*entity.SeatingType
	for _, st := range r.m.seatingTypes {
		st := st
		if st.OutletID == outletID && !st.IsDeleted() {
			out = append(out, &st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r seatingTypeRepo) Update(ctx context.Context, st *entity.SeatingType) error {
	if cur, ok := r.m.seatingTypes[st.ID]; !ok || cur.IsDeleted() {
		return repository.ErrNotFound
	}
	r.m.seatingTypes[st.ID] = *st
	return nil
}

func (r seatingTypeRepo) SoftDelete(ctx context.Context, st *entity.SeatingType) error {
	return r.Update(ctx, st)
}

type seatTypeRepo struct{ m *memStore }

func (r seatTypeRepo) Create(ctx context.Context, st *entity.SeatType) error {
	st.ID = r.m.id()
	r.m.seatTypes[st.ID] = *st
	return nil
}

func (r seatTypeRepo) FindByID(ctx context.Context, id int64) (*entity.SeatType, error) {
	st, ok := r.m.seatTypes[id]
	if !ok || st.IsDeleted() {
		return nil, nil
	}
	return &st, nil
}

func (r seatTypeRepo) FindByOutletID(ctx context.Context, outletID int64) ([]*entity.SeatType, error) {
	var out []*entity.SeatType
	for _, st := range r.m.seatTypes {
		st := st
		if st.OutletID == outletID && !st.IsDeleted() {
			out = append(out, &st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r seatTypeRepo) Update(ctx context.Context, st *entity.SeatType) error {
	if cur, ok := r.m.seatTypes[st.ID]; !ok || cur.IsDeleted() {
		return repository.ErrNotFound
	}
	r.m.seatTypes[st.ID] = *st
	return nil
}

func (r seatTypeRepo) SoftDelete(ctx context.Context, st *entity.SeatType) error {
	return r.Update(ctx, st)
}

type tableRepo struct{ m *memStore }

func (r tableRepo) Create(ctx context.Context, t *entity.Table) error {
	t.ID = r.m.id()
	r.m.tables[t.ID] = *t
	return nil
}

func (r tableRepo) FindByID(ctx context.Context, id int64) (*entity.Table, error) {
	t, ok := r.m.tables[id]
	if !ok || t.IsDeleted() {
		return nil, nil
	}
	return &t, nil
}

func (r tableRepo) live(keep func(entity.Table) bool) []*entity.Table {
	var out []*entity.Table
	for _, t := range r.m.tables {
		t := t
		if !t.IsDeleted() && keep(t) {
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Floor != out[j].Floor {
			return out[i].Floor < out[j].Floor
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r tableRepo) FindByOutletID(ctx context.Context, outletID int64, limit, offset int) ([]*entity.Table, error) {
	all := r.live(func(t entity.Table) bool { return t.OutletID == outletID })
	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(len(all), offset+limit)], nil
}

func (r tableRepo) CountByOutletID(ctx context.Context, outletID int64) (int64, error) {
	return int64(len(r.live(func(t entity.Table) bool { return t.OutletID == outletID }))), nil
}

func (r tableRepo) Search(ctx context.Context, outletID int64, seatingTypeIDs, seatTypeIDs []int64) ([]*entity.Table, error) {
	if r.m.failSearch {
		return nil, errStore
	}
	return r.live(func(t entity.Table) bool {
		return t.OutletID == outletID && t.IsActive() &&
			(len(seatingTypeIDs) == 0 || slices.Contains(seatingTypeIDs, t.SeatingTypeID)) &&
			(len(seatTypeIDs) == 0 || slices.Contains(seatTypeIDs, t.SeatTypeID))
	}), nil
}

func (r tableRepo) CountBySeatingType(ctx context.Context, id int64) (int64, error) {
	return int64(len(r.live(func(t entity.Table) bool { return t.SeatingTypeID == id }))), nil
}

func (r tableRepo) CountBySeatType(ctx context.Context, id int64) (int64, error) {
	return int64(len(r.live(func(t entity.Table) bool { return t.SeatTypeID == id }))), nil
}

func (r tableRepo) ExistsByName(ctx context.Context, outletID int64, name string, excludeID int64) (bool, error) {
	return len(r.live(func(t entity.Table) bool {
		return t.OutletID == outletID && t.ID != excludeID && strings.EqualFold(t.Name, name)
	})) > 0, nil
}

func (r tableRepo) Update(ctx context.Context, t *entity.Table) error {
	if cur, ok := r.m.tables[t.ID]; !ok || cur.IsDeleted() {
		return repository.ErrNotFound
	}
	r.m.tables[t.ID] = *t
	return nil
}

func (r tableRepo) SoftDelete(ctx context.Context, t *entity.Table) error {
	return r.Update(ctx, t)
}
