package repository

import (
	"errors"
	"fmt"
	"time"

	"outlet-seating/internal/data/entity"
	"outlet-seating/pkg/database"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("record not found")

type Repository struct {
	Outlet      OutletRepository
	SeatingType SeatingTypeRepository
	SeatType    SeatTypeRepository
	Table       TableRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Outlet:      NewOutletRepository(db, log),
		SeatingType: NewSeatingTypeRepository(db, log),
		SeatType:    NewSeatTypeRepository(db, log),
		Table:       NewTableRepository(db, log),
	}
}

// lifecycleColumns receives the status/deleted_at pair while scanning a row.
type lifecycleColumns struct {
	status    string
	deletedAt *time.Time
}

func (c *lifecycleColumns) restore(base *entity.Base) error {
	l, err := entity.RestoreLifecycle(c.status, c.deletedAt)
	if err != nil {
		return fmt.Errorf("restore lifecycle of %d: %w", base.ID, err)
	}
	base.Lifecycle = l
	return nil
}

// nonNilIDs keeps pgx from encoding an empty filter as NULL.
func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
