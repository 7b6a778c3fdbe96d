package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"outlet-seating/internal/data/entity"
	"outlet-seating/internal/data/repository"

	"go.uber.org/zap"
)

var (
	ErrNotFound     = repository.ErrNotFound
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

type Service struct {
	Outlet  OutletService
	Seating SeatingService
	Table   TableService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Outlet:  NewOutletService(repo, log),
		Seating: NewSeatingService(repo, log),
		Table:   NewTableService(repo, log),
	}
}

type clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

// findOutlet loads an outlet that has not been deleted. When requireActive is
// set an inactive outlet is a conflict, since nothing new may be seated there.
func findOutlet(ctx context.Context, repo repository.OutletRepository, id int64, requireActive bool) (*entity.Outlet, error) {
	outlet, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get outlet %d: %w", id, err)
	}
	if outlet == nil {
		return nil, fmt.Errorf("outlet %d: %w", id, ErrNotFound)
	}
	if requireActive && !outlet.IsActive() {
		return nil, fmt.Errorf("outlet %d is inactive: %w", id, ErrConflict)
	}
	return outlet, nil
}

func applyStatus(l *entity.Lifecycle, status string) error {
	var err error
	switch entity.Status(status) {
	case entity.StatusActive:
		err = l.Activate()
	case entity.StatusInactive:
		err = l.Deactivate()
	default:
		return fmt.Errorf("unknown status %q: %w", status, ErrInvalidInput)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return nil
}

func softDelete(l *entity.Lifecycle, at time.Time) error {
	if err := l.SoftDelete(at); err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return nil
}
