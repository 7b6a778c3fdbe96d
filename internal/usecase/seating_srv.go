package usecase

import (
	"context"
	"fmt"

	"outlet-seating/internal/data/entity"
	"outlet-seating/internal/data/repository"
	"outlet-seating/internal/dto/request"
	"outlet-seating/internal/dto/response"
	"outlet-seating/pkg/utils"

	"go.uber.org/zap"
)

// SeatingService manages the two seating catalogues of an outlet: seating
// types (where a table stands) and seat types (what guests sit on).
type SeatingService interface {
	ListSeatingTypes(ctx context.Context, outletID int64) ([]response.SeatingTypeResponse, error)
	CreateSeatingType(ctx context.Context, outletID int64, req *request.SeatingTypeRequest) (*response.SeatingTypeResponse, error)
	UpdateSeatingType(ctx context.Context, seatingTypeID int64, req *request.SeatingTypeUpdateRequest) (*response.SeatingTypeResponse, error)
	DeleteSeatingType(ctx context.Context, seatingTypeID int64) error

	ListSeatTypes(ctx context.Context, outletID int64) ([]response.SeatTypeResponse, error)
	CreateSeatType(ctx context.Context, outletID int64, req *request.SeatTypeRequest) (*response.SeatTypeResponse, error)
	UpdateSeatType(ctx context.Context, seatTypeID int64, req *request.SeatTypeUpdateRequest) (*response.SeatTypeResponse, error)
	DeleteSeatType(ctx context.Context, seatTypeID int64) error
}

type seatingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  clock
}

func NewSeatingService(repo *repository.Repository, log *zap.Logger) SeatingService {
	return &seatingService{
		repo: repo,
		log:  log.With(zap.String("service", "seating")),
		now:  systemClock,
	}
}

// ==================== SEATING TYPES ====================

func (s *seatingService) ListSeatingTypes(ctx context.Context, outletID int64) ([]response.SeatingTypeResponse, error) {
	if _, err := findOutlet(ctx, s.repo.Outlet, outletID, false); err != nil {
		return nil, err
	}

	seatingTypes, err := s.repo.SeatingType.FindByOutletID(ctx, outletID)
	if err != nil {
		return nil, fmt.Errorf("list seating types for outlet %d: %w", outletID, err)
	}

	return response.SeatingTypesToResponse(seatingTypes), nil
}

func (s *seatingService) CreateSeatingType(ctx context.Context, outletID int64, req *request.SeatingTypeRequest) (*response.SeatingTypeResponse, error) {
	if _, err := findOutlet(ctx, s.repo.Outlet, outletID, true); err != nil {
		return nil, err
	}

	seatingType := &entity.SeatingType{
		Base: entity.Base{
			Audit:     entity.NewAudit(s.now(), utils.GetActor(ctx)),
			Lifecycle: entity.NewLifecycle(),
		},
		OutletID:    outletID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.SeatingType.Create(ctx, seatingType); err != nil {
		return nil, fmt.Errorf("create seating type: %w", err)
	}

	s.log.Info("Seating type created",
		zap.Int64("outlet_id", outletID),
		zap.Int64("seating_type_id", seatingType.ID),
		zap.String("name", seatingType.Name),
	)

	resp := response.SeatingTypeToResponse(seatingType)
	return &resp, nil
}

func (s *seatingService) findSeatingType(ctx context.Context, id int64) (*entity.SeatingType, error) {
	seatingType, err := s.repo.SeatingType.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seating type %d: %w", id, err)
	}
	if seatingType == nil {
		return nil, fmt.Errorf("seating type %d: %w", id, ErrNotFound)
	}
	if _, err := findOutlet(ctx, s.repo.Outlet, seatingType.OutletID, false); err != nil {
		return nil, err
	}
	return seatingType, nil
}

func (s *seatingService) UpdateSeatingType(ctx context.Context, seatingTypeID int64, req *request.SeatingTypeUpdateRequest) (*response.SeatingTypeResponse, error) {
	seatingType, err := s.findSeatingType(ctx, seatingTypeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		seatingType.Name = *req.Name
	}
	if req.Description != nil {
		seatingType.Description = req.Description
	}
	if req.Status != nil {
		if err := applyStatus(&seatingType.Lifecycle, *req.Status); err != nil {
			return nil, fmt.Errorf("seating type %d: %w", seatingTypeID, err)
		}
	}
	seatingType.Touch(s.now(), utils.GetActor(ctx))

	if err := s.repo.SeatingType.Update(ctx, seatingType); err != nil {
		return nil, fmt.Errorf("update seating type %d: %w", seatingTypeID, err)
	}

	resp := response.SeatingTypeToResponse(seatingType)
	return &resp, nil
}

func (s *seatingService) DeleteSeatingType(ctx context.Context, seatingTypeID int64) error {
	seatingType, err := s.findSeatingType(ctx, seatingTypeID)
	if err != nil {
		return err
	}

	inUse, err := s.repo.Table.CountBySeatingType(ctx, seatingTypeID)
	if err != nil {
		return fmt.Errorf("check seating type %d usage: %w", seatingTypeID, err)
	}
	if inUse > 0 {
		return fmt.Errorf("seating type %d is used by %d tables: %w", seatingTypeID, inUse, ErrConflict)
	}

	now := s.now()
	if err := softDelete(&seatingType.Lifecycle, now); err != nil {
		return fmt.Errorf("seating type %d: %w", seatingTypeID, err)
	}
	seatingType.Touch(now, utils.GetActor(ctx))

	if err := s.repo.SeatingType.SoftDelete(ctx, seatingType); err != nil {
		return fmt.Errorf("delete seating type %d: %w", seatingTypeID, err)
	}

	s.log.Info("Seating type deleted", zap.Int64("seating_type_id", seatingTypeID))
	return nil
}

// ==================== SEAT TYPES ====================

func (s *seatingService) ListSeatTypes(ctx context.Context, outletID int64) ([]response.SeatTypeResponse, error) {
	if _, err := findOutlet(ctx, s.repo.Outlet, outletID, false); err != nil {
		return nil, err
	}

	seatTypes, err := s.repo.SeatType.FindByOutletID(ctx, outletID)
	if err != nil {
		return nil, fmt.Errorf("list seat types for outlet %d: %w", outletID, err)
	}

	return response.SeatTypesToResponse(seatTypes), nil
}

func (s *seatingService) CreateSeatType(ctx context.Context, outletID int64, req *request.SeatTypeRequest) (*response.SeatTypeResponse, error) {
	if _, err := findOutlet(ctx, s.repo.Outlet, outletID, true); err != nil {
		return nil, err
	}

	seatType := &entity.SeatType{
		Base: entity.Base{
			Audit:     entity.NewAudit(s.now(), utils.GetActor(ctx)),
			Lifecycle: entity.NewLifecycle(),
		},
		OutletID:    outletID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.SeatType.Create(ctx, seatType); err != nil {
		return nil, fmt.Errorf("create seat type: %w", err)
	}

	s.log.Info("Seat type created",
		zap.Int64("outlet_id", outletID),
		zap.Int64("seat_type_id", seatType.ID),
		zap.String("name", seatType.Name),
	)

	resp := response.SeatTypeToResponse(seatType)
	return &resp, nil
}

func (s *seatingService) findSeatType(ctx context.Context, id int64) (*entity.SeatType, error) {
	seatType, err := s.repo.SeatType.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seat type %d: %w", id, err)
	}
	if seatType == nil {
		return nil, fmt.Errorf("seat type %d: %w", id, ErrNotFound)
	}
	if _, err := findOutlet(ctx, s.repo.Outlet, seatType.OutletID, false); err != nil {
		return nil, err
	}
	return seatType, nil
}

func (s *seatingService) UpdateSeatType(ctx context.Context, seatTypeID int64, req *request.SeatTypeUpdateRequest) (*response.SeatTypeResponse, error) {
	seatType, err := s.findSeatType(ctx, seatTypeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		seatType.Name = *req.Name
	}
	if req.Description != nil {
		seatType.Description = req.Description
	}
	if req.Status != nil {
		if err := applyStatus(&seatType.Lifecycle, *req.Status); err != nil {
			return nil, fmt.Errorf("seat type %d: %w", seatTypeID, err)
		}
	}
	seatType.Touch(s.now(), utils.GetActor(ctx))

	if err := s.repo.SeatType.Update(ctx, seatType); err != nil {
		return nil, fmt.Errorf("update seat type %d: %w", seatTypeID, err)
	}

	resp := response.SeatTypeToResponse(seatType)
	return &resp, nil
}

func (s *seatingService) DeleteSeatType(ctx context.Context, seatTypeID int64) error {
	seatType, err := s.findSeatType(ctx, seatTypeID)
	if err != nil {
		return err
	}

	inUse, err := s.repo.Table.CountBySeatType(ctx, seatTypeID)
	if err != nil {
		return fmt.Errorf("check seat type %d usage: %w", seatTypeID, err)
	}
	if inUse > 0 {
		return fmt.Errorf("seat type %d is used by %d tables: %w", seatTypeID, inUse, ErrConflict)
	}

	now := s.now()
	if err := softDelete(&seatType.Lifecycle, now); err != nil {
		return fmt.Errorf("seat type %d: %w", seatTypeID, err)
	}
	seatType.Touch(now, utils.GetActor(ctx))

	if err := s.repo.SeatType.SoftDelete(ctx, seatType); err != nil {
		return fmt.Errorf("delete seat type %d: %w", seatTypeID, err)
	}

	s.log.Info("Seat type deleted", zap.Int64("seat_type_id", seatTypeID))
	return nil
}
