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

type TableService interface {
	GetTables(ctx context.Context, outletID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TableResponse], error)
	GetTableByID(ctx context.Context, tableID int64) (*response.TableResponse, error)
	SearchTables(ctx context.Context, outletID int64, filter request.SeatingFilter) (*response.TableSearchResponse, error)

	CreateTable(ctx context.Context, outletID int64, req *request.TableRequest) (*response.TableResponse, error)
	UpdateTable(ctx context.Context, tableID int64, req *request.TableUpdateRequest) (*response.TableResponse, error)
	DeleteTable(ctx context.Context, tableID int64) error
}

type tableService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  clock
}

func NewTableService(repo *repository.Repository, log *zap.Logger) TableService {
	return &tableService{
		repo: repo,
		log:  log.With(zap.String("service", "table")),
		now:  systemClock,
	}
}

func (s *tableService) GetTables(ctx context.Context, outletID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TableResponse], error) {
	if _, err := findOutlet(ctx, s.repo.Outlet, outletID, false); err != nil {
		return nil, err
	}

	tables, err := s.repo.Table.FindByOutletID(ctx, outletID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get tables for outlet %d: %w", outletID, err)
	}

	total, err := s.repo.Table.CountByOutletID(ctx, outletID)
	if err != nil {
		return nil, fmt.Errorf("count tables for outlet %d: %w", outletID, err)
	}

	return response.NewPaginatedResponse(response.TablesToResponse(tables), req.Page, req.Limit(), total), nil
}

func (s *tableService) findTable(ctx context.Context, tableID int64) (*entity.Table, error) {
	table, err := s.repo.Table.FindByID(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("get table %d: %w", tableID, err)
	}
	if table == nil {
		return nil, fmt.Errorf("table %d: %w", tableID, ErrNotFound)
	}
	if _, err := findOutlet(ctx, s.repo.Outlet, table.OutletID, false); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *tableService) GetTableByID(ctx context.Context, tableID int64) (*response.TableResponse, error) {
	table, err := s.findTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	resp := response.TableToResponse(table)
	return &resp, nil
}

// SearchTables lists the active tables of an outlet matching the seating
// filter. An empty id list does not narrow its dimension, and ids owned by
// another outlet simply match nothing.
func (s *tableService) SearchTables(ctx context.Context, outletID int64, filter request.SeatingFilter) (*response.TableSearchResponse, error) {
	if _, err := findOutlet(ctx, s.repo.Outlet, outletID, false); err != nil {
		return nil, err
	}

	tables, err := s.repo.Table.Search(ctx, outletID, filter.SeatingTypeIDs, filter.SeatTypeIDs)
	if err != nil {
		s.log.Error("Failed to search tables",
			zap.Error(err),
			zap.Int64("outlet_id", outletID),
		)
		return nil, fmt.Errorf("search tables for outlet %d: %w", outletID, err)
	}

	s.log.Debug("Tables searched",
		zap.Int64("outlet_id", outletID),
		zap.Int64s("seating_type_ids", filter.SeatingTypeIDs),
		zap.Int64s("seat_type_ids", filter.SeatTypeIDs),
		zap.Int("matches", len(tables)),
	)

	return &response.TableSearchResponse{
		OutletID:       outletID,
		SeatingTypeIDs: nonNil(filter.SeatingTypeIDs),
		SeatTypeIDs:    nonNil(filter.SeatTypeIDs),
		Total:          len(tables),
		Tables:         response.TablesToResponse(tables),
	}, nil
}

// checkSeating makes sure both catalogue entries are live, active and owned by the table's outlet.
func (s *tableService) checkSeating(ctx context.Context, outletID, seatingTypeID, seatTypeID int64) error {
	seatingType, err := s.repo.SeatingType.FindByID(ctx, seatingTypeID)
	if err != nil {
		return fmt.Errorf("get seating type %d: %w", seatingTypeID, err)
	}
	if seatingType == nil || seatingType.OutletID != outletID {
		return fmt.Errorf("seating type %d does not belong to outlet %d: %w", seatingTypeID, outletID, ErrInvalidInput)
	}
	if !seatingType.IsActive() {
		return fmt.Errorf("seating type %d is inactive: %w", seatingTypeID, ErrInvalidInput)
	}

	seatType, err := s.repo.SeatType.FindByID(ctx, seatTypeID)
	if err != nil {
		return fmt.Errorf("get seat type %d: %w", seatTypeID, err)
	}
	if seatType == nil || seatType.OutletID != outletID {
		return fmt.Errorf("seat type %d does not belong to outlet %d: %w", seatTypeID, outletID, ErrInvalidInput)
	}
	if !seatType.IsActive() {
		return fmt.Errorf("seat type %d is inactive: %w", seatTypeID, ErrInvalidInput)
	}

	return nil
}

func (s *tableService) checkName(ctx context.Context, outletID int64, name string, excludeID int64) error {
	exists, err := s.repo.Table.ExistsByName(ctx, outletID, name, excludeID)
	if err != nil {
		return fmt.Errorf("check table name: %w", err)
	}
	if exists {
		return fmt.Errorf("table %s already exists in outlet %d: %w", name, outletID, ErrConflict)
	}
	return nil
}

func (s *tableService) CreateTable(ctx context.Context, outletID int64, req *request.TableRequest) (*response.TableResponse, error) {
	if _, err := findOutlet(ctx, s.repo.Outlet, outletID, true); err != nil {
		return nil, err
	}

	minCapacity := req.MinCapacity
	if minCapacity == 0 {
		minCapacity = 1
	}
	if minCapacity > req.Capacity {
		return nil, fmt.Errorf("min capacity %d exceeds capacity %d: %w", minCapacity, req.Capacity, ErrInvalidInput)
	}

	if err := s.checkSeating(ctx, outletID, req.SeatingTypeID, req.SeatTypeID); err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, outletID, req.Name, 0); err != nil {
		return nil, err
	}

	table := &entity.Table{
		Base: entity.Base{
			Audit:     entity.NewAudit(s.now(), utils.GetActor(ctx)),
			Lifecycle: entity.NewLifecycle(),
		},
		OutletID:      outletID,
		SeatingTypeID: req.SeatingTypeID,
		SeatTypeID:    req.SeatTypeID,
		Name:          req.Name,
		Floor:         req.Floor,
		Capacity:      req.Capacity,
		MinCapacity:   minCapacity,
	}

	if err := s.repo.Table.Create(ctx, table); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}

	s.log.Info("Table created",
		zap.Int64("outlet_id", outletID),
		zap.Int64("table_id", table.ID),
		zap.String("name", table.Name),
	)

	resp := response.TableToResponse(table)
	return &resp, nil
}

func (s *tableService) UpdateTable(ctx context.Context, tableID int64, req *request.TableUpdateRequest) (*response.TableResponse, error) {
	table, err := s.findTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != table.Name {
		if err := s.checkName(ctx, table.OutletID, *req.Name, table.ID); err != nil {
			return nil, err
		}
		table.Name = *req.Name
	}
	if req.Floor != nil {
		table.Floor = *req.Floor
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.MinCapacity != nil {
		table.MinCapacity = *req.MinCapacity
	}
	if table.MinCapacity > table.Capacity {
		return nil, fmt.Errorf("min capacity %d exceeds capacity %d: %w", table.MinCapacity, table.Capacity, ErrInvalidInput)
	}

	if req.SeatingTypeID != nil || req.SeatTypeID != nil {
		if req.SeatingTypeID != nil {
			table.SeatingTypeID = *req.SeatingTypeID
		}
		if req.SeatTypeID != nil {
			table.SeatTypeID = *req.SeatTypeID
		}
		if err := s.checkSeating(ctx, table.OutletID, table.SeatingTypeID, table.SeatTypeID); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		if err := applyStatus(&table.Lifecycle, *req.Status); err != nil {
			return nil, fmt.Errorf("table %d: %w", tableID, err)
		}
	}
	table.Touch(s.now(), utils.GetActor(ctx))

	if err := s.repo.Table.Update(ctx, table); err != nil {
		return nil, fmt.Errorf("update table %d: %w", tableID, err)
	}

	resp := response.TableToResponse(table)
	return &resp, nil
}

func (s *tableService) DeleteTable(ctx context.Context, tableID int64) error {
	table, err := s.findTable(ctx, tableID)
	if err != nil {
		return err
	}

	now := s.now()
	if err := softDelete(&table.Lifecycle, now); err != nil {
		return fmt.Errorf("table %d: %w", tableID, err)
	}
	table.Touch(now, utils.GetActor(ctx))

	if err := s.repo.Table.SoftDelete(ctx, table); err != nil {
		return fmt.Errorf("delete table %d: %w", tableID, err)
	}

	return nil
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
