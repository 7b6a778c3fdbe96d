package usecase

import (
	"context"
	"fmt"

	"outlet-seating/internal/data/entity"
	"outlet-seating/internal/data/repository"
	"outlet-seating/internal/dto/request"
	"outlet-seating/internal/dto/response"
	"outlet-seating/pkg/utils"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type OutletService interface {
	GetOutlets(ctx context.Context, req *request.PaginatedRequest, cityFilter *string) (*response.PaginatedResponse[response.OutletResponse], error)
	GetOutletByID(ctx context.Context, outletID int64) (*response.OutletDetailResponse, error)

	CreateOutlet(ctx context.Context, req *request.OutletRequest) (*response.OutletResponse, error)
	UpdateOutlet(ctx context.Context, outletID int64, req *request.OutletUpdateRequest) (*response.OutletResponse, error)
	SetOutletStatus(ctx context.Context, outletID int64, status string) (*response.OutletResponse, error)
	DeleteOutlet(ctx context.Context, outletID int64) error
}

type outletService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  clock
}

func NewOutletService(repo *repository.Repository, log *zap.Logger) OutletService {
	return &outletService{
		repo: repo,
		log:  log.With(zap.String("service", "outlet")),
		now:  systemClock,
	}
}

func (s *outletService) GetOutlets(ctx context.Context, req *request.PaginatedRequest, cityFilter *string) (*response.PaginatedResponse[response.OutletResponse], error) {
	outlets, err := s.repo.Outlet.FindAll(ctx, req.Limit(), req.Offset(), cityFilter)
	if err != nil {
		s.log.Error("Failed to get outlets from repository",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
			zap.Stringp("city_filter", cityFilter),
		)
		return nil, fmt.Errorf("get outlets: %w", err)
	}

	total, err := s.repo.Outlet.CountAll(ctx, cityFilter)
	if err != nil {
		return nil, fmt.Errorf("count outlets: %w", err)
	}

	outletResponses := lo.Map(outlets, func(o *entity.Outlet, _ int) response.OutletResponse {
		return response.OutletToResponse(o)
	})

	s.log.Info("Outlets retrieved",
		zap.Int("count", len(outlets)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
	)

	return response.NewPaginatedResponse(outletResponses, req.Page, req.Limit(), total), nil
}

func (s *outletService) GetOutletByID(ctx context.Context, outletID int64) (*response.OutletDetailResponse, error) {
	outlet, err := findOutlet(ctx, s.repo.Outlet, outletID, false)
	if err != nil {
		return nil, err
	}

	seatingTypes, err := s.repo.SeatingType.FindByOutletID(ctx, outletID)
	if err != nil {
		return nil, fmt.Errorf("get seating types for outlet %d: %w", outletID, err)
	}

	seatTypes, err := s.repo.SeatType.FindByOutletID(ctx, outletID)
	if err != nil {
		return nil, fmt.Errorf("get seat types for outlet %d: %w", outletID, err)
	}

	tableCount, err := s.repo.Table.CountByOutletID(ctx, outletID)
	if err != nil {
		s.log.Warn("Failed to count tables for outlet",
			zap.Error(err),
			zap.Int64("outlet_id", outletID),
		)
		// Continue without the count
	}

	return &response.OutletDetailResponse{
		OutletResponse: response.OutletToResponse(outlet),
		SeatingTypes:   response.SeatingTypesToResponse(seatingTypes),
		SeatTypes:      response.SeatTypesToResponse(seatTypes),
		TableCount:     tableCount,
	}, nil
}

func (s *outletService) CreateOutlet(ctx context.Context, req *request.OutletRequest) (*response.OutletResponse, error) {
	outlet := &entity.Outlet{
		Base: entity.Base{
			Audit:     entity.NewAudit(s.now(), utils.GetActor(ctx)),
			Lifecycle: entity.NewLifecycle(),
		},
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Phone:   req.Phone,
	}

	if err := s.repo.Outlet.Create(ctx, outlet); err != nil {
		return nil, fmt.Errorf("create outlet: %w", err)
	}

	s.log.Info("Outlet created",
		zap.Int64("outlet_id", outlet.ID),
		zap.String("name", outlet.Name),
	)

	resp := response.OutletToResponse(outlet)
	return &resp, nil
}

func (s *outletService) UpdateOutlet(ctx context.Context, outletID int64, req *request.OutletUpdateRequest) (*response.OutletResponse, error) {
	outlet, err := findOutlet(ctx, s.repo.Outlet, outletID, false)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		outlet.Name = *req.Name
	}
	if req.Address != nil {
		outlet.Address = *req.Address
	}
	if req.City != nil {
		outlet.City = *req.City
	}
	if req.Phone != nil {
		outlet.Phone = req.Phone
	}
	outlet.Touch(s.now(), utils.GetActor(ctx))

	if err := s.repo.Outlet.Update(ctx, outlet); err != nil {
		return nil, fmt.Errorf("update outlet %d: %w", outletID, err)
	}

	resp := response.OutletToResponse(outlet)
	return &resp, nil
}

func (s *outletService) SetOutletStatus(ctx context.Context, outletID int64, status string) (*response.OutletResponse, error) {
	outlet, err := findOutlet(ctx, s.repo.Outlet, outletID, false)
	if err != nil {
		return nil, err
	}

	if err := applyStatus(&outlet.Lifecycle, status); err != nil {
		return nil, fmt.Errorf("outlet %d: %w", outletID, err)
	}
	outlet.Touch(s.now(), utils.GetActor(ctx))

	if err := s.repo.Outlet.Update(ctx, outlet); err != nil {
		return nil, fmt.Errorf("set outlet %d status: %w", outletID, err)
	}

	s.log.Info("Outlet status changed",
		zap.Int64("outlet_id", outletID),
		zap.String("status", status),
	)

	resp := response.OutletToResponse(outlet)
	return &resp, nil
}

// DeleteOutlet soft-deletes the outlet only. Its seating records stay as they
// are but become unreachable because every lookup goes through a live outlet.
func (s *outletService) DeleteOutlet(ctx context.Context, outletID int64) error {
	outlet, err := findOutlet(ctx, s.repo.Outlet, outletID, false)
	if err != nil {
		return err
	}

	now := s.now()
	if err := softDelete(&outlet.Lifecycle, now); err != nil {
		return fmt.Errorf("outlet %d: %w", outletID, err)
	}
	outlet.Touch(now, utils.GetActor(ctx))

	if err := s.repo.Outlet.SoftDelete(ctx, outlet); err != nil {
		return fmt.Errorf("delete outlet %d: %w", outletID, err)
	}

	return nil
}
