package repository

import (
	"context"
	"errors"
	"fmt"

	"outlet-seating/internal/data/entity"
	"outlet-seating/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatingTypeRepository interface {
	Create(ctx context.Context, seatingType *entity.SeatingType) error
	FindByID(ctx context.Context, id int64) (*entity.SeatingType, error)
	FindByOutletID(ctx context.Context, outletID int64) ([]*entity.SeatingType, error)
	Update(ctx context.Context, seatingType *entity.SeatingType) error
	SoftDelete(ctx context.Context, seatingType *entity.SeatingType) error
}

type seatingTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatingTypeRepository(db database.PgxIface, log *zap.Logger) SeatingTypeRepository {
	return &seatingTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "seating_type")),
	}
}

const seatingTypeColumns = `id, outlet_id, name, description, status, deleted_at, created_at, updated_at, created_by, updated_by`

func (r *seatingTypeRepository) Create(ctx context.Context, seatingType *entity.SeatingType) error {
	query := `
		INSERT INTO seating_types (outlet_id, name, description, status, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		seatingType.OutletID,
		seatingType.Name,
		seatingType.Description,
		string(seatingType.Status()),
		seatingType.CreatedAt,
		seatingType.UpdatedAt,
		seatingType.CreatedBy,
		seatingType.UpdatedBy,
	).Scan(&seatingType.ID)

	if err != nil {
		r.log.Error("Failed to create seating type",
			zap.Error(err),
			zap.Int64("outlet_id", seatingType.OutletID),
			zap.String("name", seatingType.Name),
		)
		return fmt.Errorf("create seating type %s: %w", seatingType.Name, err)
	}

	return nil
}

func (r *seatingTypeRepository) scan(row pgx.Row) (*entity.SeatingType, error) {
	var st entity.SeatingType
	var lc lifecycleColumns
	err := row.Scan(
		&st.ID,
		&st.OutletID,
		&st.Name,
		&st.Description,
		&lc.status,
		&lc.deletedAt,
		&st.CreatedAt,
		&st.UpdatedAt,
		&st.CreatedBy,
		&st.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := lc.restore(&st.Base); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *seatingTypeRepository) FindByID(ctx context.Context, id int64) (*entity.SeatingType, error) {
	query := `SELECT ` + seatingTypeColumns + ` FROM seating_types WHERE id = $1 AND deleted_at IS NULL`

	st, err := r.scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seating type by ID",
			zap.Error(err),
			zap.Int64("seating_type_id", id),
		)
		return nil, fmt.Errorf("find seating type by ID %d: %w", id, err)
	}

	return st, nil
}

func (r *seatingTypeRepository) FindByOutletID(ctx context.Context, outletID int64) ([]*entity.SeatingType, error) {
	query := `SELECT ` + seatingTypeColumns + ` FROM seating_types
		WHERE outlet_id = $1 AND deleted_at IS NULL
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, outletID)
	if err != nil {
		r.log.Error("Failed to find seating types by outlet",
			zap.Error(err),
			zap.Int64("outlet_id", outletID),
		)
		return nil, fmt.Errorf("find seating types for outlet %d: %w", outletID, err)
	}
	defer rows.Close()

	var seatingTypes []*entity.SeatingType
	for rows.Next() {
		st, err := r.scan(rows)
		if err != nil {
			r.log.Error("Failed to scan seating type row", zap.Error(err))
			return nil, fmt.Errorf("scan seating type row: %w", err)
		}
		seatingTypes = append(seatingTypes, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seating type rows: %w", err)
	}

	return seatingTypes, nil
}

func (r *seatingTypeRepository) Update(ctx context.Context, seatingType *entity.SeatingType) error {
	query := `
		UPDATE seating_types
		SET name = $2, description = $3, status = $4, updated_at = $5, updated_by = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		seatingType.ID,
		seatingType.Name,
		seatingType.Description,
		string(seatingType.Status()),
		seatingType.UpdatedAt,
		seatingType.UpdatedBy,
	)
	if err != nil {
		r.log.Error("Failed to update seating type",
			zap.Error(err),
			zap.Int64("seating_type_id", seatingType.ID),
		)
		return fmt.Errorf("update seating type %d: %w", seatingType.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seating type %d: %w", seatingType.ID, ErrNotFound)
	}

	return nil
}

func (r *seatingTypeRepository) SoftDelete(ctx context.Context, seatingType *entity.SeatingType) error {
	query := `
		UPDATE seating_types
		SET status = $2, deleted_at = $3, updated_at = $4, updated_by = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		seatingType.ID,
		string(seatingType.Status()),
		seatingType.DeletedAt(),
		seatingType.UpdatedAt,
		seatingType.UpdatedBy,
	)
	if err != nil {
		r.log.Error("Failed to delete seating type",
			zap.Error(err),
			zap.Int64("seating_type_id", seatingType.ID),
		)
		return fmt.Errorf("delete seating type %d: %w", seatingType.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seating type %d: %w", seatingType.ID, ErrNotFound)
	}

	return nil
}
