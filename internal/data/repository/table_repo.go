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

type TableRepository interface {
	Create(ctx context.Context, table *entity.Table) error
	FindByID(ctx context.Context, id int64) (*entity.Table, error)
	FindByOutletID(ctx context.Context, outletID int64, limit, offset int) ([]*entity.Table, error)
	CountByOutletID(ctx context.Context, outletID int64) (int64, error)
	Update(ctx context.Context, table *entity.Table) error
	SoftDelete(ctx context.Context, table *entity.Table) error

	// Seating queries
	Search(ctx context.Context, outletID int64, seatingTypeIDs, seatTypeIDs []int64) ([]*entity.Table, error)
	CountBySeatingType(ctx context.Context, seatingTypeID int64) (int64, error)
	CountBySeatType(ctx context.Context, seatTypeID int64) (int64, error)
	ExistsByName(ctx context.Context, outletID int64, name string, excludeID int64) (bool, error)
}

type tableRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTableRepository(db database.PgxIface, log *zap.Logger) TableRepository {
	return &tableRepository{
		db:  db,
		log: log.With(zap.String("repository", "table")),
	}
}

const tableColumns = `id, outlet_id, seating_type_id, seat_type_id, name, floor, capacity, min_capacity,
	status, deleted_at, created_at, updated_at, created_by, updated_by`

func (r *tableRepository) Create(ctx context.Context, table *entity.Table) error {
	query := `
		INSERT INTO outlet_tables (outlet_id, seating_type_id, seat_type_id, name, floor, capacity, min_capacity,
			status, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		table.OutletID,
		table.SeatingTypeID,
		table.SeatTypeID,
		table.Name,
		table.Floor,
		table.Capacity,
		table.MinCapacity,
		string(table.Status()),
		table.CreatedAt,
		table.UpdatedAt,
		table.CreatedBy,
		table.UpdatedBy,
	).Scan(&table.ID)

	if err != nil {
		r.log.Error("Failed to create table",
			zap.Error(err),
			zap.Int64("outlet_id", table.OutletID),
			zap.String("name", table.Name),
		)
		return fmt.Errorf("create table %s: %w", table.Name, err)
	}

	return nil
}

func (r *tableRepository) scan(row pgx.Row) (*entity.Table, error) {
	var table entity.Table
	var lc lifecycleColumns
	err := row.Scan(
		&table.ID,
		&table.OutletID,
		&table.SeatingTypeID,
		&table.SeatTypeID,
		&table.Name,
		&table.Floor,
		&table.Capacity,
		&table.MinCapacity,
		&lc.status,
		&lc.deletedAt,
		&table.CreatedAt,
		&table.UpdatedAt,
		&table.CreatedBy,
		&table.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := lc.restore(&table.Base); err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) collect(rows pgx.Rows) ([]*entity.Table, error) {
	defer rows.Close()

	var tables []*entity.Table
	for rows.Next() {
		table, err := r.scan(rows)
		if err != nil {
			r.log.Error("Failed to scan table row", zap.Error(err))
			return nil, fmt.Errorf("scan table row: %w", err)
		}
		tables = append(tables, table)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate table rows: %w", err)
	}

	return tables, nil
}

func (r *tableRepository) FindByID(ctx context.Context, id int64) (*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM outlet_tables WHERE id = $1 AND deleted_at IS NULL`

	table, err := r.scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find table by ID",
			zap.Error(err),
			zap.Int64("table_id", id),
		)
		return nil, fmt.Errorf("find table by ID %d: %w", id, err)
	}

	return table, nil
}

func (r *tableRepository) FindByOutletID(ctx context.Context, outletID int64, limit, offset int) ([]*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM outlet_tables
		WHERE outlet_id = $1 AND deleted_at IS NULL
		ORDER BY floor, name
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, outletID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find tables by outlet",
			zap.Error(err),
			zap.Int64("outlet_id", outletID),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find tables for outlet %d: %w", outletID, err)
	}

	return r.collect(rows)
}

func (r *tableRepository) CountByOutletID(ctx context.Context, outletID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM outlet_tables WHERE outlet_id = $1 AND deleted_at IS NULL`

	var total int64
	if err := r.db.QueryRow(ctx, query, outletID).Scan(&total); err != nil {
		r.log.Error("Failed to count tables", zap.Error(err), zap.Int64("outlet_id", outletID))
		return 0, fmt.Errorf("count tables for outlet %d: %w", outletID, err)
	}

	return total, nil
}

// Search returns the active tables of an outlet whose seating type and seat
// type are in the given sets. An empty set leaves that dimension open.
func (r *tableRepository) Search(ctx context.Context, outletID int64, seatingTypeIDs, seatTypeIDs []int64) ([]*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM outlet_tables
		WHERE outlet_id = $1 AND deleted_at IS NULL AND status = 'active'
			AND (cardinality($2::bigint[]) = 0 OR seating_type_id = ANY($2::bigint[]))
			AND (cardinality($3::bigint[]) = 0 OR seat_type_id = ANY($3::bigint[]))
		ORDER BY floor, name`

	rows, err := r.db.Query(ctx, query, outletID, nonNilIDs(seatingTypeIDs), nonNilIDs(seatTypeIDs))
	if err != nil {
		r.log.Error("Failed to search tables",
			zap.Error(err),
			zap.Int64("outlet_id", outletID),
			zap.Int64s("seating_type_ids", seatingTypeIDs),
			zap.Int64s("seat_type_ids", seatTypeIDs),
		)
		return nil, fmt.Errorf("search tables for outlet %d: %w", outletID, err)
	}

	return r.collect(rows)
}

func (r *tableRepository) CountBySeatingType(ctx context.Context, seatingTypeID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM outlet_tables WHERE seating_type_id = $1 AND deleted_at IS NULL`,
		seatingTypeID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count tables for seating type %d: %w", seatingTypeID, err)
	}
	return total, nil
}

func (r *tableRepository) CountBySeatType(ctx context.Context, seatTypeID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM outlet_tables WHERE seat_type_id = $1 AND deleted_at IS NULL`,
		seatTypeID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count tables for seat type %d: %w", seatTypeID, err)
	}
	return total, nil
}

func (r *tableRepository) ExistsByName(ctx context.Context, outletID int64, name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM outlet_tables
			WHERE outlet_id = $1 AND LOWER(name) = LOWER($2) AND id <> $3 AND deleted_at IS NULL
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, outletID, name, excludeID).Scan(&exists); err != nil {
		r.log.Error("Failed to check table name",
			zap.Error(err),
			zap.Int64("outlet_id", outletID),
			zap.String("name", name),
		)
		return false, fmt.Errorf("check table name %s: %w", name, err)
	}

	return exists, nil
}

func (r *tableRepository) Update(ctx context.Context, table *entity.Table) error {
	query := `
		UPDATE outlet_tables
		SET seating_type_id = $2, seat_type_id = $3, name = $4, floor = $5, capacity = $6, min_capacity = $7,
			status = $8, updated_at = $9, updated_by = $10
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		table.ID,
		table.SeatingTypeID,
		table.SeatTypeID,
		table.Name,
		table.Floor,
		table.Capacity,
		table.MinCapacity,
		string(table.Status()),
		table.UpdatedAt,
		table.UpdatedBy,
	)
	if err != nil {
		r.log.Error("Failed to update table",
			zap.Error(err),
			zap.Int64("table_id", table.ID),
		)
		return fmt.Errorf("update table %d: %w", table.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("table %d: %w", table.ID, ErrNotFound)
	}

	return nil
}

func (r *tableRepository) SoftDelete(ctx context.Context, table *entity.Table) error {
	query := `
		UPDATE outlet_tables
		SET status = $2, deleted_at = $3, updated_at = $4, updated_by = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		table.ID,
		string(table.Status()),
		table.DeletedAt(),
		table.UpdatedAt,
		table.UpdatedBy,
	)
	if err != nil {
		r.log.Error("Failed to delete table",
			zap.Error(err),
			zap.Int64("table_id", table.ID),
		)
		return fmt.Errorf("delete table %d: %w", table.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("table %d: %w", table.ID, ErrNotFound)
	}

	r.log.Info("Table deleted", zap.Int64("table_id", table.ID))
	return nil
}
