package entity

type Table struct {
	Base
	OutletID      int64  `db:"outlet_id"`
	SeatingTypeID int64  `db:"seating_type_id"`
	SeatTypeID    int64  `db:"seat_type_id"`
	Name          string `db:"name"` // T1, Bar-3, etc.
	Floor         int    `db:"floor"`
	Capacity      int    `db:"capacity"`
	MinCapacity   int    `db:"min_capacity"`
}
