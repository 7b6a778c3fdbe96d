package entity

// SeatingType groups tables by area, e.g. indoor, terrace, private room.
type SeatingType struct {
	Base
	OutletID    int64   `db:"outlet_id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
}

// SeatType is the kind of seat at a table, e.g. sofa, bar stool.
type SeatType struct {
	Base
	OutletID    int64   `db:"outlet_id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
}
