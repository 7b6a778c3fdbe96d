package entity

type Outlet struct {
	Base
	Name    string  `db:"name"`
	Address string  `db:"address"`
	City    string  `db:"city"`
	Phone   *string `db:"phone"`
}
