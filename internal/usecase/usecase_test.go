package usecase

import (
	"context"
	"testing"
	"time"

	"outlet-seating/internal/data/entity"
	"outlet-seating/internal/dto/request"
	"outlet-seating/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 5, 4, 18, 30, 0, 0, time.UTC)

type fixture struct {
	store   *memStore
	outlets *outletService
	seating *seatingService
	tables  *tableService

	outletID  int64
	indoorID  int64
	terraceID int64
	sofaID    int64
	stoolID   int64
	otherSofa int64
	tableIDs  map[string]int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := newMemStore()
	repo := store.repository()
	log := zap.NewNop()
	now := func() time.Time { return fixedNow }

	f := &fixture{
		store:    store,
		outlets:  NewOutletService(repo, log).(*outletService),
		seating:  NewSeatingService(repo, log).(*seatingService),
		tables:   NewTableService(repo, log).(*tableService),
		tableIDs: map[string]int64{},
	}
	f.outlets.now, f.seating.now, f.tables.now = now, now, now

	ctx := utils.SetActor(context.Background(), "manager")

	outlet, err := f.outlets.CreateOutlet(ctx, &request.OutletRequest{Name: "Harbour", Address: "1 Pier", City: "Jakarta"})
	require.NoError(t, err)
	f.outletID = outlet.ID

	other, err := f.outlets.CreateOutlet(ctx, &request.OutletRequest{Name: "Uptown", Address: "2 Hill", City: "Bandung"})
	require.NoError(t, err)

	seatingType := func(outletID int64, name string) int64 {
		st, err := f.seating.CreateSeatingType(ctx, outletID, &request.SeatingTypeRequest{Name: name})
		require.NoError(t, err)
		return st.ID
	}
	seatType := func(outletID int64, name string) int64 {
		st, err := f.seating.CreateSeatType(ctx, outletID, &request.SeatTypeRequest{Name: name})
		require.NoError(t, err)
		return st.ID
	}

	f.indoorID = seatingType(f.outletID, "Indoor")
	f.terraceID = seatingType(f.outletID, "Terrace")
	f.sofaID = seatType(f.outletID, "Sofa")
	f.stoolID = seatType(f.outletID, "Bar stool")
	f.otherSofa = seatType(other.ID, "Sofa")

	for _, tbl := range []struct {
		name        string
		seating     int64
		seat        int64
		floor, size int
	}{
		{"T1", f.indoorID, f.sofaID, 1, 4},
		{"T2", f.indoorID, f.stoolID, 1, 2},
		{"T3", f.terraceID, f.sofaID, 0, 6},
	} {
		created, err := f.tables.CreateTable(ctx, f.outletID, &request.TableRequest{
			SeatingTypeID: tbl.seating,
			SeatTypeID:    tbl.seat,
			Name:          tbl.name,
			Floor:         tbl.floor,
			Capacity:      tbl.size,
		})
		require.NoError(t, err)
		f.tableIDs[tbl.name] = created.ID
	}

	return f
}

func tableNames(t *testing.T, f *fixture, filter request.SeatingFilter) []string {
	t.Helper()
	res, err := f.tables.SearchTables(context.Background(), f.outletID, filter)
	require.NoError(t, err)
	assert.Equal(t, len(res.Tables), res.Total)

	names := make([]string, len(res.Tables))
	for i, tbl := range res.Tables {
		names[i] = tbl.Name
	}
	return names
}

func TestSearchTablesBySeatingAndSeatType(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{"T1", "T2"}, tableNames(t, f, request.SeatingFilter{
		SeatingTypeIDs: []int64{f.indoorID},
	}))
	assert.Equal(t, []string{"T3", "T1"}, tableNames(t, f, request.SeatingFilter{
		SeatTypeIDs: []int64{f.sofaID},
	}))
	assert.Equal(t, []string{"T1"}, tableNames(t, f, request.SeatingFilter{
		SeatingTypeIDs: []int64{f.indoorID},
		SeatTypeIDs:    []int64{f.sofaID},
	}))
	assert.Equal(t, []string{"T3", "T1", "T2"}, tableNames(t, f, request.SeatingFilter{}))
}

func TestSearchTablesIgnoresForeignAndUnknownIDs(t *testing.T) {
	f := newFixture(t)

	assert.Empty(t, tableNames(t, f, request.SeatingFilter{SeatTypeIDs: []int64{f.otherSofa}}))
	assert.Empty(t, tableNames(t, f, request.SeatingFilter{SeatingTypeIDs: []int64{999}}))
}

func TestSearchTablesFromPayload(t *testing.T) {
	f := newFixture(t)

	filter, err := request.SeatingFilterFromPayload(map[string]any{
		"seatingType": []any{float64(f.indoorID), float64(f.terraceID), float64(f.indoorID)},
		"seatType":    []any{float64(f.stoolID)},
	})
	require.NoError(t, err)

	res, err := f.tables.SearchTables(context.Background(), f.outletID, filter)
	require.NoError(t, err)
	assert.Equal(t, []int64{f.indoorID, f.terraceID}, res.SeatingTypeIDs)
	require.Len(t, res.Tables, 1)
	assert.Equal(t, "T2", res.Tables[0].Name)
}

func TestSearchTablesSkipsInactiveTables(t *testing.T) {
	f := newFixture(t)
	inactive := "inactive"

	_, err := f.tables.UpdateTable(context.Background(), f.tableIDs["T1"], &request.TableUpdateRequest{Status: &inactive})
	require.NoError(t, err)

	assert.Equal(t, []string{"T3"}, tableNames(t, f, request.SeatingFilter{SeatTypeIDs: []int64{f.sofaID}}))
}

func TestSearchTablesUnknownOutlet(t *testing.T) {
	f := newFixture(t)

	_, err := f.tables.SearchTables(context.Background(), 404, request.SeatingFilter{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchTablesStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.store.failSearch = true

	_, err := f.tables.SearchTables(context.Background(), f.outletID, request.SeatingFilter{})
	assert.ErrorIs(t, err, errStore)
}

func TestCreateTableRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.tables.CreateTable(ctx, f.outletID, &request.TableRequest{
		SeatingTypeID: f.indoorID, SeatTypeID: f.otherSofa, Name: "T9", Capacity: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.tables.CreateTable(ctx, f.outletID, &request.TableRequest{
		SeatingTypeID: f.indoorID, SeatTypeID: f.sofaID, Name: "t1", Capacity: 2,
	})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.tables.CreateTable(ctx, f.outletID, &request.TableRequest{
		SeatingTypeID: f.indoorID, SeatTypeID: f.sofaID, Name: "T9", Capacity: 2, MinCapacity: 3,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	created, err := f.tables.CreateTable(ctx, f.outletID, &request.TableRequest{
		SeatingTypeID: f.indoorID, SeatTypeID: f.sofaID, Name: "T9", Capacity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.MinCapacity)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.CreatedBy)
	assert.Equal(t, fixedNow, created.CreatedAt)
}

func TestCreateTableOnInactiveOutlet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.outlets.SetOutletStatus(ctx, f.outletID, "inactive")
	require.NoError(t, err)

	_, err = f.tables.CreateTable(ctx, f.outletID, &request.TableRequest{
		SeatingTypeID: f.indoorID, SeatTypeID: f.sofaID, Name: "T9", Capacity: 2,
	})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.seating.CreateSeatType(ctx, f.outletID, &request.SeatTypeRequest{Name: "Bench"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateTable(t *testing.T) {
	f := newFixture(t)
	ctx := utils.SetActor(context.Background(), "host")

	capacity, minCapacity := 2, 3
	_, err := f.tables.UpdateTable(ctx, f.tableIDs["T3"], &request.TableUpdateRequest{
		Capacity:    &capacity,
		MinCapacity: &minCapacity,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	name := "T2"
	_, err = f.tables.UpdateTable(ctx, f.tableIDs["T1"], &request.TableUpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrConflict)

	updated, err := f.tables.UpdateTable(ctx, f.tableIDs["T1"], &request.TableUpdateRequest{SeatingTypeID: &f.terraceID})
	require.NoError(t, err)
	assert.Equal(t, f.terraceID, updated.SeatingTypeID)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, "host", *updated.UpdatedBy)
}

func TestDeleteTable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.tables.DeleteTable(ctx, f.tableIDs["T2"]))

	_, err := f.tables.GetTableByID(ctx, f.tableIDs["T2"])
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.tables.DeleteTable(ctx, f.tableIDs["T2"]), ErrNotFound)

	stored := f.store.tables[f.tableIDs["T2"]]
	assert.Equal(t, entity.StatusDeleted, stored.Status())
	require.NotNil(t, stored.DeletedAt())
	assert.Equal(t, fixedNow, *stored.DeletedAt())
}

func TestGetTablesPaginates(t *testing.T) {
	f := newFixture(t)

	page, err := f.tables.GetTables(context.Background(), f.outletID, &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "T2", page.Data[0].Name)
}

func TestDeleteSeatingTypeInUse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.seating.DeleteSeatingType(ctx, f.terraceID), ErrConflict)
	assert.ErrorIs(t, f.seating.DeleteSeatType(ctx, f.stoolID), ErrConflict)

	require.NoError(t, f.tables.DeleteTable(ctx, f.tableIDs["T3"]))
	require.NoError(t, f.seating.DeleteSeatingType(ctx, f.terraceID))

	types, err := f.seating.ListSeatingTypes(ctx, f.outletID)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Indoor", types[0].Name)
}

func TestInactiveSeatingTypeBlocksNewTables(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inactive := "inactive"

	_, err := f.seating.UpdateSeatingType(ctx, f.terraceID, &request.SeatingTypeUpdateRequest{Status: &inactive})
	require.NoError(t, err)

	_, err = f.tables.CreateTable(ctx, f.outletID, &request.TableRequest{
		SeatingTypeID: f.terraceID, SeatTypeID: f.sofaID, Name: "T4", Capacity: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOutletLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	detail, err := f.outlets.GetOutletByID(ctx, f.outletID)
	require.NoError(t, err)
	assert.Len(t, detail.SeatingTypes, 2)
	assert.Len(t, detail.SeatTypes, 2)
	assert.Equal(t, int64(3), detail.TableCount)
	require.NotNil(t, detail.CreatedBy)
	assert.Equal(t, "manager", *detail.CreatedBy)

	_, err = f.outlets.SetOutletStatus(ctx, f.outletID, "archived")
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, f.outlets.DeleteOutlet(ctx, f.outletID))

	_, err = f.outlets.GetOutletByID(ctx, f.outletID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.tables.GetTableByID(ctx, f.tableIDs["T1"])
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.outlets.DeleteOutlet(ctx, f.outletID), ErrNotFound)
}

func TestGetOutletsFiltersByCity(t *testing.T) {
	f := newFixture(t)
	city := "band"

	page, err := f.outlets.GetOutlets(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10}, &city)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Pagination.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Uptown", page.Data[0].Name)
}

func TestUpdateOutlet(t *testing.T) {
	f := newFixture(t)
	name := "Harbour Deck"

	updated, err := f.outlets.UpdateOutlet(context.Background(), f.outletID, &request.OutletUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Harbour Deck", updated.Name)
	assert.Equal(t, "Jakarta", updated.City)
}
