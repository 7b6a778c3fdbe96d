package repository

import (
	"testing"
	"time"

	"outlet-seating/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleColumnsRestore(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	var base entity.Base
	base.ID = 4
	cols := lifecycleColumns{status: "deleted", deletedAt: &at}
	require.NoError(t, cols.restore(&base))
	assert.True(t, base.IsDeleted())
	require.NotNil(t, base.DeletedAt())
	assert.Equal(t, at, *base.DeletedAt())

	cols = lifecycleColumns{status: "active", deletedAt: &at}
	err := cols.restore(&base)
	require.ErrorIs(t, err, entity.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "restore lifecycle of 4")
}

func TestNonNilIDs(t *testing.T) {
	assert.NotNil(t, nonNilIDs(nil))
	assert.Empty(t, nonNilIDs(nil))
	assert.Equal(t, []int64{1, 2}, nonNilIDs([]int64{1, 2}))
}
