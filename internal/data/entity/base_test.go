package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleTransitions(t *testing.T) {
	l := NewLifecycle()
	assert.True(t, l.IsActive())
	assert.Nil(t, l.DeletedAt())

	require.NoError(t, l.Deactivate())
	assert.Equal(t, StatusInactive, l.Status())
	assert.False(t, l.IsActive())

	require.NoError(t, l.Activate())
	assert.True(t, l.IsActive())

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, l.SoftDelete(at))
	assert.True(t, l.IsDeleted())
	assert.False(t, l.IsActive())
	require.NotNil(t, l.DeletedAt())
	assert.Equal(t, at, *l.DeletedAt())

	assert.ErrorIs(t, l.Activate(), ErrInvalidTransition)
	assert.ErrorIs(t, l.Deactivate(), ErrInvalidTransition)
	assert.ErrorIs(t, l.SoftDelete(at.Add(time.Hour)), ErrInvalidTransition)
	assert.Equal(t, at, *l.DeletedAt())
}

func TestLifecycleZeroValueIsActive(t *testing.T) {
	var l Lifecycle
	assert.Equal(t, StatusActive, l.Status())
}

func TestRestoreLifecycle(t *testing.T) {
	at := time.Now()

	l, err := RestoreLifecycle("inactive", nil)
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, l.Status())

	l, err = RestoreLifecycle("deleted", &at)
	require.NoError(t, err)
	assert.True(t, l.IsDeleted())

	_, err = RestoreLifecycle("active", &at)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = RestoreLifecycle("deleted", nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = RestoreLifecycle("archived", nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDeletedAtIsCopied(t *testing.T) {
	at := time.Now()
	l, err := RestoreLifecycle("deleted", &at)
	require.NoError(t, err)

	got := l.DeletedAt()
	*got = got.Add(time.Hour)
	assert.Equal(t, at, *l.DeletedAt())
}

func TestAuditTouch(t *testing.T) {
	actor := "manager"
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := NewAudit(created, &actor)

	other := "host"
	a.Touch(created.Add(time.Minute), &other)

	assert.Equal(t, created, a.CreatedAt)
	assert.Equal(t, created.Add(time.Minute), a.UpdatedAt)
	assert.Equal(t, "manager", *a.CreatedBy)
	assert.Equal(t, "host", *a.UpdatedBy)
}
