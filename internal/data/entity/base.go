package entity

import (
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle state of a record.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDeleted  Status = "deleted"
)

var ErrInvalidTransition = errors.New("invalid lifecycle transition")

// Lifecycle replaces the isActive/deletedAt flag pair. The deletion time only
// exists while the status is StatusDeleted, and deleted is terminal.
type Lifecycle struct {
	status    Status
	deletedAt *time.Time
}

func NewLifecycle() Lifecycle {
	return Lifecycle{status: StatusActive}
}

// RestoreLifecycle rebuilds a lifecycle from stored columns and rejects
// combinations that cannot occur.
func RestoreLifecycle(status string, deletedAt *time.Time) (Lifecycle, error) {
	switch Status(status) {
	case StatusActive, StatusInactive:
		if deletedAt != nil {
			return Lifecycle{}, fmt.Errorf("%w: %s record has deleted_at set", ErrInvalidTransition, status)
		}
		return Lifecycle{status: Status(status)}, nil
	case StatusDeleted:
		if deletedAt == nil {
			return Lifecycle{}, fmt.Errorf("%w: deleted record without deleted_at", ErrInvalidTransition)
		}
		at := *deletedAt
		return Lifecycle{status: StatusDeleted, deletedAt: &at}, nil
	default:
		return Lifecycle{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}
}

func (l Lifecycle) Status() Status {
	if l.status == "" {
		return StatusActive
	}
	return l.status
}

func (l Lifecycle) IsActive() bool  { return l.Status() == StatusActive }
func (l Lifecycle) IsDeleted() bool { return l.Status() == StatusDeleted }

func (l Lifecycle) DeletedAt() *time.Time {
	if l.deletedAt == nil {
		return nil
	}
	at := *l.deletedAt
	return &at
}

func (l *Lifecycle) Activate() error {
	if l.IsDeleted() {
		return fmt.Errorf("%w: cannot activate a deleted record", ErrInvalidTransition)
	}
	l.status = StatusActive
	return nil
}

func (l *Lifecycle) Deactivate() error {
	if l.IsDeleted() {
		return fmt.Errorf("%w: cannot deactivate a deleted record", ErrInvalidTransition)
	}
	l.status = StatusInactive
	return nil
}

func (l *Lifecycle) SoftDelete(at time.Time) error {
	if l.IsDeleted() {
		return fmt.Errorf("%w: record already deleted", ErrInvalidTransition)
	}
	l.status = StatusDeleted
	l.deletedAt = &at
	return nil
}

// Audit stamps who touched a record and when.
type Audit struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	CreatedBy *string   `db:"created_by"`
	UpdatedBy *string   `db:"updated_by"`
}

func NewAudit(now time.Time, actor *string) Audit {
	return Audit{CreatedAt: now, UpdatedAt: now, CreatedBy: actor, UpdatedBy: actor}
}

func (a *Audit) Touch(now time.Time, actor *string) {
	a.UpdatedAt = now
	a.UpdatedBy = actor
}

type Base struct {
	ID int64 `db:"id"`
	Audit
	Lifecycle
}
