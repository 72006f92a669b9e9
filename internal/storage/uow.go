package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrFinished is returned when committing a unit of work that was already
// committed or rolled back.
var ErrFinished = errors.New("storage: unit of work already finished")

type uowState int

const (
	stateActive uowState = iota
	stateCommitted
	stateRolledBack
)

// UnitOfWork is one transaction boundary. Repositories flush inside it;
// only the owning scope ends it, and commit happens at most once.
//
// A unit normally owns a transaction begun on the gateway. The test
// harness instead binds one to a savepoint inside a longer-lived outer
// transaction: in that mode Commit releases the current savepoint and
// immediately opens a fresh one before returning, so code under test can
// commit freely while the outer transaction stays open for rollback at
// teardown.
type UnitOfWork struct {
	tx    *gorm.DB
	state uowState

	nested bool
	seq    int
	sp     string
}

func newUnitOfWork(tx *gorm.DB) *UnitOfWork {
	return &UnitOfWork{tx: tx}
}

// NewNested binds a unit of work to a savepoint inside tx instead of
// owning tx. Committing or rolling back the unit never ends tx.
func NewNested(tx *gorm.DB) (*UnitOfWork, error) {
	u := &UnitOfWork{tx: tx, nested: true}
	if err := u.beginSavepoint(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *UnitOfWork) beginSavepoint() error {
	u.seq++
	u.sp = fmt.Sprintf("uow_sp_%d", u.seq)
	return u.tx.SavePoint(u.sp).Error
}

// DB is the transactional handle repositories operate on.
func (u *UnitOfWork) DB() *gorm.DB {
	return u.tx
}

func (u *UnitOfWork) Commit() error {
	if u.state != stateActive {
		return ErrFinished
	}
	if u.nested {
		if err := u.tx.Exec("RELEASE SAVEPOINT " + u.sp).Error; err != nil {
			return err
		}
		return u.beginSavepoint()
	}
	u.state = stateCommitted
	return u.tx.Commit().Error
}

// Rollback discards the unit's pending changes. On a finished unit it is a
// no-op, so deferred rollbacks are safe on every exit path. In nested mode
// it rolls back to the current savepoint and the unit stays usable.
func (u *UnitOfWork) Rollback() error {
	if u.state != stateActive {
		return nil
	}
	if u.nested {
		return u.tx.RollbackTo(u.sp).Error
	}
	u.state = stateRolledBack
	return u.tx.Rollback().Error
}

// Close finishes a nested unit without touching the outer transaction.
// The harness calls it at teardown before rolling the outer back.
func (u *UnitOfWork) Close() {
	if u.nested && u.state == stateActive {
		u.state = stateRolledBack
	}
}
