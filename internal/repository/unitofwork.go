package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repositories bundles the repositories of one database handle. Inside
// WithinTx every member shares the transaction.
type Repositories struct {
	Projects   ProjectRepositoryInterface
	Resources  ResourceRepositoryInterface
	Phases     PhaseRepositoryInterface
	Milestones MilestoneRepositoryInterface
	Holidays   HolidayRepositoryInterface
}

// NewRepositories creates every repository over db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Projects:   NewProjectRepository(db),
		Resources:  NewResourceRepository(db),
		Phases:     NewPhaseRepository(db),
		Milestones: NewMilestoneRepository(db),
		Holidays:   NewHolidayRepository(db),
	}
}

// UnitOfWork implements UnitOfWorkInterface with GORM transactions
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a UnitOfWork backed by db
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// WithinTx begins a transaction bound to ctx, so a cancelled or expired
// context aborts the statement in flight and the transaction rolls back.
func (u *UnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("beginning transaction: %w", tx.Error)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, NewRepositories(tx)); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil && ctx.Err() == nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
