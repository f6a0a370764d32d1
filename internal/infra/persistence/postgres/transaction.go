// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bumpr/internal/domain/repository"
	"bumpr/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// ProfileRepo returns a profile repository bound to the transaction.
func (f *gormRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

// HandshakeRepo returns a handshake repository bound to the transaction.
func (f *gormRepositoryFactory) HandshakeRepo() repository.HandshakeRepository {
	return NewHandshakeRepository(f.tx)
}

// MomentRepo returns a moment repository bound to the transaction.
func (f *gormRepositoryFactory) MomentRepo() repository.MomentRepository {
	return NewMomentRepository(f.tx)
}

// MomentViewRepo returns a moment view repository bound to the transaction.
func (f *gormRepositoryFactory) MomentViewRepo() repository.MomentViewRepository {
	return NewMomentViewRepository(f.tx)
}

// ReputationRepo returns a reputation ledger repository bound to the transaction.
func (f *gormRepositoryFactory) ReputationRepo() repository.ReputationRepository {
	return NewReputationRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back if the callback panics.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Keep the business error first so errors.As still finds it.
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}
		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
