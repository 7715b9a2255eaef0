package unitofwork

import (
	"context"

	"smepro-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SubscriptionRepository() contract.SubscriptionRepository
	ChatSessionRepository() contract.ChatSessionRepository
	VaultRepository() contract.VaultRepository
}
