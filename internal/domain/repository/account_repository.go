// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"coderr/internal/domain/entity"
	"coderr/internal/errors"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// AccountRepository persists login identities.
type AccountRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Account, error)
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
	// Create fills in ID and CreatedAt; a taken username yields ErrDuplicateUsername.
	Create(ctx context.Context, account *entity.Account) error
}
