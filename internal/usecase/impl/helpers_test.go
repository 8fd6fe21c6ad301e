package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"coderr/internal/domain/entity"
	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes the next Execute run fn against a fresh factory prepared by setup
// and return fn's result.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func customerProfile(id uint) *entity.Profile {
	return &entity.Profile{ID: id, UserID: id + 100, Username: "customer", Role: entity.RoleCustomer}
}

func businessProfile(id uint) *entity.Profile {
	return &entity.Profile{
		ID:        id,
		UserID:    id + 100,
		Username:  "seller",
		FirstName: "Sam",
		LastName:  "Seller",
		Role:      entity.RoleBusiness,
	}
}

func staffProfile(id uint) *entity.Profile {
	return &entity.Profile{ID: id, UserID: id + 100, Username: "staff", Role: entity.RoleStaff}
}

func ptr[T any](v T) *T {
	return &v
}
