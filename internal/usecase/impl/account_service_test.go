package impl

import (
	"context"
	"testing"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"
	mockSvc "coderr/internal/mocks/service"
	"coderr/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return accountServiceFixtures{
		service: NewAccountService(AccountServiceParams{
			TxManager:    txManager,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegistration() usecase.RegisterInput {
	return usecase.RegisterInput{
		Username:         "anna",
		Email:            "anna@example.com",
		Password:         "s3cret!",
		RepeatedPassword: "s3cret!",
		Type:             "business",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret!").Return("hashed", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)

		accountRepo.EXPECT().FindByUsername(ctx, "anna").Return(nil, repository.ErrAccountNotFound)
		accountRepo.EXPECT().Create(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Username == "anna" && a.PasswordHash == "hashed" && !a.IsGuest
		})).Run(func(_ context.Context, a *entity.Account) { a.ID = 7 }).Return(nil)
		profileRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.UserID == 7 && p.Role == entity.RoleBusiness
		})).Return(nil)
	})
	fx.tokenService.EXPECT().GenerateAccessToken(uint(7)).Return("token-7", nil)

	out, err := fx.service.Register(ctx, validRegistration())

	require.NoError(t, err)
	assert.Equal(t, "token-7", out.Token)
	assert.Equal(t, "anna", out.Username)
	assert.Equal(t, "anna@example.com", out.Email)
	assert.Equal(t, uint(7), out.UserID)
}

func TestAccountService_Register_RejectsBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *usecase.RegisterInput)
		wantErr error
	}{
		{
			name:    "passwords differ",
			mutate:  func(in *usecase.RegisterInput) { in.RepeatedPassword = "other" },
			wantErr: domainerrors.ErrPasswordsDoNotMatch,
		},
		{
			name:    "reserved guest prefix",
			mutate:  func(in *usecase.RegisterInput) { in.Username = "guest_anna" },
			wantErr: domainerrors.ErrReservedUsername,
		},
		{
			name:    "staff is not self-registrable",
			mutate:  func(in *usecase.RegisterInput) { in.Type = "staff" },
			wantErr: domainerrors.ErrInvalidRole,
		},
		{
			name:    "missing email",
			mutate:  func(in *usecase.RegisterInput) { in.Email = "" },
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			input := validRegistration()
			tt.mutate(&input)

			out, err := fx.service.Register(context.Background(), input)

			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret!").Return("hashed", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByUsername(ctx, "anna").Return(&entity.Account{ID: 1, Username: "anna"}, nil)
	})

	_, err := fx.service.Register(ctx, validRegistration())

	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := &entity.Account{ID: 9, Username: "anna", Email: "anna@example.com", PasswordHash: "hashed"}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByUsername(ctx, "anna").Return(account, nil)
	})
	fx.hasher.EXPECT().Check("s3cret!", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(uint(9)).Return("token-9", nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "anna", Password: "s3cret!"})

	require.NoError(t, err)
	assert.Equal(t, "token-9", out.Token)
	assert.False(t, out.Guest)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByUsername(ctx, "anna").Return(&entity.Account{ID: 9, PasswordHash: "hashed"}, nil)
	})
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "anna", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))
}

func TestAccountService_Login_UnknownUser(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, repository.ErrAccountNotFound)
	})

	_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "nobody", Password: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.LoginInput
	}{
		{name: "missing username", input: usecase.LoginInput{Password: "x"}},
		{name: "unknown guest role", input: usecase.LoginInput{Username: "guest_admin"}},
		{name: "regular user without password", input: usecase.LoginInput{Username: "anna"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)

			_, err := fx.service.Login(context.Background(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAccountService_GuestLogin_CreatesAccountAndProfile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)

		accountRepo.EXPECT().FindByUsername(ctx, "guest_customer").Return(nil, repository.ErrAccountNotFound)
		accountRepo.EXPECT().Create(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.IsGuest && a.Email == "guest_customer@example.com" && a.LastName == "Customer"
		})).Run(func(_ context.Context, a *entity.Account) { a.ID = 11 }).Return(nil)
		profileRepo.EXPECT().FindByUserID(ctx, uint(11)).Return(nil, repository.ErrProfileNotFound)
		profileRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.UserID == 11 && p.Role == entity.RoleCustomer
		})).Return(nil)
	})
	fx.tokenService.EXPECT().GenerateAccessToken(uint(11)).Return("guest-token", nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "guest_customer"})

	require.NoError(t, err)
	assert.True(t, out.Guest)
	assert.Equal(t, "guest_customer", out.Username)
}

// The shared guest profile takes the role of the most recent guest login.
func TestAccountService_GuestLogin_LastLoginWinsRole(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := &entity.Account{ID: 12, Username: "guest_business", IsGuest: true}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)

		accountRepo.EXPECT().FindByUsername(ctx, "guest_business").Return(account, nil)
		profileRepo.EXPECT().FindByUserID(ctx, uint(12)).Return(&entity.Profile{ID: 5, UserID: 12, Role: entity.RoleCustomer}, nil)
		profileRepo.EXPECT().UpdateRole(ctx, uint(5), entity.RoleBusiness).Return(nil)
	})
	fx.tokenService.EXPECT().GenerateAccessToken(uint(12)).Return("guest-token", nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "Guest_Business"})

	require.NoError(t, err)
}

func TestAccountService_Login_GuestAccountRejectsPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByUsername(ctx, "guest_customer").Return(&entity.Account{ID: 11, IsGuest: true}, nil)
	})

	_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "guest_customer", Password: "guest_password"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
