package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/domain/service"
	"coderr/internal/errors"
	"coderr/internal/usecase"

	"go.uber.org/fx"
)

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account with a customer or business profile and issues a token.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	role := entity.Role(input.Type)
	if !role.IsRegistrable() {
		return nil, domainerrors.ErrInvalidRole.WithDetails(input.Type)
	}
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username, email and password are required")
	}
	if input.Password != input.RepeatedPassword {
		return nil, domainerrors.ErrPasswordsDoNotMatch
	}
	if entity.IsGuestUsername(input.Username) {
		return nil, domainerrors.ErrReservedUsername.WithDetails(input.Username)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	account := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return domainerrors.ErrUsernameTaken.WithDetails(input.Username)
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check username")
		}

		if err := accountRepo.Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return domainerrors.ErrUsernameTaken.WithDetails(input.Username)
			}

			return errors.Wrap(err, "failed to create account")
		}

		profile := &entity.Profile{
			UserID:   account.ID,
			Username: account.Username,
			Email:    account.Email,
			Role:     role,
		}
		if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("Account registered", slog.Any("userID", account.ID), slog.Any("role", role))

	return srv.issue(account)
}

// Login authenticates with username and password. Without a password the
// username must name one of the shared guest accounts.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username is required")
	}
	if input.Password == "" {
		return srv.guestLogin(ctx, input.Username)
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByUsername(ctx, input.Username)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrInvalidCredentials
		}
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	if account.IsGuest || !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(account)
}

// guestLogin get-or-creates the shared guest account and its profile. The
// profile role follows the most recent guest login.
func (srv *accountService) guestLogin(ctx context.Context, username string) (*usecase.AuthOutput, error) {
	role, ok := entity.GuestRole(username)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid username format")
	}
	guestName := entity.GuestUsernamePrefix + string(role)

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.findOrCreateGuestAccount(ctx, repoFactory.AccountRepo(), guestName, role)
		if err != nil {
			return err
		}
		account = found

		return srv.ensureGuestProfile(ctx, repoFactory.ProfileRepo(), account, role)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute guest login transaction")
	}

	return srv.issue(account)
}

func (srv *accountService) findOrCreateGuestAccount(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	guestName string,
	role entity.Role,
) (*entity.Account, error) {
	account, err := accountRepo.FindByUsername(ctx, guestName)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find guest account")
	}

	account = &entity.Account{
		Username:  guestName,
		Email:     guestName + "@example.com",
		FirstName: "Guest",
		LastName:  strings.ToUpper(string(role[:1])) + string(role[1:]),
		IsGuest:   true,
	}
	if err := accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create guest account")
	}

	srv.log(ctx).Info("Guest account created", slog.String("username", guestName))

	return account, nil
}

func (srv *accountService) ensureGuestProfile(
	ctx context.Context,
	profileRepo repository.ProfileRepository,
	account *entity.Account,
	role entity.Role,
) error {
	profile, err := profileRepo.FindByUserID(ctx, account.ID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		profile = &entity.Profile{
			UserID:    account.ID,
			Username:  account.Username,
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Email:     account.Email,
			Role:      role,
		}

		return errors.Wrap(profileRepo.Create(ctx, profile), "failed to create guest profile")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find guest profile")
	}

	if profile.Role != role {
		// Shared guest profiles are repurposed: the last guest login decides the role.
		srv.log(ctx).Warn("Overwriting guest profile role",
			slog.Any("profileID", profile.ID),
			slog.Any("from", profile.Role),
			slog.Any("to", role),
		)

		return errors.Wrap(profileRepo.UpdateRole(ctx, profile.ID, role), "failed to switch guest profile role")
	}

	return nil
}

func (srv *accountService) issue(account *entity.Account) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateAccessToken(account.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssue, err.Error())
	}

	return &usecase.AuthOutput{
		Token:    token,
		Username: account.Username,
		Email:    account.Email,
		UserID:   account.ID,
		Guest:    account.IsGuest,
	}, nil
}
