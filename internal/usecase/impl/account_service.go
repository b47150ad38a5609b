// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	adminConfig  *config.AdminConfig
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	var adminConfig *config.AdminConfig
	if params.Config != nil {
		adminConfig = params.Config.Admin
	}

	return &accountService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		adminConfig:  adminConfig,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the customer registration process. The duplicate
// check and the insert run in one transaction so two concurrent signups
// with the same email cannot both succeed.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registered *entity.Customer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		_, err := customerRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		hashed, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}

		customer := &entity.Customer{
			Name:           input.Name,
			Email:          input.Email,
			Phone:          input.Phone,
			Address:        input.Address,
			HashedPassword: hashed,
			IsAdmin:        false,
			IsActive:       true,
		}
		if err := customerRepo.Create(ctx, customer); err != nil {
			return err
		}

		registered = customer

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Customer registered", slog.Int64("customerID", registered.ID))

	return &usecase.RegisterOutput{Customer: registered}, nil
}

// Login verifies credentials and issues a signed auth token. Every failure
// mode surfaces the same invalid-credentials error to the client; the log
// keeps the distinction.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	customer, err := srv.customerRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			srv.log(ctx).Warn("Login failed: unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find customer for login")
	}

	if !customer.CanAuthenticate() {
		srv.log(ctx).Warn("Login failed: inactive account", slog.Int64("customerID", customer.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, customer.HashedPassword) {
		srv.log(ctx).Warn("Login failed: wrong password", slog.Int64("customerID", customer.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(customer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate auth token")
	}

	srv.log(ctx).Info("Customer logged in", slog.Int64("customerID", customer.ID))

	return &usecase.LoginOutput{Token: token, Customer: customer}, nil
}

// Authenticate resolves a token string to the active customer it was issued to.
func (srv *accountService) Authenticate(ctx context.Context, token string) (*entity.Customer, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	customer, err := srv.customerRepo.FindByID(ctx, claims.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to find customer for token")
	}

	if !customer.CanAuthenticate() {
		return nil, domainerrors.ErrUnauthorized
	}

	return customer, nil
}

// BootstrapAdmin creates the configured admin account. It refuses when an
// account with the configured email already exists.
func (srv *accountService) BootstrapAdmin(ctx context.Context) (*entity.Customer, error) {
	if srv.adminConfig == nil || !srv.adminConfig.BootstrapEnabled {
		return nil, domainerrors.ErrForbidden
	}

	var created *entity.Customer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		_, err := customerRepo.FindByEmail(ctx, srv.adminConfig.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("admin account already exists")
		}
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return errors.Wrap(err, "failed to check existing admin")
		}

		hashed, err := srv.hasher.Hash(srv.adminConfig.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}

		admin := &entity.Customer{
			Name:           srv.adminConfig.Name,
			Email:          srv.adminConfig.Email,
			HashedPassword: hashed,
			IsAdmin:        true,
			IsActive:       true,
			IsSuperuser:    true,
			IsVerified:     true,
		}
		if err := customerRepo.Create(ctx, admin); err != nil {
			return err
		}

		created = admin

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Admin account bootstrapped", slog.Int64("customerID", created.ID))

	return created, nil
}
