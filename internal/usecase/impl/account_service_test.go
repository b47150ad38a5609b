package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	customerRepo *fakeCustomerRepo
	hasher       *fakeHasher
	tokenService *fakeTokenService
}

func createTestAccountService(t *testing.T, adminCfg *config.AdminConfig) accountServiceFixtures {
	t.Helper()

	customerRepo := &fakeCustomerRepo{}
	hasher := &fakeHasher{
		hash:  func(password string) (string, error) { return "hashed:" + password, nil },
		check: func(password, hash string) bool { return hash == "hashed:"+password },
	}
	tokenService := &fakeTokenService{
		generate: func(customerID int64) (string, error) { return "token", nil },
	}

	svc := NewAccountService(AccountServiceParams{
		TxManager:    &fakeTxManager{customerRepo: customerRepo},
		CustomerRepo: customerRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       &config.Config{Admin: adminCfg},
		Logger:       discardLogger(t),
	})

	return accountServiceFixtures{
		service:      svc,
		customerRepo: customerRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register(t *testing.T) {
	f := createTestAccountService(t, nil)
	f.customerRepo.findByEmail = func(ctx context.Context, email string) (*entity.Customer, error) {
		return nil, repository.ErrCustomerNotFound
	}
	f.customerRepo.create = func(ctx context.Context, customer *entity.Customer) error {
		customer.ID = 7

		return nil
	}

	output, err := f.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), output.Customer.ID)
	assert.Equal(t, "hashed:supersecret", output.Customer.HashedPassword)
	assert.False(t, output.Customer.IsAdmin)
	assert.True(t, output.Customer.IsActive)
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	f := createTestAccountService(t, nil)
	f.customerRepo.findByEmail = func(ctx context.Context, email string) (*entity.Customer, error) {
		return &entity.Customer{ID: 1, Email: email}, nil
	}

	output, err := f.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	assert.Nil(t, output)
}

func TestAccountService_Login(t *testing.T) {
	f := createTestAccountService(t, nil)
	f.customerRepo.findByEmail = func(ctx context.Context, email string) (*entity.Customer, error) {
		return &entity.Customer{
			ID:             3,
			Email:          email,
			HashedPassword: "hashed:supersecret",
			IsActive:       true,
		}, nil
	}

	output, err := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "token", output.Token)
	assert.Equal(t, int64(3), output.Customer.ID)
}

func TestAccountService_LoginFailuresCollapse(t *testing.T) {
	// Unknown email, wrong password and inactive account must be
	// indistinguishable to the client.
	cases := []struct {
		name        string
		findByEmail func(ctx context.Context, email string) (*entity.Customer, error)
		password    string
	}{
		{
			name: "unknown email",
			findByEmail: func(ctx context.Context, email string) (*entity.Customer, error) {
				return nil, repository.ErrCustomerNotFound
			},
			password: "supersecret",
		},
		{
			name: "wrong password",
			findByEmail: func(ctx context.Context, email string) (*entity.Customer, error) {
				return &entity.Customer{ID: 3, HashedPassword: "hashed:supersecret", IsActive: true}, nil
			},
			password: "wrong",
		},
		{
			name: "inactive account",
			findByEmail: func(ctx context.Context, email string) (*entity.Customer, error) {
				return &entity.Customer{ID: 3, HashedPassword: "hashed:supersecret", IsActive: false}, nil
			},
			password: "supersecret",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := createTestAccountService(t, nil)
			f.customerRepo.findByEmail = tc.findByEmail

			output, err := f.service.Login(context.Background(), usecase.LoginInput{
				Email:    "alice@example.com",
				Password: tc.password,
			})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
			assert.Nil(t, output)
		})
	}
}

func TestAccountService_Authenticate(t *testing.T) {
	f := createTestAccountService(t, nil)
	f.tokenService.validate = func(token string) (*service.Claims, error) {
		return &service.Claims{CustomerID: 3}, nil
	}
	f.customerRepo.findByID = func(ctx context.Context, id int64) (*entity.Customer, error) {
		return &entity.Customer{ID: id, IsActive: true}, nil
	}

	customer, err := f.service.Authenticate(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, int64(3), customer.ID)
}

func TestAccountService_AuthenticateRejects(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		f := createTestAccountService(t, nil)
		f.tokenService.validate = func(token string) (*service.Claims, error) {
			return nil, assert.AnError
		}

		customer, err := f.service.Authenticate(context.Background(), "bad")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		assert.Nil(t, customer)
	})

	t.Run("deleted customer", func(t *testing.T) {
		f := createTestAccountService(t, nil)
		f.tokenService.validate = func(token string) (*service.Claims, error) {
			return &service.Claims{CustomerID: 3}, nil
		}
		f.customerRepo.findByID = func(ctx context.Context, id int64) (*entity.Customer, error) {
			return nil, repository.ErrCustomerNotFound
		}

		customer, err := f.service.Authenticate(context.Background(), "token")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		assert.Nil(t, customer)
	})

	t.Run("inactive customer", func(t *testing.T) {
		f := createTestAccountService(t, nil)
		f.tokenService.validate = func(token string) (*service.Claims, error) {
			return &service.Claims{CustomerID: 3}, nil
		}
		f.customerRepo.findByID = func(ctx context.Context, id int64) (*entity.Customer, error) {
			return &entity.Customer{ID: id, IsActive: false}, nil
		}

		customer, err := f.service.Authenticate(context.Background(), "token")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		assert.Nil(t, customer)
	})
}

func TestAccountService_BootstrapAdmin(t *testing.T) {
	adminCfg := &config.AdminConfig{
		BootstrapEnabled: true,
		Name:             "Admin",
		Email:            "admin@example.com",
		Password:         "admin_password",
	}

	f := createTestAccountService(t, adminCfg)
	f.customerRepo.findByEmail = func(ctx context.Context, email string) (*entity.Customer, error) {
		return nil, repository.ErrCustomerNotFound
	}
	f.customerRepo.create = func(ctx context.Context, customer *entity.Customer) error {
		customer.ID = 1

		return nil
	}

	admin, err := f.service.BootstrapAdmin(context.Background())
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.True(t, admin.IsActive)
	assert.Equal(t, "admin@example.com", admin.Email)
}

func TestAccountService_BootstrapAdminAlreadyExists(t *testing.T) {
	adminCfg := &config.AdminConfig{
		BootstrapEnabled: true,
		Email:            "admin@example.com",
		Password:         "admin_password",
	}

	f := createTestAccountService(t, adminCfg)
	f.customerRepo.findByEmail = func(ctx context.Context, email string) (*entity.Customer, error) {
		return &entity.Customer{ID: 1, Email: email}, nil
	}

	admin, err := f.service.BootstrapAdmin(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	assert.Nil(t, admin)
}

func TestAccountService_BootstrapAdminDisabled(t *testing.T) {
	f := createTestAccountService(t, &config.AdminConfig{BootstrapEnabled: false})

	admin, err := f.service.BootstrapAdmin(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, admin)
}
