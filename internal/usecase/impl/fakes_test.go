package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
)

// Hand-rolled fakes with function fields so each test overrides only what
// it needs. Unset calls panic, which surfaces unexpected interactions.

type fakeCustomerRepo struct {
	findByID    func(ctx context.Context, id int64) (*entity.Customer, error)
	findByEmail func(ctx context.Context, email string) (*entity.Customer, error)
	create      func(ctx context.Context, customer *entity.Customer) error
	update      func(ctx context.Context, customer *entity.Customer) error
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return f.findByID(ctx, id)
}

func (f *fakeCustomerRepo) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return f.findByEmail(ctx, email)
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	return f.create(ctx, customer)
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	return f.update(ctx, customer)
}

type fakeProductRepo struct {
	findByID  func(ctx context.Context, id int64) (*entity.Product, error)
	list      func(ctx context.Context, nameQuery string) ([]*entity.Product, error)
	listFirst func(ctx context.Context, limit int) ([]*entity.Product, error)
	create    func(ctx context.Context, product *entity.Product) error
	update    func(ctx context.Context, product *entity.Product) error
	delete    func(ctx context.Context, id int64) error
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	return f.findByID(ctx, id)
}

func (f *fakeProductRepo) List(ctx context.Context, nameQuery string) ([]*entity.Product, error) {
	return f.list(ctx, nameQuery)
}

func (f *fakeProductRepo) ListFirst(ctx context.Context, limit int) ([]*entity.Product, error) {
	return f.listFirst(ctx, limit)
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return f.create(ctx, product)
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return f.update(ctx, product)
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	return f.delete(ctx, id)
}

type fakeReviewRepo struct {
	listByProduct func(ctx context.Context, productID int64) ([]*entity.Review, error)
	create        func(ctx context.Context, review *entity.Review) error
	averageRating func(ctx context.Context, productID int64) (float64, error)
}

func (f *fakeReviewRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	return f.listByProduct(ctx, productID)
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return f.create(ctx, review)
}

func (f *fakeReviewRepo) AverageRating(ctx context.Context, productID int64) (float64, error) {
	return f.averageRating(ctx, productID)
}

// fakeTxManager runs the callback inline with a factory returning the fakes.
type fakeTxManager struct {
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	reviewRepo   repository.ReviewRepository
}

func (f *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) CustomerRepo() repository.CustomerRepository { return f.customerRepo }
func (f *fakeTxManager) ProductRepo() repository.ProductRepository   { return f.productRepo }
func (f *fakeTxManager) ReviewRepo() repository.ReviewRepository     { return f.reviewRepo }

type fakeHasher struct {
	hash  func(password string) (string, error)
	check func(password, hash string) bool
}

func (f *fakeHasher) Hash(password string) (string, error) { return f.hash(password) }
func (f *fakeHasher) Check(password, hash string) bool     { return f.check(password, hash) }

type fakeTokenService struct {
	generate func(customerID int64) (string, error)
	validate func(token string) (*service.Claims, error)
}

func (f *fakeTokenService) GenerateToken(customerID int64) (string, error) {
	return f.generate(customerID)
}

func (f *fakeTokenService) ValidateToken(token string) (*service.Claims, error) {
	return f.validate(token)
}

func (f *fakeTokenService) TokenTTL() time.Duration { return time.Hour }

type fakeImageStore struct {
	save func(ctx context.Context, filename string, content []byte) (string, error)
}

func (f *fakeImageStore) Save(ctx context.Context, filename string, content []byte) (string, error) {
	return f.save(ctx, filename, content)
}

func discardLogger(t *testing.T) *slog.Logger {
	t.Helper()

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
