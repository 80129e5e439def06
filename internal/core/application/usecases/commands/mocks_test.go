package commands_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPurchaseRepository struct{ mock.Mock }

func (m *MockPurchaseRepository) Add(ctx context.Context, p *purchase.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Update(ctx context.Context, p *purchase.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Get(ctx context.Context, id int64) (*purchase.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchase.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) GetAllActive(ctx context.Context) ([]*purchase.Purchase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*purchase.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) GetAllActiveByRequester(ctx context.Context, requesterID int64) ([]*purchase.Purchase, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*purchase.Purchase), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PurchaseRepository() ports.PurchaseRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func testUser(t *testing.T, id int64, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser("member@team.org", "Team Member", role, time.Now())
	require.NoError(t, err)
	require.NoError(t, u.MarkPersisted(id))
	return u
}

func testDraft(t *testing.T, requesterID int64) purchase.Draft {
	t.Helper()
	price, err := kernel.NewMoneyFromFloat(120)
	require.NoError(t, err)
	return purchase.Draft{
		RequesterID: requesterID,
		ItemName:    "Wheel hub",
		VendorName:  "McMaster-Carr",
		Quantity:    2,
		Price:       price,
		Subteam:     "MechE Structures",
	}
}

func testOrder(t *testing.T, id, requesterID int64) *purchase.Purchase {
	t.Helper()
	p, err := purchase.NewPurchase(testDraft(t, requesterID), time.Now())
	require.NoError(t, err)
	require.NoError(t, p.MarkPersisted(id, 1))
	return p
}

func testThreshold(t *testing.T) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(3000)
	require.NoError(t, err)
	return m
}
