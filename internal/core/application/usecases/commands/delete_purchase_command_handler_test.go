package commands_test

import (
	"context"
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func lifecycleHandlerFixture(ctx context.Context, actor *user.User, order *purchase.Purchase) (*MockUoWFactory, *MockUoW, *MockPurchaseRepository) {
	userRepo := new(MockUserRepository)
	purchaseRepo := new(MockPurchaseRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, actor.ID()).Return(actor, nil).Once(),
		uow.On("PurchaseRepository").Return(purchaseRepo).Once(),
		purchaseRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, purchaseRepo
}

func deletedOrder(t *testing.T, id int64) *purchase.Purchase {
	t.Helper()
	order := testOrder(t, id, 7)
	s := order.Snapshot()
	s.IsDeleted = true
	restored, err := purchase.RestorePurchase(s)
	require.NoError(t, err)
	return restored
}

func TestDeletePurchaseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := testUser(t, 4, user.RoleBusiness)
	order := testOrder(t, 10, 7)
	cmd, _ := commands.NewDeletePurchaseCommand(4, 10)

	factory, uow, purchaseRepo := lifecycleHandlerFixture(ctx, actor, order)
	purchaseRepo.On("Update", mock.Anything, order).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDeletePurchaseCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, order.IsDeleted())
	purchaseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeletePurchaseCommandHandler_Handle_AlreadyDeleted(t *testing.T) {
	ctx := t.Context()
	actor := testUser(t, 4, user.RoleBusiness)
	order := deletedOrder(t, 10)
	cmd, _ := commands.NewDeletePurchaseCommand(4, 10)

	// no Update expected: deleting twice is a no-op
	factory, uow, purchaseRepo := lifecycleHandlerFixture(ctx, actor, order)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDeletePurchaseCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, order.IsDeleted())
	purchaseRepo.AssertExpectations(t)
}

func TestDeletePurchaseCommandHandler_Handle_NonBusinessActor(t *testing.T) {
	ctx := t.Context()
	actor := testUser(t, 7, user.RoleRequester)
	cmd, _ := commands.NewDeletePurchaseCommand(7, 10)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, int64(7)).Return(actor, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeletePurchaseCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAuthorizationDenied)
}

func TestRestorePurchaseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := testUser(t, 4, user.RoleBusiness)
	order := deletedOrder(t, 10)
	cmd, _ := commands.NewRestorePurchaseCommand(4, 10)

	factory, uow, purchaseRepo := lifecycleHandlerFixture(ctx, actor, order)
	purchaseRepo.On("Update", mock.Anything, order).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRestorePurchaseCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.False(t, order.IsDeleted())
	purchaseRepo.AssertExpectations(t)
}

func TestRestorePurchaseCommandHandler_Handle_NotDeleted(t *testing.T) {
	ctx := t.Context()
	actor := testUser(t, 4, user.RoleBusiness)
	order := testOrder(t, 10, 7)
	cmd, _ := commands.NewRestorePurchaseCommand(4, 10)

	// no Update expected: restoring a live order is a no-op
	factory, uow, purchaseRepo := lifecycleHandlerFixture(ctx, actor, order)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRestorePurchaseCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.False(t, order.IsDeleted())
	purchaseRepo.AssertExpectations(t)
}

func TestCancelPurchaseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := testUser(t, 4, user.RoleBusiness)
	order := testOrder(t, 10, 7)
	cmd, _ := commands.NewCancelPurchaseCommand(4, 10)

	factory, uow, purchaseRepo := lifecycleHandlerFixture(ctx, actor, order)
	purchaseRepo.On("Update", mock.Anything, order).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCancelPurchaseCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, purchase.StatusCancelled, order.Status())
	purchaseRepo.AssertExpectations(t)
}

func TestCancelPurchaseCommandHandler_Handle_ShippedOrder(t *testing.T) {
	ctx := t.Context()
	actor := testUser(t, 4, user.RoleBusiness)
	order := approvedOrder(t, 10, purchase.StatusShipped)
	cmd, _ := commands.NewCancelPurchaseCommand(4, 10)

	factory, uow, _ := lifecycleHandlerFixture(ctx, actor, order)
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCancelPurchaseCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidTransition)
}
