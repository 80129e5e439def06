package commands_test

import (
	"strings"
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRejectPurchaseCommand(t *testing.T) {
	cmd, err := commands.NewRejectPurchaseCommand(2, 10, "over budget")
	require.NoError(t, err)
	assert.Equal(t, int64(2), cmd.ActorID())
	assert.Equal(t, int64(10), cmd.PurchaseID())
	assert.Equal(t, "over budget", cmd.Reason())

	// An empty reason is allowed.
	_, err = commands.NewRejectPurchaseCommand(2, 10, "")
	require.NoError(t, err)

	_, err = commands.NewRejectPurchaseCommand(0, 10, "over budget")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRejectPurchaseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := testUser(t, 2, user.RoleSublead)
	order := testOrder(t, 10, 7)
	cmd, _ := commands.NewRejectPurchaseCommand(2, 10, "over budget")

	factory, uow, _, purchaseRepo := approveHandlerFixture(ctx, actor, order)
	purchaseRepo.On("Update", mock.Anything, order).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRejectPurchaseCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, purchase.ApprovalRejected, order.ApprovalStatus())
	assert.True(t, strings.Contains(order.Notes(), "Rejection reason: over budget"))
	purchaseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRejectPurchaseCommandHandler_Handle_SelfRejectionDenied(t *testing.T) {
	ctx := t.Context()
	actor := testUser(t, 7, user.RoleExecutive)
	order := testOrder(t, 10, 7)
	cmd, _ := commands.NewRejectPurchaseCommand(7, 10, "duplicate order")

	factory, uow, _, _ := approveHandlerFixture(ctx, actor, order)
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRejectPurchaseCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAuthorizationDenied)
}

func TestRejectPurchaseCommandHandler_Handle_AlreadyDecided(t *testing.T) {
	ctx := t.Context()
	actor := testUser(t, 3, user.RoleExecutive)

	order := testOrder(t, 10, 7)
	s := order.Snapshot()
	s.ApprovalStatus = purchase.ApprovalRejected
	order, err := purchase.RestorePurchase(s)
	require.NoError(t, err)

	cmd, _ := commands.NewRejectPurchaseCommand(3, 10, "still no")

	factory, uow, _, _ := approveHandlerFixture(ctx, actor, order)
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRejectPurchaseCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidTransition)
}

func TestRejectPurchaseCommandHandler_Handle_RequesterDenied(t *testing.T) {
	ctx := t.Context()
	actor := testUser(t, 2, user.RoleRequester)
	order := testOrder(t, 10, 7)
	cmd, _ := commands.NewRejectPurchaseCommand(2, 10, "not needed")

	factory, uow, _, _ := approveHandlerFixture(ctx, actor, order)
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewRejectPurchaseCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAuthorizationDenied)
}
