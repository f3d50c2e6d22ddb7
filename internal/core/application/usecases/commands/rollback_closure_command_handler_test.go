package commands_test

import (
	"testing"
	"time"

	"paneltrack/internal/core/application/usecases/commands"
	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/domain/model/panel"
	"paneltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func closureRecord(t *testing.T, o *order.Order, prior order.Status) *audit.ClosureRecord {
	t.Helper()
	record, err := audit.NewClosureRecord(
		kernel.NewUUID(), o.ID(), audit.KindManualClose, kernel.NewUUID(),
		false, 1, prior, "",
		order.Statistics{OrderID: o.ID().String(), OrderNumber: o.OrderNumber(), ComputedAt: time.Now()},
		time.Now())
	require.NoError(t, err)
	return record
}

func TestRollbackClosureCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newCompletedOrder(t, 2)
	closure := closureRecord(t, o, order.InProgress)
	cmd, err := commands.NewRollbackClosureCommand(o.ID(), kernel.NewUUID(), "defect found")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	panelRepo := new(MockPanelRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("GetLatestClosure", mock.Anything, o.ID()).Return(closure, nil).Once(),
		uow.On("PanelRepository").Return(panelRepo).Once(),
		panelRepo.On("GetAllByOrder", mock.Anything, o.ID()).Return([]*panel.Panel{}, nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.ClosureRecord")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateStatusGuarded", mock.Anything, o, order.Completed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRollbackUoWFactory)
	factory.On("Create").Return(uow).Once()
	invalidator := new(MockProgressInvalidator)
	invalidator.On("Invalidate", ctx, o.ID().String()).Return(nil).Once()

	h := commands.NewRollbackClosureCommandHandler(factory, invalidator)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.InProgress, o.Status())
	assert.Nil(t, o.ActualCompletionDate())
	assert.Equal(t, order.InProgress, result.RestoredStatus)

	// The compensating record references the closure it reverses.
	written := auditRepo.Calls[1].Arguments.Get(1).(*audit.ClosureRecord)
	assert.Equal(t, audit.KindRollback, written.Kind())
	require.NotNil(t, written.ReversesRecordID())
	assert.True(t, written.ReversesRecordID().IsEqual(closure.ID()))
	assert.Equal(t, "defect found", written.Reason())
	uow.AssertExpectations(t)
}

func TestRollbackClosureCommandHandler_Handle_NotCompleted(t *testing.T) {
	ctx := t.Context()
	o := newInProgressOrder(t, 2, 1)
	cmd, err := commands.NewRollbackClosureCommand(o.ID(), kernel.NewUUID(), "defect found")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRollbackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRollbackClosureCommandHandler(factory, new(MockProgressInvalidator))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotCompleted)
	assert.Equal(t, order.InProgress, o.Status())
}

func TestRollbackClosureCommandHandler_Handle_NoReversibleClosure(t *testing.T) {
	ctx := t.Context()
	o := newCompletedOrder(t, 2)
	cmd, err := commands.NewRollbackClosureCommand(o.ID(), kernel.NewUUID(), "defect found")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("GetLatestClosure", mock.Anything, o.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderID", o.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRollbackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRollbackClosureCommandHandler(factory, new(MockProgressInvalidator))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
