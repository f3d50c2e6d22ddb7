package queries_test

import (
	"context"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/domain/model/pallet"
	"paneltrack/internal/core/domain/model/panel"
	"paneltrack/internal/core/domain/model/rules"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatusGuarded(
	ctx context.Context, aggregate *order.Order, expectedStatus order.Status,
) error {
	args := m.Called(ctx, aggregate, expectedStatus)
	return args.Error(0)
}

func (m *MockOrderRepository) RegisterCompletedPanel(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPanelRepository struct {
	mock.Mock
}

func (m *MockPanelRepository) Add(ctx context.Context, aggregate *panel.Panel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPanelRepository) Update(ctx context.Context, aggregate *panel.Panel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPanelRepository) Get(ctx context.Context, id kernel.UUID) (*panel.Panel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*panel.Panel), args.Error(1)
}

func (m *MockPanelRepository) GetByBarcode(ctx context.Context, barcode kernel.Barcode) (*panel.Panel, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*panel.Panel), args.Error(1)
}

func (m *MockPanelRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*panel.Panel, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*panel.Panel), args.Error(1)
}

type MockPalletRepository struct {
	mock.Mock
}

func (m *MockPalletRepository) Add(ctx context.Context, aggregate *pallet.Pallet) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPalletRepository) Update(ctx context.Context, aggregate *pallet.Pallet) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPalletRepository) Get(ctx context.Context, id kernel.UUID) (*pallet.Pallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pallet.Pallet), args.Error(1)
}

func (m *MockPalletRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*pallet.Pallet, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pallet.Pallet), args.Error(1)
}

type MockRuleSetRepository struct {
	mock.Mock
}

func (m *MockRuleSetRepository) Add(ctx context.Context, ruleSet rules.ClosureRuleSet) error {
	args := m.Called(ctx, ruleSet)
	return args.Error(0)
}

func (m *MockRuleSetRepository) GetCurrent(ctx context.Context) (rules.ClosureRuleSet, error) {
	args := m.Called(ctx)
	return args.Get(0).(rules.ClosureRuleSet), args.Error(1)
}

func (m *MockRuleSetRepository) GetByVersion(ctx context.Context, version int) (rules.ClosureRuleSet, error) {
	args := m.Called(ctx, version)
	return args.Get(0).(rules.ClosureRuleSet), args.Error(1)
}
