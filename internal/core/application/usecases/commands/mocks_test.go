package commands_test

import (
	"context"

	"paneltrack/internal/core/application/usecases/commands"
	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/domain/model/pallet"
	"paneltrack/internal/core/domain/model/panel"
	"paneltrack/internal/core/domain/model/rules"
	"paneltrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPanelRepository struct{ mock.Mock }

func (m *MockPanelRepository) Add(ctx context.Context, p *panel.Panel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPanelRepository) Update(ctx context.Context, p *panel.Panel) error {
	args := m.Called(ctx, p)
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

type MockInspectionRepository struct{ mock.Mock }

func (m *MockInspectionRepository) Append(ctx context.Context, i *panel.Inspection) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInspectionRepository) GetAllByPanel(ctx context.Context, panelID kernel.UUID) ([]*panel.Inspection, error) {
	args := m.Called(ctx, panelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*panel.Inspection), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatusGuarded(
	ctx context.Context,
	o *order.Order,
	expected order.Status,
) error {
	args := m.Called(ctx, o, expected)
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

type MockPalletRepository struct{ mock.Mock }

func (m *MockPalletRepository) Add(ctx context.Context, p *pallet.Pallet) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPalletRepository) Update(ctx context.Context, p *pallet.Pallet) error {
	args := m.Called(ctx, p)
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

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, r *audit.ClosureRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockAuditRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.ClosureRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.ClosureRecord), args.Error(1)
}

func (m *MockAuditRepository) GetLatestClosure(ctx context.Context, orderID kernel.UUID) (*audit.ClosureRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*audit.ClosureRecord), args.Error(1)
}

type MockRuleSetRepository struct{ mock.Mock }

func (m *MockRuleSetRepository) Add(ctx context.Context, rs rules.ClosureRuleSet) error {
	args := m.Called(ctx, rs)
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

// MockUoW satisfies every narrow unit of work interface in this package.
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

func (m *MockUoW) PanelRepository() ports.PanelRepository {
	args := m.Called()
	return args.Get(0).(ports.PanelRepository)
}

func (m *MockUoW) InspectionRepository() ports.InspectionRepository {
	args := m.Called()
	return args.Get(0).(ports.InspectionRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PalletRepository() ports.PalletRepository {
	args := m.Called()
	return args.Get(0).(ports.PalletRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

func (m *MockUoW) RuleSetRepository() ports.RuleSetRepository {
	args := m.Called()
	return args.Get(0).(ports.RuleSetRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockScanUoWFactory struct{ mock.Mock }

func (m *MockScanUoWFactory) Create() commands.ScanUoW {
	args := m.Called()
	return args.Get(0).(commands.ScanUoW)
}

type MockInspectionUoWFactory struct{ mock.Mock }

func (m *MockInspectionUoWFactory) Create() commands.InspectionUoW {
	args := m.Called()
	return args.Get(0).(commands.InspectionUoW)
}

type MockPanelUoWFactory struct{ mock.Mock }

func (m *MockPanelUoWFactory) Create() commands.PanelUoW {
	args := m.Called()
	return args.Get(0).(commands.PanelUoW)
}

type MockClosureUoWFactory struct{ mock.Mock }

func (m *MockClosureUoWFactory) Create() commands.ClosureUoW {
	args := m.Called()
	return args.Get(0).(commands.ClosureUoW)
}

type MockRollbackUoWFactory struct{ mock.Mock }

func (m *MockRollbackUoWFactory) Create() commands.RollbackUoW {
	args := m.Called()
	return args.Get(0).(commands.RollbackUoW)
}

type MockRulesUoWFactory struct{ mock.Mock }

func (m *MockRulesUoWFactory) Create() commands.RulesUoW {
	args := m.Called()
	return args.Get(0).(commands.RulesUoW)
}

type MockProgressInvalidator struct{ mock.Mock }

func (m *MockProgressInvalidator) Invalidate(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockReportGenerator struct{ mock.Mock }

func (m *MockReportGenerator) Generate(ctx context.Context, stats order.Statistics) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}
