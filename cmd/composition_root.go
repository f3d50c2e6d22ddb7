package cmd

import (
	"log/slog"

	"paneltrack/internal/adapters/out/postgres"
	"paneltrack/internal/adapters/out/postgres/orderrepo"
	"paneltrack/internal/adapters/out/postgres/palletrepo"
	"paneltrack/internal/adapters/out/postgres/panelrepo"
	"paneltrack/internal/adapters/out/postgres/rulesrepo"
	"paneltrack/internal/adapters/out/reportlog"
	"paneltrack/internal/core/application/progress"
	"paneltrack/internal/core/application/usecases/commands"
	"paneltrack/internal/core/application/usecases/queries"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/services"
	"paneltrack/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	aggregator *progress.Aggregator
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	cache progress.Cache,
	logger *slog.Logger,
) (CompositionRoot, error) {
	aggregator, err := progress.NewAggregator(cache)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		aggregator: aggregator,
		logger:     logger,
	}, nil
}

// ProgressAggregator exposes the shared progress cache front so inbound
// adapters can invalidate entries.
func (c *CompositionRoot) ProgressAggregator() *progress.Aggregator {
	return c.aggregator
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordScanCommandHandler() commands.RecordScanCommandHandler {
	var f commands.ScanUoWFactory = FuncScanUoWFactory(func() commands.ScanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordScanCommandHandler(f, c.aggregator)
}

func (c *CompositionRoot) CreateRecordInspectionCommandHandler() commands.RecordInspectionCommandHandler {
	var f commands.InspectionUoWFactory = FuncInspectionUoWFactory(func() commands.InspectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordInspectionCommandHandler(f, services.NewStationGate(), c.aggregator)
}

func (c *CompositionRoot) CreateReworkPanelCommandHandler() commands.ReworkPanelCommandHandler {
	var f commands.PanelUoWFactory = FuncPanelUoWFactory(func() commands.PanelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReworkPanelCommandHandler(f, c.aggregator)
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	var f commands.ClosureUoWFactory = FuncClosureUoWFactory(func() commands.ClosureUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseOrderCommandHandler(
		f, services.NewReadinessAssessor(), c.aggregator, reportlog.NewGenerator(c.logger))
}

func (c *CompositionRoot) CreateRollbackClosureCommandHandler() commands.RollbackClosureCommandHandler {
	var f commands.RollbackUoWFactory = FuncRollbackUoWFactory(func() commands.RollbackUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRollbackClosureCommandHandler(f, c.aggregator)
}

func (c *CompositionRoot) CreateUpdateClosureRulesCommandHandler() commands.UpdateClosureRulesCommandHandler {
	var f commands.RulesUoWFactory = FuncRulesUoWFactory(func() commands.RulesUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateClosureRulesCommandHandler(f)
}

func (c *CompositionRoot) CreateAssessClosureReadinessQueryHandler() (queries.AssessClosureReadinessQueryHandler, error) {
	return queries.NewAssessClosureReadinessQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{}),
		panelrepo.NewGormPanelRepository(c.gormDB, noopTracker{}),
		palletrepo.NewGormPalletRepository(c.gormDB, noopTracker{}),
		rulesrepo.NewGormRuleSetRepository(c.gormDB),
		services.NewReadinessAssessor(),
	)
}

func (c *CompositionRoot) CreateGetOrderProgressQueryHandler() (queries.GetOrderProgressQueryHandler, error) {
	return queries.NewGetOrderProgressQueryHandler(
		c.aggregator,
		orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{}),
		panelrepo.NewGormPanelRepository(c.gormDB, noopTracker{}),
	)
}

func (c *CompositionRoot) CreateGetClosureAuditHistoryQueryHandler() queries.GetClosureAuditHistoryQueryHandler {
	return queries.NewGetClosureAuditHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClosureRulesQueryHandler() queries.GetClosureRulesQueryHandler {
	return queries.NewGetClosureRulesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCloseOrderCommandHandler(),
		orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{}),
		c.logger,
	)
}

// noopTracker backs read-side repositories, which run outside a unit of
// work and have nothing to track.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncScanUoWFactory func() commands.ScanUoW

func (f FuncScanUoWFactory) Create() commands.ScanUoW {
	return f()
}

type FuncInspectionUoWFactory func() commands.InspectionUoW

func (f FuncInspectionUoWFactory) Create() commands.InspectionUoW {
	return f()
}

type FuncPanelUoWFactory func() commands.PanelUoW

func (f FuncPanelUoWFactory) Create() commands.PanelUoW {
	return f()
}

type FuncClosureUoWFactory func() commands.ClosureUoW

func (f FuncClosureUoWFactory) Create() commands.ClosureUoW {
	return f()
}

type FuncRollbackUoWFactory func() commands.RollbackUoW

func (f FuncRollbackUoWFactory) Create() commands.RollbackUoW {
	return f()
}

type FuncRulesUoWFactory func() commands.RulesUoW

func (f FuncRulesUoWFactory) Create() commands.RulesUoW {
	return f()
}
