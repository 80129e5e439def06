package cmd

import (
	"log/slog"
	"strconv"

	httpin "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/jobs"

	"gorm.io/gorm"
)

// DefaultExecApprovalThreshold is the order price, in dollars, above which
// executive approval is required when no threshold is configured.
const DefaultExecApprovalThreshold = 3000.00

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	threshold  kernel.Money
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		threshold:  parseThreshold(config.ExecApprovalThreshold),
	}
}

func parseThreshold(raw string) kernel.Money {
	value := DefaultExecApprovalThreshold
	if raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err == nil && parsed > 0 {
			value = parsed
		}
	}

	threshold, err := kernel.NewMoneyFromFloat(value)
	if err != nil {
		threshold, _ = kernel.NewMoneyFromFloat(DefaultExecApprovalThreshold)
	}
	return threshold
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreatePurchaseCommandHandler() commands.CreatePurchaseCommandHandler {
	return commands.NewCreatePurchaseCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateApprovePurchaseCommandHandler() commands.ApprovePurchaseCommandHandler {
	return commands.NewApprovePurchaseCommandHandler(c.commandUoWFactory(), c.threshold)
}

func (c *CompositionRoot) CreateRejectPurchaseCommandHandler() commands.RejectPurchaseCommandHandler {
	return commands.NewRejectPurchaseCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() commands.AdvanceStatusCommandHandler {
	return commands.NewAdvanceStatusCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateCancelPurchaseCommandHandler() commands.CancelPurchaseCommandHandler {
	return commands.NewCancelPurchaseCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateDeletePurchaseCommandHandler() commands.DeletePurchaseCommandHandler {
	return commands.NewDeletePurchaseCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateRestorePurchaseCommandHandler() commands.RestorePurchaseCommandHandler {
	return commands.NewRestorePurchaseCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateListPurchasesQueryHandler() queries.ListPurchasesQueryHandler {
	return queries.NewListPurchasesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPurchaseQueryHandler() queries.GetPurchaseQueryHandler {
	return queries.NewGetPurchaseQueryHandler(c.gormDB, c.threshold)
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	return queries.NewGetStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreatePurchaseCommandHandler(),
		c.CreateApprovePurchaseCommandHandler(),
		c.CreateRejectPurchaseCommandHandler(),
		c.CreateAdvanceStatusCommandHandler(),
		c.CreateCancelPurchaseCommandHandler(),
		c.CreateDeletePurchaseCommandHandler(),
		c.CreateRestorePurchaseCommandHandler(),
		c.CreateListPurchasesQueryHandler(),
		c.CreateGetPurchaseQueryHandler(),
		c.CreateGetStatisticsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
