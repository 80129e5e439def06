package queries_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres/purchaserepo"
	"procurement/internal/adapters/out/postgres/userrepo"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetStatisticsQueryHandlerTestSuite exercises statistics aggregation and the
// single-order detail query against a real PostgreSQL instance.
type GetStatisticsQueryHandlerTestSuite struct {
	suite.Suite
	container      *pgcontainer.PostgresContainer
	db             *gorm.DB
	statsHandler   queries.GetStatisticsQueryHandler
	detailHandler  queries.GetPurchaseQueryHandler
	repo           *purchaserepo.GormPurchaseRepository
	requesterID    int64
	otherID        int64
	subleadID      int64
	execID         int64
	threshold      kernel.Money
}

func (suite *GetStatisticsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&purchaserepo.PurchaseDTO{}, &userrepo.UserDTO{}))

	suite.threshold, err = kernel.NewMoneyFromFloat(3000)
	suite.Require().NoError(err)

	suite.statsHandler = queries.NewGetStatisticsQueryHandler(db)
	suite.detailHandler = queries.NewGetPurchaseQueryHandler(db, suite.threshold)
	suite.repo = purchaserepo.NewGormPurchaseRepository(db, noopTracker{})
}

func (suite *GetStatisticsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE purchases RESTART IDENTITY").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users RESTART IDENTITY").Error)

	suite.requesterID = suite.seedUser("requester@team.org", user.RoleRequester)
	suite.otherID = suite.seedUser("other@team.org", user.RoleRequester)
	suite.subleadID = suite.seedUser("lead@team.org", user.RoleSublead)
	suite.execID = suite.seedUser("exec@team.org", user.RoleExecutive)
}

func (suite *GetStatisticsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetStatisticsQueryHandlerTestSuite) seedUser(email string, role user.Role) int64 {
	u, err := user.NewUser(email, "Team Member", role, time.Now().UTC())
	suite.Require().NoError(err)
	dto := userrepo.FromDomain(u)
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *GetStatisticsQueryHandlerTestSuite) seedOrder(requesterID int64, price float64, mutate func(p *purchase.Purchase)) *purchase.Purchase {
	money, err := kernel.NewMoneyFromFloat(price)
	suite.Require().NoError(err)

	order, err := purchase.NewPurchase(purchase.Draft{
		RequesterID: requesterID,
		ItemName:    "Stock aluminum",
		VendorName:  "OnlineMetals",
		Quantity:    1,
		Price:       money,
		Subteam:     "MechE Structures",
	}, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	if mutate != nil {
		mutate(order)
	}
	suite.Require().NoError(suite.repo.Add(context.Background(), order))
	return order
}

func (suite *GetStatisticsQueryHandlerTestSuite) TestStatistics_CountsBuckets() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	approve := func(p *purchase.Purchase) {
		suite.Require().NoError(p.ApproveBySublead("lead@team.org", suite.threshold, now))
	}

	suite.seedOrder(suite.requesterID, 100, nil)
	suite.seedOrder(suite.requesterID, 200, approve)
	suite.seedOrder(suite.otherID, 300, func(p *purchase.Purchase) {
		approve(p)
		suite.Require().NoError(p.MarkPurchased(now))
	})

	query, err := queries.NewGetStatisticsQuery(suite.execID)
	suite.Require().NoError(err)

	resp, err := suite.statsHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(3, resp.TotalOrders)
	suite.Equal(1, resp.PendingApproval)
	suite.Equal(2, resp.ApprovedOrders)
	suite.Equal(1, resp.PurchasedOrders)
	suite.EqualValues(60000, resp.TotalValue.Cents())
}

func (suite *GetStatisticsQueryHandlerTestSuite) TestStatistics_SubleadScopedToOwnAndPendingSublead() {
	now := time.Now().UTC().Truncate(time.Microsecond)

	// Awaiting the sublead decision, in scope.
	suite.seedOrder(suite.requesterID, 100, nil)
	// Decided stranger's order, out of scope.
	suite.seedOrder(suite.otherID, 200, func(p *purchase.Purchase) {
		suite.Require().NoError(p.ApproveBySublead("lead@team.org", suite.threshold, now))
	})
	// The sublead's own decided order stays in scope.
	suite.seedOrder(suite.subleadID, 400, func(p *purchase.Purchase) {
		suite.Require().NoError(p.ApproveBySublead("exec@team.org", suite.threshold, now))
	})

	query, err := queries.NewGetStatisticsQuery(suite.subleadID)
	suite.Require().NoError(err)

	resp, err := suite.statsHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(2, resp.TotalOrders)
	suite.Equal(1, resp.PendingApproval)
	suite.Equal(1, resp.ApprovedOrders)
	suite.EqualValues(50000, resp.TotalValue.Cents())
}

func (suite *GetStatisticsQueryHandlerTestSuite) TestStatistics_RequesterScopedToOwnOrders() {
	suite.seedOrder(suite.requesterID, 100, nil)
	suite.seedOrder(suite.otherID, 900, nil)

	query, err := queries.NewGetStatisticsQuery(suite.requesterID)
	suite.Require().NoError(err)

	resp, err := suite.statsHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(1, resp.TotalOrders)
	suite.EqualValues(10000, resp.TotalValue.Cents())
}

func (suite *GetStatisticsQueryHandlerTestSuite) TestStatistics_ExcludesDeleted() {
	ctx := context.Background()
	order := suite.seedOrder(suite.requesterID, 100, nil)
	order.SoftDelete(time.Now().UTC())
	suite.Require().NoError(suite.repo.Update(ctx, order))

	query, err := queries.NewGetStatisticsQuery(suite.execID)
	suite.Require().NoError(err)

	resp, err := suite.statsHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Zero(resp.TotalOrders)
}

func (suite *GetStatisticsQueryHandlerTestSuite) TestDetail_ReturnsDerivedFields() {
	order := suite.seedOrder(suite.requesterID, 4500, nil)

	query, err := queries.NewGetPurchaseQuery(suite.subleadID, order.ID())
	suite.Require().NoError(err)

	resp, err := suite.detailHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(order.ID(), resp.ID)
	suite.True(resp.NeedsExecutiveApproval)
	suite.False(resp.CanBePurchased)
	suite.EqualValues(450000, resp.TotalCost.Cents())
}

func (suite *GetStatisticsQueryHandlerTestSuite) TestDetail_RequesterCannotReadForeignOrder() {
	order := suite.seedOrder(suite.otherID, 100, nil)

	query, err := queries.NewGetPurchaseQuery(suite.requesterID, order.ID())
	suite.Require().NoError(err)

	_, err = suite.detailHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrAuthorizationDenied)
}

func (suite *GetStatisticsQueryHandlerTestSuite) TestDetail_SubleadReadsOnlyPendingSubleadForeignOrders() {
	now := time.Now().UTC().Truncate(time.Microsecond)

	pending := suite.seedOrder(suite.otherID, 100, nil)
	decided := suite.seedOrder(suite.otherID, 200, func(p *purchase.Purchase) {
		suite.Require().NoError(p.ApproveBySublead("lead@team.org", suite.threshold, now))
	})

	query, err := queries.NewGetPurchaseQuery(suite.subleadID, pending.ID())
	suite.Require().NoError(err)
	resp, err := suite.detailHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(pending.ID(), resp.ID)

	query, err = queries.NewGetPurchaseQuery(suite.subleadID, decided.ID())
	suite.Require().NoError(err)
	_, err = suite.detailHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrAuthorizationDenied)
}

func (suite *GetStatisticsQueryHandlerTestSuite) TestDetail_NotFound() {
	query, err := queries.NewGetPurchaseQuery(suite.subleadID, 9999)
	suite.Require().NoError(err)

	_, err = suite.detailHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetStatisticsQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(GetStatisticsQueryHandlerTestSuite))
}
