package auditrepo_test

import (
	"context"
	"testing"
	"time"

	"paneltrack/internal/adapters/out/postgres/auditrepo"
	"paneltrack/internal/core/domain/model/audit"
	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AuditRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *auditrepo.GormAuditRepository
}

func (suite *AuditRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&auditrepo.ClosureRecordDTO{})
	suite.Require().NoError(err)
}

func (suite *AuditRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *AuditRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE closure_records CASCADE").Error
	suite.Require().NoError(err)

	suite.repo = auditrepo.NewGormAuditRepository(suite.db)
}

func (suite *AuditRepositoryTestSuite) snapshot(orderID kernel.UUID, at time.Time) order.Statistics {
	activity := at.Add(-time.Hour)
	return order.Statistics{
		OrderID:            orderID.String(),
		OrderNumber:        "MO-2026-2001",
		TargetQuantity:     10,
		ScannedPanels:      10,
		CompletedPanels:    10,
		CompletionPercent:  100,
		FailureRatePercent: 0,
		LastActivityAt:     &activity,
		ComputedAt:         at,
	}
}

func (suite *AuditRepositoryTestSuite) newClosure(orderID kernel.UUID, at time.Time) *audit.ClosureRecord {
	record, err := audit.NewClosureRecord(
		kernel.NewUUID(), orderID, audit.KindManualClose, kernel.NewUUID(),
		false, 1, order.InProgress, "target reached",
		suite.snapshot(orderID, at), at)
	suite.Require().NoError(err)
	return record
}

func (suite *AuditRepositoryTestSuite) newRollback(
	orderID kernel.UUID, reverses kernel.UUID, at time.Time,
) *audit.ClosureRecord {
	record, err := audit.NewRollbackRecord(
		kernel.NewUUID(), orderID, kernel.NewUUID(), reverses,
		1, order.InProgress, "late defect found",
		suite.snapshot(orderID, at), at)
	suite.Require().NoError(err)
	return record
}

func (suite *AuditRepositoryTestSuite) TestAppendAndGetAllByOrder_CreationOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Second)

	first := suite.newClosure(orderID, base.Add(-2*time.Hour))
	rollback := suite.newRollback(orderID, first.ID(), base.Add(-time.Hour))
	second := suite.newClosure(orderID, base)

	suite.Require().NoError(suite.repo.Append(ctx, first))
	suite.Require().NoError(suite.repo.Append(ctx, rollback))
	suite.Require().NoError(suite.repo.Append(ctx, second))

	records, err := suite.repo.GetAllByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)
	suite.True(first.ID().IsEqual(records[0].ID()))
	suite.True(rollback.ID().IsEqual(records[1].ID()))
	suite.True(second.ID().IsEqual(records[2].ID()))

	suite.Equal(audit.KindRollback, records[1].Kind())
	suite.Require().NotNil(records[1].ReversesRecordID())
	suite.True(first.ID().IsEqual(*records[1].ReversesRecordID()))
	suite.Equal(100.0, records[0].Snapshot().CompletionPercent)
}

func (suite *AuditRepositoryTestSuite) TestGetLatestClosure_SkipsReversedRecords() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Second)

	first := suite.newClosure(orderID, base.Add(-3*time.Hour))
	second := suite.newClosure(orderID, base.Add(-2*time.Hour))
	rollback := suite.newRollback(orderID, second.ID(), base.Add(-time.Hour))

	suite.Require().NoError(suite.repo.Append(ctx, first))
	suite.Require().NoError(suite.repo.Append(ctx, second))
	suite.Require().NoError(suite.repo.Append(ctx, rollback))

	// The newest closure is reversed, so the one before it is the latest
	// reversible record.
	latest, err := suite.repo.GetLatestClosure(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(first.ID().IsEqual(latest.ID()))
}

func (suite *AuditRepositoryTestSuite) TestGetLatestClosure_AllReversed() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Second)

	closure := suite.newClosure(orderID, base.Add(-2*time.Hour))
	rollback := suite.newRollback(orderID, closure.ID(), base.Add(-time.Hour))

	suite.Require().NoError(suite.repo.Append(ctx, closure))
	suite.Require().NoError(suite.repo.Append(ctx, rollback))

	_, err := suite.repo.GetLatestClosure(ctx, orderID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AuditRepositoryTestSuite) TestGetLatestClosure_NoRecords() {
	_, err := suite.repo.GetLatestClosure(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestAuditRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AuditRepositoryTestSuite))
}
