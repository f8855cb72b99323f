package truckrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"gasfleet/internal/adapters/out/postgres/truckrepo"
	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/truck"
	"gasfleet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// TruckRepositoryIntegrationTestSuite provides integration tests for TruckRepository
// using PostgreSQL containers to verify database persistence behavior.
type TruckRepositoryIntegrationTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	truckRepository *truckrepo.GormTruckRepository
	tracker         *MockAggregateTracker
}

func (suite *TruckRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&truckrepo.TruckDTO{},
		&truckrepo.InventoryItemDTO{},
	))
}

func (suite *TruckRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE truck_inventory, trucks").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.truckRepository = truckrepo.NewGormTruckRepository(suite.db, suite.tracker)
}

func (suite *TruckRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TruckRepositoryIntegrationTestSuite) TestAdd_ValidTruck_Success() {
	ctx := context.Background()

	testTruck := suite.createTestTruck("KBX 412T")

	suite.tracker.On("TrackAggregate", testTruck.ID(), testTruck).Once()

	err := suite.truckRepository.Add(ctx, testTruck)
	suite.Require().NoError(err)

	suite.assertTruckCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TruckRepositoryIntegrationTestSuite) TestAdd_TruckWithInventory_PersistsInventoryRows() {
	ctx := context.Background()

	testTruck := suite.createTestTruck("KCA 703J")
	item, err := truck.NewInventoryItem(kernel.NewUUID(), 10, 5, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(testTruck.Load([]truck.InventoryItem{item}))

	suite.tracker.On("TrackAggregate", testTruck.ID(), testTruck).Once()

	err = suite.truckRepository.Add(ctx, testTruck)
	suite.Require().NoError(err)

	suite.assertTruckCount(1)
	suite.assertInventoryCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGet_ExistingTruck_ReturnsTruckWithInventory() {
	ctx := context.Background()

	originalTruck := suite.createTestTruck("KBM 055C")
	originalTruck.ScheduleMaintenance(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(originalTruck.SetFuel(120, 14))

	measured := 380.0
	item, err := truck.NewInventoryItem(kernel.NewUUID(), 12, 3, &measured)
	suite.Require().NoError(err)
	suite.Require().NoError(originalTruck.Load([]truck.InventoryItem{item}))

	suite.tracker.On("TrackAggregate", originalTruck.ID(), originalTruck).Once()
	suite.Require().NoError(suite.truckRepository.Add(ctx, originalTruck))

	retrievedTruck, err := suite.truckRepository.Get(ctx, originalTruck.ID())
	suite.Require().NoError(err)

	suite.Equal(originalTruck.ID(), retrievedTruck.ID())
	suite.Equal(originalTruck.Plate(), retrievedTruck.Plate())
	suite.Equal(originalTruck.Status(), retrievedTruck.Status())
	suite.Equal(originalTruck.CapacityCylinders(), retrievedTruck.CapacityCylinders())
	suite.InDelta(originalTruck.CapacityKg(), retrievedTruck.CapacityKg(), 0.001)
	suite.InDelta(120.0, retrievedTruck.FuelTankLiters(), 0.001)
	suite.InDelta(14.0, retrievedTruck.FuelConsumptionLPer100Km(), 0.001)
	suite.Require().NotNil(retrievedTruck.NextMaintenanceDate())
	suite.True(kernel.SameDate(
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		*retrievedTruck.NextMaintenanceDate(),
	))

	suite.Require().Len(retrievedTruck.Inventory(), 1)
	retrievedItem := retrievedTruck.Inventory()[0]
	suite.Equal(item.ProductID(), retrievedItem.ProductID())
	suite.Equal(12, retrievedItem.QtyFull())
	suite.Equal(3, retrievedItem.QtyEmpty())
	suite.Require().NotNil(retrievedItem.MeasuredWeightKg())
	suite.InDelta(measured, *retrievedItem.MeasuredWeightKg(), 0.001)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGet_NonExistentTruck_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedTruck, err := suite.truckRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedTruck)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGetForUpdate_LocksRowUntilCommit() {
	ctx := context.Background()

	testTruck := suite.createTestTruck("KDD 820Q")
	suite.tracker.On("TrackAggregate", testTruck.ID(), testTruck).Once()
	suite.Require().NoError(suite.truckRepository.Add(ctx, testTruck))

	// First transaction takes the row lock.
	tx1 := suite.db.Begin()
	suite.Require().NoError(tx1.Error)
	lockedRepo := truckrepo.NewGormTruckRepository(tx1, suite.tracker)

	locked, err := lockedRepo.GetForUpdate(ctx, testTruck.ID())
	suite.Require().NoError(err)
	suite.Equal(testTruck.ID(), locked.ID())

	// A second transaction cannot acquire the same lock while the first holds it.
	tx2 := suite.db.Begin()
	suite.Require().NoError(tx2.Error)
	blockedErr := tx2.Exec(
		"SELECT id FROM trucks WHERE id = ? FOR UPDATE NOWAIT", testTruck.ID().Bytes()).Error
	suite.Require().Error(blockedErr)
	suite.Require().NoError(tx2.Rollback().Error)

	// After commit the lock is released and the read succeeds.
	suite.Require().NoError(tx1.Commit().Error)
	retrieved, err := suite.truckRepository.GetForUpdate(ctx, testTruck.ID())
	suite.Require().NoError(err)
	suite.Equal(testTruck.ID(), retrieved.ID())
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGetForUpdate_NonExistentTruck_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedTruck, err := suite.truckRepository.GetForUpdate(ctx, kernel.NewUUID())

	suite.Nil(retrievedTruck)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGetAllForUpdate_ReturnsWholeFleet() {
	ctx := context.Background()

	for _, plate := range []string{"KBA 101A", "KBB 202B"} {
		testTruck := suite.createTestTruck(plate)
		suite.tracker.On("TrackAggregate", testTruck.ID(), testTruck).Once()
		suite.Require().NoError(suite.truckRepository.Add(ctx, testTruck))
	}

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	lockedRepo := truckrepo.NewGormTruckRepository(tx, suite.tracker)

	trucks, err := lockedRepo.GetAllForUpdate(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(tx.Commit().Error)

	suite.Require().Len(trucks, 2)
	suite.Equal("KBA 101A", trucks[0].Plate())
	suite.Equal("KBB 202B", trucks[1].Plate())
}

func (suite *TruckRepositoryIntegrationTestSuite) TestUpdate_TruckChanges() {
	testCases := []struct {
		name   string
		change func(*truck.Truck)
		verify func(*truck.Truck)
	}{
		{
			name: "status change to maintenance",
			change: func(t *truck.Truck) {
				suite.Require().NoError(t.ChangeStatus(truck.StatusMaintenance))
			},
			verify: func(retrieved *truck.Truck) {
				suite.Equal(truck.StatusMaintenance, retrieved.Status())
				suite.False(retrieved.IsOperational())
			},
		},
		{
			name: "loading adds inventory",
			change: func(t *truck.Truck) {
				item, err := truck.NewInventoryItem(kernel.NewUUID(), 8, 2, nil)
				suite.Require().NoError(err)
				suite.Require().NoError(t.Load([]truck.InventoryItem{item}))
			},
			verify: func(retrieved *truck.Truck) {
				suite.Require().Len(retrieved.Inventory(), 1)
				suite.Equal(10, retrieved.InventoryUnits())
			},
		},
		{
			name: "maintenance reschedule",
			change: func(t *truck.Truck) {
				t.ScheduleMaintenance(time.Date(2026, 6, 1, 10, 30, 0, 0, time.UTC))
			},
			verify: func(retrieved *truck.Truck) {
				suite.Require().NotNil(retrieved.NextMaintenanceDate())
				suite.True(kernel.SameDate(
					time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
					*retrieved.NextMaintenanceDate(),
				))
			},
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.setupSubtest()

			testTruck := suite.createTestTruck("KDA 118Q")
			suite.tracker.On("TrackAggregate", testTruck.ID(), testTruck).Twice()
			suite.Require().NoError(suite.truckRepository.Add(ctx, testTruck))

			tc.change(testTruck)
			suite.Require().NoError(suite.truckRepository.Update(ctx, testTruck))

			retrievedTruck, err := suite.truckRepository.Get(ctx, testTruck.ID())
			suite.Require().NoError(err)
			tc.verify(retrievedTruck)

			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGetAll_ReturnsWholeFleetOrderedByPlate() {
	ctx := context.Background()

	truckB := suite.createTestTruck("KBB 200B")
	truckA := suite.createTestTruck("KAA 100A")
	truckA.Deactivate()

	suite.tracker.On("TrackAggregate", truckB.ID(), truckB).Once()
	suite.tracker.On("TrackAggregate", truckA.ID(), truckA).Once()

	suite.Require().NoError(suite.truckRepository.Add(ctx, truckB))
	suite.Require().NoError(suite.truckRepository.Add(ctx, truckA))

	fleet, err := suite.truckRepository.GetAll(ctx)
	suite.Require().NoError(err)

	// Inactive trucks are part of the fleet snapshot too
	suite.Require().Len(fleet, 2)
	suite.Equal("KAA 100A", fleet[0].Plate())
	suite.Equal("KBB 200B", fleet[1].Plate())
	suite.False(fleet[0].IsOperational())
	suite.True(fleet[1].IsOperational())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TruckRepositoryIntegrationTestSuite) TestTruckRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with unconstructed UUID",
			operation: func() error {
				_, err := suite.truckRepository.Get(context.Background(), kernel.UUID{})
				return err
			},
			expected: "constructor",
		},
		{
			name: "get non-existent truck",
			operation: func() error {
				_, err := suite.truckRepository.Get(context.Background(), kernel.NewUUID())
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent truck",
			operation: func() error {
				return suite.truckRepository.Update(context.Background(), suite.createTestTruck("KZZ 999Z"))
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// setupSubtest prepares a clean environment for each subtest.
func (suite *TruckRepositoryIntegrationTestSuite) setupSubtest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE truck_inventory, trucks").Error)
	suite.tracker = new(MockAggregateTracker)
	suite.truckRepository = truckrepo.NewGormTruckRepository(suite.db, suite.tracker)
}

// createTestTruck creates a test truck with default capacity limits.
func (suite *TruckRepositoryIntegrationTestSuite) createTestTruck(plate string) *truck.Truck {
	testTruck, err := truck.NewTruck(kernel.NewUUID(), plate, 40, 1000)
	suite.Require().NoError(err)
	return testTruck
}

// assertTruckCount verifies the number of trucks in the database.
func (suite *TruckRepositoryIntegrationTestSuite) assertTruckCount(expected int) {
	var count int64
	err := suite.db.Model(&truckrepo.TruckDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertInventoryCount verifies the number of inventory rows in the database.
func (suite *TruckRepositoryIntegrationTestSuite) assertInventoryCount(expected int) {
	var count int64
	err := suite.db.Model(&truckrepo.InventoryItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestTruckRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TruckRepositoryIntegrationTestSuite))
}
