package userrepo_test

import (
	"context"
	"testing"
	"time"

	"deliverya/internal/adapters/out/postgres/userrepo"
	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/user"
	"deliverya/internal/pkg/errs"

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

// UserRepositoryIntegrationTestSuite provides integration tests for
// UserRepository using PostgreSQL containers.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_ValidUser_Success() {
	ctx := context.Background()

	testUser := suite.createUser("maria@example.com", user.Client)
	suite.tracker.On("TrackAggregate", testUser.ID(), testUser).Once()

	err := suite.repository.Add(ctx, testUser)
	suite.Require().NoError(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_FailsOnUniqueIndex() {
	ctx := context.Background()

	first := suite.createUser("maria@example.com", user.Client)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createUser("maria@example.com", user.Courier)
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_ExistingUser_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createUser("juan@example.com", user.Courier)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Name(), retrieved.Name())
	suite.Equal(original.Email(), retrieved.Email())
	suite.Equal(original.Phone(), retrieved.Phone())
	suite.Equal(user.Courier, retrieved.Role())
	suite.InDelta(user.DefaultRating, retrieved.Rating(), 1e-9)
	suite.WithinDuration(original.CreatedAt(), retrieved.CreatedAt(), time.Millisecond)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_NonExistentUser_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_ExistingUser_ReturnsUser() {
	ctx := context.Background()

	original := suite.createUser("carla@example.com", user.Client)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByEmail(ctx, "carla@example.com")
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_FreeEmail_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByEmail(ctx, "nobody@example.com")

	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_EmptyEmail_ReturnsRequiredError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByEmail(ctx, "")

	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *UserRepositoryIntegrationTestSuite) createUser(email string, role user.Role) *user.User {
	testUser, err := user.NewUser(kernel.NewUUID(), "Test User", email, "+54 11 5555-0100",
		role, time.Now().UTC())
	suite.Require().NoError(err)
	return testUser
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
