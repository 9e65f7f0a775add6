package postgres_test

import (
	"context"
	"time"

	postgres_adapter "penguinadmin/internal/adapters/out/postgres"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// databaseSuite starts one PostgreSQL container per suite and empties every
// table before each test.
type databaseSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (s *databaseSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60*time.Second)),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := postgres_adapter.Open(ctx, dsn, postgres_adapter.PoolConfig{MaxOpenConns: 10})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(postgres_adapter.Migrate(db))

	s.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, postgres_adapter.WithLockTimeout(10*time.Second))
}

func (s *databaseSuite) SetupTest() {
	err := s.db.Exec(`TRUNCATE TABLE delivery_stock_deltas, delivery_items, deliveries,
		order_items, orders, products, admins`).Error
	s.Require().NoError(err)
}

func (s *databaseSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}
