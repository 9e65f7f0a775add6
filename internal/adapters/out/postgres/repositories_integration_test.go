package postgres_test

import (
	"context"
	"testing"
	"time"

	"penguinadmin/internal/core/domain/model/admin"
	"penguinadmin/internal/core/domain/model/delivery"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/core/domain/model/product"
	"penguinadmin/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type RepositoriesIntegrationTestSuite struct {
	databaseSuite
}

func (s *RepositoriesIntegrationTestSuite) TestOrderRepository_RoundTripKeepsItemOrderAndLegacyItems() {
	ctx := context.Background()
	fish := s.newProduct("Fish", "4.50", 10)
	legacy, err := order.NewLineItem(kernel.UUID{}, "Old krill", 1, s.money("0.99"))
	s.Require().NoError(err)
	krill := s.newProduct("Krill", "1.25", 10)
	o := s.newOrder(s.itemFor(fish, 2), legacy, s.itemFor(krill, 3))
	s.seed(nil, o)

	got, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)

	items := got.Items()
	s.Require().Len(items, 3)
	for i := range items {
		s.True(items[i].IsEqual(o.Items()[i]), "item %d", i)
	}
	s.True(got.HasLegacyItems())
	s.Equal(o.Buyer(), got.Buyer())
	s.Equal("13.74", got.Total().String())
	s.True(got.CreatedAt().Equal(createdAt))
}

func (s *RepositoriesIntegrationTestSuite) TestOrderRepository_UpdateWritesContactAndStatus() {
	ctx := context.Background()
	o := s.newOrder(s.itemFor(s.newProduct("Fish", "1", 1), 1))
	s.seed(nil, o)
	repo := s.factory.Create().OrderRepository()

	s.Require().NoError(o.ChangeContact("Pinga", "Igloo 9"))
	s.Require().NoError(o.ChangeStatus(order.Preparing))
	s.Require().NoError(repo.Update(ctx, o))

	got, err := repo.Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Preparing, got.Status())
	s.Equal("Pinga", got.Buyer().Name)
	s.Equal("Igloo 9", got.Buyer().Address)
	s.Equal(o.Buyer().Email, got.Buyer().Email)
	s.Equal(o.Total(), got.Total())
}

func (s *RepositoriesIntegrationTestSuite) TestOrderRepository_DeleteAndMissing() {
	ctx := context.Background()
	o := s.newOrder(s.itemFor(s.newProduct("Fish", "1", 1), 1))
	s.seed(nil, o)
	repo := s.factory.Create().OrderRepository()

	s.Require().NoError(repo.Delete(ctx, o.ID()))
	s.Zero(s.count("order_items"))

	s.Require().ErrorIs(repo.Delete(ctx, o.ID()), errs.ErrObjectNotFound)
	_, err := repo.Get(ctx, o.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *RepositoriesIntegrationTestSuite) TestOrderRepository_DeleteLegacyKeepsMixedOrders() {
	ctx := context.Background()
	fish := s.newProduct("Fish", "1", 10)
	legacy, err := order.NewLineItem(kernel.UUID{}, "Old", 1, s.money("1"))
	s.Require().NoError(err)
	mixed := s.newOrder(s.itemFor(fish, 1), legacy)
	onlyLegacy := s.newOrder(legacy)
	clean := s.newOrder(s.itemFor(fish, 1))
	s.seed(nil, mixed, onlyLegacy, clean)

	removed, err := s.factory.Create().OrderRepository().DeleteLegacy(ctx)

	s.Require().NoError(err)
	s.Equal(int64(1), removed)
	s.Equal(int64(2), s.count("orders"))
	_, err = s.factory.Create().OrderRepository().Get(ctx, clean.ID())
	s.Require().NoError(err)
	_, err = s.factory.Create().OrderRepository().Get(ctx, mixed.ID())
	s.Require().NoError(err)
	_, err = s.factory.Create().OrderRepository().Get(ctx, onlyLegacy.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *RepositoriesIntegrationTestSuite) TestProductRepository_UpdateAndLookups() {
	ctx := context.Background()
	older := s.newProduct("Fish", "4.50", 10)
	newer, err := product.NewProduct(kernel.NewUUID(), "Fish", "", s.money("5.00"), 1, true, createdAt.Add(time.Hour))
	s.Require().NoError(err)
	repo := s.factory.Create().ProductRepository()
	s.Require().NoError(repo.Add(ctx, older))
	s.Require().NoError(repo.Add(ctx, newer))

	s.Require().NoError(older.DecreaseStock(10, createdAt.Add(time.Minute)))
	s.Require().NoError(older.SetImage("/uploads/fish.png", createdAt.Add(time.Minute)))
	s.Require().NoError(repo.Update(ctx, older))

	got, err := repo.Get(ctx, older.ID())
	s.Require().NoError(err)
	s.Equal(0, got.Stock())
	s.Equal("/uploads/fish.png", got.ImagePath())
	s.Equal("4.50", got.Price().String())

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	byName, err := uow.ProductRepository().GetByNameForUpdate(ctx, "Fish")
	s.Require().NoError(err)
	s.True(byName.ID().IsEqual(older.ID()), "oldest product with the name wins")
	s.Require().NoError(uow.Rollback(ctx))

	_, err = repo.GetByNameForUpdate(ctx, "Shark")
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *RepositoriesIntegrationTestSuite) TestProductRepository_NegativeStockRejectedByDatabase() {
	ctx := context.Background()
	p := s.newProduct("Fish", "1", 1)
	s.Require().NoError(s.factory.Create().ProductRepository().Add(ctx, p))

	err := s.db.Exec("UPDATE products SET stock = -1 WHERE id = ?", p.ID().Bytes()).Error

	s.Require().Error(err)
	s.Equal(1, s.stockOf(p))
}

func (s *RepositoriesIntegrationTestSuite) TestDeliveryRepository_RoundTrip() {
	ctx := context.Background()
	fish := s.newProduct("Fish", "4.50", 10)
	o := s.newOrder(s.itemFor(fish, 2))
	at := time.Date(2025, 11, 7, 23, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60))
	record, err := delivery.NewDelivery(kernel.NewUUID(), o, []delivery.StockDelta{{ProductID: fish.ID(), Qty: 2}}, at)
	s.Require().NoError(err)

	repo := s.factory.Create().DeliveryRepository()
	s.Require().NoError(repo.Add(ctx, record))

	got, err := repo.GetByOrderID(ctx, o.ID())
	s.Require().NoError(err)
	s.True(got.ID().IsEqual(record.ID()))
	s.Equal(delivery.DatePartition{Day: "2025-11-07", Month: "2025-11", Year: 2025}, got.Partition())
	s.Equal(record.StockDelta(), got.StockDelta())
	s.Equal(delivery.StatusLabel, got.StatusLabel())
	s.True(got.Items()[0].IsEqual(o.Items()[0]))
	s.True(got.DeliveredAt().Equal(at))

	_, err = repo.GetByOrderID(ctx, kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *RepositoriesIntegrationTestSuite) TestAdminRepository() {
	ctx := context.Background()
	a, err := admin.NewAdmin(kernel.NewUUID(), "boss@penguin.io", "longenough", "", createdAt)
	s.Require().NoError(err)
	repo := s.factory.Create().AdminRepository()

	s.Require().NoError(repo.Add(ctx, a))

	got, err := repo.GetByEmail(ctx, "  BOSS@penguin.io")
	s.Require().NoError(err)
	s.True(got.ID().IsEqual(a.ID()))
	s.Require().NoError(got.CheckPassword("longenough"))

	dup, err := admin.NewAdmin(kernel.NewUUID(), "boss@penguin.io", "longenough", "", createdAt)
	s.Require().NoError(err)
	s.Require().Error(repo.Add(ctx, dup), "email is unique")

	_, err = repo.Get(ctx, kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRepositoriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(RepositoriesIntegrationTestSuite))
}
