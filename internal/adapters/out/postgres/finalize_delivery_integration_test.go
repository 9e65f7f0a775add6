package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"penguinadmin/internal/core/application/usecases/commands"
	"penguinadmin/internal/core/domain/model/delivery"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/core/domain/model/product"
	"penguinadmin/internal/core/domain/services"
	"penguinadmin/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var deliveredAt = time.Date(2025, 11, 7, 12, 0, 0, 0, time.UTC)

type FinalizeDeliveryIntegrationTestSuite struct {
	databaseSuite
	handler commands.FinalizeDeliveryCommandHandler
}

func (s *FinalizeDeliveryIntegrationTestSuite) SetupSuite() {
	s.databaseSuite.SetupSuite()

	f := commands.FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return s.factory.Create()
	})
	s.handler = commands.NewFinalizeDeliveryCommandHandler(
		f, services.NewProductResolver(), kernel.FixedClock{At: deliveredAt},
	)
}

func (s *FinalizeDeliveryIntegrationTestSuite) finalize(ctx context.Context, o *order.Order) (*delivery.Delivery, error) {
	cmd, err := commands.NewFinalizeDeliveryCommand(o.ID())
	s.Require().NoError(err)
	return s.handler.Handle(ctx, cmd)
}

func (s *FinalizeDeliveryIntegrationTestSuite) TestFinalize_Success() {
	ctx := context.Background()
	fish := s.newProduct("Fish", "4.50", 10)
	krill := s.newProduct("Krill", "1.25", 5)
	o := s.newOrder(s.itemFor(fish, 3), s.itemFor(krill, 5))
	s.seed([]*product.Product{fish, krill}, o)

	record, err := s.finalize(ctx, o)

	s.Require().NoError(err)
	s.Equal(7, s.stockOf(fish))
	s.Equal(0, s.stockOf(krill))

	_, err = s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.Zero(s.count("order_items"))

	stored, err := s.factory.Create().DeliveryRepository().GetByOrderID(ctx, o.ID())
	s.Require().NoError(err)
	s.True(stored.ID().IsEqual(record.ID()))
	s.Equal("19.75", stored.Total().String())
	s.Equal(o.Buyer(), stored.Buyer())
	s.Equal(delivery.DatePartition{Day: "2025-11-07", Month: "2025-11", Year: 2025}, stored.Partition())
	s.Equal([]delivery.StockDelta{
		{ProductID: fish.ID(), Qty: 3},
		{ProductID: krill.ID(), Qty: 5},
	}, stored.StockDelta())
	s.Require().Len(stored.Items(), 2)
	s.True(stored.Items()[1].IsEqual(o.Items()[1]))
}

func (s *FinalizeDeliveryIntegrationTestSuite) TestFinalize_RecordOutlivesCatalogChanges() {
	ctx := context.Background()
	fish := s.newProduct("Fish", "4.50", 10)
	krill := s.newProduct("Krill", "1.25", 5)
	o := s.newOrder(s.itemFor(fish, 3), s.itemFor(krill, 2))
	s.seed([]*product.Product{fish, krill}, o)

	_, err := s.finalize(ctx, o)
	s.Require().NoError(err)

	repo := s.factory.Create().ProductRepository()
	renamed, err := repo.Get(ctx, fish.ID())
	s.Require().NoError(err)
	s.Require().NoError(renamed.Update("Salmon", "", s.money("99.00"), 1, false, deliveredAt.Add(time.Hour)))
	s.Require().NoError(repo.Update(ctx, renamed))
	s.Require().NoError(repo.Delete(ctx, krill.ID()))

	stored, err := s.factory.Create().DeliveryRepository().GetByOrderID(ctx, o.ID())

	s.Require().NoError(err)
	s.Equal("16.00", stored.Total().String())
	s.Require().Len(stored.Items(), 2)
	s.True(stored.Items()[0].IsEqual(o.Items()[0]))
	s.True(stored.Items()[1].IsEqual(o.Items()[1]))
	s.Equal("Fish", stored.Items()[0].Name())
	s.Equal("4.50", stored.Items()[0].UnitPrice().String())
	s.Equal([]delivery.StockDelta{
		{ProductID: fish.ID(), Qty: 3},
		{ProductID: krill.ID(), Qty: 2},
	}, stored.StockDelta())
}

func (s *FinalizeDeliveryIntegrationTestSuite) TestFinalize_InsufficientStockChangesNothing() {
	ctx := context.Background()
	fish := s.newProduct("Fish", "4.50", 10)
	krill := s.newProduct("Krill", "1.25", 2)
	o := s.newOrder(s.itemFor(fish, 3), s.itemFor(krill, 5))
	s.seed([]*product.Product{fish, krill}, o)

	_, err := s.finalize(ctx, o)

	var stockErr *commands.InsufficientStockError
	s.Require().ErrorAs(err, &stockErr)
	s.Equal("Krill", stockErr.ProductName)
	s.Equal(10, s.stockOf(fish), "earlier decrement must be rolled back")
	s.Equal(2, s.stockOf(krill))
	s.Zero(s.count("deliveries"))
	s.Equal(int64(1), s.count("orders"))
}

func (s *FinalizeDeliveryIntegrationTestSuite) TestFinalize_LegacyItemResolvedByName() {
	ctx := context.Background()
	fish := s.newProduct("Fish", "4.50", 10)
	legacy, err := order.NewLineItem(kernel.UUID{}, "Fish", 4, fish.Price())
	s.Require().NoError(err)
	o := s.newOrder(legacy)
	s.seed([]*product.Product{fish}, o)

	record, err := s.finalize(ctx, o)

	s.Require().NoError(err)
	s.Equal(6, s.stockOf(fish))
	s.Equal([]delivery.StockDelta{{ProductID: fish.ID(), Qty: 4}}, record.StockDelta())
}

func (s *FinalizeDeliveryIntegrationTestSuite) TestFinalize_MissingProductChangesNothing() {
	ctx := context.Background()
	fish := s.newProduct("Fish", "4.50", 10)
	ghost := s.newProduct("Ghost", "1.00", 10)
	o := s.newOrder(s.itemFor(fish, 1), s.itemFor(ghost, 1))
	s.seed([]*product.Product{fish}, o)

	_, err := s.finalize(ctx, o)

	var missing *commands.ProductMissingError
	s.Require().ErrorAs(err, &missing)
	s.Equal(ghost.ID().String(), missing.Identifier)
	s.Equal(10, s.stockOf(fish))
	s.Zero(s.count("deliveries"))
	s.Equal(int64(1), s.count("orders"))
}

func (s *FinalizeDeliveryIntegrationTestSuite) TestFinalize_UnknownOrder() {
	ctx := context.Background()
	o := s.newOrder(s.itemFor(s.newProduct("Fish", "1", 1), 1))

	_, err := s.finalize(ctx, o)

	s.Require().ErrorIs(err, commands.ErrOrderNotFound)
}

func (s *FinalizeDeliveryIntegrationTestSuite) TestFinalize_SameOrderTwiceConcurrently() {
	ctx := context.Background()
	fish := s.newProduct("Fish", "4.50", 10)
	o := s.newOrder(s.itemFor(fish, 3))
	s.seed([]*product.Product{fish}, o)

	results := s.race(2, func(int) error {
		_, err := s.finalize(ctx, o)
		return err
	})

	var succeeded, notFound int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, commands.ErrOrderNotFound):
			notFound++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, succeeded)
	s.Equal(1, notFound)
	s.Equal(7, s.stockOf(fish), "stock is decremented exactly once")
	s.Equal(int64(1), s.count("deliveries"))
}

func (s *FinalizeDeliveryIntegrationTestSuite) TestFinalize_ContendedProductNeverGoesNegative() {
	ctx := context.Background()
	fish := s.newProduct("Fish", "4.50", 5)
	orders := make([]*order.Order, 6)
	for i := range orders {
		orders[i] = s.newOrder(s.itemFor(fish, 2))
	}
	s.seed([]*product.Product{fish}, orders...)

	results := s.race(len(orders), func(i int) error {
		_, err := s.finalize(ctx, orders[i])
		return err
	})

	var succeeded int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.Require().ErrorIs(err, commands.ErrInsufficientStock)
	}
	s.Equal(2, succeeded)
	s.Equal(1, s.stockOf(fish))
	s.Equal(int64(2), s.count("deliveries"))
	s.Equal(int64(4), s.count("orders"))
}

func (s *FinalizeDeliveryIntegrationTestSuite) TestPurgeLegacyOrders() {
	ctx := context.Background()
	fish := s.newProduct("Fish", "1", 10)
	legacy, err := order.NewLineItem(kernel.UUID{}, "Old", 1, s.money("1"))
	s.Require().NoError(err)
	legacyFish, err := order.NewLineItem(kernel.UUID{}, "Fish", 1, s.money("1"))
	s.Require().NoError(err)
	mixed := s.newOrder(s.itemFor(fish, 1), legacyFish)
	s.seed([]*product.Product{fish}, s.newOrder(legacy), s.newOrder(s.itemFor(fish, 1)), mixed)

	h := commands.NewPurgeLegacyOrdersCommandHandler(commands.FuncOrderUoWFactory(func() commands.OrderUoW {
		return s.factory.Create()
	}))
	removed, err := h.Handle(ctx, commands.NewPurgeLegacyOrdersCommand())

	s.Require().NoError(err)
	s.Equal(int64(1), removed)
	s.Equal(int64(2), s.count("orders"))

	// the mixed order survives and can still be finalized through the name fallback
	record, err := s.finalize(ctx, mixed)
	s.Require().NoError(err)
	s.Equal(2, record.UnitsDelivered())
	s.Equal(8, s.stockOf(fish))
}

// race starts n calls at once and returns their errors by index.
func (s *FinalizeDeliveryIntegrationTestSuite) race(n int, call func(i int) error) []error {
	results := make([]error, n)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = call(i)
		}()
	}
	close(start)
	wg.Wait()

	return results
}

func TestFinalizeDeliveryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(FinalizeDeliveryIntegrationTestSuite))
}
