package http

import (
	"context"

	"penguinadmin/internal/core/application/usecases/commands"
	"penguinadmin/internal/core/application/usecases/queries"
	"penguinadmin/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryFinalizer struct{ mock.Mock }

func (m *MockDeliveryFinalizer) Handle(ctx context.Context, cmd commands.FinalizeDeliveryCommand) (*delivery.Delivery, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockOrderStatusChanger struct{ mock.Mock }

func (m *MockOrderStatusChanger) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderBuyerUpdater struct{ mock.Mock }

func (m *MockOrderBuyerUpdater) Handle(ctx context.Context, cmd commands.UpdateOrderBuyerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCatalogLister struct{ mock.Mock }

func (m *MockCatalogLister) Handle(ctx context.Context, query queries.ListCatalogQuery) ([]queries.ProductView, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]queries.ProductView)
	return rows, args.Error(1)
}

type MockOrdersBoardReader struct{ mock.Mock }

func (m *MockOrdersBoardReader) Handle(ctx context.Context, query queries.GetOrdersBoardQuery) ([]queries.BoardOrder, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]queries.BoardOrder)
	return rows, args.Error(1)
}

type MockProductCreator struct{ mock.Mock }

func (m *MockProductCreator) Handle(ctx context.Context, cmd commands.CreateProductCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockProductImageSetter struct{ mock.Mock }

func (m *MockProductImageSetter) Handle(ctx context.Context, cmd commands.SetProductImageCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetail, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderDetail), args.Error(1)
}

type MockOrderTracker struct{ mock.Mock }

func (m *MockOrderTracker) Handle(ctx context.Context, query queries.GetOrderTrackingQuery) (queries.OrderTracking, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderTracking), args.Error(1)
}

type MockDeliverySummarizer struct{ mock.Mock }

func (m *MockDeliverySummarizer) Handle(
	ctx context.Context, query queries.GetDeliverySummaryQuery,
) ([]queries.DeliverySummaryRow, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.DeliverySummaryRow), args.Error(1)
}

type MockAdminAuthenticator struct{ mock.Mock }

func (m *MockAdminAuthenticator) Handle(
	ctx context.Context, query queries.AuthenticateAdminQuery,
) (queries.AuthenticatedAdmin, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.AuthenticatedAdmin), args.Error(1)
}
