package http

import (
	"context"

	"penguinadmin/internal/core/application/usecases/commands"
	"penguinadmin/internal/core/application/usecases/queries"
	"penguinadmin/internal/core/domain/model/delivery"
)

// Use cases the transport depends on. The command and query handlers satisfy
// these directly; tests substitute mocks.
type (
	DeliveryFinalizer interface {
		Handle(ctx context.Context, cmd commands.FinalizeDeliveryCommand) (*delivery.Delivery, error)
	}

	OrderStatusChanger interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}

	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	OrderBuyerUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderBuyerCommand) error
	}

	ProductCreator interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) error
	}

	ProductUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateProductCommand) error
	}

	ProductDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteProductCommand) error
	}

	ProductImageSetter interface {
		Handle(ctx context.Context, cmd commands.SetProductImageCommand) error
	}

	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}

	OrderReader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetail, error)
	}

	ProductLister interface {
		Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ProductView, error)
	}

	ProductReader interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (queries.ProductView, error)
	}

	DeliveryLister interface {
		Handle(ctx context.Context, query queries.ListDeliveriesQuery) ([]queries.DeliveryView, error)
	}

	OrderTracker interface {
		Handle(ctx context.Context, query queries.GetOrderTrackingQuery) (queries.OrderTracking, error)
	}

	DeliverySummarizer interface {
		Handle(ctx context.Context, query queries.GetDeliverySummaryQuery) ([]queries.DeliverySummaryRow, error)
	}

	CatalogLister interface {
		Handle(ctx context.Context, query queries.ListCatalogQuery) ([]queries.ProductView, error)
	}

	OrdersBoardReader interface {
		Handle(ctx context.Context, query queries.GetOrdersBoardQuery) ([]queries.BoardOrder, error)
	}

	AdminAuthenticator interface {
		Handle(ctx context.Context, query queries.AuthenticateAdminQuery) (queries.AuthenticatedAdmin, error)
	}
)

// Handlers groups every use case the server routes to.
type Handlers struct {
	FinalizeDelivery  DeliveryFinalizer
	ChangeOrderStatus OrderStatusChanger
	CreateOrder       OrderCreator
	UpdateOrderBuyer  OrderBuyerUpdater
	CreateProduct     ProductCreator
	UpdateProduct     ProductUpdater
	DeleteProduct     ProductDeleter
	SetProductImage   ProductImageSetter

	ListOrders         OrderLister
	GetOrder           OrderReader
	ListProducts       ProductLister
	GetProduct         ProductReader
	ListDeliveries     DeliveryLister
	GetOrderTracking   OrderTracker
	GetDeliverySummary DeliverySummarizer
	ListCatalog        CatalogLister
	GetOrdersBoard     OrdersBoardReader
	AuthenticateAdmin  AdminAuthenticator
}
