package http

import (
	"net/http"

	"penguinadmin/internal/core/application/usecases/commands"
	"penguinadmin/internal/core/application/usecases/queries"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

func apiFail(c echo.Context, status int, msg string) error {
	return c.JSON(status, servers.Error{Code: status, Message: msg})
}

// Checkout godoc
//
//	@Summary		Place an order
//	@Description	Creates an order in status "new". Lines with an unknown product or a non-positive quantity are skipped.
//	@Tags			storefront
//	@Accept			json
//	@Produce		json
//	@Param			order	body		servers.CheckoutRequest	true	"Order"
//	@Success		201		{object}	servers.CheckoutResponse
//	@Failure		400		{object}	servers.Error
//	@Router			/api/v1/checkout [post]
func (s *Server) Checkout(c echo.Context) error {
	var req servers.CheckoutJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return apiFail(c, http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		id, err := kernel.UUIDFromString(it.ProductId)
		if err != nil {
			continue
		}
		lines = append(lines, commands.OrderLine{ProductID: id, Qty: it.Qty})
	}

	buyer := order.Buyer{
		Name:    req.BuyerName,
		Address: req.Address,
		Email:   req.Email,
	}
	if req.Sector != nil {
		buyer.Sector = *req.Sector
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, buyer, lines)
	if err == nil {
		err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	}
	if err != nil {
		return s.apiError(c, "Checkout failed", err)
	}

	return c.JSON(http.StatusCreated, servers.CheckoutResponse{OrderId: orderID.Bytes(), Status: order.New.String()})
}

// ListCatalog godoc
//
//	@Summary		Storefront catalog
//	@Description	Active products in name order. Sold out products stay listed.
//	@Tags			storefront
//	@Produce		json
//	@Success		200	{array}	servers.CatalogProduct
//	@Router			/api/v1/products [get]
func (s *Server) ListCatalog(c echo.Context) error {
	products, err := s.handlers.ListCatalog.Handle(c.Request().Context(), queries.NewListCatalogQuery())
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "Catalog failed", "error", err)
		return apiFail(c, http.StatusInternalServerError, "Failed to retrieve products")
	}

	response := make([]servers.CatalogProduct, len(products))
	for i, p := range products {
		response[i] = servers.CatalogProduct{
			Id:          p.ID.Bytes(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.String(),
		}
		if p.ImagePath != "" {
			path := p.ImagePath
			response[i].ImagePath = &path
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrdersBoard godoc
//
//	@Summary		Public orders board
//	@Description	Every active order with its short id, buyer name, status and items, oldest first.
//	@Tags			storefront
//	@Produce		json
//	@Success		200	{array}	servers.BoardOrder
//	@Router			/api/v1/orders [get]
func (s *Server) GetOrdersBoard(c echo.Context) error {
	board, err := s.handlers.GetOrdersBoard.Handle(c.Request().Context(), queries.NewGetOrdersBoardQuery())
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "Orders board failed", "error", err)
		return apiFail(c, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]servers.BoardOrder, len(board))
	for i, o := range board {
		items := make([]servers.BoardItem, len(o.Items))
		for j, it := range o.Items {
			items[j] = servers.BoardItem{Name: it.Name, Qty: it.Qty}
		}
		response[i] = servers.BoardOrder{
			Id:        o.ID.Bytes(),
			ShortId:   o.ShortID,
			BuyerName: o.BuyerName,
			Status:    o.Status.String(),
			Items:     items,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateOrderBuyer godoc
//
//	@Summary		Edit buyer contact
//	@Description	Replaces the buyer name and address while the order is still "new".
//	@Tags			storefront
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Order ID"
//	@Param			buyer	body	servers.OrderBuyerUpdate	true	"New contact"
//	@Success		204
//	@Failure		400	{object}	servers.Error
//	@Failure		404	{object}	servers.Error
//	@Router			/api/v1/orders/{id} [put]
func (s *Server) UpdateOrderBuyer(c echo.Context, id openapi_types.UUID) error {
	var req servers.UpdateOrderBuyerJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return apiFail(c, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return apiFail(c, http.StatusNotFound, "Order not found")
	}

	cmd, err := commands.NewUpdateOrderBuyerCommand(orderID, req.BuyerName, req.Address)
	if err == nil {
		err = s.handlers.UpdateOrderBuyer.Handle(c.Request().Context(), cmd)
	}
	if err != nil {
		return s.apiError(c, "Order edit failed", err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOrderStatus godoc
//
//	@Summary		Order status
//	@Description	Status of an active order, or "delivered" once it has been archived.
//	@Tags			storefront
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	servers.OrderTracking
//	@Failure		404	{object}	servers.Error
//	@Router			/api/v1/orders/{id}/status [get]
func (s *Server) GetOrderStatus(c echo.Context, id string) error {
	orderID, err := kernel.UUIDFromString(id)
	if err != nil {
		return apiFail(c, http.StatusNotFound, "Order not found")
	}
	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return apiFail(c, http.StatusNotFound, "Order not found")
	}

	tracking, err := s.handlers.GetOrderTracking.Handle(c.Request().Context(), query)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			return apiFail(c, http.StatusNotFound, "Order not found")
		}
		s.logger.ErrorContext(c.Request().Context(), "Tracking failed", "error", err)
		return apiFail(c, http.StatusInternalServerError, "Failed to retrieve order status")
	}

	return c.JSON(http.StatusOK, servers.OrderTracking{OrderId: tracking.OrderID.Bytes(), Status: tracking.Status})
}

// GetDeliverySummary godoc
//
//	@Summary		Delivery summary
//	@Description	Deliveries, units and revenue per day, month or year, newest period first.
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			granularity	query		string	false	"day, month or year"	Enums(day, month, year)
//	@Success		200			{array}		servers.DeliverySummaryRow
//	@Failure		400			{object}	servers.Error
//	@Failure		401			{string}	string
//	@Router			/api/v1/deliveries/summary [get]
func (s *Server) GetDeliverySummary(c echo.Context, params servers.GetDeliverySummaryParams) error {
	return s.requireSession(func(c echo.Context) error {
		return s.deliverySummary(c, params)
	})(c)
}

func (s *Server) deliverySummary(c echo.Context, params servers.GetDeliverySummaryParams) error {
	var granularity string
	if params.Granularity != nil {
		granularity = string(*params.Granularity)
	}

	query, err := queries.NewGetDeliverySummaryQuery(granularity)
	if err != nil {
		return apiFail(c, http.StatusBadRequest, "granularity must be day, month or year")
	}

	rows, err := s.handlers.GetDeliverySummary.Handle(c.Request().Context(), query)
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "Summary failed", "error", err)
		return apiFail(c, http.StatusInternalServerError, "Failed to build the summary")
	}

	response := make([]servers.DeliverySummaryRow, len(rows))
	for i, row := range rows {
		response[i] = servers.DeliverySummaryRow{
			Period:     row.Period,
			Deliveries: row.Deliveries,
			Units:      row.Units,
			Revenue:    row.Revenue.String(),
		}
	}

	return c.JSON(http.StatusOK, response)
}

// apiError answers a failed use case with its mapped status. Internal
// failures are logged and not described to the client.
func (s *Server) apiError(c echo.Context, msg string, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), msg, "error", err)
	}
	return apiFail(c, status, userMessage(err))
}
