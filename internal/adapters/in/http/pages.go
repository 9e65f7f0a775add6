package http

import (
	"net/http"

	"penguinadmin/internal/auth"
	"penguinadmin/internal/core/application/usecases/commands"
	"penguinadmin/internal/core/application/usecases/queries"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// render issues a fresh anti-forgery token for the page and renders it.
func (s *Server) render(c echo.Context, status int, name, title string, data any, errMsg string) error {
	ctx := c.Request().Context()
	csrf, err := s.csrf.Issue(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Anti-forgery token not issued", "error", err)
		return c.String(http.StatusInternalServerError, "Could not render the page.")
	}

	sess := currentSession(c)
	return c.Render(status, name, page{
		Title:      title,
		Token:      sess.Token,
		CSRF:       csrf,
		AdminEmail: sess.Identity.Email,
		Error:      errMsg,
		Data:       data,
	})
}

func (s *Server) internalError(c echo.Context, msg string, err error) error {
	s.logger.ErrorContext(c.Request().Context(), msg, "error", err)
	return c.String(http.StatusInternalServerError, msg)
}

func (s *Server) LoginForm(c echo.Context) error {
	return s.render(c, http.StatusOK, "login", "Sign in", nil, "")
}

// Login checks the anti-forgery token before looking at the credentials.
func (s *Server) Login(c echo.Context) error {
	if !s.consumeCSRF(c) {
		return s.forbidden(c)
	}

	query, err := queries.NewAuthenticateAdminQuery(c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		return s.render(c, http.StatusBadRequest, "login", "Sign in", nil, "Email and password are required.")
	}

	who, err := s.handlers.AuthenticateAdmin.Handle(c.Request().Context(), query)
	if err != nil {
		if statusFor(err) == http.StatusUnauthorized {
			return s.render(c, http.StatusUnauthorized, "login", "Sign in", nil, "Invalid email or password.")
		}
		return s.internalError(c, "Could not sign in.", err)
	}

	token, err := s.sessions.Issue(auth.Identity{AdminID: who.ID, Email: who.Email, Role: who.Role})
	if err != nil {
		return s.internalError(c, "Could not sign in.", err)
	}

	return c.Redirect(http.StatusSeeOther, withToken("/dashboard", token))
}

// Logout drops the client side token; nothing is kept on the server.
func (s *Server) Logout(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/login")
}

type statusCount struct {
	Status order.Status
	Count  int
}

type dashboardData struct {
	Counts  []statusCount
	Active  int
	Summary []queries.DeliverySummaryRow
}

func (s *Server) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	all, err := queries.NewListOrdersQuery("")
	if err != nil {
		return s.internalError(c, "Could not load the dashboard.", err)
	}
	orders, err := s.handlers.ListOrders.Handle(ctx, all)
	if err != nil {
		return s.internalError(c, "Could not load the dashboard.", err)
	}

	byDay, err := queries.NewGetDeliverySummaryQuery(string(queries.ByDay))
	if err != nil {
		return s.internalError(c, "Could not load the dashboard.", err)
	}
	summary, err := s.handlers.GetDeliverySummary.Handle(ctx, byDay)
	if err != nil {
		return s.internalError(c, "Could not load the dashboard.", err)
	}

	data := dashboardData{Active: len(orders), Summary: summary}
	for _, st := range order.Statuses() {
		n := 0
		for _, o := range orders {
			if o.Status == st {
				n++
			}
		}
		data.Counts = append(data.Counts, statusCount{Status: st, Count: n})
	}

	return s.render(c, http.StatusOK, "dashboard", "Dashboard", data, "")
}

type ordersData struct {
	Orders []queries.OrderSummary
	Filter string
}

// ListOrders accepts the status filter from the query string or the form body.
func (s *Server) ListOrders(c echo.Context) error {
	filter := c.FormValue("status")
	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return s.render(c, http.StatusBadRequest, "orders", "Orders", ordersData{}, "Unknown status filter.")
	}

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.internalError(c, "Could not load orders.", err)
	}

	return s.render(c, http.StatusOK, "orders", "Orders", ordersData{Orders: orders, Filter: filter}, "")
}

func (s *Server) ShowOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "Order not found.")
	}
	return s.renderOrder(c, id, http.StatusOK, "")
}

// renderOrder shows the detail page, or 404 when the order is no longer active.
func (s *Server) renderOrder(c echo.Context, id kernel.UUID, status int, errMsg string) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return c.String(http.StatusNotFound, "Order not found.")
	}

	detail, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			return c.String(http.StatusNotFound, "Order not found.")
		}
		return s.internalError(c, "Could not load the order.", err)
	}

	return s.render(c, status, "order_detail", "Order "+id.String(), detail, errMsg)
}

// ChangeOrderStatus follows post/redirect/get: success lands back on the detail page.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	if !s.consumeCSRF(c) {
		return s.forbidden(c)
	}

	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "Order not found.")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, c.FormValue("status"))
	if err == nil {
		err = s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	}
	if err != nil {
		switch statusFor(err) {
		case http.StatusNotFound:
			return c.String(http.StatusNotFound, "Order not found.")
		case http.StatusInternalServerError:
			return s.internalError(c, "Could not change the status.", err)
		default:
			return s.renderOrder(c, id, http.StatusBadRequest, "Could not change the status: "+userMessage(err))
		}
	}

	return c.Redirect(http.StatusSeeOther, withToken("/orders/"+id.String(), currentSession(c).Token))
}

// DeliverOrder finalizes the delivery of an order.
//
// The anti-forgery token is consumed before anything else; a rejected token
// answers 403 without touching any store. On success the operator is sent back
// to the order list. A business failure re-renders the detail page with the
// reason and a fresh anti-forgery token, or answers 404 if the order is gone.
func (s *Server) DeliverOrder(c echo.Context) error {
	if !s.consumeCSRF(c) {
		return s.forbidden(c)
	}

	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "Order not found.")
	}

	cmd, err := commands.NewFinalizeDeliveryCommand(id)
	if err != nil {
		return c.String(http.StatusNotFound, "Order not found.")
	}

	ctx := c.Request().Context()
	record, err := s.handlers.FinalizeDelivery.Handle(ctx, cmd)
	if err != nil {
		s.logger.WarnContext(ctx, "Delivery not finalized", "order_id", id.String(), "error", err)
		if statusFor(err) == http.StatusNotFound {
			return c.String(http.StatusNotFound, "Order not found.")
		}
		return s.renderOrder(c, id, http.StatusBadRequest, "Could not deliver: "+userMessage(err))
	}

	s.logger.InfoContext(ctx, "Order delivered",
		"order_id", id.String(),
		"delivery_id", record.ID().String(),
		"units", record.UnitsDelivered(),
	)
	return c.Redirect(http.StatusSeeOther, withToken("/orders", currentSession(c).Token))
}

func (s *Server) ListDeliveries(c echo.Context) error {
	deliveries, err := s.handlers.ListDeliveries.Handle(c.Request().Context(), queries.NewListDeliveriesQuery())
	if err != nil {
		return s.internalError(c, "Could not load deliveries.", err)
	}
	return s.render(c, http.StatusOK, "deliveries", "Deliveries", deliveries, "")
}
