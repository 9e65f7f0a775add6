package postgres_test

import (
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/core/domain/model/product"
)

var createdAt = time.Date(2025, 11, 6, 9, 0, 0, 0, time.UTC)

func (s *databaseSuite) money(v string) kernel.Money {
	m, err := kernel.MoneyFromString(v)
	s.Require().NoError(err)
	return m
}

func (s *databaseSuite) newProduct(name, price string, stock int) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), name, "", s.money(price), stock, true, createdAt)
	s.Require().NoError(err)
	return p
}

func (s *databaseSuite) itemFor(p *product.Product, qty int) order.LineItem {
	it, err := order.NewLineItem(p.ID(), p.Name(), qty, p.Price())
	s.Require().NoError(err)
	return it
}

func (s *databaseSuite) newOrder(items ...order.LineItem) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), order.Buyer{
		Name: "Pingu", Address: "Igloo 4", Sector: "north", Email: "pingu@example.com",
	}, items, createdAt)
	s.Require().NoError(err)
	return o
}

// seed stores products and orders outside any transaction.
func (s *databaseSuite) seed(products []*product.Product, orders ...*order.Order) {
	uow := s.factory.Create()
	for _, p := range products {
		s.Require().NoError(uow.ProductRepository().Add(s.T().Context(), p))
	}
	for _, o := range orders {
		s.Require().NoError(uow.OrderRepository().Add(s.T().Context(), o))
	}
}

func (s *databaseSuite) stockOf(p *product.Product) int {
	stored, err := s.factory.Create().ProductRepository().Get(s.T().Context(), p.ID())
	s.Require().NoError(err)
	return stored.Stock()
}

func (s *databaseSuite) count(table string) int64 {
	var n int64
	s.Require().NoError(s.db.Table(table).Count(&n).Error)
	return n
}
