package commands_test

import (
	"testing"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 11, 7, 14, 30, 0, 0, time.UTC)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newProduct(t *testing.T, name, price string, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, "", mustMoney(t, price), stock, true, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	return p
}

func itemFor(t *testing.T, p *product.Product, qty int) order.LineItem {
	t.Helper()
	it, err := order.NewLineItem(p.ID(), p.Name(), qty, p.Price())
	require.NoError(t, err)
	return it
}

func newOrder(t *testing.T, items ...order.LineItem) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.Buyer{
		Name: "Pingu", Address: "Igloo 4", Sector: "north", Email: "pingu@example.com",
	}, items, fixedNow.Add(-24*time.Hour))
	require.NoError(t, err)
	return o
}
