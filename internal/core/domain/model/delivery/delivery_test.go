package delivery_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"penguinadmin/internal/core/domain/model/delivery"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromString("4.50")
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), "Fish", 2, price)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), order.Buyer{
		Name: "Pingu", Address: "Igloo 4", Sector: "north", Email: "pingu@example.com",
	}, []order.LineItem{item}, time.Date(2025, 11, 6, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestNewDelivery_CopiesOrderVerbatim(t *testing.T) {
	o := newOrder(t)
	at := time.Date(2025, 11, 7, 14, 30, 0, 0, time.UTC)
	deltas := []delivery.StockDelta{{ProductID: o.Items()[0].ProductID(), Qty: 2}}

	d, err := delivery.NewDelivery(kernel.NewUUID(), o, deltas, at)

	require.NoError(t, err)
	require.NoError(t, d.Validate())
	assert.True(t, d.OrderID().IsEqual(o.ID()))
	assert.Equal(t, "9.00", d.Total().String())
	assert.Equal(t, o.Buyer(), d.Buyer())
	assert.Equal(t, delivery.StatusLabel, d.StatusLabel())
	assert.Equal(t, at, d.DeliveredAt())
	require.Len(t, d.Items(), 1)
	assert.True(t, d.Items()[0].IsEqual(o.Items()[0]))
	assert.Equal(t, deltas, d.StockDelta())
	assert.Equal(t, 2, d.UnitsDelivered())
	assert.Equal(t, delivery.DatePartition{Day: "2025-11-07", Month: "2025-11", Year: 2025}, d.Partition())
}

func TestNewDelivery_PartitionUsesUTC(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	// 2025-12-31 22:00 at UTC-5 is 2026-01-01 03:00 UTC
	at := time.Date(2025, 12, 31, 22, 0, 0, 0, zone)

	d, err := delivery.NewDelivery(kernel.NewUUID(), newOrder(t), nil, at)

	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", d.Partition().Day)
	assert.Equal(t, "2026-01", d.Partition().Month)
	assert.Equal(t, 2026, d.Partition().Year)
}

func TestPartitionOf_PrefixRelation(t *testing.T) {
	start := time.Date(2024, 2, 27, 23, 59, 0, 0, time.UTC)
	for i := 0; i < 400; i++ {
		p := delivery.PartitionOf(start.Add(time.Duration(i) * 7 * time.Hour))

		assert.True(t, strings.HasPrefix(p.Day, p.Month), p)
		assert.True(t, strings.HasPrefix(p.Month, strconv.Itoa(p.Year)), p)
	}
}

func TestNewDelivery_Rejects(t *testing.T) {
	o := newOrder(t)
	at := time.Now()

	_, err := delivery.NewDelivery(kernel.NewUUID(), nil, nil, at)
	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)

	_, err = delivery.NewDelivery(kernel.UUID{}, o, nil, at)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = delivery.NewDelivery(kernel.NewUUID(), o, []delivery.StockDelta{{ProductID: kernel.NewUUID(), Qty: 0}}, at)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestDelivery_SnapshotIsIsolated(t *testing.T) {
	deltas := []delivery.StockDelta{{ProductID: kernel.NewUUID(), Qty: 1}}
	d, err := delivery.NewDelivery(kernel.NewUUID(), newOrder(t), deltas, time.Now())
	require.NoError(t, err)

	deltas[0].Qty = 99
	got := d.StockDelta()
	got[0].Qty = 42

	assert.Equal(t, 1, d.StockDelta()[0].Qty)
}
