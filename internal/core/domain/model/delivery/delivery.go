package delivery

import (
	"errors"
	"fmt"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
	"penguinadmin/internal/pkg/errs"
)

// StatusLabel is the fixed status stored on every delivery record.
const StatusLabel = "delivered"

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// StockDelta records how many units of a product were taken from stock.
type StockDelta struct {
	ProductID kernel.UUID
	Qty       int
}

// Delivery is the append-only record of a finalized order.
type Delivery struct {
	id          kernel.UUID
	orderID     kernel.UUID
	items       []order.LineItem
	total       kernel.Money
	buyer       order.Buyer
	deliveredAt time.Time
	statusLabel string
	stockDelta  []StockDelta
	partition   DatePartition

	isConstructed bool
}

// NewDelivery snapshots o as delivered at deliveredAt. Items, total and buyer
// are copied verbatim; the partition fields come from the UTC date.
func NewDelivery(id kernel.UUID, o *order.Order, deltas []StockDelta, deliveredAt time.Time) (*Delivery, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := validateDeltas(deltas); err != nil {
		return nil, err
	}

	return &Delivery{
		id:            id,
		orderID:       o.ID(),
		items:         o.Items(),
		total:         o.Total(),
		buyer:         o.Buyer(),
		deliveredAt:   deliveredAt,
		statusLabel:   StatusLabel,
		stockDelta:    copyDeltas(deltas),
		partition:     PartitionOf(deliveredAt),
		isConstructed: true,
	}, nil
}

// RestoreDelivery rebuilds a persisted record. The stored partition is kept as is.
func RestoreDelivery(
	id, orderID kernel.UUID,
	items []order.LineItem,
	total kernel.Money,
	buyer order.Buyer,
	deliveredAt time.Time,
	statusLabel string,
	deltas []StockDelta,
	partition DatePartition,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), total.Validate(), validateDeltas(deltas)); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, order.ErrOrderHasNoItems
	}

	out := make([]order.LineItem, len(items))
	copy(out, items)

	return &Delivery{
		id:            id,
		orderID:       orderID,
		items:         out,
		total:         total,
		buyer:         buyer,
		deliveredAt:   deliveredAt,
		statusLabel:   statusLabel,
		stockDelta:    copyDeltas(deltas),
		partition:     partition,
		isConstructed: true,
	}, nil
}

func validateDeltas(deltas []StockDelta) error {
	for i, d := range deltas {
		if err := d.ProductID.Validate(); err != nil {
			return fmt.Errorf("stock delta %d: %w", i, err)
		}
		if d.Qty < 1 {
			return fmt.Errorf("stock delta %d: %w", i, errs.NewValueIsOutOfRangeError("qty", d.Qty, 1, "unbounded"))
		}
	}
	return nil
}

func copyDeltas(deltas []StockDelta) []StockDelta {
	out := make([]StockDelta, len(deltas))
	copy(out, deltas)
	return out
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID { return d.id }
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }
func (d *Delivery) Total() kernel.Money { return d.total }
func (d *Delivery) Buyer() order.Buyer { return d.buyer }
func (d *Delivery) DeliveredAt() time.Time { return d.deliveredAt }
func (d *Delivery) StatusLabel() string { return d.statusLabel }
func (d *Delivery) Partition() DatePartition { return d.partition }

func (d *Delivery) Items() []order.LineItem {
	out := make([]order.LineItem, len(d.items))
	copy(out, d.items)
	return out
}

func (d *Delivery) StockDelta() []StockDelta {
	return copyDeltas(d.stockDelta)
}

// UnitsDelivered sums item quantities.
func (d *Delivery) UnitsDelivered() int {
	n := 0
	for _, it := range d.items {
		n += it.Qty()
	}
	return n
}
