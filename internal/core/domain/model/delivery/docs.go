// Package delivery holds the immutable audit record written when an order is
// finalized. A Delivery is a point-in-time copy of the order's items, total and
// buyer, decoupled from later catalog edits, plus the stock deltas applied.
package delivery
