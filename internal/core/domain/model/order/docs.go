// Package order contains the active order aggregate.
//
// An Order lives from checkout until delivery finalization. Its status moves
// between New, Preparing and EnRoute; finalization removes the order entirely
// and leaves a delivery.Delivery snapshot behind.
package order
