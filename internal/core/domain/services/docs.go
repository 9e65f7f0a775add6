// Package services holds domain policies that span more than one aggregate.
//
// The package includes:
//   - ProductResolver: maps an order line item to its live catalog product,
//     by reference first and by snapshot name for legacy items
package services
